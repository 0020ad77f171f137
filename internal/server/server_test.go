package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/brandforge/adcanvas/pkg/canvas"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Logger: log.NewWithOptions(io.Discard, log.Options{})})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func sampleDoc(id string) *canvas.CanvasDocument {
	doc := canvas.NewDocument(1080, 1080)
	doc.ID = id
	o := &canvas.CanvasObject{
		ID: "headline", Kind: canvas.KindText, Text: "New collection",
		FontSize: 48, Fill: "#111111", Left: 140, Top: 420, Width: 800, Height: 120,
	}
	o.ApplyDefaults()
	doc.Add(o)
	return doc
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("responses should carry a request ID")
	}
}

func TestListFormats(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/v1/formats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Formats []struct {
			ID string `json:"id"`
		} `json:"formats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Formats) == 0 {
		t.Error("expected the built-in catalog")
	}
}

func TestGetFormatNotFound(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/v1/formats/vhs-tape", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "FORMAT_NOT_FOUND" {
		t.Errorf("error code = %q", resp.Error.Code)
	}
}

func TestComplianceEndpoint(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/v1/compliance", map[string]any{
		"document":  sampleDoc("doc-1"),
		"format_id": "instagram-feed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Report struct {
			Score  int               `json:"score"`
			Checks []json.RawMessage `json:"checks"`
		} `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Report.Checks) != 5 {
		t.Errorf("got %d checks, want 5", len(resp.Report.Checks))
	}
	if resp.Report.Score < 0 || resp.Report.Score > 100 {
		t.Errorf("score = %d", resp.Report.Score)
	}
}

func TestComplianceRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/compliance", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestResizeEndpoint(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/v1/resize", map[string]any{
		"document":  sampleDoc("doc-1"),
		"to_format": "instagram-story",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Document struct {
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		} `json:"document"`
		Transforms []json.RawMessage `json:"transforms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Document.Width != 1080 || resp.Document.Height != 1920 {
		t.Errorf("resized to %gx%g, want 1080x1920", resp.Document.Width, resp.Document.Height)
	}
	if len(resp.Transforms) != 1 {
		t.Errorf("got %d transforms, want 1", len(resp.Transforms))
	}
}

func TestDocumentCRUD(t *testing.T) {
	s := newTestServer(t)

	// Save
	rec := doJSON(t, s, http.MethodPost, "/v1/documents/", sampleDoc("doc-crud"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d: %s", rec.Code, rec.Body.String())
	}

	// Get
	rec = doJSON(t, s, http.MethodGet, "/v1/documents/doc-crud", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	// List
	rec = doJSON(t, s, http.MethodGet, "/v1/documents/", nil)
	var list struct {
		Documents []string `json:"documents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Documents) != 1 || list.Documents[0] != "doc-crud" {
		t.Errorf("list = %v", list.Documents)
	}

	// Delete
	rec = doJSON(t, s, http.MethodDelete, "/v1/documents/doc-crud", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, s, http.MethodGet, "/v1/documents/doc-crud", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}
