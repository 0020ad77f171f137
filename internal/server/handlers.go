package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brandforge/adcanvas/pkg/buildinfo"
	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/compliance"
	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/format"
	"github.com/brandforge/adcanvas/pkg/layout"
	"github.com/brandforge/adcanvas/pkg/pipeline"
)

// complianceRequest asks for a compliance report.
type complianceRequest struct {
	Document *canvas.CanvasDocument `json:"document"`
	FormatID string                 `json:"format_id"`
	Refresh  bool                   `json:"refresh,omitempty"`
}

// complianceResponse carries the report plus cache provenance.
type complianceResponse struct {
	Report compliance.Report `json:"report"`
	Cached bool              `json:"cached"`
}

// resizeRequest asks for a format switch.
type resizeRequest struct {
	Document    *canvas.CanvasDocument `json:"document"`
	ToFormat    string                 `json:"to_format"`
	SkipCorrect bool                   `json:"skip_correct,omitempty"`
}

// resizeResponse carries the resized document and the decisions behind it.
type resizeResponse struct {
	Document    *canvas.CanvasDocument `json:"document"`
	Transforms  []layout.Transform     `json:"transforms"`
	Corrections []layout.Correction    `json:"corrections"`
	Report      compliance.Report      `json:"report"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]format.Descriptor{"formats": s.catalog.List()})
}

func (s *Server) handleGetFormat(w http.ResponseWriter, r *http.Request) {
	fd, err := s.catalog.Get(chi.URLParam(r, "formatID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fd)
}

func (s *Server) handleCompliance(w http.ResponseWriter, r *http.Request) {
	var req complianceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	doc, err := prepareDocument(req.Document)
	if err != nil {
		writeError(w, err)
		return
	}
	fd, err := s.catalog.Get(req.FormatID)
	if err != nil {
		writeError(w, err)
		return
	}

	report, cached, err := s.runner.CheckWithCacheInfo(r.Context(), doc, fd, req.Refresh)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complianceResponse{Report: report, Cached: cached})
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	doc, err := prepareDocument(req.Document)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), doc, pipeline.Options{
		ToFormat:    req.ToFormat,
		SkipCorrect: req.SkipCorrect,
		Catalog:     s.catalog,
		Logger:      s.logger,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resizeResponse{
		Document:    result.Document,
		Transforms:  result.Transforms,
		Corrections: result.Corrections,
		Report:      result.Report,
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"documents": ids})
}

func (s *Server) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	var doc canvas.CanvasDocument
	if err := decodeJSON(r, &doc); err != nil {
		writeError(w, err)
		return
	}
	prepared, err := prepareDocument(&doc)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Put(r.Context(), prepared); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": prepared.ID})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "documentID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// prepareDocument applies defaults and validates an inbound document.
func prepareDocument(doc *canvas.CanvasDocument) (*canvas.CanvasDocument, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request requires a document")
	}
	doc.ApplyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeJSON decodes a request body, mapping failures to INVALID_INPUT.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body")
	}
	return nil
}

// errorResponse is the uniform error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps engine error codes onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidObject,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidCatalog:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFormatNotFound,
		errors.ErrCodeDocumentNotFound, errors.ErrCodeObjectNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
