package compliance

import (
	"strings"
	"testing"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/format"
)

func feedFormat(t *testing.T) format.Descriptor {
	t.Helper()
	fd, err := format.Default().Get("instagram-feed")
	if err != nil {
		t.Fatal(err)
	}
	return fd
}

func storyFormat(t *testing.T) format.Descriptor {
	t.Helper()
	fd, err := format.Default().Get("instagram-story")
	if err != nil {
		t.Fatal(err)
	}
	return fd
}

func textObj(id, text string, fontSize float64, fill string) *canvas.CanvasObject {
	o := &canvas.CanvasObject{
		ID: id, Kind: canvas.KindText, Text: text, FontSize: fontSize, Fill: fill,
		Left: 200, Top: 500, Width: 600, Height: 80,
	}
	o.ApplyDefaults()
	return o
}

func findCheck(t *testing.T, r Report, id string) canvas.ComplianceCheck {
	t.Helper()
	for _, c := range r.Checks {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("report has no %q check", id)
	return canvas.ComplianceCheck{}
}

func TestRunProducesFullBattery(t *testing.T) {
	doc := canvas.NewDocument(1080, 1080)
	report := Run(doc, feedFormat(t))

	wantOrder := []string{CheckProhibitedCopy, CheckSafeZones, CheckLogoPlacement, CheckColorContrast, CheckTextLimits}
	if len(report.Checks) != len(wantOrder) {
		t.Fatalf("got %d checks, want %d", len(report.Checks), len(wantOrder))
	}
	for i, id := range wantOrder {
		if report.Checks[i].ID != id {
			t.Errorf("check %d = %q, want %q", i, report.Checks[i].ID, id)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name  string
		build func() *canvas.CanvasDocument
	}{
		{"empty document", func() *canvas.CanvasDocument { return canvas.NewDocument(1080, 1080) }},
		{
			"everything wrong at once",
			func() *canvas.CanvasDocument {
				doc := canvas.NewDocument(1080, 1920)
				doc.BackgroundColor = "#888888"
				doc.Add(textObj("t1", "Act now! Get 90% off, guaranteed, only 2 left, free gift while supplies last! "+strings.Repeat("x", 300), 14, "#999999"))
				img := &canvas.CanvasObject{ID: "i1", Kind: canvas.KindImage, Left: 100, Top: 50, Width: 300, Height: 300}
				img.ApplyDefaults()
				doc.Add(img)
				return doc
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fd := range format.Default().List() {
				report := Run(tt.build(), fd)
				if report.Score < 0 || report.Score > 100 {
					t.Errorf("score = %d for format %s, want within [0, 100]", report.Score, fd.ID)
				}
			}
		})
	}
}

func TestProhibitedCopyCheck(t *testing.T) {
	doc := canvas.NewDocument(1080, 1080)
	doc.Add(textObj("t", "Get 20% off today!", 32, "#000000"))

	check := findCheck(t, Run(doc, feedFormat(t)), CheckProhibitedCopy)
	if check.Status != canvas.StatusWarning {
		t.Errorf("status = %s, want warning", check.Status)
	}
	if check.Severity != severityProhibitedCopy {
		t.Errorf("severity = %d, want %d", check.Severity, severityProhibitedCopy)
	}
	if !strings.Contains(check.Message, "20% off") {
		t.Errorf("message %q does not name the offending phrase", check.Message)
	}

	clean := canvas.NewDocument(1080, 1080)
	clean.Add(textObj("t", "Shop our new collection", 32, "#000000"))

	check = findCheck(t, Run(clean, feedFormat(t)), CheckProhibitedCopy)
	if check.Status != canvas.StatusPass || check.Severity != 0 {
		t.Errorf("clean copy: status = %s severity = %d, want pass 0", check.Status, check.Severity)
	}
}

func TestSafeZoneCheck(t *testing.T) {
	doc := canvas.NewDocument(1080, 1920)
	inBand := textObj("t", "too high", 20, "#000000")
	inBand.Top = 100 // inside the 250px top band
	doc.Add(inBand)

	check := findCheck(t, Run(doc, storyFormat(t)), CheckSafeZones)
	if check.Status != canvas.StatusWarning {
		t.Errorf("status = %s, want warning", check.Status)
	}
	if check.Severity != severitySafeZones {
		t.Errorf("severity = %d, want %d", check.Severity, severitySafeZones)
	}

	// The same document passes on a format with no reserved bands.
	check = findCheck(t, Run(doc, feedFormat(t)), CheckSafeZones)
	if check.Status != canvas.StatusPass {
		t.Errorf("no-band format: status = %s, want pass", check.Status)
	}
}

func TestLogoPlacementNoLogo(t *testing.T) {
	doc := canvas.NewDocument(1080, 1080)

	check := findCheck(t, Run(doc, feedFormat(t)), CheckLogoPlacement)
	if check.Status != canvas.StatusWarning {
		t.Errorf("status = %s, want warning", check.Status)
	}
	if check.Severity != severityNoLogo {
		t.Errorf("severity = %d, want %d", check.Severity, severityNoLogo)
	}
	if !strings.Contains(check.Message, "no logo") {
		t.Errorf("message = %q, want a no-logo notice", check.Message)
	}
}

func TestLogoPlacementOversized(t *testing.T) {
	// A corner image occupying 25% of the canvas area against a 15% maximum.
	doc := canvas.NewDocument(1080, 1080)
	logo := &canvas.CanvasObject{ID: "logo", Kind: canvas.KindImage, Left: 0, Top: 0, Width: 675, Height: 432}
	logo.ApplyDefaults()
	doc.Add(logo)

	check := findCheck(t, Run(doc, feedFormat(t)), CheckLogoPlacement)
	if check.Status != canvas.StatusWarning {
		t.Fatalf("status = %s, want warning", check.Status)
	}
	if !strings.Contains(check.Message, "25%") || !strings.Contains(check.Message, "15%") {
		t.Errorf("message = %q, want measured 25%% against 15%% maximum", check.Message)
	}
}

func TestLogoPlacementDisallowedZone(t *testing.T) {
	// Story format only allows top corners; a bottom-left logo warns.
	doc := canvas.NewDocument(1080, 1920)
	logo := &canvas.CanvasObject{ID: "logo", Kind: canvas.KindImage, Left: 20, Top: 1700, Width: 210, Height: 100}
	logo.ApplyDefaults()
	doc.Add(logo)

	check := findCheck(t, Run(doc, storyFormat(t)), CheckLogoPlacement)
	if check.Status != canvas.StatusWarning {
		t.Fatalf("status = %s, want warning", check.Status)
	}
	if !strings.Contains(check.Message, "top-left") {
		t.Errorf("message = %q, want the required zones named", check.Message)
	}
}

func TestLogoPlacementPass(t *testing.T) {
	doc := canvas.NewDocument(1080, 1080)
	logo := &canvas.CanvasObject{ID: "logo", Kind: canvas.KindImage, Left: 20, Top: 20, Width: 150, Height: 100}
	logo.ApplyDefaults()
	doc.Add(logo)

	check := findCheck(t, Run(doc, feedFormat(t)), CheckLogoPlacement)
	if check.Status != canvas.StatusPass {
		t.Errorf("status = %s (%s), want pass", check.Status, check.Message)
	}
}

func TestColorContrastCheck(t *testing.T) {
	tests := []struct {
		name       string
		background string
		fill       string
		fontSize   float64
		wantStatus canvas.CheckStatus
	}{
		{"black on white passes", "#FFFFFF", "#000000", 16, canvas.StatusPass},
		{"white on white fails", "#FFFFFF", "#ffffff", 16, canvas.StatusWarning},
		{"mid gray on white fails small text", "#FFFFFF", "#888888", 14, canvas.StatusWarning},
		{"mid gray on white passes large text", "#FFFFFF", "#888888", 20, canvas.StatusPass},
		{"unparseable fill treated as black on white", "#FFFFFF", "not-a-color", 16, canvas.StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := canvas.NewDocument(1080, 1080)
			doc.BackgroundColor = tt.background
			doc.Add(textObj("t", "hello", tt.fontSize, tt.fill))

			check := findCheck(t, Run(doc, feedFormat(t)), CheckColorContrast)
			if check.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s (%s)", check.Status, tt.wantStatus, check.Message)
			}
		})
	}
}

func TestTextLimitsCheck(t *testing.T) {
	doc := canvas.NewDocument(1080, 1080)
	doc.Add(textObj("t", strings.Repeat("a", 200), 20, "#000000"))

	// 200 characters exceed the 150-character square budget...
	check := findCheck(t, Run(doc, feedFormat(t)), CheckTextLimits)
	if check.Status != canvas.StatusWarning {
		t.Errorf("square format: status = %s, want warning", check.Status)
	}
	if check.Severity != severityTextLimit {
		t.Errorf("severity = %d, want %d", check.Severity, severityTextLimit)
	}

	// ...but fit the 250-character story budget.
	check = findCheck(t, Run(doc, storyFormat(t)), CheckTextLimits)
	if check.Status != canvas.StatusPass {
		t.Errorf("story format: status = %s, want pass", check.Status)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		severities []int
		want       int
	}{
		{"all clean", []int{0, 0, 0, 0, 0}, 100},
		{"single severity six", []int{6, 0, 0, 0, 0}, 88},
		{"all at max", []int{10, 10, 10, 10, 10}, 0},
		{"no checks", nil, 100},
		{"severity clamped to ceiling", []int{99}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := make([]canvas.ComplianceCheck, len(tt.severities))
			for i, s := range tt.severities {
				checks[i] = canvas.ComplianceCheck{Severity: s}
			}
			if got := Score(checks); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRunIsolatesPanics(t *testing.T) {
	entry := batteryEntry{id: "boom", label: "Boom", fn: func(*canvas.CanvasDocument, format.Descriptor) canvas.ComplianceCheck {
		panic("kaboom")
	}}

	check := runIsolated(entry, canvas.NewDocument(1080, 1080), feedFormat(t))
	if check.Status != canvas.StatusFail {
		t.Errorf("status = %s, want fail", check.Status)
	}
	if check.ID != "boom" {
		t.Errorf("id = %q, want boom", check.ID)
	}
	if !strings.Contains(check.Message, "kaboom") {
		t.Errorf("message = %q, want the panic value included", check.Message)
	}
}

func TestRunSurvivesNilObjectFields(t *testing.T) {
	// A document with odd data must still produce a full report.
	doc := canvas.NewDocument(1080, 1080)
	doc.BackgroundColor = "definitely not a color"
	doc.Add(&canvas.CanvasObject{ID: "weird", Kind: canvas.KindText, ScaleX: 1, ScaleY: 1})

	report := Run(doc, feedFormat(t))
	if len(report.Checks) != len(battery) {
		t.Fatalf("got %d checks, want %d", len(report.Checks), len(battery))
	}
	if report.Score < 0 || report.Score > 100 {
		t.Errorf("score = %d, want within [0, 100]", report.Score)
	}
}
