package compliance

import (
	"fmt"
	"math"
	"strings"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/canvas/classify"
	"github.com/brandforge/adcanvas/pkg/format"
)

// Check identifiers, in battery order.
const (
	CheckProhibitedCopy = "prohibited-copy"
	CheckSafeZones      = "safe-zones"
	CheckLogoPlacement  = "logo-placement"
	CheckColorContrast  = "color-contrast"
	CheckTextLimits     = "text-limits"
)

// Severities per check outcome.
const (
	severityProhibitedCopy = 6
	severityCrashedCheck   = 5
	severityLowContrast    = 5
	severitySafeZones      = 4
	severityLogoViolation  = 4
	severityTextLimit      = 3
	severityNoLogo         = 2
)

// maxSeverity is the ceiling a single check contributes to the score.
const maxSeverity = 10

// Report is the result of one compliance run: the ordered check list and
// the aggregate score.
type Report struct {
	Checks []canvas.ComplianceCheck `json:"checks" bson:"checks"`
	Score  int                      `json:"score" bson:"score"`
}

// checkFunc evaluates one rule against a document and format.
type checkFunc func(doc *canvas.CanvasDocument, fd format.Descriptor) canvas.ComplianceCheck

// batteryEntry names one check in the fixed battery.
type batteryEntry struct {
	id    string
	label string
	fn    checkFunc
}

// battery is the fixed, ordered set of checks.
var battery = []batteryEntry{
	{CheckProhibitedCopy, "Prohibited copy", checkProhibitedCopy},
	{CheckSafeZones, "Safe zones", checkSafeZones},
	{CheckLogoPlacement, "Logo placement", checkLogoPlacement},
	{CheckColorContrast, "Color contrast", checkColorContrast},
	{CheckTextLimits, "Text limits", checkTextLimits},
}

// Run evaluates the full battery against the document and computes the
// score. Checks are independent: a panic inside one check is caught and
// converted into a fail entry for that check alone, and every other check
// still runs.
func Run(doc *canvas.CanvasDocument, fd format.Descriptor) Report {
	checks := make([]canvas.ComplianceCheck, 0, len(battery))
	for _, entry := range battery {
		checks = append(checks, runIsolated(entry, doc, fd))
	}
	return Report{
		Checks: checks,
		Score:  Score(checks),
	}
}

// runIsolated executes one check, degrading a panic to a fail result.
func runIsolated(entry batteryEntry, doc *canvas.CanvasDocument, fd format.Descriptor) (result canvas.ComplianceCheck) {
	defer func() {
		if r := recover(); r != nil {
			result = canvas.ComplianceCheck{
				ID:       entry.id,
				Label:    entry.label,
				Status:   canvas.StatusFail,
				Message:  fmt.Sprintf("check could not be evaluated: %v", r),
				Severity: severityCrashedCheck,
			}
		}
	}()
	return entry.fn(doc, fd)
}

// Score reduces a check list to a 0-100 score. Every check can shed up to
// severity/maxSeverity of its equal share of the total.
func Score(checks []canvas.ComplianceCheck) int {
	if len(checks) == 0 {
		return 100
	}

	total := 0
	for _, c := range checks {
		s := c.Severity
		if s < 0 {
			s = 0
		}
		if s > maxSeverity {
			s = maxSeverity
		}
		total += s
	}

	score := int(math.Round(100 - float64(total)/float64(len(checks)*maxSeverity)*100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// =============================================================================
// Checks
// =============================================================================

// checkProhibitedCopy scans every text object against the prohibited-copy
// table and reports the first offending phrase.
func checkProhibitedCopy(doc *canvas.CanvasDocument, _ format.Descriptor) canvas.ComplianceCheck {
	check := canvas.ComplianceCheck{
		ID:     CheckProhibitedCopy,
		Label:  "Prohibited copy",
		Status: canvas.StatusPass,
	}

	for _, o := range doc.TextObjects() {
		if match, reason, found := findProhibited(o.Text); found {
			check.Status = canvas.StatusWarning
			check.Severity = severityProhibitedCopy
			check.Message = fmt.Sprintf("%q is risky ad copy: %s", match, reason)
			return check
		}
	}

	check.Message = "no prohibited phrases found"
	return check
}

// checkSafeZones counts text and image objects whose top edge starts inside
// a reserved platform band.
func checkSafeZones(doc *canvas.CanvasDocument, fd format.Descriptor) canvas.ComplianceCheck {
	check := canvas.ComplianceCheck{
		ID:     CheckSafeZones,
		Label:  "Safe zones",
		Status: canvas.StatusPass,
	}

	zone := fd.SafeZone
	if zone.Top == 0 && zone.Bottom == 0 {
		check.Message = "format reserves no safe zones"
		return check
	}

	count := 0
	for _, o := range doc.Objects {
		if o.Kind != canvas.KindText && o.Kind != canvas.KindImage {
			continue
		}
		top := o.Bounds().Top
		if zone.Top > 0 && top < zone.Top {
			count++
			continue
		}
		if zone.Bottom > 0 && top > doc.Height-zone.Bottom {
			count++
		}
	}

	if count > 0 {
		check.Status = canvas.StatusWarning
		check.Severity = severitySafeZones
		check.Message = fmt.Sprintf("%d object(s) start inside a reserved platform band", count)
		return check
	}

	check.Message = "no content inside reserved bands"
	return check
}

// checkLogoPlacement verifies logo presence, size ratio, and anchor zone
// against the format's logo rules.
func checkLogoPlacement(doc *canvas.CanvasDocument, fd format.Descriptor) canvas.ComplianceCheck {
	check := canvas.ComplianceCheck{
		ID:     CheckLogoPlacement,
		Label:  "Logo placement",
		Status: canvas.StatusPass,
	}

	logo, logoAnchor := findLogo(doc)
	if logo == nil {
		check.Status = canvas.StatusWarning
		check.Severity = severityNoLogo
		check.Message = "no logo detected on the canvas"
		return check
	}

	rules := fd.LogoRules
	canvasArea := doc.Width * doc.Height
	if canvasArea > 0 && (rules.MinSize > 0 || rules.MaxSize > 0) {
		ratio := logo.Bounds().Area() / canvasArea
		if rules.MaxSize > 0 && ratio > rules.MaxSize {
			check.Status = canvas.StatusWarning
			check.Severity = severityLogoViolation
			check.Message = fmt.Sprintf("logo occupies %.0f%% of the canvas (maximum %.0f%%)", ratio*100, rules.MaxSize*100)
			return check
		}
		if rules.MinSize > 0 && ratio < rules.MinSize {
			check.Status = canvas.StatusWarning
			check.Severity = severityLogoViolation
			check.Message = fmt.Sprintf("logo occupies %.1f%% of the canvas (minimum %.1f%%)", ratio*100, rules.MinSize*100)
			return check
		}
	}

	if !rules.Allows(logoAnchor) {
		zones := make([]string, len(rules.Zones))
		for i, z := range rules.Zones {
			zones[i] = string(z)
		}
		check.Status = canvas.StatusWarning
		check.Severity = severityLogoViolation
		check.Message = fmt.Sprintf("logo sits at %s; this format requires %s", logoAnchor, strings.Join(zones, ", "))
		return check
	}

	check.Message = "logo placement looks good"
	return check
}

// findLogo locates the brand mark on the canvas. Objects classified as
// logos win; failing that, a corner-anchored image is treated as the logo
// candidate so that oversized marks (too big for the logo role's size
// thresholds) are still measured against the format's logo rules.
func findLogo(doc *canvas.CanvasDocument) (*canvas.CanvasObject, canvas.Anchor) {
	var fallback *canvas.CanvasObject
	var fallbackAnchor canvas.Anchor

	for _, o := range doc.Objects {
		c := classify.Object(o, doc.Width, doc.Height)
		if c.Role == canvas.RoleLogo {
			return o, c.Anchor
		}
		if fallback == nil && o.Kind == canvas.KindImage && c.Role == canvas.RoleShape && isCorner(c.Anchor) {
			fallback = o
			fallbackAnchor = c.Anchor
		}
	}
	return fallback, fallbackAnchor
}

func isCorner(a canvas.Anchor) bool {
	switch a {
	case canvas.AnchorTopLeft, canvas.AnchorTopRight, canvas.AnchorBottomLeft, canvas.AnchorBottomRight:
		return true
	}
	return false
}

// checkColorContrast computes the WCAG contrast ratio of every text object
// against the document background.
func checkColorContrast(doc *canvas.CanvasDocument, _ format.Descriptor) canvas.ComplianceCheck {
	check := canvas.ComplianceCheck{
		ID:     CheckColorContrast,
		Label:  "Color contrast",
		Status: canvas.StatusPass,
	}

	background := ParseColor(doc.BackgroundColor)
	low := 0
	for _, o := range doc.TextObjects() {
		ratio := ContrastRatio(ParseColor(o.Fill), background)
		if ratio < requiredRatio(o.FontSize) {
			low++
		}
	}

	if low > 0 {
		check.Status = canvas.StatusWarning
		check.Severity = severityLowContrast
		check.Message = fmt.Sprintf("%d text object(s) fall below the required contrast ratio", low)
		return check
	}

	check.Message = "all text meets the contrast requirement"
	return check
}

// checkTextLimits compares the total character count of all text objects
// against the format's budget.
func checkTextLimits(doc *canvas.CanvasDocument, fd format.Descriptor) canvas.ComplianceCheck {
	check := canvas.ComplianceCheck{
		ID:     CheckTextLimits,
		Label:  "Text limits",
		Status: canvas.StatusPass,
	}

	total := 0
	for _, o := range doc.TextObjects() {
		total += len([]rune(o.Text))
	}

	limit := fd.EffectiveTextLimit()
	if total > limit {
		check.Status = canvas.StatusWarning
		check.Severity = severityTextLimit
		check.Message = fmt.Sprintf("%d characters of text exceed the %d character budget for %s", total, limit, fd.Name)
		return check
	}

	check.Message = fmt.Sprintf("%d of %d characters used", total, limit)
	return check
}
