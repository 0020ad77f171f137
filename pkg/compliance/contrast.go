package compliance

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// WCAG contrast thresholds. Large text (>= 18px) may use the relaxed ratio.
const (
	largeTextMinRatio  = 3.0
	normalTextMinRatio = 4.5
	largeTextFontSize  = 18.0
)

// RGB is a color with channels normalized to [0, 1].
type RGB struct {
	R, G, B float64
}

var rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)

// ParseColor parses a CSS-style color string. Supported forms are #rgb,
// #rrggbb, rgb(r,g,b), and rgba(r,g,b,a); the alpha component is ignored.
// Unparseable colors default to black, mirroring how a renderer would paint
// a missing fill.
func ParseColor(s string) RGB {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3:
			r, okR := hexNibble(hex[0])
			g, okG := hexNibble(hex[1])
			b, okB := hexNibble(hex[2])
			if okR && okG && okB {
				// #abc expands to #aabbcc
				return RGB{R: float64(r*17) / 255, G: float64(g*17) / 255, B: float64(b*17) / 255}
			}
		case 6:
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return RGB{
					R: float64(v>>16&0xff) / 255,
					G: float64(v>>8&0xff) / 255,
					B: float64(v&0xff) / 255,
				}
			}
		}
		return RGB{}
	}

	if m := rgbFuncRe.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r <= 255 && g <= 255 && b <= 255 {
			return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		}
	}

	return RGB{}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

// RelativeLuminance computes the WCAG relative luminance of a color:
// L = 0.2126*R + 0.7152*G + 0.0722*B over gamma-expanded channels.
func RelativeLuminance(c RGB) float64 {
	return 0.2126*gammaExpand(c.R) + 0.7152*gammaExpand(c.G) + 0.0722*gammaExpand(c.B)
}

// gammaExpand linearizes one sRGB channel value in [0, 1].
func gammaExpand(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two colors:
// (Lmax + 0.05) / (Lmin + 0.05), in the range [1, 21].
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// requiredRatio returns the minimum contrast ratio for a given font size.
func requiredRatio(fontSize float64) float64 {
	if fontSize >= largeTextFontSize {
		return largeTextMinRatio
	}
	return normalTextMinRatio
}
