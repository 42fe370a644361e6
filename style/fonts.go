package style

import (
	"regexp"
	"strings"

	"github.com/tsawler/pagemark/model"
)

// monoFamilies are the fixed monospace family names recognized in addition
// to the font's own monospace metadata flag.
var monoFamilies = []string{
	"courier",
	"consolas",
	"menlo",
	"monaco",
	"inconsolata",
	"liberation mono",
	"dejavu sans mono",
	"source code",
	"fira code",
	"roboto mono",
	"andale mono",
	"lucida console",
}

// boldMarkers are font name fragments indicating a heavy weight. Fonts
// carrying them report as bold even when the metadata flag is unset
// ("fake bold": a widened regular weight under a display name).
var boldMarkers = []string{
	"bold",
	"black",
	"heavy",
	"semibold",
	"demibold",
	"extrabold",
	"ultra",
}

// IsBold reports whether a span renders bold. Both genuine bold fonts and
// fake-bold fonts qualify.
func IsBold(s *model.Span) bool {
	if s.Bold {
		return true
	}
	name := strings.ToLower(s.Font)
	for _, marker := range boldMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// IsItalic reports whether a span renders italic
func IsItalic(s *model.Span) bool {
	if s.Italic {
		return true
	}
	name := strings.ToLower(s.Font)
	return strings.Contains(name, "italic") || strings.Contains(name, "oblique")
}

// IsMono reports whether a span uses a monospaced font
func IsMono(s *model.Span) bool {
	if s.Mono {
		return true
	}
	name := strings.ToLower(s.Font)
	for _, family := range monoFamilies {
		if strings.Contains(name, family) {
			return true
		}
	}
	return false
}

// IsStruckOut reports whether a nearly horizontal stroke crosses the
// vertical center of the line, covering at least half of its width.
func IsStruckOut(line *model.Line, drawings []model.Drawing) bool {
	if line.BBox.IsEmpty() {
		return false
	}
	center := line.BBox.Center().Y
	band := line.BBox.Height() * 0.25

	for _, d := range drawings {
		if d.Invisible || d.Stroke == nil {
			continue
		}
		for _, seg := range d.Segments {
			if absFloat64(seg.P1.Y-seg.P0.Y) > 1.0 {
				continue // not horizontal
			}
			y := (seg.P0.Y + seg.P1.Y) / 2
			if absFloat64(y-center) > band {
				continue
			}
			overlap := seg.BBox().HorizontalOverlap(line.BBox)
			if overlap >= line.BBox.Width()*0.5 {
				return true
			}
		}
	}
	return false
}

// ListKind identifies the list marker type of a line
type ListKind int

const (
	ListNone ListKind = iota
	ListBullet
	ListOrdered
)

// bulletPrefixes is the catalogue of bullet glyphs rewritten to "- ".
// The private-use runes are the Wingdings squares and bullets commonly
// embedded by office suites.
var bulletPrefixes = []string{
	"- ",
	"* ",
	"\u2022", // bullet
	"\u25cf", // black circle
	"\u00b7", // middle dot
	"\u2023", // triangular bullet
	"\u25aa", // small black square
	"\u25e6", // white bullet
	"\uf0a7", // Wingdings square
	"\uf0b7", // Wingdings bullet
}

// orderedMarker matches decimal list markers like "1." or "12)"
var orderedMarker = regexp.MustCompile(`^(\d{1,3})[.)]\s+`)

// SplitListMarker splits the leading list marker off a text, returning the
// marker kind, the normalized markdown marker ("- " or "N. ") and the
// remaining item text.
func SplitListMarker(text string) (ListKind, string, string) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(text, prefix) {
			rest := strings.TrimLeft(strings.TrimPrefix(text, prefix), " \t")
			return ListBullet, "- ", rest
		}
	}
	if m := orderedMarker.FindStringSubmatch(text); m != nil {
		rest := strings.TrimLeft(text[len(m[0]):], " \t")
		return ListOrdered, m[1] + ". ", rest
	}
	return ListNone, "", text
}

// DetectListMarker classifies the leading list marker of a line's text and
// returns the remaining item text, with ordered markers normalized.
func DetectListMarker(text string) (ListKind, string) {
	kind, marker, rest := SplitListMarker(text)
	switch kind {
	case ListBullet:
		return ListBullet, rest
	case ListOrdered:
		return ListOrdered, marker + rest
	default:
		return ListNone, text
	}
}

// absFloat64 returns absolute value of float64
func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
