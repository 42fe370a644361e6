package graphics

import (
	"github.com/tsawler/pagemark/model"
)

// FilterConfig holds configuration for the visibility filter
type FilterConfig struct {
	// DetectBackground enables 4-corner background color detection.
	// When disabled, no drawing is filtered on background color.
	// Default: true
	DetectBackground bool
}

// DefaultFilterConfig returns sensible default configuration
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		DetectBackground: true,
	}
}

// VisibilityFilter strips invisible content from a page
type VisibilityFilter struct {
	config FilterConfig
}

// NewVisibilityFilter creates a visibility filter with default configuration
func NewVisibilityFilter() *VisibilityFilter {
	return &VisibilityFilter{
		config: DefaultFilterConfig(),
	}
}

// NewVisibilityFilterWithConfig creates a visibility filter with custom configuration
func NewVisibilityFilterWithConfig(config FilterConfig) *VisibilityFilter {
	return &VisibilityFilter{
		config: config,
	}
}

// DetectBackground determines the page background color from the four corner
// pixels. Only an exact match of all four corners is accepted; anything else
// reports no background. The second return value is false when no background
// could be determined. Never fails.
func (f *VisibilityFilter) DetectBackground(page *model.Page) (model.Color, bool) {
	if !f.config.DetectBackground {
		return model.Color{}, false
	}
	if len(page.Corners) != 4 {
		return model.Color{}, false
	}
	first := page.Corners[0]
	for _, c := range page.Corners[1:] {
		if !c.Equal(first) {
			return model.Color{}, false
		}
	}
	return first, true
}

// Apply marks invisible content on the page and returns the detected
// background color, if any.
//
// A fill-only drawing painted in the background color is invisible. A span
// with alpha 0 is invisible, unless it uses a Type 3 font: the alpha metadata
// of glyph-program text is unreliable, so it is always kept.
func (f *VisibilityFilter) Apply(page *model.Page) (model.Color, bool) {
	background, ok := f.DetectBackground(page)

	if ok {
		for i := range page.Drawings {
			d := &page.Drawings[i]
			if d.FillOnly && d.Fill != nil && d.Fill.Equal(background) {
				d.Invisible = true
			}
		}
	}

	for i := range page.Spans {
		s := &page.Spans[i]
		if s.Type3 {
			continue
		}
		if s.Alpha == 0 {
			s.Invisible = true
		}
	}

	return background, ok
}
