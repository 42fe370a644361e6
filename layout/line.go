package layout

import (
	"sort"

	"github.com/tsawler/pagemark/model"
)

// LineConfig holds configuration for span-to-line clustering
type LineConfig struct {
	// BaselineTolerance is the maximum baseline distance for two spans to
	// share a line, as a fraction of the span font size. Default: 0.3
	BaselineTolerance float64

	// MergeParticles re-attaches short stray spans that narrowly missed
	// clustering because of font or clip mismatches. Default: true
	MergeParticles bool

	// ParticleMaxWidth is the maximum width of a particle span, as a
	// fraction of its font size. Default: 2.5
	ParticleMaxWidth float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		BaselineTolerance: 0.3,
		MergeParticles:    true,
		ParticleMaxWidth:  2.5,
	}
}

// LineBuilder clusters spans into baseline-aligned lines
type LineBuilder struct {
	config LineConfig
}

// NewLineBuilder creates a line builder with default configuration
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		config: DefaultLineConfig(),
	}
}

// NewLineBuilderWithConfig creates a line builder with custom configuration
func NewLineBuilderWithConfig(config LineConfig) *LineBuilder {
	return &LineBuilder{
		config: config,
	}
}

// Build clusters the given spans into lines, top to bottom.
//
// Spans that are invisible, whitespace-only or degenerate are dropped.
// Spans whose center lies inside one of the exclude rectangles (tables,
// images) are dropped so their text is not counted twice. When clip is
// non-nil, content outside the clip rectangle is dropped entirely.
func (b *LineBuilder) Build(spans []model.Span, exclude []model.Rect, clip *model.Rect) []model.Line {
	var usable []model.Span
	for _, s := range spans {
		if s.Invisible || s.IsWhitespace() || s.BBox.IsDegenerate() || s.BBox.IsEmpty() {
			continue
		}
		if clip != nil && !clip.Contains(s.BBox.Center()) {
			continue
		}
		if insideAnyRect(s.BBox, exclude) {
			continue
		}
		usable = append(usable, s)
	}
	if len(usable) == 0 {
		return nil
	}

	// Sort by baseline, then left edge. Stable so stream order survives
	// for spans at identical positions.
	sort.SliceStable(usable, func(i, j int) bool {
		if usable[i].Origin.Y != usable[j].Origin.Y {
			return usable[i].Origin.Y < usable[j].Origin.Y
		}
		return usable[i].BBox.X0 < usable[j].BBox.X0
	})

	var groups [][]model.Span
	var current []model.Span

	for _, s := range usable {
		if len(current) == 0 {
			current = append(current, s)
			continue
		}
		if b.sameBaseline(current, s) {
			current = append(current, s)
		} else {
			groups = append(groups, current)
			current = []model.Span{s}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	if b.config.MergeParticles {
		groups = b.mergeParticles(groups)
	}

	lines := make([]model.Line, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, makeLine(g))
	}
	return lines
}

// sameBaseline reports whether a span belongs to the line under construction
func (b *LineBuilder) sameBaseline(line []model.Span, s model.Span) bool {
	avg := 0.0
	for _, ls := range line {
		avg += ls.Origin.Y
	}
	avg /= float64(len(line))

	size := s.Size
	if size <= 0 {
		size = s.BBox.Height()
	}
	tolerance := size * b.config.BaselineTolerance
	return absFloat64(s.Origin.Y-avg) <= tolerance
}

// mergeParticles re-merges stray one-span groups into a vertically
// overlapping neighbor line. Superscript footnote markers, glyphs from a
// substituted font or clipped fragments often report a slightly shifted
// baseline and would otherwise fragment a single logical line.
func (b *LineBuilder) mergeParticles(groups [][]model.Span) [][]model.Span {
	for i := 0; i < len(groups); i++ {
		if len(groups[i]) != 1 {
			continue
		}
		p := groups[i][0]
		size := p.Size
		if size <= 0 {
			size = p.BBox.Height()
		}
		if p.BBox.Width() > size*b.config.ParticleMaxWidth {
			continue
		}

		target := -1
		if i > 0 && overlapsVertically(p.BBox, groupBBox(groups[i-1])) {
			target = i - 1
		} else if i < len(groups)-1 && overlapsVertically(p.BBox, groupBBox(groups[i+1])) {
			target = i + 1
		}
		if target < 0 {
			continue
		}

		groups[target] = append(groups[target], p)
		groups = append(groups[:i], groups[i+1:]...)
		if target > i {
			target--
		}
		i--
	}
	return groups
}

// makeLine builds a Line from a span group, ordering spans left to right
func makeLine(spans []model.Span) model.Line {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].BBox.X0 < spans[j].BBox.X0
	})
	bbox := spans[0].BBox
	for _, s := range spans[1:] {
		bbox = bbox.Union(s.BBox)
	}
	return model.Line{Spans: spans, BBox: bbox}
}

// groupBBox returns the merged bounding box of a span group
func groupBBox(spans []model.Span) model.Rect {
	bbox := spans[0].BBox
	for _, s := range spans[1:] {
		bbox = bbox.Union(s.BBox)
	}
	return bbox
}

// overlapsVertically reports whether the Y range of a overlaps at least half
// of the smaller of the two heights.
func overlapsVertically(a, b model.Rect) bool {
	overlap := a.VerticalOverlap(b)
	minHeight := a.Height()
	if b.Height() < minHeight {
		minHeight = b.Height()
	}
	return minHeight > 0 && overlap >= minHeight*0.5
}

// insideAnyRect reports whether the center of r lies inside any of the rects
func insideAnyRect(r model.Rect, rects []model.Rect) bool {
	for _, candidate := range rects {
		if candidate.ContainsMiddle(r) {
			return true
		}
	}
	return false
}

// absFloat64 returns absolute value of float64
func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
