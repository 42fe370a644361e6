package model

// OutlineItem is one entry of the document outline (table of contents)
type OutlineItem struct {
	// Level is the nesting depth (1 = top level)
	Level int

	// Title is the outline text
	Title string

	// Page is the 1-based page number the entry points to
	Page int
}

// Page holds the primitives of one document page as delivered by the
// extractor, plus the text blocks derived from them.
//
// Invariant: spans whose center lies inside a TableRegion or ImageRef
// bounding box are excluded from TextBlocks, so no content is counted twice.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the page dimensions in points
	Width, Height float64

	// Rotation is the page rotation in degrees (0, 90, 180, 270)
	Rotation int

	// Corners holds the four corner pixel colors in the order
	// top-left, top-right, bottom-left, bottom-right. Empty when the
	// extractor could not sample them.
	Corners []Color

	// Spans are the raw glyph runs in document stream order
	Spans []Span

	// Drawings are the vector paths on the page
	Drawings []Drawing

	// Images are the raster images on the page
	Images []ImageRef

	// Tables are the externally detected table regions
	Tables []TableRegion

	// Blocks are the text blocks built by the text rectangle builder.
	// Derived state; nil until the builder has run.
	Blocks []TextBlock
}

// Rect returns the full page rectangle
func (p *Page) Rect() Rect {
	return Rect{X0: 0, Y0: 0, X1: p.Width, Y1: p.Height}
}

// VisibleSpans returns the spans not marked invisible by the filter
func (p *Page) VisibleSpans() []Span {
	result := make([]Span, 0, len(p.Spans))
	for _, s := range p.Spans {
		if !s.Invisible {
			result = append(result, s)
		}
	}
	return result
}

// VisibleDrawings returns the drawings not marked invisible by the filter
func (p *Page) VisibleDrawings() []Drawing {
	result := make([]Drawing, 0, len(p.Drawings))
	for _, d := range p.Drawings {
		if !d.Invisible {
			result = append(result, d)
		}
	}
	return result
}
