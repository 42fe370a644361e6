package model

import "strings"

// Span is the smallest text run sharing one font, style and color.
// Spans are produced by the extractor and are immutable; the one exception
// is the Invisible flag which the visibility filter may set.
type Span struct {
	// Text is the glyph run content
	Text string

	// BBox is the bounding box of the run
	BBox Rect

	// Origin is the start of the text baseline
	Origin Point

	// Font is the font name as reported by the document
	Font string

	// Size is the font size in points
	Size float64

	// Style flags from font metadata
	Bold        bool
	Italic      bool
	Mono        bool
	Superscript bool

	// Color is the fill color of the glyphs
	Color Color

	// Alpha is the opacity of the run (0 = fully transparent, 255 = opaque)
	Alpha uint8

	// Type3 marks glyph-program fonts whose alpha metadata is unreliable.
	// Type 3 text is never filtered on transparency.
	Type3 bool

	// Raw is the extractor's rendition of Text with raw glyph identifiers
	// in place of the U+FFFD replacement marker. Empty when every glyph
	// had a Unicode mapping. Used only in glyph fallback mode.
	Raw string

	// Invisible is set by the visibility filter; invisible spans are
	// excluded from all later stages.
	Invisible bool
}

// IsWhitespace reports whether the span contains no visible characters
func (s *Span) IsWhitespace() bool {
	return strings.TrimSpace(s.Text) == ""
}

// Line is an ordered sequence of spans sharing a baseline
type Line struct {
	// Spans are ordered left to right
	Spans []Span

	// BBox is the merged bounding box of all spans
	BBox Rect
}

// Text assembles the line content, joining spans with a space where the
// horizontal gap between them is significant.
func (l *Line) Text() string {
	var sb strings.Builder
	for i, s := range l.Spans {
		if i > 0 {
			prev := l.Spans[i-1]
			gap := s.BBox.X0 - prev.BBox.X1
			if gap > s.Size*0.1 && !strings.HasSuffix(prev.Text, " ") &&
				!strings.HasPrefix(s.Text, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// DominantSpan returns the span carrying the most characters. Header lines
// take their entire rendered style from this span.
func (l *Line) DominantSpan() *Span {
	if len(l.Spans) == 0 {
		return nil
	}
	best := 0
	bestLen := -1
	for i := range l.Spans {
		n := len(strings.TrimSpace(l.Spans[i].Text))
		if n > bestLen {
			best = i
			bestLen = n
		}
	}
	return &l.Spans[best]
}

// TextBlock is an ordered group of lines forming one reading unit, such as a
// paragraph, heading or list item. All member lines laterally overlap within
// tolerance.
type TextBlock struct {
	// Lines are ordered top to bottom
	Lines []Line

	// BBox is the merged bounding box of all lines
	BBox Rect
}

// Drawing is a vector path reduced to its bounding box, paint properties and
// stroke segments.
type Drawing struct {
	// BBox is the bounding box of the full path
	BBox Rect

	// Fill is the fill color; nil if the path is not filled
	Fill *Color

	// Stroke is the stroke color; nil if the path is not stroked
	Stroke *Color

	// FillOnly marks paths that are filled but never stroked
	FillOnly bool

	// StrokeWidth is the line width used for stroked paths
	StrokeWidth float64

	// Segments are the individual stroke segments of the path
	Segments []Segment

	// Invisible is set by the visibility filter
	Invisible bool
}

// Segment is a single straight stroke of a vector path
type Segment struct {
	P0, P1 Point
}

// BBox returns the bounding box of the segment
func (s Segment) BBox() Rect {
	r := Rect{X0: s.P0.X, Y0: s.P0.Y, X1: s.P1.X, Y1: s.P1.Y}
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// ImageRef is a raster image placed on the page
type ImageRef struct {
	// BBox is the placement rectangle on the page
	BBox Rect

	// Data holds the encoded image bytes
	Data []byte

	// Width and Height are the pixel dimensions of the source image
	Width, Height int

	// Format is the source encoding ("png", "jpeg", ...)
	Format string
}

// TableRegion is a detected table with its grid already rendered to markdown
// by the external table detector.
type TableRegion struct {
	// BBox covers the table including any external header row
	BBox Rect

	// Markdown is the pre-rendered pipe grid, emitted verbatim
	Markdown string

	// Rows and Cols are the grid dimensions
	Rows, Cols int
}

// EntryKind identifies the variant held by a ReadingEntry
type EntryKind int

const (
	EntryText EntryKind = iota
	EntryTable
	EntryImage
)

// String returns a string representation of the entry kind
func (k EntryKind) String() string {
	switch k {
	case EntryTable:
		return "table"
	case EntryImage:
		return "image"
	default:
		return "text"
	}
}

// ReadingEntry is a tagged variant over the three kinds of page regions.
// Exactly one of Block, Table and Image is non-nil, selected by Kind.
// The synthesizer dispatches over Kind with one exhaustive switch.
type ReadingEntry struct {
	Kind  EntryKind
	Block *TextBlock
	Table *TableRegion
	Image *ImageRef
}

// BBox returns the bounding box of whichever region the entry holds
func (e ReadingEntry) BBox() Rect {
	switch e.Kind {
	case EntryTable:
		return e.Table.BBox
	case EntryImage:
		return e.Image.BBox
	default:
		return e.Block.BBox
	}
}

// TextEntry wraps a text block as a reading entry
func TextEntry(b *TextBlock) ReadingEntry {
	return ReadingEntry{Kind: EntryText, Block: b}
}

// TableEntry wraps a table region as a reading entry
func TableEntry(t *TableRegion) ReadingEntry {
	return ReadingEntry{Kind: EntryTable, Table: t}
}

// ImageEntry wraps an image as a reading entry
func ImageEntry(i *ImageRef) ReadingEntry {
	return ReadingEntry{Kind: EntryImage, Image: i}
}
