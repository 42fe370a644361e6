package model

import "testing"

// makeSpan builds a span for tests, with the baseline at the box bottom
func makeSpan(text string, x0, y0, x1, y1, size float64) Span {
	return Span{
		Text:   text,
		BBox:   NewRect(x0, y0, x1, y1),
		Origin: Point{X: x0, Y: y1},
		Size:   size,
		Alpha:  255,
	}
}

func TestLineText(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		want  string
	}{
		{
			name:  "single span",
			spans: []Span{makeSpan("Hello world.", 0, 0, 60, 12, 12)},
			want:  "Hello world.",
		},
		{
			name: "adjacent spans join without space",
			spans: []Span{
				makeSpan("Hel", 0, 0, 18, 12, 12),
				makeSpan("lo", 18.5, 0, 30, 12, 12),
			},
			want: "Hello",
		},
		{
			name: "gapped spans join with space",
			spans: []Span{
				makeSpan("Hello", 0, 0, 30, 12, 12),
				makeSpan("world", 36, 0, 66, 12, 12),
			},
			want: "Hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Line{Spans: tt.spans}
			if got := line.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineDominantSpan(t *testing.T) {
	line := Line{Spans: []Span{
		makeSpan("1", 0, 0, 5, 10, 8),
		makeSpan("Chapter One", 6, 0, 80, 12, 16),
	}}

	dom := line.DominantSpan()
	if dom == nil || dom.Text != "Chapter One" {
		t.Errorf("DominantSpan() = %v, want the longer span", dom)
	}

	empty := Line{}
	if empty.DominantSpan() != nil {
		t.Error("DominantSpan() on empty line should be nil")
	}
}

func TestSpanIsWhitespace(t *testing.T) {
	ws := makeSpan("  \t ", 0, 0, 10, 12, 12)
	if !ws.IsWhitespace() {
		t.Error("whitespace span not detected")
	}
	text := makeSpan(" a ", 0, 0, 10, 12, 12)
	if text.IsWhitespace() {
		t.Error("non-whitespace span misdetected")
	}
}

func TestReadingEntryBBox(t *testing.T) {
	block := &TextBlock{BBox: NewRect(0, 0, 100, 50)}
	table := &TableRegion{BBox: NewRect(0, 60, 100, 120)}
	image := &ImageRef{BBox: NewRect(0, 130, 100, 200)}

	tests := []struct {
		name  string
		entry ReadingEntry
		want  Rect
		kind  string
	}{
		{"text", TextEntry(block), block.BBox, "text"},
		{"table", TableEntry(table), table.BBox, "table"},
		{"image", ImageEntry(image), image.BBox, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.BBox(); got != tt.want {
				t.Errorf("BBox() = %v, want %v", got, tt.want)
			}
			if got := tt.entry.Kind.String(); got != tt.kind {
				t.Errorf("Kind.String() = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestSegmentBBox(t *testing.T) {
	seg := Segment{P0: Point{X: 10, Y: 30}, P1: Point{X: 5, Y: 20}}
	want := NewRect(5, 20, 10, 30)
	if got := seg.BBox(); got != want {
		t.Errorf("BBox() = %v, want %v", got, want)
	}
}
