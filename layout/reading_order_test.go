package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/pagemark/model"
)

// makeBlock builds a one-line text block whose text names it
func makeBlock(text string, x0, y0, x1, y1 float64) model.TextBlock {
	line := makeTextLine(text, x0, y0, x1, y1)
	return model.TextBlock{Lines: []model.Line{line}, BBox: line.BBox}
}

// orderOf renders the resolved sequence as a compact trace for comparison
func orderOf(entries []model.ReadingEntry) string {
	var parts []string
	for _, e := range entries {
		switch e.Kind {
		case model.EntryText:
			parts = append(parts, e.Block.Lines[0].Text())
		case model.EntryTable:
			parts = append(parts, "[table]")
		case model.EntryImage:
			parts = append(parts, "[image]")
		}
	}
	return strings.Join(parts, " | ")
}

func TestResolveVerticalOrder(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock("below", 50, 300, 400, 320),
		makeBlock("above", 50, 100, 400, 120),
	}

	entries := NewResolver().Resolve(blocks, nil, nil)

	want := "above | below"
	if got := orderOf(entries); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestResolveTwoColumns(t *testing.T) {
	// Two columns with no spanning content and staggered paragraph breaks,
	// so no horizontal cut crosses the whole page: the left column reads
	// fully before the right column.
	blocks := []model.TextBlock{
		makeBlock("right top", 320, 100, 580, 200),
		makeBlock("left top", 30, 100, 290, 220),
		makeBlock("right bottom", 320, 210, 580, 400),
		makeBlock("left bottom", 30, 230, 290, 400),
	}

	entries := NewResolver().Resolve(blocks, nil, nil)

	want := "left top | left bottom | right top | right bottom"
	if got := orderOf(entries); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestResolveSpanningHeaderBeforeColumns(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock("left column", 30, 150, 290, 400),
		makeBlock("spanning header", 30, 50, 580, 90),
		makeBlock("right column", 320, 150, 580, 400),
	}

	entries := NewResolver().Resolve(blocks, nil, nil)

	want := "spanning header | left column | right column"
	if got := orderOf(entries); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestResolveTableAndImageAtomic(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock("before", 50, 50, 550, 80),
		makeBlock("after", 50, 500, 550, 530),
	}
	tables := []model.TableRegion{
		{BBox: model.NewRect(50, 100, 550, 300), Markdown: "|a|\n", Rows: 1, Cols: 1},
	}
	images := []model.ImageRef{
		{BBox: model.NewRect(50, 320, 550, 480)},
	}

	entries := NewResolver().Resolve(blocks, tables, images)

	want := "before | [table] | [image] | after"
	if got := orderOf(entries); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestResolveOverlappingTieBreak(t *testing.T) {
	// Interlocking regions that no cut can separate fall back to the
	// top-edge, then left-edge ordering.
	blocks := []model.TextBlock{
		makeBlock("floated right", 300, 100, 580, 400),
		makeBlock("wrapping text", 30, 100, 320, 400),
	}

	entries := NewResolver().Resolve(blocks, nil, nil)

	want := "wrapping text | floated right"
	if got := orderOf(entries); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestResolveSkipsDegenerate(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock("real", 50, 100, 400, 120),
		{BBox: model.NewRect(10, 10, 5, 5)},
	}

	entries := NewResolver().Resolve(blocks, nil, nil)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
}
