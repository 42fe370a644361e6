package chunks

import (
	"strings"
	"testing"

	"github.com/tsawler/pagemark/model"
)

func samplePage() (*model.Page, []model.ReadingEntry) {
	span := model.Span{
		Text:  "Hello brave new world",
		BBox:  model.NewRect(50, 100, 250, 112),
		Size:  12,
		Alpha: 255,
	}
	line := model.Line{Spans: []model.Span{span}, BBox: span.BBox}
	block := &model.TextBlock{Lines: []model.Line{line}, BBox: line.BBox}

	table := &model.TableRegion{
		BBox: model.NewRect(50, 150, 550, 300),
		Rows: 2,
		Cols: 3,
	}
	image := &model.ImageRef{
		BBox:   model.NewRect(50, 320, 550, 480),
		Width:  640,
		Height: 480,
		Format: "png",
	}

	page := &model.Page{Number: 2, Width: 612, Height: 792}
	entries := []model.ReadingEntry{
		model.TextEntry(block),
		model.TableEntry(table),
		model.ImageEntry(image),
	}
	return page, entries
}

func TestBuildChunk(t *testing.T) {
	page, entries := samplePage()
	outline := []model.OutlineItem{
		{Level: 1, Title: "Chapter Two", Page: 2},
		{Level: 1, Title: "Elsewhere", Page: 5},
	}

	chunk := BuildChunk(page, 10, "Hello brave new world\n\n", entries, outline, false)

	if chunk.Metadata.Page != 2 || chunk.Metadata.PageCount != 10 {
		t.Errorf("metadata = %+v, want page 2 of 10", chunk.Metadata)
	}
	if chunk.Metadata.Width != 612 || chunk.Metadata.Height != 792 {
		t.Errorf("metadata dims = %+v, want 612x792", chunk.Metadata)
	}
	if len(chunk.Blocks) != 1 {
		t.Errorf("got %d blocks, want 1", len(chunk.Blocks))
	}
	if len(chunk.Tables) != 1 || chunk.Tables[0].Rows != 2 || chunk.Tables[0].Cols != 3 {
		t.Errorf("tables = %+v, want one 2x3 table", chunk.Tables)
	}
	if len(chunk.Images) != 1 || chunk.Images[0].Width != 640 {
		t.Errorf("images = %+v, want one 640-wide image", chunk.Images)
	}
	if len(chunk.Toc) != 1 || chunk.Toc[0].Title != "Chapter Two" {
		t.Errorf("toc = %+v, want only the page 2 entry", chunk.Toc)
	}
	if chunk.Words != nil {
		t.Error("words should be absent when extraction is off")
	}
}

func TestBuildChunkWords(t *testing.T) {
	page, entries := samplePage()

	chunk := BuildChunk(page, 10, "", entries, nil, true)

	want := []string{"Hello", "brave", "new", "world"}
	if len(chunk.Words) != len(want) {
		t.Fatalf("got %d words, want %d", len(chunk.Words), len(want))
	}

	prevX := 0.0
	for i, word := range chunk.Words {
		if word.Text != want[i] {
			t.Errorf("word %d = %q, want %q", i, word.Text, want[i])
		}
		if word.BBox.X0 < prevX {
			t.Errorf("word %d box starts at %v, before previous word", i, word.BBox.X0)
		}
		prevX = word.BBox.X1
		if word.Block != 0 || word.Line != 0 {
			t.Errorf("word %d indexes = (%d, %d), want (0, 0)", i, word.Block, word.Line)
		}
	}
}

func TestExportJSONL(t *testing.T) {
	page, entries := samplePage()
	chunks := []PageChunk{
		BuildChunk(page, 2, "first\n", entries, nil, false),
		BuildChunk(page, 2, "second\n", nil, nil, false),
	}

	out, err := NewExporter().ExportToString(chunks)
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d JSONL lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"first\n"`) {
		t.Errorf("first line = %q, want it to carry the page text", lines[0])
	}
}

func TestExportJSONDropsWords(t *testing.T) {
	page, entries := samplePage()
	chunk := BuildChunk(page, 1, "text", entries, nil, true)

	config := DefaultExportConfig()
	config.Format = ExportFormatJSON
	config.IncludeWords = false

	out, err := NewExporterWithConfig(config).ExportToString([]PageChunk{chunk})
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}
	if strings.Contains(out, `"words"`) {
		t.Error("words should be dropped from the export")
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "[") {
		t.Errorf("JSON export should be an array, got %q", out)
	}
}
