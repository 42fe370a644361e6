package chunks

import (
	"strings"

	"github.com/tsawler/pagemark/model"
)

// PageMetadata identifies the page a chunk came from
type PageMetadata struct {
	// Page is the 1-based page number
	Page int `json:"page"`

	// PageCount is the total number of pages in the document
	PageCount int `json:"page_count"`

	// Width and Height are the page dimensions in points
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TableInfo describes one table on the page
type TableInfo struct {
	// BBox is the table placement on the page
	BBox model.Rect `json:"bbox"`

	// Rows and Cols are the grid dimensions
	Rows int `json:"rows"`
	Cols int `json:"columns"`
}

// ImageInfo describes one image placement on the page
type ImageInfo struct {
	// BBox is the image placement on the page
	BBox model.Rect `json:"bbox"`

	// Width and Height are the pixel dimensions of the source image
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the source encoding
	Format string `json:"format,omitempty"`
}

// TocItem is an outline entry pointing into this page
type TocItem struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Word is one whitespace-delimited token with its estimated position
type Word struct {
	// BBox is the estimated bounding box of the token
	BBox model.Rect `json:"bbox"`

	// Text is the token content
	Text string `json:"text"`

	// Block and Line are the zero-based indexes of the owning text block
	// and line
	Block int `json:"block"`
	Line  int `json:"line"`
}

// PageChunk is the full per-page conversion result
type PageChunk struct {
	// Metadata identifies the page
	Metadata PageMetadata `json:"metadata"`

	// Text is the rendered markdown of the page
	Text string `json:"text"`

	// Blocks are the bounding boxes of the text blocks in reading order
	Blocks []model.Rect `json:"blocks,omitempty"`

	// Tables describe the tables found on the page
	Tables []TableInfo `json:"tables,omitempty"`

	// Images describe the image placements on the page
	Images []ImageInfo `json:"images,omitempty"`

	// Toc holds the outline entries targeting this page
	Toc []TocItem `json:"toc_items,omitempty"`

	// Words is the positioned token list, present only when word
	// extraction is enabled
	Words []Word `json:"words,omitempty"`
}

// BuildChunk assembles the chunk for one page from its rendered markdown and
// ordered entries. withWords additionally extracts the positioned word list.
func BuildChunk(page *model.Page, pageCount int, text string, entries []model.ReadingEntry, outline []model.OutlineItem, withWords bool) PageChunk {
	chunk := PageChunk{
		Metadata: PageMetadata{
			Page:      page.Number,
			PageCount: pageCount,
			Width:     page.Width,
			Height:    page.Height,
		},
		Text: text,
	}

	for _, entry := range entries {
		switch entry.Kind {
		case model.EntryText:
			chunk.Blocks = append(chunk.Blocks, entry.Block.BBox)
			if withWords {
				chunk.Words = append(chunk.Words,
					extractWords(entry.Block, len(chunk.Blocks)-1)...)
			}
		case model.EntryTable:
			chunk.Tables = append(chunk.Tables, TableInfo{
				BBox: entry.Table.BBox,
				Rows: entry.Table.Rows,
				Cols: entry.Table.Cols,
			})
		case model.EntryImage:
			chunk.Images = append(chunk.Images, ImageInfo{
				BBox:   entry.Image.BBox,
				Width:  entry.Image.Width,
				Height: entry.Image.Height,
				Format: entry.Image.Format,
			})
		}
	}

	for _, item := range outline {
		if item.Page == page.Number {
			chunk.Toc = append(chunk.Toc, TocItem{
				Level: item.Level,
				Title: item.Title,
			})
		}
	}

	return chunk
}

// extractWords splits the lines of a block into whitespace-delimited tokens.
// Token boxes are estimated by dividing each span's box proportionally to
// character counts; exact glyph metrics are not available at this stage.
func extractWords(block *model.TextBlock, blockIndex int) []Word {
	var words []Word
	for li := range block.Lines {
		line := &block.Lines[li]
		for si := range line.Spans {
			s := &line.Spans[si]
			if s.IsWhitespace() {
				continue
			}
			words = append(words, splitSpan(s, blockIndex, li)...)
		}
	}
	return words
}

// splitSpan tokenizes one span, assigning each token a slice of the span box
// proportional to its character offset and length.
func splitSpan(s *model.Span, blockIndex, lineIndex int) []Word {
	text := s.Text
	total := len([]rune(text))
	if total == 0 {
		return nil
	}
	width := s.BBox.Width()

	var words []Word
	offset := 0
	for _, field := range strings.Fields(text) {
		idx := indexFrom(text, field, offset)
		if idx < 0 {
			continue
		}
		runeStart := len([]rune(text[:idx]))
		runeLen := len([]rune(field))
		offset = idx + len(field)

		x0 := s.BBox.X0 + width*float64(runeStart)/float64(total)
		x1 := s.BBox.X0 + width*float64(runeStart+runeLen)/float64(total)
		words = append(words, Word{
			BBox:  model.Rect{X0: x0, Y0: s.BBox.Y0, X1: x1, Y1: s.BBox.Y1},
			Text:  field,
			Block: blockIndex,
			Line:  lineIndex,
		})
	}
	return words
}

// indexFrom finds the byte index of sub in text at or after start
func indexFrom(text, sub string, start int) int {
	if start >= len(text) {
		return -1
	}
	idx := strings.Index(text[start:], sub)
	if idx < 0 {
		return -1
	}
	return start + idx
}
