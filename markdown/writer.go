package markdown

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pagemark/model"
	"github.com/tsawler/pagemark/style"
)

// ImageRenderer produces the markdown target of an image: a file path or a
// data URI. An empty target with nil error skips the image.
type ImageRenderer interface {
	Target(img *model.ImageRef, pageNumber, index int) (string, error)
}

// WriterConfig holds configuration for markdown synthesis
type WriterConfig struct {
	// IgnoreCode disables all code formatting: monospaced text renders as
	// plain body text. Default: false
	IgnoreCode bool

	// IgnoreImages drops image entries from the output. Default: false
	IgnoreImages bool

	// GlyphFallback renders raw glyph identifiers for unmapped glyphs
	// instead of the U+FFFD replacement marker. Default: false
	GlyphFallback bool
}

// DefaultWriterConfig returns sensible default configuration
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{}
}

// Writer renders reading-ordered page regions to markdown
type Writer struct {
	config  WriterConfig
	headers style.Identifier
	images  ImageRenderer
}

// NewWriter creates a writer with default configuration. headers assigns
// header levels; images renders image targets and may be nil when images are
// ignored.
func NewWriter(headers style.Identifier, images ImageRenderer) *Writer {
	return NewWriterWithConfig(DefaultWriterConfig(), headers, images)
}

// NewWriterWithConfig creates a writer with custom configuration
func NewWriterWithConfig(config WriterConfig, headers style.Identifier, images ImageRenderer) *Writer {
	return &Writer{
		config:  config,
		headers: headers,
		images:  images,
	}
}

// WritePage renders the ordered entries of one page and returns its markdown
func (w *Writer) WritePage(page *model.Page, entries []model.ReadingEntry) (string, error) {
	var sb strings.Builder
	imageIndex := 0

	for ei, entry := range entries {
		switch entry.Kind {
		case EntryTable:
			w.writeTable(&sb, entry.Table, ei < len(entries)-1)
		case EntryImage:
			imageIndex++
			if err := w.writeImage(&sb, entry.Image, page.Number, imageIndex); err != nil {
				return "", err
			}
		case EntryText:
			w.writeBlock(&sb, entry.Block, page)
		}
	}

	return sb.String(), nil
}

// Entry kind aliases keep the synthesis switch exhaustive and readable.
const (
	EntryText  = model.EntryText
	EntryTable = model.EntryTable
	EntryImage = model.EntryImage
)

// writeTable emits the pre-rendered grid verbatim. A blank line follows only
// when more content comes after, so a page holding nothing but one table
// reproduces the grid exactly.
func (w *Writer) writeTable(sb *strings.Builder, table *model.TableRegion, more bool) {
	grid := table.Markdown
	if grid == "" {
		return
	}
	sb.WriteString(grid)
	if !strings.HasSuffix(grid, "\n") {
		sb.WriteString("\n")
	}
	if more {
		sb.WriteString("\n")
	}
}

// writeImage emits a markdown image reference
func (w *Writer) writeImage(sb *strings.Builder, img *model.ImageRef, pageNumber, index int) error {
	if w.config.IgnoreImages || w.images == nil {
		return nil
	}
	target, err := w.images.Target(img, pageNumber, index)
	if err != nil {
		return fmt.Errorf("rendering image %d on page %d: %w", index, pageNumber, err)
	}
	if target == "" {
		return nil
	}
	fmt.Fprintf(sb, "![](%s)\n\n", target)
	return nil
}

// lineClass is the synthesis category of one line
type lineClass int

const (
	classBody lineClass = iota
	classHeader
	classCode
	classList
)

// writeBlock renders one text block: a heading, a list, a code block or a
// paragraph, possibly mixed line by line.
func (w *Writer) writeBlock(sb *strings.Builder, block *model.TextBlock, page *model.Page) {
	inCode := false
	prevHeaderLevel := 0

	flushCode := func() {
		if inCode {
			sb.WriteString("```\n\n")
			inCode = false
		}
	}

	for li := range block.Lines {
		line := &block.Lines[li]
		class, level := w.classify(line, page)

		if class != classCode {
			flushCode()
		}

		switch class {
		case classHeader:
			text := w.headerText(line)
			if level == prevHeaderLevel && li > 0 {
				// A heading broken across lines: extend the one
				// just written instead of starting another.
				joinHeaderLine(sb, text)
			} else {
				sb.WriteString(strings.Repeat("#", level))
				sb.WriteString(" ")
				sb.WriteString(text)
				sb.WriteString("\n\n")
			}
			prevHeaderLevel = level
			continue

		case classCode:
			if !inCode {
				sb.WriteString("```\n")
				inCode = true
			}
			sb.WriteString(w.codeLine(line, block))
			sb.WriteString("\n")
			prevHeaderLevel = 0
			continue

		case classList:
			sb.WriteString(w.styledLine(line, page, true))
			sb.WriteString("\n")
			prevHeaderLevel = 0

		default:
			sb.WriteString(w.styledLine(line, page, false))
			sb.WriteString("\n")
			prevHeaderLevel = 0
		}
	}
	flushCode()

	// Terminate the block with a blank line unless code already did.
	if !strings.HasSuffix(sb.String(), "\n\n") {
		sb.WriteString("\n")
	}
}

// classify determines the synthesis category of a line
func (w *Writer) classify(line *model.Line, page *model.Page) (lineClass, int) {
	if w.headers != nil {
		if level := w.headers.LevelFor(line, page.Number); level > 0 {
			return classHeader, level
		}
	}

	if !w.config.IgnoreCode && len(line.Spans) > 0 {
		allMono := true
		for i := range line.Spans {
			if !style.IsMono(&line.Spans[i]) {
				allMono = false
				break
			}
		}
		if allMono {
			return classCode, 0
		}
	}

	if kind, _ := style.DetectListMarker(line.Text()); kind != style.ListNone {
		return classList, 0
	}
	return classBody, 0
}

// headerText renders a heading line. The entire heading takes the style of
// its dominant span, so a heading never switches style midway.
func (w *Writer) headerText(line *model.Line) string {
	text := w.lineText(line)
	dom := line.DominantSpan()
	if dom == nil {
		return text
	}
	prefix, suffix := "", ""
	if style.IsBold(dom) {
		prefix, suffix = "**", "**"
	}
	if style.IsItalic(dom) {
		prefix, suffix = prefix+"*", "*"+suffix
	}
	return prefix + text + suffix
}

// codeLine renders one line of a fenced code block, reconstructing the
// indentation from the horizontal offset inside the block.
func (w *Writer) codeLine(line *model.Line, block *model.TextBlock) string {
	text := w.lineText(line)
	if len(line.Spans) == 0 {
		return text
	}
	size := line.Spans[0].Size
	if size <= 0 {
		return text
	}
	// Approximate one character cell as half the font size.
	indent := int((line.BBox.X0 - block.BBox.X0) / (size * 0.5))
	if indent > 0 {
		return strings.Repeat(" ", indent) + text
	}
	return text
}

// styledLine renders a body or list line with inline styling. For list
// lines the marker is split off the raw spans before styling, so a bullet
// glyph sitting in its own styled span never leaks into the output.
func (w *Writer) styledLine(line *model.Line, page *model.Page, isList bool) string {
	var sb strings.Builder

	spans := line.Spans
	marker := ""
	if isList {
		spans, marker = splitMarkerSpans(spans)
	}

	type styledRun struct {
		bold, italic, mono bool
		text               strings.Builder
	}

	var runs []*styledRun
	for i := range spans {
		s := &spans[i]
		bold := style.IsBold(s)
		italic := style.IsItalic(s)
		mono := !w.config.IgnoreCode && style.IsMono(s)

		text := w.spanText(s)
		if text == "" {
			continue
		}

		if n := len(runs); n > 0 && runs[n-1].bold == bold &&
			runs[n-1].italic == italic && runs[n-1].mono == mono {
			if needsSpace(spans, i) {
				runs[n-1].text.WriteString(" ")
			}
			runs[n-1].text.WriteString(text)
			continue
		}
		run := &styledRun{bold: bold, italic: italic, mono: mono}
		run.text.WriteString(text)
		runs = append(runs, run)
	}

	for i, run := range runs {
		if i > 0 {
			sb.WriteString(" ")
		}
		text := run.text.String()
		switch {
		case run.mono:
			sb.WriteString("`")
			sb.WriteString(strings.TrimSpace(text))
			sb.WriteString("`")
		default:
			prefix, suffix := "", ""
			if run.bold {
				prefix, suffix = "**", "**"
			}
			if run.italic {
				prefix, suffix = prefix+"*", "*"+suffix
			}
			if prefix != "" {
				text = prefix + strings.TrimSpace(text) + suffix
			}
			sb.WriteString(text)
		}
	}

	out := sb.String()

	if style.IsStruckOut(line, page.Drawings) {
		out = "~~" + out + "~~"
	}
	return marker + out
}

// splitMarkerSpans removes the leading list marker from the spans and returns
// the normalized marker. The marker may occupy its own span or lead the first
// one; when no span-level marker is found the spans come back unchanged.
func splitMarkerSpans(spans []model.Span) ([]model.Span, string) {
	for i := range spans {
		text := strings.TrimSpace(spans[i].Text)
		if text == "" {
			continue
		}
		// The trailing space satisfies markers like "-" or "3." that sit
		// alone in their span, where the separator is a span boundary.
		kind, marker, rest := style.SplitListMarker(text + " ")
		if kind == style.ListNone {
			return spans, ""
		}
		out := make([]model.Span, 0, len(spans))
		out = append(out, spans[:i]...)
		if rest = strings.TrimSpace(rest); rest != "" {
			s := spans[i]
			s.Text = rest
			out = append(out, s)
		}
		out = append(out, spans[i+1:]...)
		return out, marker
	}
	return spans, ""
}

// lineText assembles the plain text of a line, applying glyph fallback
func (w *Writer) lineText(line *model.Line) string {
	var sb strings.Builder
	for i := range line.Spans {
		if i > 0 && needsSpace(line.Spans, i) {
			sb.WriteString(" ")
		}
		sb.WriteString(w.spanText(&line.Spans[i]))
	}
	return strings.TrimSpace(sb.String())
}

// spanText returns the normalized text of one span
func (w *Writer) spanText(s *model.Span) string {
	text := s.Text
	if w.config.GlyphFallback && s.Raw != "" {
		text = s.Raw
	}
	return norm.NFC.String(strings.TrimSpace(text))
}

// needsSpace reports whether a space belongs between span i-1 and span i
func needsSpace(spans []model.Span, i int) bool {
	if i <= 0 || i >= len(spans) {
		return false
	}
	prev := spans[i-1]
	cur := spans[i]
	gap := cur.BBox.X0 - prev.BBox.X1
	return gap > cur.Size*0.1 ||
		strings.HasSuffix(prev.Text, " ") || strings.HasPrefix(cur.Text, " ")
}

// joinHeaderLine appends text to the heading that was just written,
// keeping its trailing blank line intact.
func joinHeaderLine(sb *strings.Builder, text string) {
	current := sb.String()
	trimmed := strings.TrimSuffix(current, "\n\n")
	sb.Reset()
	sb.WriteString(trimmed)
	sb.WriteString(" ")
	sb.WriteString(text)
	sb.WriteString("\n\n")
}
