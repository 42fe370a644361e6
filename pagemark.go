// Package pagemark converts extracted page layouts to markdown.
//
// Input is a model.Document produced by an external extractor: per-page
// spans, vector drawings, images and pre-rendered table regions. The
// converter reconstructs reading order across columns, classifies decorative
// graphics, derives header levels from a document-wide font-size histogram
// (or the outline) and synthesizes GitHub flavored markdown.
//
// Basic usage:
//
//	converter := pagemark.NewConverter()
//	result, err := converter.Convert(ctx, doc)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Markdown)
package pagemark

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pagemark/chunks"
	"github.com/tsawler/pagemark/graphics"
	"github.com/tsawler/pagemark/imaging"
	"github.com/tsawler/pagemark/layout"
	"github.com/tsawler/pagemark/markdown"
	"github.com/tsawler/pagemark/model"
	"github.com/tsawler/pagemark/style"
)

// Result holds the output of one conversion
type Result struct {
	// Markdown is the concatenated document output
	Markdown string

	// Pages holds the markdown of each converted page in order
	Pages []string

	// Chunks holds per-page structural metadata, present only when chunk
	// output is enabled
	Chunks []chunks.PageChunk
}

// Converter runs the full layout-to-markdown pipeline
type Converter struct {
	options Options
	logger  zerolog.Logger
}

// NewConverter creates a converter with default options
func NewConverter() *Converter {
	return &Converter{
		options: DefaultOptions(),
		logger:  zerolog.Nop(),
	}
}

// NewConverterWithOptions creates a converter with custom options. The
// options are validated once here; an error aborts before any page work.
func NewConverterWithOptions(options Options) (*Converter, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &Converter{
		options: options.clone(),
		logger:  zerolog.Nop(),
	}, nil
}

// WithLogger sets the structured logger and returns the converter
func (c *Converter) WithLogger(logger zerolog.Logger) *Converter {
	c.logger = logger
	return c
}

// preparedPage is the pass 1 output for one page
type preparedPage struct {
	page   *model.Page
	blocks []model.TextBlock
	tables []model.TableRegion
	images []model.ImageRef
}

// Convert runs the two-pass conversion. Pass 1 builds text blocks and the
// document-wide font-size histogram; pass 2 resolves reading order and
// renders each page. Per-page failures produce an empty page output and a
// logged warning; only a nil document or a cancelled context return an error.
func (c *Converter) Convert(ctx context.Context, doc *model.Document) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	pages := doc.Select(c.options.Pages)
	prepared := make([]*preparedPage, len(pages))

	// Pass 1: per-page preparation, parallelizable since pages are
	// independent until the histogram is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workerLimit())
	for i := range pages {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			prepared[i] = c.prepare(pages[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	identifier := c.buildIdentifier(doc, prepared)
	writer := c.buildWriter(identifier)
	resolver := layout.NewResolver()

	// Pass 2: reading order and synthesis per page.
	outputs := make([]string, len(prepared))
	entryLists := make([][]model.ReadingEntry, len(prepared))

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(c.workerLimit())
	for i := range prepared {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := prepared[i]
			if p == nil {
				c.logger.Warn().Int("page", i).Msg("skipping failed page")
				return nil
			}
			entries := resolver.Resolve(p.blocks, p.tables, p.images)
			text, err := writer.WritePage(p.page, entries)
			if err != nil {
				c.logger.Warn().Err(err).Int("page", p.page.Number).
					Msg("page synthesis failed")
				return nil
			}
			outputs[i] = text
			entryLists[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Markdown: strings.Join(outputs, c.options.PageSeparator),
		Pages:    outputs,
	}

	if c.options.PageChunks || c.options.ExtractWords {
		result.Chunks = make([]chunks.PageChunk, 0, len(prepared))
		for i, p := range prepared {
			if p == nil {
				continue
			}
			result.Chunks = append(result.Chunks, chunks.BuildChunk(
				p.page, doc.PageCount(), outputs[i], entryLists[i],
				doc.Outline, c.options.ExtractWords))
		}
	}

	return result, nil
}

// workerLimit bounds pass parallelism
func (c *Converter) workerLimit() int {
	if c.options.Workers > 1 {
		return c.options.Workers
	}
	return 1
}

// prepare runs the per-page pipeline up to text blocks: visibility filtering,
// graphics classification and line/block clustering. Returns nil for a page
// the extractor failed to produce.
func (c *Converter) prepare(page *model.Page) *preparedPage {
	if page == nil {
		return nil
	}

	if c.options.PageWidth > 0 {
		page.Width = c.options.PageWidth
	}
	if c.options.PageHeight > 0 {
		page.Height = c.options.PageHeight
	}

	filter := graphics.NewVisibilityFilterWithConfig(graphics.FilterConfig{
		DetectBackground: c.options.DetectBackground,
	})
	background, hasBackground := filter.Apply(page)
	var backgroundPtr *model.Color
	if hasBackground {
		backgroundPtr = &background
	}

	var tables []model.TableRegion
	if c.options.TableStrategy != TableStrategyOff {
		tables = page.Tables
	}

	c.classifyDrawings(page, tables, backgroundPtr)

	images := page.Images

	exclude := make([]model.Rect, 0, len(tables)+len(images))
	for _, t := range tables {
		exclude = append(exclude, t.BBox)
	}
	for _, img := range images {
		exclude = append(exclude, img.BBox)
	}

	clip := c.clipRect(page)

	lines := layout.NewLineBuilder().Build(page.VisibleSpans(), exclude, clip)
	blocks := layout.NewBlockBuilder().Build(lines)
	page.Blocks = blocks

	return &preparedPage{
		page:   page,
		blocks: blocks,
		tables: tables,
		images: images,
	}
}

// classifyDrawings marks decorative and over-ceiling drawings invisible so
// later stages, such as strike-through detection, never see them.
func (c *Converter) classifyDrawings(page *model.Page, tables []model.TableRegion, background *model.Color) {
	if c.options.IgnoreGraphics {
		for i := range page.Drawings {
			page.Drawings[i].Invisible = true
		}
		return
	}

	tableRects := make([]model.Rect, len(tables))
	for i, t := range tables {
		tableRects[i] = t.BBox
	}

	config := graphics.DefaultClassifierConfig()
	config.Limit = c.options.GraphicsLimit
	classifier := graphics.NewClassifierWithConfig(config)

	result := classifier.Apply(page, tableRects, background)
	if result.LimitExceeded {
		c.logger.Warn().Int("page", page.Number).Int("drawings", result.Excess).
			Msg("graphics ceiling exceeded, dropping out-of-table drawings")
	}
}

// clipRect derives the usable page area from the margins. Margins that leave
// no area fail soft to the full page.
func (c *Converter) clipRect(page *model.Page) *model.Rect {
	m := c.options.Margins
	if m.Left == 0 && m.Top == 0 && m.Right == 0 && m.Bottom == 0 {
		return nil
	}
	clip := model.Rect{
		X0: m.Left,
		Y0: m.Top,
		X1: page.Width - m.Right,
		Y1: page.Height - m.Bottom,
	}
	if clip.IsDegenerate() || clip.IsEmpty() {
		c.logger.Warn().Int("page", page.Number).
			Msg("margins leave no page area, ignoring them")
		return nil
	}
	return &clip
}

// buildIdentifier constructs the header identifier for the configured
// strategy. The size strategy freezes the histogram here, between the two
// passes.
func (c *Converter) buildIdentifier(doc *model.Document, prepared []*preparedPage) style.Identifier {
	if c.options.HeaderStrategy == HeaderStrategyOutline {
		return style.NewOutlineIdentifier(doc.Outline)
	}

	hist := style.NewSizeHistogram()
	for _, p := range prepared {
		if p == nil {
			continue
		}
		for i := range p.blocks {
			hist.AddBlock(&p.blocks[i])
		}
	}

	config := style.DefaultHeaderConfig()
	config.MaxLevel = c.options.MaxHeaderLevel
	return style.NewSizeIdentifier(hist, config)
}

// buildWriter constructs the markdown writer with its image encoder
func (c *Converter) buildWriter(identifier style.Identifier) *markdown.Writer {
	mode := imaging.ModeFile
	if c.options.ImageMode == ImageModeEmbed {
		mode = imaging.ModeEmbed
	}
	encoder := imaging.NewEncoderWithConfig(imaging.EncoderConfig{
		Mode:      mode,
		Dir:       c.options.ImageDir,
		Format:    c.options.ImageFormat,
		MinWidth:  c.options.MinImageWidth,
		MinHeight: c.options.MinImageHeight,
	})

	return markdown.NewWriterWithConfig(markdown.WriterConfig{
		IgnoreCode:    c.options.IgnoreCode,
		IgnoreImages:  c.options.IgnoreImages,
		GlyphFallback: c.options.GlyphFallback,
	}, identifier, encoder)
}
