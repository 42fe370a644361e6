package pagemark

import (
	"fmt"

	"github.com/tsawler/pagemark/imaging"
)

// Table detection strategies
const (
	// TableStrategyLinesStrict detects tables from ruled lines only
	TableStrategyLinesStrict = "lines_strict"

	// TableStrategyCustom accepts externally supplied table regions as-is
	TableStrategyCustom = "custom"

	// TableStrategyOff disables table handling; table regions are dropped
	TableStrategyOff = "off"
)

// Image output modes
const (
	// ImageModeFile writes images to files referenced by path
	ImageModeFile = "file"

	// ImageModeEmbed inlines images as base64 data URIs
	ImageModeEmbed = "embed"
)

// Header identification strategies
const (
	// HeaderStrategySize ranks font sizes against the document-wide
	// histogram
	HeaderStrategySize = "size"

	// HeaderStrategyOutline matches lines against table-of-contents titles
	HeaderStrategyOutline = "outline"
)

// Margins is the page area excluded from conversion, in points
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Options holds every recognized conversion option. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// Pages selects a zero-based page subset. Nil converts all pages.
	Pages []int

	// DPI is the rendering resolution forwarded to the extractor for
	// rasterized content. Default: 150
	DPI int

	// PageWidth and PageHeight override the page dimensions reported by
	// the extractor, for reflowable source formats. Zero keeps the
	// reported dimensions.
	PageWidth  float64
	PageHeight float64

	// GraphicsLimit is the per-page ceiling on decorative vector
	// drawings. A page exceeding it keeps its text, images and tables but
	// drops all out-of-table drawings. Default: 5000
	GraphicsLimit int

	// TableStrategy selects table detection: lines_strict, custom or off.
	// Default: lines_strict
	TableStrategy string

	// ImageMode selects file output or inline embedding. Default: file
	ImageMode string

	// ImageDir is the directory image files are written to. Default: "."
	ImageDir string

	// ImageFormat is the image output encoding. Default: png
	ImageFormat string

	// MinImageWidth and MinImageHeight skip images smaller than this in
	// either dimension. Default: 30 each
	MinImageWidth  int
	MinImageHeight int

	// IgnoreImages drops all images from the output
	IgnoreImages bool

	// IgnoreGraphics drops all vector drawings regardless of the ceiling
	IgnoreGraphics bool

	// IgnoreCode disables code formatting for monospaced text
	IgnoreCode bool

	// HeaderStrategy selects header identification: size or outline.
	// Default: size
	HeaderStrategy string

	// MaxHeaderLevel caps the header depth between 1 and 6. Default: 6
	MaxHeaderLevel int

	// DetectBackground enables 4-corner background color detection.
	// Default: true
	DetectBackground bool

	// Margins excludes a band along each page edge from conversion
	Margins Margins

	// PageChunks returns per-page chunks with structural metadata instead
	// of one concatenated document
	PageChunks bool

	// ExtractWords adds a positioned word list to each chunk. Implies
	// PageChunks.
	ExtractWords bool

	// PageSeparator is inserted between consecutive page outputs.
	// Default: "\n-----\n\n"
	PageSeparator string

	// GlyphFallback renders raw glyph identifiers for characters with no
	// Unicode mapping instead of the replacement marker
	GlyphFallback bool

	// Workers bounds per-page parallelism. Zero or one converts pages
	// sequentially.
	Workers int
}

// DefaultOptions returns the default conversion options
func DefaultOptions() Options {
	return Options{
		DPI:              150,
		GraphicsLimit:    5000,
		TableStrategy:    TableStrategyLinesStrict,
		ImageMode:        ImageModeFile,
		ImageDir:         ".",
		ImageFormat:      "png",
		MinImageWidth:    30,
		MinImageHeight:   30,
		HeaderStrategy:   HeaderStrategySize,
		MaxHeaderLevel:   6,
		DetectBackground: true,
		PageSeparator:    "\n-----\n\n",
	}
}

// Validate checks the options once at entry. Any error here aborts the
// conversion before the first page is touched.
func (o *Options) Validate() error {
	switch o.TableStrategy {
	case TableStrategyLinesStrict, TableStrategyCustom, TableStrategyOff:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTableStrategy, o.TableStrategy)
	}

	switch o.ImageMode {
	case ImageModeFile, ImageModeEmbed:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidImageMode, o.ImageMode)
	}

	if !imaging.ValidFormat(o.ImageFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidImageFormat, o.ImageFormat)
	}

	switch o.HeaderStrategy {
	case HeaderStrategySize, HeaderStrategyOutline:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHeaderStrategy, o.HeaderStrategy)
	}

	if o.MaxHeaderLevel < 1 || o.MaxHeaderLevel > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidHeaderLevel, o.MaxHeaderLevel)
	}

	if o.DPI <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDPI, o.DPI)
	}

	m := o.Margins
	if m.Left < 0 || m.Top < 0 || m.Right < 0 || m.Bottom < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidMargins)
	}

	return nil
}

// clone creates a deep copy of the options
func (o Options) clone() Options {
	clone := o
	if o.Pages != nil {
		clone.Pages = make([]int, len(o.Pages))
		copy(clone.Pages, o.Pages)
	}
	return clone
}
