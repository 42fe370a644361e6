package style

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/pagemark/model"
)

// SizeHistogram counts characters per rounded font size across a document
type SizeHistogram map[int]int

// NewSizeHistogram creates an empty histogram
func NewSizeHistogram() SizeHistogram {
	return make(SizeHistogram)
}

// AddBlock accumulates the characters of every span in a text block
func (h SizeHistogram) AddBlock(block *model.TextBlock) {
	for _, line := range block.Lines {
		for _, s := range line.Spans {
			text := strings.TrimSpace(s.Text)
			if text == "" {
				continue
			}
			h[roundSize(s.Size)] += len(text)
		}
	}
}

// ModalSize returns the font size carrying the most characters, the body
// text size of the document. Returns 0 for an empty histogram.
func (h SizeHistogram) ModalSize() int {
	best := 0
	bestCount := 0
	for size, count := range h {
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	return best
}

// roundSize buckets a font size to the nearest whole point
func roundSize(size float64) int {
	return int(math.Round(size))
}

// Identifier assigns a markdown header level to a line.
// Level 0 means body text, levels 1-6 map to markdown heading depth.
type Identifier interface {
	LevelFor(line *model.Line, pageNumber int) int
}

// HeaderConfig holds configuration for size-based header identification
type HeaderConfig struct {
	// MaxLevel caps the header depth. Sizes that would rank deeper are
	// collapsed into level 6. Default: 6
	MaxLevel int

	// BodyLimit is the minimum font size that can qualify as a header.
	// Text at or below max(BodyLimit, modal size) is body text.
	// Default: 12
	BodyLimit float64
}

// DefaultHeaderConfig returns sensible default configuration
func DefaultHeaderConfig() HeaderConfig {
	return HeaderConfig{
		MaxLevel:  6,
		BodyLimit: 12,
	}
}

// SizeIdentifier maps font sizes to header levels using the document-wide
// histogram. The modal size is body text; every larger size is ranked
// descending into levels 1..MaxLevel.
type SizeIdentifier struct {
	config HeaderConfig
	levels map[int]int
	body   float64
}

// NewSizeIdentifier builds an identifier from a frozen histogram
func NewSizeIdentifier(hist SizeHistogram, config HeaderConfig) *SizeIdentifier {
	if config.MaxLevel < 1 || config.MaxLevel > 6 {
		config.MaxLevel = 6
	}

	body := config.BodyLimit
	if modal := hist.ModalSize(); float64(modal) > body {
		body = float64(modal)
	}

	var headerSizes []int
	for size := range hist {
		if float64(size) > body {
			headerSizes = append(headerSizes, size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(headerSizes)))
	// Only the six largest sizes become headers; anything ranked beyond
	// them stays body text rather than collapsing into level 6.
	if len(headerSizes) > 6 {
		headerSizes = headerSizes[:6]
	}

	levels := make(map[int]int, len(headerSizes))
	for i, size := range headerSizes {
		level := i + 1
		if level > config.MaxLevel {
			level = 6
		}
		levels[size] = level
	}

	return &SizeIdentifier{
		config: config,
		levels: levels,
		body:   body,
	}
}

// BodySize returns the detected body text size
func (s *SizeIdentifier) BodySize() float64 {
	return s.body
}

// LevelFor returns the header level of a line based on the font size of its
// dominant span, or 0 for body text.
func (s *SizeIdentifier) LevelFor(line *model.Line, _ int) int {
	dom := line.DominantSpan()
	if dom == nil {
		return 0
	}
	return s.levels[roundSize(dom.Size)]
}

// OutlineIdentifier assigns header levels directly from the document outline
// (table of contents), bypassing the font-size histogram.
type OutlineIdentifier struct {
	// titles maps a page number to the normalized outline titles on it
	titles map[int]map[string]int
}

// NewOutlineIdentifier builds an identifier from outline items
func NewOutlineIdentifier(outline []model.OutlineItem) *OutlineIdentifier {
	titles := make(map[int]map[string]int)
	for _, item := range outline {
		level := item.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		byTitle := titles[item.Page]
		if byTitle == nil {
			byTitle = make(map[string]int)
			titles[item.Page] = byTitle
		}
		key := normalizeTitle(item.Title)
		if key == "" {
			continue
		}
		// The shallowest level wins when duplicate titles exist.
		if existing, ok := byTitle[key]; !ok || level < existing {
			byTitle[key] = level
		}
	}
	return &OutlineIdentifier{titles: titles}
}

// LevelFor returns the outline level of a line whose text matches an outline
// title on the same page, or 0 when no title matches.
func (o *OutlineIdentifier) LevelFor(line *model.Line, pageNumber int) int {
	byTitle := o.titles[pageNumber]
	if byTitle == nil {
		return 0
	}
	return byTitle[normalizeTitle(line.Text())]
}

// normalizeTitle reduces a title to a comparison key
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
