package layout

import (
	"sort"

	"github.com/tsawler/pagemark/model"
)

// BlockConfig holds configuration for line-to-block clustering
type BlockConfig struct {
	// MaxLineGap is the maximum vertical gap between consecutive lines of
	// one block, as a fraction of the taller line height. Default: 1.2
	MaxLineGap float64

	// MinOverlapRatio is the minimum lateral overlap between a line and
	// the block it joins, as a fraction of the narrower width.
	// Default: 0.3
	MinOverlapRatio float64
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		MaxLineGap:      1.2,
		MinOverlapRatio: 0.3,
	}
}

// BlockBuilder clusters lines into paragraph-like text blocks
type BlockBuilder struct {
	config BlockConfig
}

// NewBlockBuilder creates a block builder with default configuration
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{
		config: DefaultBlockConfig(),
	}
}

// NewBlockBuilderWithConfig creates a block builder with custom configuration
func NewBlockBuilderWithConfig(config BlockConfig) *BlockBuilder {
	return &BlockBuilder{
		config: config,
	}
}

// Build groups lines into text blocks. A line joins the block under
// construction when its bounding box laterally overlaps the block and the
// vertical gap to the block's last line stays within a line-height-scaled
// limit. Every block satisfies the invariant that all member lines laterally
// overlap within tolerance.
func (b *BlockBuilder) Build(lines []model.Line) []model.TextBlock {
	if len(lines) == 0 {
		return nil
	}

	sorted := make([]model.Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Y0 != sorted[j].BBox.Y0 {
			return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	var blocks []model.TextBlock

	for _, line := range sorted {
		placed := false
		// Try the most recent blocks first; multi-column pages keep
		// several blocks open at once.
		for i := len(blocks) - 1; i >= 0; i-- {
			if b.lineFits(&blocks[i], line) {
				blocks[i].Lines = append(blocks[i].Lines, line)
				blocks[i].BBox = blocks[i].BBox.Union(line.BBox)
				placed = true
				break
			}
		}
		if !placed {
			blocks = append(blocks, model.TextBlock{
				Lines: []model.Line{line},
				BBox:  line.BBox,
			})
		}
	}

	return blocks
}

// lineFits reports whether a line can extend the given block
func (b *BlockBuilder) lineFits(block *model.TextBlock, line model.Line) bool {
	// Lateral overlap within tolerance
	overlap := block.BBox.HorizontalOverlap(line.BBox)
	minWidth := block.BBox.Width()
	if line.BBox.Width() < minWidth {
		minWidth = line.BBox.Width()
	}
	if minWidth <= 0 || overlap < minWidth*b.config.MinOverlapRatio {
		return false
	}

	// Vertical adjacency to the block's last line
	last := block.Lines[len(block.Lines)-1]
	gap := line.BBox.Y0 - last.BBox.Y1
	limit := last.BBox.Height()
	if line.BBox.Height() > limit {
		limit = line.BBox.Height()
	}
	return gap <= limit*b.config.MaxLineGap
}
