package graphics

import (
	"math"

	"github.com/tsawler/pagemark/model"
)

// ClassifierConfig holds configuration for graphics classification
type ClassifierConfig struct {
	// Limit is the maximum number of significant drawings outside table
	// regions before all out-of-table drawings are dropped.
	// 0 means no limit. Default: 5000
	Limit int

	// BorderBandWidth is the thickness of the band around a drawing's own
	// bounding box border. Strokes confined to this band indicate a
	// decorative frame. Default: 3 points
	BorderBandWidth float64

	// MinAreaRatio is the minimum drawing area relative to the page area.
	// Smaller drawings are treated as noise. Default: 0.00005
	MinAreaRatio float64
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Limit:           5000,
		BorderBandWidth: 3.0,
		MinAreaRatio:    0.00005,
	}
}

// Classification is the result of classifying a page's drawings
type Classification struct {
	// Kept are the significant drawings that survived classification,
	// in input order
	Kept []model.Drawing

	// NoiseCount is the number of drawings discarded as decorative noise
	NoiseCount int

	// LimitExceeded reports that the out-of-table ceiling was hit and all
	// out-of-table drawings were dropped
	LimitExceeded bool

	// Excess is the number of out-of-table drawings counted when the
	// ceiling was exceeded
	Excess int
}

// Classifier separates structural vector graphics from decorative noise
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return &Classifier{
		config: DefaultClassifierConfig(),
	}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{
		config: config,
	}
}

// Classify inspects the visible drawings of a page and keeps only the
// structural ones. Drawings whose bounding box center lies inside a table
// region are always retained; they are the table's own ruling lines. If the
// number of significant out-of-table drawings exceeds the ceiling, every
// out-of-table drawing is dropped. Text, images and tables are never
// affected by the ceiling.
func (c *Classifier) Classify(drawings []model.Drawing, tables []model.Rect, page model.Rect, background *model.Color) Classification {
	var result Classification

	type classified struct {
		drawing model.Drawing
		inTable bool
	}

	var significant []classified
	outOfTable := 0

	for _, d := range drawings {
		if d.BBox.IsDegenerate() {
			continue
		}
		inTable := insideAny(d.BBox, tables)
		if !inTable && c.isNoise(d, page, background) {
			result.NoiseCount++
			continue
		}
		significant = append(significant, classified{drawing: d, inTable: inTable})
		if !inTable {
			outOfTable++
		}
	}

	if c.config.Limit > 0 && outOfTable > c.config.Limit {
		// Too many graphics to be worth processing: drop everything that
		// is not part of a table.
		result.LimitExceeded = true
		result.Excess = outOfTable
		for _, s := range significant {
			if s.inTable {
				result.Kept = append(result.Kept, s.drawing)
			}
		}
		return result
	}

	for _, s := range significant {
		result.Kept = append(result.Kept, s.drawing)
	}
	return result
}

// Apply classifies a page's drawings in place, marking noise and
// over-ceiling drawings invisible so later stages never see them. Drawings
// already marked invisible by the visibility filter are left untouched.
func (c *Classifier) Apply(page *model.Page, tables []model.Rect, background *model.Color) Classification {
	var result Classification

	type item struct {
		index   int
		inTable bool
	}

	pageRect := page.Rect()
	var significant []item
	outOfTable := 0

	for i := range page.Drawings {
		d := &page.Drawings[i]
		if d.Invisible {
			continue
		}
		if d.BBox.IsDegenerate() {
			d.Invisible = true
			continue
		}
		inTable := insideAny(d.BBox, tables)
		if !inTable && c.isNoise(*d, pageRect, background) {
			d.Invisible = true
			result.NoiseCount++
			continue
		}
		significant = append(significant, item{index: i, inTable: inTable})
		if !inTable {
			outOfTable++
		}
	}

	limitHit := c.config.Limit > 0 && outOfTable > c.config.Limit
	if limitHit {
		result.LimitExceeded = true
		result.Excess = outOfTable
	}

	for _, s := range significant {
		if limitHit && !s.inTable {
			page.Drawings[s.index].Invisible = true
			continue
		}
		result.Kept = append(result.Kept, page.Drawings[s.index])
	}
	return result
}

// isNoise reports whether a drawing is decorative rather than structural
func (c *Classifier) isNoise(d model.Drawing, page model.Rect, background *model.Color) bool {
	// Negligible size relative to the page. Stroked paths are judged by
	// their longest segment rather than bounding-box area, so hairline
	// rules such as strike-outs and underlines are not mistaken for specks.
	pageArea := page.Area()
	if pageArea > 0 {
		minArea := pageArea * c.config.MinAreaRatio
		if d.Stroke != nil && len(d.Segments) > 0 {
			if longestSegment(d.Segments) < math.Sqrt(minArea) {
				return true
			}
		} else if d.BBox.Area() < minArea {
			return true
		}
	}

	// Fill matching the page background
	if background != nil && d.FillOnly && d.Fill != nil && d.Fill.Equal(*background) {
		return true
	}

	// All strokes confined to a thin band around the drawing's own border:
	// a decorative frame, typically drawn around code snippets.
	if len(d.Segments) > 0 && c.isBorderFrame(d) {
		return true
	}

	return false
}

// isBorderFrame reports whether every stroke segment lies within the border
// band of the drawing's own bounding box.
func (c *Classifier) isBorderFrame(d model.Drawing) bool {
	band := c.config.BorderBandWidth
	if d.BBox.Width() <= band*2 || d.BBox.Height() <= band*2 {
		// A straight rule or hairline, not a frame around content.
		return false
	}
	inner := model.Rect{
		X0: d.BBox.X0 + band,
		Y0: d.BBox.Y0 + band,
		X1: d.BBox.X1 - band,
		Y1: d.BBox.Y1 - band,
	}
	for _, seg := range d.Segments {
		if seg.BBox().Intersects(inner) && inner.ContainsMiddle(seg.BBox()) {
			return false
		}
	}
	return true
}

// longestSegment returns the length of the longest stroke segment
func longestSegment(segments []model.Segment) float64 {
	longest := 0.0
	for _, seg := range segments {
		length := math.Hypot(seg.P1.X-seg.P0.X, seg.P1.Y-seg.P0.Y)
		if length > longest {
			longest = length
		}
	}
	return longest
}

// insideAny reports whether the center of r lies inside any of the rects
func insideAny(r model.Rect, rects []model.Rect) bool {
	for _, candidate := range rects {
		if candidate.ContainsMiddle(r) {
			return true
		}
	}
	return false
}
