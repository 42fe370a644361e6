package layout

import (
	"sort"

	"github.com/tsawler/pagemark/model"
)

// ResolverConfig holds configuration for reading order resolution
type ResolverConfig struct {
	// MinColumnGap is the minimum whitespace width for a vertical cut to
	// count as a column separator. Default: 6 points
	MinColumnGap float64
}

// DefaultResolverConfig returns sensible default configuration
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		MinColumnGap: 6.0,
	}
}

// Resolver linearizes the regions of a page into reading order
type Resolver struct {
	config ResolverConfig
}

// NewResolver creates a resolver with default configuration
func NewResolver() *Resolver {
	return &Resolver{
		config: DefaultResolverConfig(),
	}
}

// NewResolverWithConfig creates a resolver with custom configuration
func NewResolverWithConfig(config ResolverConfig) *Resolver {
	return &Resolver{
		config: config,
	}
}

// Resolve orders the given text blocks, tables and images into the per-page
// reading sequence.
//
// The page is recursively partitioned: horizontal bands separated by
// content-free gaps are read top to bottom; inside one band, maximal vertical
// strips separated by content-free cuts are read left to right. Regions that
// can be split no further are emitted sorted by top edge, exact ties broken
// by the smaller left edge. Tables and images are atomic regions whose
// internal content never interleaves with surrounding text.
func (r *Resolver) Resolve(blocks []model.TextBlock, tables []model.TableRegion, images []model.ImageRef) []model.ReadingEntry {
	var regions []region
	for i := range blocks {
		if blocks[i].BBox.IsDegenerate() {
			continue
		}
		regions = append(regions, region{bbox: blocks[i].BBox, entry: model.TextEntry(&blocks[i])})
	}
	for i := range tables {
		if tables[i].BBox.IsDegenerate() {
			continue
		}
		regions = append(regions, region{bbox: tables[i].BBox, entry: model.TableEntry(&tables[i])})
	}
	for i := range images {
		if images[i].BBox.IsDegenerate() {
			continue
		}
		regions = append(regions, region{bbox: images[i].BBox, entry: model.ImageEntry(&images[i])})
	}

	ordered := r.order(regions, true)

	entries := make([]model.ReadingEntry, 0, len(ordered))
	for _, reg := range ordered {
		entries = append(entries, reg.entry)
	}
	return entries
}

// order recursively partitions regions into bands and strips. splitRows
// alternates the split direction so the recursion terminates once neither
// direction makes progress.
func (r *Resolver) order(regions []region, splitRows bool) []region {
	if len(regions) <= 1 {
		return regions
	}

	if splitRows {
		bands := splitBands(regions)
		if len(bands) > 1 {
			var result []region
			for _, band := range bands {
				result = append(result, r.order(band, false)...)
			}
			return result
		}
		return r.order(regions, false)
	}

	strips := splitStrips(regions, r.config.MinColumnGap)
	if len(strips) > 1 {
		var result []region
		for _, strip := range strips {
			result = append(result, r.order(strip, true)...)
		}
		return result
	}

	// No further partition possible. Overlapping or interlocking regions
	// (floated images, pull quotes) are ordered by the documented
	// tie-break: higher top edge first, then smaller left edge.
	sorted := make([]region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].bbox.Y0 != sorted[j].bbox.Y0 {
			return sorted[i].bbox.Y0 < sorted[j].bbox.Y0
		}
		return sorted[i].bbox.X0 < sorted[j].bbox.X0
	})
	return sorted
}
