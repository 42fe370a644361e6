package layout

import (
	"sort"

	"github.com/tsawler/pagemark/model"
)

// region is a page element reduced to its bounding box during partitioning
type region struct {
	bbox  model.Rect
	entry model.ReadingEntry
}

// splitBands partitions regions into horizontal bands separated by gaps that
// no content crosses. Bands come back ordered top to bottom.
func splitBands(regions []region) [][]region {
	if len(regions) == 0 {
		return nil
	}

	sorted := make([]region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].bbox.Y0 < sorted[j].bbox.Y0
	})

	var bands [][]region
	current := []region{sorted[0]}
	bottom := sorted[0].bbox.Y1

	for _, r := range sorted[1:] {
		// A horizontal cut fits between the band and this region when
		// the region starts at or below the band's lowest edge.
		if r.bbox.Y0 >= bottom {
			bands = append(bands, current)
			current = []region{r}
			bottom = r.bbox.Y1
		} else {
			current = append(current, r)
			if r.bbox.Y1 > bottom {
				bottom = r.bbox.Y1
			}
		}
	}
	bands = append(bands, current)
	return bands
}

// splitStrips partitions regions into maximal vertical strips wherever a
// vertical cut line of at least minGap width crosses no content. Strips come
// back ordered left to right.
func splitStrips(regions []region, minGap float64) [][]region {
	if len(regions) == 0 {
		return nil
	}

	sorted := make([]region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].bbox.X0 < sorted[j].bbox.X0
	})

	var strips [][]region
	current := []region{sorted[0]}
	right := sorted[0].bbox.X1

	for _, r := range sorted[1:] {
		if r.bbox.X0 >= right+minGap {
			strips = append(strips, current)
			current = []region{r}
			right = r.bbox.X1
		} else {
			current = append(current, r)
			if r.bbox.X1 > right {
				right = r.bbox.X1
			}
		}
	}
	strips = append(strips, current)
	return strips
}
