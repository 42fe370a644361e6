package model

// Document is the full extractor output for one source file
type Document struct {
	// Pages in source order. A nil entry marks a page the extractor
	// failed to produce; conversion isolates it and continues.
	Pages []*Page

	// Outline holds the table of contents, possibly empty
	Outline []OutlineItem
}

// PageCount returns the number of pages including failed ones
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Select returns the pages at the given zero-based indexes, preserving the
// requested order. Out-of-range indexes are skipped. A nil selection returns
// all pages.
func (d *Document) Select(pages []int) []*Page {
	if pages == nil {
		return d.Pages
	}
	selected := make([]*Page, 0, len(pages))
	for _, n := range pages {
		if n < 0 || n >= len(d.Pages) {
			continue
		}
		selected = append(selected, d.Pages[n])
	}
	return selected
}
