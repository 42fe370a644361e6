// Package graphics filters invisible page content and separates structural
// vector graphics from decorative noise.
//
// The visibility filter determines the page background color from the four
// corner pixels and marks fill-only drawings painted in that color, as well
// as fully transparent text, as invisible. The classifier then decides which
// of the surviving drawings are worth keeping: decorative frames, background
// fills and negligibly small paths are discarded, and a configurable ceiling
// bounds the number of significant out-of-table drawings per page.
package graphics
