// Package style classifies text appearance: header levels from a
// document-wide font-size histogram or from the document outline, plus
// per-line bold, italic, monospace, strikeout and list-marker detection.
//
// The histogram is the one cross-page artifact of the engine. It is built in
// a first pass over every page and is immutable afterwards, so per-page
// classification can run concurrently without locking.
package style
