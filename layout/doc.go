// Package layout reconstructs the structure of a page from its raw
// primitives.
//
// The line and block builders cluster glyph runs into baseline-aligned lines
// and paragraph-like text blocks. The resolver then partitions the page into
// columns and atomic regions and linearizes text blocks, tables and images
// into a deterministic reading order.
//
// The ordering is a heuristic: regular column layouts come out in natural
// Western reading order, while irregular multi-frame designs get a
// deterministic but not necessarily "human" sequence.
package layout
