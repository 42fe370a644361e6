// Package model defines the geometric primitives and page elements that the
// rest of the engine operates on.
//
// All coordinates use a top-left origin: X grows to the right, Y grows down
// the page, matching the coordinate system delivered by the extractor. A
// rectangle is stored as its two corners (X0,Y0)-(X1,Y1) with Y0 being the
// top edge.
//
// Page objects are built once from extractor output and are geometry-immutable
// afterwards. Later pipeline stages only attach derived attributes such as
// visibility flags and header levels.
package model
