// Package imaging turns extracted raster images into markdown targets.
//
// Images are either written to disk and referenced by relative path, or
// embedded inline as base64 data URIs. Supported output formats are PNG,
// JPEG, TIFF and BMP.
package imaging
