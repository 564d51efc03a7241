// Package glyph generates procedural symbols. A glyph is a small set of line
// segments drawn between points of a square grid, produced deterministically
// from a seed by an Alphabet that fixes the grid resolution, how many lines
// are attempted, which directions they may take and how they are mirrored.
//
// All coordinates returned by this package live in the unit square, so a
// caller scales and offsets them to place a glyph on a canvas.
package glyph
