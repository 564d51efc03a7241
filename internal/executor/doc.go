// Package executor generates the glyphs of a sheet concurrently. Every cell
// is an independent job handed to a fixed pool of workers; results are written
// back by index, so the produced layout is identical whatever the worker count.
package executor
