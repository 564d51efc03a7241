package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all possible top-level blocks from any file. Anything
// else in a file is rejected by the decoder.
type fileRoot struct {
	Sheet *sheetBlock `hcl:"sheet,block"`
	Rows  []*rowBlock `hcl:"row,block"`
}

// sheetBlock is the `sheet` block. Every attribute is optional. seed_offset
// stays an expression and is converted to a uint64 during translation.
type sheetBlock struct {
	Columns    *int           `hcl:"columns,optional"`
	Scale      *float64       `hcl:"scale,optional"`
	Spacing    *float64       `hcl:"spacing,optional"`
	LineWidth  *float64       `hcl:"line_width,optional"`
	SeedOffset hcl.Expression `hcl:"seed_offset,optional"`
}

// rowBlock is a `row "<name>"` block.
type rowBlock struct {
	Name       string  `hcl:"name,label"`
	Resolution int     `hcl:"resolution"`
	Density    *int    `hcl:"density,optional"`
	Symmetry   *string `hcl:"symmetry,optional"`
	Motif      *string `hcl:"motif,optional"`
	Unique     *bool   `hcl:"unique,optional"`
}
