package hcl

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/symbolgen/internal/config"
	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/sheet"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes the built-in sheet values as `defaults` and a small
// set of numeric and string functions.
func newEvalContext() *hcl.EvalContext {
	d := sheet.Default()
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"columns":    cty.NumberIntVal(int64(d.Columns)),
				"scale":      cty.NumberFloatVal(d.Scale),
				"spacing":    cty.NumberFloatVal(d.Spacing),
				"line_width": cty.NumberFloatVal(d.LineWidth),
				"density":    cty.NumberIntVal(sheet.DefaultDensity),
			}),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"abs":   stdlib.AbsoluteFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"lower": stdlib.LowerFunc,
			"upper": stdlib.UpperFunc,
		},
	}
}

// translate converts the decoded HCL blocks of one file into the agnostic model.
func (l *Loader) translate(file string, root *fileRoot) (*config.Document, error) {
	doc := &config.Document{Source: file}

	if s := root.Sheet; s != nil {
		settings := &config.Settings{
			Columns:   s.Columns,
			Scale:     s.Scale,
			Spacing:   s.Spacing,
			LineWidth: s.LineWidth,
		}
		offset, err := l.seedOffset(s.SeedOffset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		settings.SeedOffset = offset
		doc.Settings = settings
	}

	for _, r := range root.Rows {
		spec, err := translateRow(r)
		if err != nil {
			return nil, fmt.Errorf("%s: row %q: %w", file, r.Name, err)
		}
		doc.Rows = append(doc.Rows, spec)
	}
	return doc, nil
}

// seedOffset evaluates the seed_offset expression. A missing attribute yields
// nil.
func (l *Loader) seedOffset(expr hcl.Expression) (*uint64, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(l.evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid seed_offset: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	val, err := convert.Convert(val, cty.Number)
	if err != nil {
		return nil, fmt.Errorf("invalid seed_offset: %w", err)
	}
	if !val.IsKnown() || val.IsNull() {
		return nil, errors.New("invalid seed_offset: value must be known")
	}

	bf := val.AsBigFloat()
	if !bf.IsInt() {
		return nil, fmt.Errorf("seed_offset must be a whole number, got %s", bf.Text('g', -1))
	}
	n, _ := bf.Int(nil)
	if n.Sign() < 0 {
		return nil, fmt.Errorf("seed_offset must not be negative, got %s", n)
	}
	if !n.IsUint64() {
		return nil, fmt.Errorf("seed_offset must be at most %d, got %s", uint64(math.MaxUint64), n)
	}
	offset := n.Uint64()
	return &offset, nil
}

func translateRow(r *rowBlock) (*config.RowSpec, error) {
	spec := &config.RowSpec{
		Name:       r.Name,
		Resolution: r.Resolution,
		Density:    r.Density,
		Unique:     r.Unique,
	}
	if r.Symmetry != nil {
		sym, err := glyph.ParseSymmetry(*r.Symmetry)
		if err != nil {
			return nil, err
		}
		spec.Symmetry = &sym
	}
	if r.Motif != nil {
		motif, err := glyph.ParseMotif(*r.Motif)
		if err != nil {
			return nil, err
		}
		spec.Motif = &motif
	}
	return spec, nil
}
