// Package hcl provides the HCL implementation of the config.Loader interface.
// It is responsible for parsing sheet definition files, evaluating their
// expressions against the built-in defaults and translating the decoded
// blocks into the format-agnostic config model.
//
// A sheet definition looks like:
//
//	sheet {
//	  columns    = 12
//	  scale      = defaults.scale * 2
//	  line_width = max(defaults.line_width, 6)
//	}
//
//	row "crosses" {
//	  resolution = 3
//	  symmetry   = "horizontalvertical"
//	  motif      = lower("ORTHOGONAL")
//	  unique     = true
//	}
package hcl
