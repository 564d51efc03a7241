// Package config defines the format-agnostic model of a sheet definition and
// the Loader interface implemented by the concrete file formats.
//
// A Loader only parses: it returns one Document per file with every field it
// found and nothing else. Assemble then merges documents on top of the
// built-in sheet, applies row defaults and validates the result, so all
// formats share the same precedence and error rules. Concrete loaders, such
// as for HCL, are provided in separate packages.
package config
