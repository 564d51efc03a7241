package config

import "context"

// Loader is the interface for a format-specific sheet definition loader.
type Loader interface {
	// Load reads every file of its format found under paths. A path may name
	// a file or a directory; paths that do not exist are skipped.
	Load(ctx context.Context, paths ...string) ([]*Document, error)

	// Extensions lists the file extensions, with leading dot, the loader
	// understands.
	Extensions() []string
}
