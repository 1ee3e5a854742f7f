package config

import "context"

// Vars are the values a manifest may reference in expressions.
type Vars struct {
	// Graph is the graph name, e.g. "2.10.1".
	Graph string
	// Seeds is the seed count per round.
	Seeds int
}

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest at path, evaluating expressions against vars.
	Load(ctx context.Context, path string, vars Vars) (*Manifest, error)
}
