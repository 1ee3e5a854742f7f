// Package config defines the format-agnostic run manifest and the Loader
// interface that produces it.
//
// The `config.Manifest` is what the app merges with command-line flags.
// Concrete loaders, such as for HCL, are provided in separate packages.
package config
