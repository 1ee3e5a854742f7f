package config

import "time"

// Manifest is the unified, format-agnostic run configuration. Nil pointers
// and empty values mean "not set" so that command-line flags and built-in
// defaults can fill them.
type Manifest struct {
	GraphDir        string
	SeedDir         string
	Trials          *int
	RandSeed        *uint64
	Workers         *int
	PrefilterSize   *int
	IsolateFailures *bool
	Strict          *bool
	Strategies      []string
	Recorded        []string
	Live            *LiveFeed
	Report          string
}

// LiveFeed is the format-agnostic representation of a `live` block.
type LiveFeed struct {
	URL       string
	Namespace string
	Timeout   time.Duration
}
