// Package schema holds the HCL decoding targets for a run manifest.
//
// These structs mirror the file layout one to one and carry only `hcl` tags.
// Translation into config.Manifest, including defaults and duration parsing,
// happens in the hcl package.
package schema

// Recorded represents a `recorded` block: one file or directory of recorded
// opponent plans.
type Recorded struct {
	Path string `hcl:"path"`
}

// Live represents the `live` block. At most one is allowed per manifest.
type Live struct {
	URL       string  `hcl:"url"`
	Namespace *string `hcl:"namespace,optional"`
	Timeout   *string `hcl:"timeout,optional"`
}

// Manifest represents the top-level attributes and repeated blocks of a
// manifest file. The `live` block is extracted before decoding.
type Manifest struct {
	GraphDir        *string     `hcl:"graph_dir,optional"`
	SeedDir         *string     `hcl:"seed_dir,optional"`
	Trials          *int        `hcl:"trials,optional"`
	RandSeed        *uint64     `hcl:"rand_seed,optional"`
	Workers         *int        `hcl:"workers,optional"`
	PrefilterSize   *int        `hcl:"prefilter_size,optional"`
	IsolateFailures *bool       `hcl:"isolate_failures,optional"`
	Strict          *bool       `hcl:"strict,optional"`
	Strategies      []string    `hcl:"strategies,optional"`
	Report          *string     `hcl:"report,optional"`
	Recorded        []*Recorded `hcl:"recorded,block"`
}
