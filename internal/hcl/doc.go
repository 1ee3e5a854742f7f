// Package hcl provides the concrete HCL implementation of config.Loader.
// It is responsible for file parsing, the expression evaluation context and
// translating schema structs into the format-agnostic config.Manifest.
//
// A manifest looks like:
//
//	graph_dir  = "graphs"
//	seed_dir   = "seeds"
//	trials     = 50
//	rand_seed  = 7
//	strategies = ["d", "a2k", "ks"]
//
//	recorded {
//	  path = "previous/${graph}.json"
//	}
//
//	live {
//	  url     = "http://localhost:8080"
//	  timeout = "20s"
//	}
//
// Expressions can reference `graph` (the graph name) and `seeds` (the seed
// count per round).
package hcl
