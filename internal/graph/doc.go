// Package graph holds the canonical social graph that every strategy in a run
// reads from.
//
// # Ownership
//
// A run loads exactly one Graph. It is shared by every strategy, by the
// metrics cache, and by the simulator, so it exposes no mutators at all:
//
//	┌──────────────┐  Mutable()   ┌──────────────┐  Build()   ┌──────────────┐
//	│ Graph        │ ───────────▶ │ Builder      │ ─────────▶ │ Graph        │
//	│ (canonical,  │              │ (private     │            │ (new, also   │
//	│  read-only)  │              │  structural  │            │  read-only)  │
//	└──────────────┘              │  copy)       │            └──────────────┘
//	                              └──────────────┘
//
// Algorithms that need to drop self-loops, nodes or edges (core numbers,
// induced subgraphs) work on a Builder obtained from Mutable() or on the
// result of Subgraph(), never on the shared instance.
//
// # Node identifiers
//
// Node ids are text. Graph files may list neighbours as numbers or strings;
// both are normalised to their textual form. NodeID.Less orders integer-like
// ids numerically and everything else lexicographically, and is the single
// tie-break rule used by the selectors.
//
// # Input format
//
// Load reads <dir>/<name>.json, an object mapping each node id to an array of
// adjacent ids. Adjacency is symmetrised on load.
package graph
