// Package metrics computes per-node structural scores (ScoreMaps) over a
// graph.
//
// The selectors consume scores through the Provider interface and never
// assume how a score was produced. Default implements the five measures the
// strategies need. Hop distances come from lvlath BFS and core numbers from
// gonum's degeneracy ordering. Cache memoises results per (graph, kind) so
// that strategies sharing a measure compute it once per run.
//
// Providers must not mutate the graph they are given. Core numbers require a
// graph without self-loops, so Default computes them on a private copy.
package metrics
