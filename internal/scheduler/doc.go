// Package scheduler expands a candidate set into a full game of seed rounds.
//
// # Why Scheduler Exists
//
// Strategies only decide *which* nodes are good candidates. How those
// candidates are spread over the RoundCount rounds of a game is a separate,
// reusable decision:
//
//   - **Replicate:** deterministic strategies play the same round every time,
//     so a re-run produces a byte-identical plan.
//   - **Resample:** randomised strategies draw an independent sample from a
//     larger pool for every round, so opponents cannot learn a fixed set.
//
// Keeping both behind one interface lets the registry compose any selector
// with either expansion without the selector knowing about rounds at all.
//
// # Randomness
//
// DefaultScheduler draws from the *rand.Rand it was built with. The app seeds
// it from configuration, so randomised plans are reproducible when the seed
// is fixed. A DefaultScheduler is not safe for concurrent use.
package scheduler
