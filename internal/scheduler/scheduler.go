package scheduler

import (
	"fmt"
	"math/rand/v2"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
)

// InsufficientPoolError is returned when a strategy asks for more seeds than
// its candidate pool can provide.
type InsufficientPoolError struct {
	Pool int
	Need int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("candidate pool of %d nodes cannot supply %d seeds per round", e.Pool, e.Need)
}

// DefaultScheduler is the reference Scheduler.
type DefaultScheduler struct {
	rng *rand.Rand
}

// New creates a scheduler drawing from rng.
func New(rng *rand.Rand) *DefaultScheduler {
	return &DefaultScheduler{rng: rng}
}

// NewSeeded creates a scheduler with its own PCG source.
func NewSeeded(seed uint64) *DefaultScheduler {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// ReplicateRound implements Scheduler.
func (s *DefaultScheduler) ReplicateRound(candidates []graph.NodeID, n int) (model.SeedPlan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seed count must be positive, got %d", n)
	}
	round := make(model.SeedRound, 0, n)
	seen := make(map[graph.NodeID]struct{}, n)
	for _, id := range candidates {
		if len(round) == n {
			break
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		round = append(round, id)
	}
	if len(round) < n {
		return nil, &InsufficientPoolError{Pool: len(round), Need: n}
	}
	return model.Repeat(round), nil
}

// ResampleEachRound implements Scheduler.
func (s *DefaultScheduler) ResampleEachRound(pool []graph.NodeID, n int) (model.SeedPlan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seed count must be positive, got %d", n)
	}
	distinct := dedupe(pool)
	if len(distinct) < n {
		return nil, &InsufficientPoolError{Pool: len(distinct), Need: n}
	}

	plan := make(model.SeedPlan, model.RoundCount)
	scratch := make([]graph.NodeID, len(distinct))
	for i := range plan {
		copy(scratch, distinct)
		// Partial Fisher–Yates: the first n slots become the sample.
		for j := 0; j < n; j++ {
			k := j + s.rng.IntN(len(scratch)-j)
			scratch[j], scratch[k] = scratch[k], scratch[j]
		}
		plan[i] = append(model.SeedRound(nil), scratch[:n]...)
	}
	return plan, nil
}

// dedupe keeps the first occurrence of every id, preserving order.
func dedupe(ids []graph.NodeID) []graph.NodeID {
	out := make([]graph.NodeID, 0, len(ids))
	seen := make(map[graph.NodeID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
