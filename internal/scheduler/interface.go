package scheduler

import (
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
)

// Scheduler turns candidate node sets into model.RoundCount rounds of n seeds.
type Scheduler interface {
	// ReplicateRound takes the first n candidates and repeats them for every
	// round.
	ReplicateRound(candidates []graph.NodeID, n int) (model.SeedPlan, error)

	// ResampleEachRound draws n distinct nodes from pool independently for
	// every round. It returns *InsufficientPoolError when the pool holds fewer
	// than n distinct nodes.
	ResampleEachRound(pool []graph.NodeID, n int) (model.SeedPlan, error)
}
