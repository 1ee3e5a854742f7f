// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines seed rounds and seed plans together with the conversion
// to and from the flat one-id-per-line layout used on disk.
package model

import (
	"fmt"

	"github.com/specialistvlad/seedgrid/internal/graph"
)

// RoundCount is the number of rounds in every game.
const RoundCount = 50

// SeedRound is the ordered seed set of one team in one round.
type SeedRound []graph.NodeID

// SeedPlan is a full game's worth of seed rounds.
type SeedPlan []SeedRound

// InvalidPlanError describes why a plan breaks the 50 × n invariant.
type InvalidPlanError struct {
	Round  int // -1 when the problem is not tied to one round
	Reason string
}

func (e *InvalidPlanError) Error() string {
	if e.Round < 0 {
		return "invalid seed plan: " + e.Reason
	}
	return fmt.Sprintf("invalid seed plan: round %d: %s", e.Round, e.Reason)
}

// SeedCount returns the size of the first round, or 0 for an empty plan.
func (p SeedPlan) SeedCount() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Validate checks that p has RoundCount rounds of exactly n distinct ids and,
// when g is non-nil, that every id is a node of g.
func (p SeedPlan) Validate(g *graph.Graph, n int) error {
	if n <= 0 {
		return &InvalidPlanError{Round: -1, Reason: fmt.Sprintf("seed count must be positive, got %d", n)}
	}
	if len(p) != RoundCount {
		return &InvalidPlanError{Round: -1, Reason: fmt.Sprintf("expected %d rounds, got %d", RoundCount, len(p))}
	}
	for i, round := range p {
		if len(round) != n {
			return &InvalidPlanError{Round: i, Reason: fmt.Sprintf("expected %d seeds, got %d", n, len(round))}
		}
		seen := make(map[graph.NodeID]struct{}, n)
		for _, id := range round {
			if _, dup := seen[id]; dup {
				return &InvalidPlanError{Round: i, Reason: fmt.Sprintf("duplicate seed %q", id)}
			}
			seen[id] = struct{}{}
			if g != nil && !g.Has(id) {
				return &InvalidPlanError{Round: i, Reason: fmt.Sprintf("seed %q is not in graph %q", id, g.Name())}
			}
		}
	}
	return nil
}

// Flatten concatenates all rounds in order.
func (p SeedPlan) Flatten() []graph.NodeID {
	out := make([]graph.NodeID, 0, len(p)*p.SeedCount())
	for _, round := range p {
		out = append(out, round...)
	}
	return out
}

// Clone returns a deep copy of p.
func (p SeedPlan) Clone() SeedPlan {
	out := make(SeedPlan, len(p))
	for i, round := range p {
		out[i] = append(SeedRound(nil), round...)
	}
	return out
}

// Equal reports whether p and q hold the same ids in the same positions.
func (p SeedPlan) Equal(q SeedPlan) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if len(p[i]) != len(q[i]) {
			return false
		}
		for j := range p[i] {
			if p[i][j] != q[i][j] {
				return false
			}
		}
	}
	return true
}

// Repeat builds a plan that uses round for every one of the RoundCount rounds.
// Each round is its own slice.
func Repeat(round SeedRound) SeedPlan {
	plan := make(SeedPlan, RoundCount)
	for i := range plan {
		plan[i] = append(SeedRound(nil), round...)
	}
	return plan
}

// PlanFromFlat splits a flat id list into a plan of n-sized rounds. Two
// layouts are accepted: RoundCount × n ids (one entry per round) and exactly
// n ids, which are replicated to every round.
func PlanFromFlat(ids []graph.NodeID, n int) (SeedPlan, error) {
	if n <= 0 {
		return nil, &InvalidPlanError{Round: -1, Reason: fmt.Sprintf("seed count must be positive, got %d", n)}
	}
	switch len(ids) {
	case n:
		return Repeat(ids), nil
	case RoundCount * n:
		plan := make(SeedPlan, RoundCount)
		for i := range plan {
			plan[i] = append(SeedRound(nil), ids[i*n:(i+1)*n]...)
		}
		return plan, nil
	default:
		return nil, &InvalidPlanError{
			Round:  -1,
			Reason: fmt.Sprintf("%d ids is neither %d (one round) nor %d (%d rounds of %d)", len(ids), n, RoundCount*n, RoundCount, n),
		}
	}
}

// Normalize stretches a plan with fewer than RoundCount rounds by cycling its
// rounds, so that recorded opponents with a single round can play a full
// game. Plans that already have RoundCount rounds are returned as a copy;
// longer plans are truncated.
func Normalize(p SeedPlan) (SeedPlan, error) {
	if len(p) == 0 {
		return nil, &InvalidPlanError{Round: -1, Reason: "plan has no rounds"}
	}
	out := make(SeedPlan, RoundCount)
	for i := range out {
		out[i] = append(SeedRound(nil), p[i%len(p)]...)
	}
	return out, nil
}
