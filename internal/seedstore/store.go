// Package seedstore defines where generated seed plans are persisted between
// runs and the cache contract built on top of it.
//
// # Why Seed Store Exists
//
// Generating a plan can be expensive (betweenness on a large graph), and a
// team usually wants to replay exactly the seeds it submitted. The store keys
// plans by (strategy label, graph name) so that:
//   - **Reproducibility:** a cached plan is reused verbatim, never regenerated
//     behind the caller's back
//   - **Inspection:** the file-backed store writes plain text that can be
//     diffed, edited by hand, or submitted as-is
//   - **Testability:** the in-memory store lets the app be tested without disk
//
// # Cache Contract
//
// Fetch loads a persisted plan and validates it against the current graph and
// seed count. A plan that does not fit is reported as an error: the caller
// decides whether to delete it, it is never silently replaced.
package seedstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
)

// ErrNotFound is returned by Load when no plan is stored under a key.
var ErrNotFound = errors.New("seed plan not found")

// Store persists flat seed lists: RoundCount × n ids, round after round.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Exists reports whether a plan is stored for (label, graphName).
	Exists(ctx context.Context, label, graphName string) (bool, error)

	// Load returns the stored ids in order, or ErrNotFound.
	Load(ctx context.Context, label, graphName string) ([]graph.NodeID, error)

	// Save replaces whatever is stored for (label, graphName).
	Save(ctx context.Context, label, graphName string, plan model.SeedPlan) error
}

// Fetch returns the cached plan for label on g. The boolean is false when
// nothing is cached. A cached plan that is not RoundCount rounds of n
// distinct nodes of g is an error.
func Fetch(ctx context.Context, s Store, label string, g *graph.Graph, n int) (model.SeedPlan, bool, error) {
	logger := ctxlog.FromContext(ctx)

	ok, err := s.Exists(ctx, label, g.Name())
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up cached seeds for %s/%s: %w", label, g.Name(), err)
	}
	if !ok {
		return nil, false, nil
	}

	ids, err := s.Load(ctx, label, g.Name())
	if err != nil {
		return nil, false, fmt.Errorf("failed to load cached seeds for %s/%s: %w", label, g.Name(), err)
	}
	plan, err := model.PlanFromFlat(ids, n)
	if err != nil {
		return nil, false, fmt.Errorf("cached seeds for %s/%s: %w", label, g.Name(), err)
	}
	if err := plan.Validate(g, n); err != nil {
		return nil, false, fmt.Errorf("cached seeds for %s/%s: %w", label, g.Name(), err)
	}

	logger.Debug("Reusing cached seeds.", "strategy", label, "graph", g.Name())
	return plan, true, nil
}
