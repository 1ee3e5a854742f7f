package selector

import (
	"context"
	"fmt"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
)

// DegreeFilteredTopN approximates "the best nodes by kind among the
// structurally central ones". It keeps the preFilterSize highest-degree nodes,
// induces the subgraph on them, scores that subgraph by kind and returns its
// top n. A preFilterSize below n is raised to n. The subgraph is scored
// through metrics.Uncached since it is built anew on every call.
func DegreeFilteredTopN(ctx context.Context, p metrics.Provider, g *graph.Graph, kind metrics.Kind, n, preFilterSize int) ([]graph.NodeID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seed count must be positive, got %d", n)
	}
	if preFilterSize < n {
		preFilterSize = n
	}

	degrees, err := p.Scores(ctx, g, metrics.Degree)
	if err != nil {
		return nil, fmt.Errorf("failed to score degree: %w", err)
	}
	sub := g.Subgraph(TopN(degrees, preFilterSize))

	scores, err := metrics.Uncached(p).Scores(ctx, sub, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to score %s on degree-filtered subgraph: %w", kind, err)
	}
	return TopN(scores, n), nil
}
