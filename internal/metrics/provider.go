package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/graph"
)

// Provider computes a ScoreMap for a graph. Implementations must cover every
// node of g and leave g untouched.
type Provider interface {
	Scores(ctx context.Context, g *graph.Graph, kind Kind) (ScoreMap, error)
}

// Default is the built-in Provider.
type Default struct{}

// NewDefault returns the built-in Provider.
func NewDefault() *Default {
	return &Default{}
}

// Scores implements Provider.
func (d *Default) Scores(ctx context.Context, g *graph.Graph, kind Kind) (ScoreMap, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	var (
		scores ScoreMap
		err    error
	)
	switch kind {
	case Degree:
		scores = degreeCentrality(g)
	case Betweenness:
		scores, err = betweennessCentrality(ctx, g)
	case Closeness:
		scores, err = closenessCentrality(ctx, g)
	case CoreNumber:
		// Self-loops would inflate every degree; strip them on a private copy.
		scores = coreNumber(g.Mutable().RemoveSelfLoops().Build())
	case Clustering:
		scores = clusteringCoefficient(g)
	default:
		return nil, fmt.Errorf("unsupported metric %s", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s: %w", kind, err)
	}

	logger.Debug("Metric computed.", "metric", kind.String(), "graph", g.Name(), "nodes", g.Len(), "elapsed", time.Since(start))
	return scores, nil
}
