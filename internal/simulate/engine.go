package simulate

import (
	"context"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
)

// Engine runs trials of a competition. Trial t plays round t of every plan.
type Engine interface {
	Run(ctx context.Context, g *graph.Graph, data model.CompetitorData, trials int) (model.CompetitionResult, error)
}
