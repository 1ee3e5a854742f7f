package registry

import (
	"context"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/specialistvlad/seedgrid/internal/selector"
)

// buildTable fills one entry per ID. Every measure is passed by value into
// its generator constructor.
func buildTable() [idCount]Strategy {
	var t [idCount]Strategy

	for i, m := range measures {
		pure := Deg + ID(i)
		t[pure] = Strategy{
			ID: pure, Flag: m.flag, Label: m.label,
			Family: PureMeasure, Kind: m.kind, Needs: []metrics.Kind{m.kind},
			generate: topMeasure(m.kind),
		}

		randomized := DegP + ID(i)
		t[randomized] = Strategy{
			ID: randomized, Flag: "p" + m.flag, Label: m.label + "p",
			Family: RandomizedMeasure, Kind: m.kind, Randomized: true, Needs: []metrics.Kind{m.kind},
			generate: sampledMeasure(m.kind),
		}

		filtered := DegDeg + ID(i)
		t[filtered] = Strategy{
			ID: filtered, Flag: "d" + m.flag, Label: "deg" + m.label,
			Family: FilteredMeasure, Kind: m.kind, Needs: []metrics.Kind{metrics.Degree},
			generate: filteredMeasure(m.kind),
		}
	}

	t[AltDeg1] = Strategy{
		ID: AltDeg1, Flag: "a1", Label: "altdeg1",
		Family: Composite, Kind: metrics.Degree, Needs: []metrics.Kind{metrics.Degree},
		generate: altDegree(1),
	}
	t[AltDeg2] = Strategy{
		ID: AltDeg2, Flag: "a2", Label: "altdeg2",
		Family: Composite, Kind: metrics.Degree, Needs: []metrics.Kind{metrics.Degree},
		generate: altDegree(2),
	}
	t[KShellSupport] = Strategy{
		ID: KShellSupport, Flag: "ks", Label: "kshell_support",
		Family: Composite, Kind: metrics.CoreNumber, Needs: []metrics.Kind{metrics.CoreNumber},
		generate: kshellSupport,
	}
	t[Alt2Ksh] = Strategy{
		ID: Alt2Ksh, Flag: "a2k", Label: "alt2ksh",
		Family: Composite, Kind: metrics.Degree, Needs: []metrics.Kind{metrics.Degree},
		generate: alt2ksh(false),
	}
	t[Alt2KshP] = Strategy{
		ID: Alt2KshP, Flag: "a2kp", Label: "alt2kshp",
		Family: Composite, Kind: metrics.Degree, Randomized: true, Needs: []metrics.Kind{metrics.Degree},
		generate: alt2ksh(true),
	}
	t[Random] = Strategy{
		ID: Random, Flag: "r", Label: "rand",
		Family: Composite, Randomized: true,
		generate: uniform,
	}
	return t
}

func topMeasure(kind metrics.Kind) generateFunc {
	return func(ctx context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error) {
		scores, err := r.metrics.Scores(ctx, g, kind)
		if err != nil {
			return nil, err
		}
		return r.scheduler.ReplicateRound(selector.TopN(scores, n), n)
	}
}

func sampledMeasure(kind metrics.Kind) generateFunc {
	return func(ctx context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error) {
		scores, err := r.metrics.Scores(ctx, g, kind)
		if err != nil {
			return nil, err
		}
		return r.scheduler.ResampleEachRound(selector.TopN(scores, poolSize(n)), n)
	}
}

func filteredMeasure(kind metrics.Kind) generateFunc {
	return func(ctx context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error) {
		ids, err := r.filteredTopN(ctx, g, kind, n)
		if err != nil {
			return nil, err
		}
		return r.scheduler.ReplicateRound(ids, n)
	}
}

func altDegree(k int) generateFunc {
	return func(ctx context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error) {
		ids, err := selector.AltDegree(ctx, r.metrics, g, n, k)
		if err != nil {
			return nil, err
		}
		return r.scheduler.ReplicateRound(ids, n)
	}
}

func kshellSupport(ctx context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error) {
	ids, err := selector.KShellSupport(ctx, r.metrics, g, n)
	if err != nil {
		return nil, err
	}
	return r.scheduler.ReplicateRound(ids, n)
}

// alt2ksh combines altdeg2 with degree-filtered core number, either
// interleaved into one fixed round or as a pool sampled per round.
func alt2ksh(randomized bool) generateFunc {
	return func(ctx context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error) {
		alt, err := selector.AltDegree(ctx, r.metrics, g, n, 2)
		if err != nil {
			return nil, err
		}
		core, err := r.filteredTopN(ctx, g, metrics.CoreNumber, n)
		if err != nil {
			return nil, err
		}
		if randomized {
			return r.scheduler.ResampleEachRound(selector.Union(alt, core), n)
		}
		return r.scheduler.ReplicateRound(selector.Interleave(alt, core, n), n)
	}
}

func uniform(_ context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error) {
	return r.scheduler.ResampleEachRound(g.Nodes(), n)
}

// poolSize is ceil(1.5n), the candidate pool of the randomized measures.
func poolSize(n int) int {
	return (3*n + 1) / 2
}
