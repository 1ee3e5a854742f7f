package registry

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/specialistvlad/seedgrid/internal/scheduler"
	"github.com/specialistvlad/seedgrid/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kindCounter counts computations per metric kind.
type kindCounter struct {
	mu    sync.Mutex
	calls map[metrics.Kind]int
}

func (c *kindCounter) Scores(ctx context.Context, g *graph.Graph, kind metrics.Kind) (metrics.ScoreMap, error) {
	c.mu.Lock()
	c.calls[kind]++
	c.mu.Unlock()
	return metrics.NewDefault().Scores(ctx, g, kind)
}

func (c *kindCounter) count(kind metrics.Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[kind]
}

func newRegistry(seed uint64, opts ...Option) *Registry {
	return New(metrics.NewCache(metrics.NewDefault()), scheduler.NewSeeded(seed), opts...)
}

// ringWithChords is a 30-node ring where every third node also links two
// steps ahead, giving uneven degree and centrality.
func ringWithChords() *graph.Graph {
	const size = 30
	b := graph.NewBuilder("ring")
	for i := 0; i < size; i++ {
		u := graph.NodeID(strconv.Itoa(i))
		b.AddEdge(u, graph.NodeID(strconv.Itoa((i+1)%size)))
		if i%3 == 0 {
			b.AddEdge(u, graph.NodeID(strconv.Itoa((i+2)%size)))
		}
	}
	return b.Build()
}

func star(leaves int) *graph.Graph {
	b := graph.NewBuilder("star")
	for i := 1; i <= leaves; i++ {
		b.AddEdge("0", graph.NodeID(strconv.Itoa(i)))
	}
	return b.Build()
}

func TestTable_EveryIDPopulated(t *testing.T) {
	t.Parallel()

	r := newRegistry(1)

	require.NoError(t, r.Validate())
	strategies := r.Strategies()
	require.Len(t, strategies, int(idCount))
	for i, s := range strategies {
		assert.Equal(t, ID(i), s.ID)
		assert.NotEmpty(t, s.Flag, "entry %d", i)
		assert.NotEmpty(t, s.Label, "entry %d", i)
		assert.NotNil(t, s.generate, "entry %d", i)
	}
}

func TestTable_MeasuresBoundPerEntry(t *testing.T) {
	t.Parallel()

	r := newRegistry(1)
	want := map[string]metrics.Kind{
		"deg": metrics.Degree, "btw": metrics.Betweenness, "clu": metrics.Clustering,
		"clo": metrics.Closeness, "ksh": metrics.CoreNumber,
		"degp": metrics.Degree, "kshp": metrics.CoreNumber,
		"degbtw": metrics.Betweenness, "degksh": metrics.CoreNumber,
	}

	for label, kind := range want {
		s, ok := r.Lookup(label)
		require.True(t, ok, label)
		assert.Equal(t, kind, s.Kind, label)
	}
}

func TestGenerate_PureMeasuresFollowTheirOwnMetric(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx := context.Background()
	g := ringWithChords()
	p := metrics.NewDefault()
	r := newRegistry(1)

	for _, id := range []ID{Deg, Btw, Clu, Clo, Ksh} {
		s, _ := r.Get(id)
		t.Run(s.Label, func(t *testing.T) {
			t.Parallel()

			scores, err := p.Scores(ctx, g, s.Kind)
			require.NoError(t, err)

			// --- Act ---
			plan, err := r.Generate(ctx, s, g, 4)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, model.SeedRound(selector.TopN(scores, 4)), plan[0])
		})
	}
}

func TestGenerate_StarDegree(t *testing.T) {
	t.Parallel()

	r := newRegistry(1)
	s, _ := r.Get(Deg)

	plan, err := r.Generate(context.Background(), s, star(4), 1)

	require.NoError(t, err)
	require.Len(t, plan, model.RoundCount)
	for i, round := range plan {
		assert.Equal(t, model.SeedRound{"0"}, round, "round %d", i)
	}
}

func TestGenerate_EveryStrategyProducesValidPlans(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := ringWithChords()
	const n = 3

	for _, s := range newRegistry(1).Strategies() {
		t.Run(s.Label, func(t *testing.T) {
			t.Parallel()

			first, err := newRegistry(99).Generate(ctx, s, g, n)
			require.NoError(t, err)
			require.NoError(t, first.Validate(g, n))

			// Same seed, same plan, randomized or not.
			second, err := newRegistry(99).Generate(ctx, s, g, n)
			require.NoError(t, err)
			assert.True(t, first.Equal(second))

			if !s.Randomized {
				for i := range first {
					assert.Equal(t, first[0], first[i], "deterministic strategies repeat round 0")
				}
			}
		})
	}
}

func TestGenerate_RandomizedMeasureDrawsFromPool(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := ringWithChords()
	const n = 4
	r := newRegistry(5)
	s, _ := r.Get(BtwP)

	scores, err := metrics.NewDefault().Scores(ctx, g, metrics.Betweenness)
	require.NoError(t, err)
	pool := make(map[graph.NodeID]bool)
	for _, id := range selector.TopN(scores, 6) {
		pool[id] = true
	}

	plan, err := r.Generate(ctx, s, g, n)

	require.NoError(t, err)
	for _, id := range plan.Flatten() {
		assert.True(t, pool[id], "seed %s outside ceil(1.5n) pool", id)
	}
}

func TestGenerate_SeedCountOutOfRange(t *testing.T) {
	t.Parallel()

	r := newRegistry(1)
	s, _ := r.Get(Deg)

	_, err := r.Generate(context.Background(), s, star(2), 4)
	require.Error(t, err)
	_, err = r.Generate(context.Background(), s, star(2), 0)
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRegistry(1)

	t.Run("all expands in ID order", func(t *testing.T) {
		t.Parallel()

		got, err := r.Resolve(ctx, []string{"all"}, false)

		require.NoError(t, err)
		require.Len(t, got, int(idCount))
		assert.Equal(t, Deg, got[0].ID)
		assert.Equal(t, Random, got[len(got)-1].ID)
	})

	t.Run("flags and labels, repeats dropped", func(t *testing.T) {
		t.Parallel()

		got, err := r.Resolve(ctx, []string{"a2k", "deg", "d", "ks"}, false)

		require.NoError(t, err)
		var labels []string
		for _, s := range got {
			labels = append(labels, s.Label)
		}
		assert.Equal(t, []string{"alt2ksh", "deg", "kshell_support"}, labels)
	})

	t.Run("unknown flag skipped", func(t *testing.T) {
		t.Parallel()

		got, err := r.Resolve(ctx, []string{"zz", "b"}, false)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, Btw, got[0].ID)
	})

	t.Run("unknown flag rejected in strict mode", func(t *testing.T) {
		t.Parallel()

		_, err := r.Resolve(ctx, []string{"b", "zz"}, true)

		require.ErrorIs(t, err, ErrUnknownStrategy)
		assert.Contains(t, err.Error(), "zz")
	})
}

func TestPrefilterSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 15, newRegistry(1).prefilterSize(5))
	assert.Equal(t, 3000, newRegistry(1, WithPrefilterSize(3000)).prefilterSize(5))
	assert.Equal(t, 8, poolSize(5))
	assert.Equal(t, 6, poolSize(4))
}

func TestGenerate_FilteredRankingSharedAcrossStrategies(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	counter := &kindCounter{calls: map[metrics.Kind]int{}}
	r := New(metrics.NewCache(counter), scheduler.NewSeeded(3))
	g := ringWithChords()
	ctx := context.Background()

	// --- Act ---
	for _, id := range []ID{DegKsh, Alt2Ksh, Alt2KshP} {
		s, ok := r.Get(id)
		require.True(t, ok)
		_, err := r.Generate(ctx, s, g, 3)
		require.NoError(t, err, "strategy %s", s.Label)
	}

	// --- Assert ---
	assert.Equal(t, 1, counter.count(metrics.CoreNumber), "the degree-filtered core ranking is computed once")
	assert.Equal(t, 1, counter.count(metrics.Degree))
}
