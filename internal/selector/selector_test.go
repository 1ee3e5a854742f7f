package selector

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func star(leaves int) *graph.Graph {
	b := graph.NewBuilder("star")
	for i := 1; i <= leaves; i++ {
		b.AddEdge("0", graph.NodeID(strconv.Itoa(i)))
	}
	return b.Build()
}

func complete(n int) *graph.Graph {
	b := graph.NewBuilder("complete")
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.AddEdge(graph.NodeID(strconv.Itoa(i)), graph.NodeID(strconv.Itoa(j)))
		}
	}
	return b.Build()
}

func path(n int) *graph.Graph {
	b := graph.NewBuilder("path")
	for i := 1; i < n; i++ {
		b.AddEdge(graph.NodeID(strconv.Itoa(i)), graph.NodeID(strconv.Itoa(i+1)))
	}
	return b.Build()
}

// kite has a clear betweenness and closeness structure: two triangles
// sharing an edge, with a tail hanging off node 4.
func kite() *graph.Graph {
	return graph.NewBuilder("kite").
		AddEdge("1", "2").AddEdge("1", "3").AddEdge("2", "3").
		AddEdge("2", "4").AddEdge("3", "4").
		AddEdge("4", "5").AddEdge("5", "6").AddEdge("6", "7").
		Build()
}

func TestTopN_TieBreakByID(t *testing.T) {
	t.Parallel()

	scores := metrics.ScoreMap{"10": 1, "9": 1, "b": 1, "a": 2, "3": 0}

	assert.Equal(t, graph.IDsOf("a", "9", "10"), TopN(scores, 3))
	assert.Equal(t, graph.IDsOf("a", "9", "10", "b", "3"), TopN(scores, 10))
	assert.Empty(t, TopN(scores, 0))
}

func TestTopN_StarCentre(t *testing.T) {
	t.Parallel()

	scores, err := metrics.NewDefault().Scores(context.Background(), star(4), metrics.Degree)
	require.NoError(t, err)

	assert.Equal(t, graph.IDsOf("0"), TopN(scores, 1))
}

func TestDegreeFilteredTopN_FullPrefilterMatchesTopN(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := metrics.NewDefault()
	g := kite()

	for _, kind := range []metrics.Kind{metrics.Degree, metrics.Closeness, metrics.CoreNumber} {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			scores, err := p.Scores(ctx, g, kind)
			require.NoError(t, err)
			want := TopN(scores, 3)

			// --- Act ---
			got, err := DegreeFilteredTopN(ctx, p, g, kind, 3, g.Len())

			// --- Assert ---
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("DegreeFilteredTopN mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDegreeFilteredTopN_RestrictsToHighDegree(t *testing.T) {
	t.Parallel()

	// The tail nodes 5..7 have degree <= 2 and are cut by a prefilter of 4.
	got, err := DegreeFilteredTopN(context.Background(), metrics.NewDefault(), kite(), metrics.Closeness, 4, 4)

	require.NoError(t, err)
	assert.ElementsMatch(t, graph.IDsOf("1", "2", "3", "4"), got)
}

func TestDegreeFilteredTopN_LeavesSubgraphsOutOfCache(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cache := metrics.NewCache(metrics.NewDefault())
	g := kite()
	ctx := context.Background()

	// --- Act ---
	for i := 0; i < 3; i++ {
		_, err := DegreeFilteredTopN(ctx, cache, g, metrics.CoreNumber, 2, 4)
		require.NoError(t, err)
	}

	// --- Assert ---
	// Only the full-graph degree lookup goes through the cache.
	hits, misses := cache.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, 1, misses)
}

func TestNeighborExpansion_Path(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	g := path(5)
	scores := metrics.ScoreMap{"1": 1, "2": 2, "3": 3, "4": 4, "5": 5}
	ranked := Rank(scores)

	// --- Act ---
	got, err := NeighborExpansion(g, ranked, scores, 1, 3)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, graph.IDsOf("5", "4", "3"), got)
}

func TestNeighborExpansion_Insufficient(t *testing.T) {
	t.Parallel()

	g := path(3)
	scores := metrics.ScoreMap{"1": 1, "2": 2, "3": 3}

	_, err := NeighborExpansion(g, Rank(scores), scores, 1, 5)

	require.ErrorIs(t, err, ErrInsufficientCandidates)
}

func TestAltDegree_SkipsHubs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := metrics.NewDefault()

	testCases := []struct {
		name string
		g    *graph.Graph
		n, k int
		want []graph.NodeID
	}{
		{name: "single hub takes best leaf", g: star(4), n: 1, k: 1, want: graph.IDsOf("1")},
		{name: "second hub has no free neighbours", g: star(4), n: 2, k: 1, want: graph.IDsOf("2", "3")},
		{name: "two neighbours per hub", g: star(4), n: 2, k: 2, want: graph.IDsOf("2", "3")},
		{name: "tiny graph falls back to hubs", g: complete(3), n: 3, k: 2, want: graph.IDsOf("0", "1", "2")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := AltDegree(ctx, p, tc.g, tc.n, tc.k)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAltDegree_TooFewNodes(t *testing.T) {
	t.Parallel()

	_, err := AltDegree(context.Background(), metrics.NewDefault(), star(2), 5, 1)

	require.ErrorIs(t, err, ErrInsufficientCandidates)
}

func TestKShellSupport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := metrics.NewDefault()

	t.Run("complete graph yields every node", func(t *testing.T) {
		t.Parallel()

		got, err := KShellSupport(ctx, p, complete(5), 5)

		require.NoError(t, err)
		assert.Len(t, got, 5)
		assert.ElementsMatch(t, graph.IDsOf("0", "1", "2", "3", "4"), got)
	})

	t.Run("core node is followed by its support", func(t *testing.T) {
		t.Parallel()

		got, err := KShellSupport(ctx, p, path(5), 2)

		require.NoError(t, err)
		assert.Equal(t, graph.IDsOf("1", "2"), got)
	})

	t.Run("too few nodes", func(t *testing.T) {
		t.Parallel()

		_, err := KShellSupport(ctx, p, path(3), 4)

		require.ErrorIs(t, err, ErrInsufficientCandidates)
	})
}

func TestInterleave(t *testing.T) {
	t.Parallel()

	a := graph.IDsOf("1", "2", "3")
	b := graph.IDsOf("2", "4", "5")

	assert.Equal(t, graph.IDsOf("1", "2", "4", "3"), Interleave(a, b, 4))
	assert.Equal(t, graph.IDsOf("1", "2", "4", "3", "5"), Interleave(a, b, 10))
}

func TestUnion(t *testing.T) {
	t.Parallel()

	got := Union(graph.IDsOf("1", "2", "3"), graph.IDsOf("3", "4", "1", "5"))

	assert.Equal(t, graph.IDsOf("1", "2", "3", "4", "5"), got)
}
