package simulate

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *Majority {
	return NewMajority(rand.New(rand.NewPCG(1, 2)))
}

func star() *graph.Graph {
	return graph.NewBuilder("star").
		AddEdge("0", "1").AddEdge("0", "2").AddEdge("0", "3").AddEdge("0", "4").
		Build()
}

func TestMajority_HubCapturesLeaves(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	data := model.CompetitorData{
		"hub":  model.Repeat(model.SeedRound{"0"}),
		"leaf": model.Repeat(model.SeedRound{"1"}),
	}

	// --- Act ---
	result, err := newEngine().Run(context.Background(), star(), data, 2)

	// --- Assert ---
	require.NoError(t, err)
	want := model.CompetitionResult{
		{"hub": 4, "leaf": 1},
		{"hub": 4, "leaf": 1},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestMajority_SharedSeedStartsNeutral(t *testing.T) {
	t.Parallel()

	g := graph.NewBuilder("path").AddEdge("1", "2").AddEdge("2", "3").Build()
	data := model.CompetitorData{
		"a": model.Repeat(model.SeedRound{"2"}),
		"b": model.Repeat(model.SeedRound{"2"}),
	}

	result, err := newEngine().Run(context.Background(), g, data, 1)

	require.NoError(t, err)
	assert.Equal(t, model.Outcome{"a": 0, "b": 0}, result[0])
}

func TestMajority_TrialUsesMatchingRound(t *testing.T) {
	t.Parallel()

	// The hub belongs to "b" in round 0 and to "a" in round 1.
	a := model.Repeat(model.SeedRound{"1"})
	a[1] = model.SeedRound{"0"}
	b := model.Repeat(model.SeedRound{"0"})
	b[1] = model.SeedRound{"2"}
	data := model.CompetitorData{"a": a, "b": b}

	result, err := newEngine().Run(context.Background(), star(), data, 2)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Less(t, result[0]["a"], result[0]["b"])
	assert.Greater(t, result[1]["a"], result[1]["b"])
}

func TestMajority_RejectsBadInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	good := model.CompetitorData{"a": model.Repeat(model.SeedRound{"1"})}

	_, err := newEngine().Run(ctx, star(), good, 0)
	require.Error(t, err)
	_, err = newEngine().Run(ctx, star(), good, model.RoundCount+1)
	require.Error(t, err)

	misaligned := model.CompetitorData{
		"a": model.Repeat(model.SeedRound{"1"}),
		"b": model.Repeat(model.SeedRound{"2", "3"}),
	}
	_, err = newEngine().Run(ctx, star(), misaligned, 1)
	require.Error(t, err)

	unknown := model.CompetitorData{"a": model.Repeat(model.SeedRound{"42"})}
	_, err = newEngine().Run(ctx, star(), unknown, 1)
	require.Error(t, err)
}

func TestMajority_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data := model.CompetitorData{"a": model.Repeat(model.SeedRound{"0"})}

	_, err := newEngine().Run(ctx, star(), data, 1)

	require.ErrorIs(t, err, context.Canceled)
}
