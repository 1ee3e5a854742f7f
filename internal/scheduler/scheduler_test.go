package scheduler

import (
	"errors"
	"testing"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicateRound_IdenticalRounds(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := NewSeeded(1)
	candidates := graph.IDsOf("5", "3", "3", "9", "1")

	// --- Act ---
	plan, err := s.ReplicateRound(candidates, 3)

	// --- Assert ---
	require.NoError(t, err)
	require.NoError(t, plan.Validate(nil, 3))
	for i := range plan {
		assert.Equal(t, model.SeedRound(graph.IDsOf("5", "3", "9")), plan[i], "round %d", i)
	}
}

func TestReplicateRound_TooFewCandidates(t *testing.T) {
	t.Parallel()

	_, err := NewSeeded(1).ReplicateRound(graph.IDsOf("1", "1"), 2)

	var poolErr *InsufficientPoolError
	require.True(t, errors.As(err, &poolErr))
	assert.Equal(t, 1, poolErr.Pool)
	assert.Equal(t, 2, poolErr.Need)
}

func TestResampleEachRound_DrawsFromPool(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	pool := graph.IDsOf("1", "2", "3", "4", "5", "6", "7")
	inPool := make(map[graph.NodeID]bool)
	for _, id := range pool {
		inPool[id] = true
	}

	// --- Act ---
	plan, err := NewSeeded(42).ResampleEachRound(pool, 4)

	// --- Assert ---
	require.NoError(t, err)
	require.NoError(t, plan.Validate(nil, 4))
	distinctRounds := make(map[string]bool)
	for _, round := range plan {
		key := ""
		for _, id := range round {
			assert.True(t, inPool[id], "seed %s outside the pool", id)
			key += string(id) + ","
		}
		distinctRounds[key] = true
	}
	assert.Greater(t, len(distinctRounds), 1, "independent samples should not all coincide")
}

func TestResampleEachRound_Reproducible(t *testing.T) {
	t.Parallel()

	pool := graph.IDsOf("a", "b", "c", "d", "e")
	first, err := NewSeeded(7).ResampleEachRound(pool, 2)
	require.NoError(t, err)
	second, err := NewSeeded(7).ResampleEachRound(pool, 2)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestResampleEachRound_InsufficientPool(t *testing.T) {
	t.Parallel()

	_, err := NewSeeded(1).ResampleEachRound(graph.IDsOf("1", "2", "2"), 3)

	var poolErr *InsufficientPoolError
	require.ErrorAs(t, err, &poolErr)
	assert.Equal(t, 2, poolErr.Pool)
}

func TestScheduler_RejectsNonPositiveN(t *testing.T) {
	t.Parallel()

	s := NewSeeded(1)
	_, err := s.ReplicateRound(graph.IDsOf("1"), 0)
	require.Error(t, err)
	_, err = s.ResampleEachRound(graph.IDsOf("1"), -1)
	require.Error(t, err)
}
