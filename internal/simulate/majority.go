package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
)

const (
	minIterations = 100
	maxIterations = 200
	selfWeight    = 1.5
	neutral       = -1
)

// Majority is the built-in Engine. It is not safe for concurrent use.
type Majority struct {
	rng *rand.Rand
}

var _ Engine = (*Majority)(nil)

// NewMajority returns an engine drawing its iteration caps from rng.
func NewMajority(rng *rand.Rand) *Majority {
	return &Majority{rng: rng}
}

// Run implements Engine.
func (m *Majority) Run(ctx context.Context, g *graph.Graph, data model.CompetitorData, trials int) (model.CompetitionResult, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	if trials < 1 || trials > model.RoundCount {
		return nil, fmt.Errorf("trials must be between 1 and %d, got %d", model.RoundCount, trials)
	}
	if _, err := data.Aligned(); err != nil {
		return nil, err
	}

	board := newBoard(g)
	teams := data.Teams()
	result := make(model.CompetitionResult, 0, trials)
	for t := 0; t < trials; t++ {
		rounds := make([]model.SeedRound, len(teams))
		for i, team := range teams {
			rounds[i] = data[team][t]
		}
		held, iterations, err := board.play(ctx, rounds, minIterations+m.rng.IntN(maxIterations-minIterations+1))
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", t, err)
		}

		outcome := make(model.Outcome, len(teams))
		for i, team := range teams {
			outcome[team] = float64(held[i])
		}
		result = append(result, outcome)
		logger.Debug("Trial simulated.", "trial", t, "iterations", iterations)
	}

	logger.Info("Simulation finished.", "graph", g.Name(), "teams", len(teams), "trials", trials, "elapsed", time.Since(start))
	return result, nil
}

// board is the graph flattened to integer indexes.
type board struct {
	index map[graph.NodeID]int
	adj   [][]int
}

func newBoard(g *graph.Graph) *board {
	nodes := g.Nodes()
	b := &board{
		index: make(map[graph.NodeID]int, len(nodes)),
		adj:   make([][]int, len(nodes)),
	}
	for i, id := range nodes {
		b.index[id] = i
	}
	for i, id := range nodes {
		g.EachNeighbor(id, func(v graph.NodeID) {
			if v != id {
				b.adj[i] = append(b.adj[i], b.index[v])
			}
		})
	}
	return b
}

// play runs one trial and returns the number of nodes held per team.
func (b *board) play(ctx context.Context, rounds []model.SeedRound, limit int) ([]int, int, error) {
	colour := make([]int, len(b.adj))
	for i := range colour {
		colour[i] = neutral
	}

	claims := make(map[int]int)
	for team, round := range rounds {
		for _, id := range round {
			i, ok := b.index[id]
			if !ok {
				return nil, 0, fmt.Errorf("seed %s is not in the graph", id)
			}
			if prev, seen := claims[i]; seen && prev != team {
				claims[i] = neutral
				continue
			}
			claims[i] = team
		}
	}
	for i, team := range claims {
		colour[i] = team
	}

	next := make([]int, len(colour))
	votes := make([]float64, len(rounds))
	iterations := 0
	for ; iterations < limit; iterations++ {
		if err := ctx.Err(); err != nil {
			return nil, iterations, err
		}
		changed := false
		for i, nbrs := range b.adj {
			next[i] = b.vote(i, nbrs, colour, votes)
			if next[i] != colour[i] {
				changed = true
			}
		}
		colour, next = next, colour
		if !changed {
			break
		}
	}

	held := make([]int, len(rounds))
	for _, c := range colour {
		if c != neutral {
			held[c]++
		}
	}
	return held, iterations, nil
}

// vote returns the colour node i takes on the next iteration.
func (b *board) vote(i int, nbrs []int, colour []int, votes []float64) int {
	for t := range votes {
		votes[t] = 0
	}
	total := 0.0
	for _, v := range nbrs {
		if c := colour[v]; c != neutral {
			votes[c]++
			total++
		}
	}
	if own := colour[i]; own != neutral {
		votes[own] += selfWeight
		total += selfWeight
	}
	for t, v := range votes {
		if v > total/2 {
			return t
		}
	}
	return colour[i]
}
