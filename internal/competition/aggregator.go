package competition

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/specialistvlad/seedgrid/internal/simulate"
)

// Aggregator runs competitions through an engine.
type Aggregator struct {
	engine simulate.Engine
}

// New returns an Aggregator backed by engine.
func New(engine simulate.Engine) *Aggregator {
	return &Aggregator{engine: engine}
}

// Merge returns a copy of data that also holds team's plan. A team that is
// already present is an error.
func Merge(data model.CompetitorData, team string, plan model.SeedPlan) (model.CompetitorData, error) {
	if team == "" {
		return nil, fmt.Errorf("team name must not be empty")
	}
	if _, exists := data[team]; exists {
		return nil, fmt.Errorf("team %q is already in the competition", team)
	}
	out := make(model.CompetitorData, len(data)+1)
	for name, p := range data {
		out[name] = p
	}
	out[team] = plan
	return out, nil
}

// Run checks that all plans line up and simulates trials of them. The engine
// is called once and its error returned as is.
func (a *Aggregator) Run(ctx context.Context, g *graph.Graph, data model.CompetitorData, trials int) (model.CompetitionResult, error) {
	logger := ctxlog.FromContext(ctx)

	if trials < 1 || trials > model.RoundCount {
		return nil, fmt.Errorf("trials must be between 1 and %d, got %d", model.RoundCount, trials)
	}
	n, err := data.Aligned()
	if err != nil {
		return nil, fmt.Errorf("competitor data is not aligned: %w", err)
	}
	for _, team := range data.Teams() {
		if err := data[team].Validate(g, n); err != nil {
			return nil, fmt.Errorf("team %q: %w", team, err)
		}
	}

	logger.Debug("Running competition.", "teams", len(data), "seeds", n, "trials", trials)
	result, err := a.engine.Run(ctx, g, data, trials)
	if err != nil {
		return nil, err
	}
	if len(result) != trials {
		return nil, fmt.Errorf("engine returned %d trials, expected %d", len(result), trials)
	}
	return result, nil
}

// UniqueSeeds returns the seeds of team in round that no other team chose in
// the same round, in ascending id order.
func UniqueSeeds(team string, round int, data model.CompetitorData) ([]graph.NodeID, error) {
	plan, ok := data[team]
	if !ok {
		return nil, fmt.Errorf("unknown team %q", team)
	}
	if round < 0 || round >= len(plan) {
		return nil, fmt.Errorf("round %d out of range for team %q", round, team)
	}

	taken := make(map[graph.NodeID]struct{})
	for other, p := range data {
		if other == team || round >= len(p) {
			continue
		}
		for _, id := range p[round] {
			taken[id] = struct{}{}
		}
	}

	unique := []graph.NodeID{}
	for _, id := range plan[round] {
		if _, clash := taken[id]; !clash {
			unique = append(unique, id)
		}
	}
	graph.SortIDs(unique)
	return unique, nil
}

// WinTally counts, per team, the trials in which it had the strictly highest
// payoff. Equal top payoffs go to the first such team by name. Every team
// seen in results appears in the tally, winners or not.
func WinTally(results model.CompetitionResult) map[string]int {
	tally := make(map[string]int)
	for _, outcome := range results {
		teams := make([]string, 0, len(outcome))
		for team := range outcome {
			tally[team] += 0
			teams = append(teams, team)
		}
		sort.Strings(teams)
		winner, best := "", 0.0
		for _, team := range teams {
			if p := outcome[team]; winner == "" || p > best {
				winner, best = team, p
			}
		}
		if winner != "" {
			tally[winner]++
		}
	}
	return tally
}
