// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the per-team inputs and outputs of a competition.
package model

import (
	"fmt"
	"sort"
)

// CompetitorData maps a team name to its seed plan.
type CompetitorData map[string]SeedPlan

// Teams returns the team names in ascending order. Every aggregation that
// depends on iteration order uses this order.
func (d CompetitorData) Teams() []string {
	teams := make([]string, 0, len(d))
	for team := range d {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// Aligned checks that every plan has RoundCount rounds of the same n and
// returns that n.
func (d CompetitorData) Aligned() (int, error) {
	n := -1
	for _, team := range d.Teams() {
		plan := d[team]
		if len(plan) != RoundCount {
			return 0, fmt.Errorf("team %q: expected %d rounds, got %d", team, RoundCount, len(plan))
		}
		for i, round := range plan {
			if n < 0 {
				n = len(round)
			}
			if len(round) != n {
				return 0, fmt.Errorf("team %q round %d: expected %d seeds, got %d", team, i, n, len(round))
			}
		}
	}
	if n < 0 {
		return 0, fmt.Errorf("no competitors")
	}
	return n, nil
}

// Outcome maps a team name to its payoff in one trial.
type Outcome map[string]float64

// CompetitionResult holds one Outcome per simulated trial, in trial order.
type CompetitionResult []Outcome
