// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model defines the values that flow between strategy generation,
// persistence and competition: seed rounds, seed plans and per-team results.
//
// # Core Concepts
//
//   - SeedRound: the n distinct nodes one team seeds in one round.
//
//   - SeedPlan: exactly RoundCount rounds of n seeds each. Every strategy
//     produces one, the seed store persists it, and the competition consumes it.
//
//   - CompetitorData: the seed plans of every team in one game, keyed by team
//     name. All plans in a game share the graph and n.
//
//   - Outcome / CompetitionResult: the payoff of every team in each simulated
//     trial.
//
// Why a separate model package?
//
// Generators, the seed store, the opponent sources and the simulator are
// written independently and only agree on these shapes. Keeping the invariant
// checks (Validate) next to the types means every producer and consumer
// enforces the same rule.
package model
