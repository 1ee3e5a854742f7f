package testutil

import (
	"testing"

	"github.com/specialistvlad/seedgrid/internal/competition"
	"github.com/specialistvlad/seedgrid/internal/report"
	"github.com/stretchr/testify/require"
)

// StrategyRow returns the report row of the strategy with the given label.
func StrategyRow(t *testing.T, result *HarnessResult, label string) report.StrategyRow {
	t.Helper()
	require.NotNil(t, result.App, "the app was never created")
	rep := result.App.Report()
	require.NotNil(t, rep, "the run produced no report")
	for _, row := range rep.Strategies {
		if row.Label == label {
			return row
		}
	}
	require.Failf(t, "strategy missing from report", "no row for %q", label)
	return report.StrategyRow{}
}

// AssertStrategySucceeded checks that the strategy produced a plan and
// whether that plan came from the seed cache.
func AssertStrategySucceeded(t *testing.T, result *HarnessResult, label string, cached bool) {
	t.Helper()
	row := StrategyRow(t, result, label)
	require.NoError(t, row.Err, "strategy %q failed", label)
	require.Equal(t, cached, row.Cached, "strategy %q cache state", label)
}

// TeamSummary returns the competition row of a team.
func TeamSummary(t *testing.T, result *HarnessResult, team string) competition.TeamSummary {
	t.Helper()
	require.NotNil(t, result.App, "the app was never created")
	rep := result.App.Report()
	require.NotNil(t, rep, "the run produced no report")
	for _, s := range rep.Competition {
		if s.Team == team {
			return s
		}
	}
	require.Failf(t, "team missing from competition", "no summary for %q", team)
	return competition.TeamSummary{}
}
