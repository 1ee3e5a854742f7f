package integration_tests

import (
	"testing"

	"github.com/specialistvlad/seedgrid/internal/app"
	"github.com/specialistvlad/seedgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: a manifest supplies strategies, trials and recorded opponents,
// and every team shows up in the competition summary.
func TestCompetition_ManifestWithRecordedOpponents(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifest := `
		trials     = 5
		strategies = ["d", "ks"]

		recorded {
		  path = "ROOT_DIR/opponents/${graph}.json"
		}
	`
	sc := testutil.Scenario{
		Files: map[string]string{
			"graph/karate.3.json":     testutil.Karate,
			"opponents/karate.3.json": `{"rival": [["1", "34", "33"], ["2", "3", "4"]]}`,
			"run.hcl":                 manifest,
		},
		Config: app.Config{GraphName: "karate.3", ConfigPath: "run.hcl"},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Len(t, result.App.Report().Competition, 3)
	totalWins := 0
	for _, team := range []string{"deg", "kshell_support", "rival"} {
		s := testutil.TeamSummary(t, result, team)
		require.Equal(t, 5, s.TrialsTotal)
		totalWins += s.Wins
	}
	require.Equal(t, 5, totalWins, "every trial has exactly one winner")
}

// Test for: the same run seed reproduces the same competition.
func TestCompetition_IsReproducible(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	sc := testutil.Scenario{
		Files:  map[string]string{"graph/karate.4.json": testutil.Karate},
		Config: app.Config{GraphName: "karate.4", Strategies: []string{"pd", "r"}, Trials: 10, RandSeed: 99},
	}

	// --- Act ---
	first := testutil.RunIntegrationTest(t, sc)
	second := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	require.Equal(t, first.App.Report().Competition, second.App.Report().Competition)
}

// Test for: trials = 0 selects seeds but skips the simulation.
func TestCompetition_ZeroTrials_SkipsSimulation(t *testing.T) {
	t.Parallel()

	sc := testutil.Scenario{
		Files:  map[string]string{"graph/karate.3.json": testutil.Karate},
		Config: app.Config{GraphName: "karate.3", Strategies: []string{"d", "b"}},
	}

	result := testutil.RunIntegrationTest(t, sc)

	require.NoError(t, result.Err)
	require.Empty(t, result.App.Report().Competition)
	require.Len(t, result.App.Report().Strategies, 2)
}
