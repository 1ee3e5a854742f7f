package integration_tests

import (
	"strings"
	"testing"

	"github.com/specialistvlad/seedgrid/internal/app"
	"github.com/specialistvlad/seedgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: a stored plan is reused verbatim instead of regenerated.
func TestStrategySelection_CachedPlan_IsReused(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// 50 rounds of three low-degree nodes, which degree ranking never picks.
	cached := strings.Repeat("12\n13\n17\n", 50)
	sc := testutil.Scenario{
		Files: map[string]string{
			"graph/karate.3.json":    testutil.Karate,
			"seeds/deg/karate.3.txt": cached,
		},
		Config: app.Config{GraphName: "karate.3", Strategies: []string{"d", "k"}},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertStrategySucceeded(t, result, "deg", true)
	testutil.AssertStrategySucceeded(t, result, "ksh", false)
	require.Contains(t, result.LogOutput, "Using cached seeds.")
}

// Test for: a malformed stored plan fails the strategy instead of being
// silently replaced.
func TestStrategySelection_CorruptCache_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	sc := testutil.Scenario{
		Files: map[string]string{
			"graph/karate.3.json":    testutil.Karate,
			"seeds/deg/karate.3.txt": "1\n2\n",
		},
		Config: app.Config{GraphName: "karate.3", Strategies: []string{"d"}},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	var serr *app.StrategyError
	require.ErrorAs(t, result.Err, &serr)
	require.Equal(t, "deg", serr.Strategy)
}
