package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/seedgrid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func ptr[T any](v T) *T {
	return &v
}

func TestLoader_FullManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeManifest(t, `
graph_dir        = "graphs"
seed_dir         = "seeds/${seeds}"
trials           = 10
rand_seed        = 42
workers          = 3
prefilter_size   = 3000
isolate_failures = true
strict           = false
strategies       = ["d", "a2k"]
report           = "out/${graph}.json"

recorded {
  path = "previous/${graph}.json"
}

recorded {
  path = "other"
}

live {
  url       = "http://localhost:8080"
  namespace = "/game"
  timeout   = "20s"
}
`)

	// --- Act ---
	m, err := NewLoader().Load(context.Background(), path, config.Vars{Graph: "2.10.1", Seeds: 10})

	// --- Assert ---
	require.NoError(t, err)
	want := &config.Manifest{
		GraphDir:        "graphs",
		SeedDir:         "seeds/10",
		Trials:          ptr(10),
		RandSeed:        ptr(uint64(42)),
		Workers:         ptr(3),
		PrefilterSize:   ptr(3000),
		IsolateFailures: ptr(true),
		Strict:          ptr(false),
		Strategies:      []string{"d", "a2k"},
		Recorded:        []string{"previous/2.10.1.json", "other"},
		Live:            &config.LiveFeed{URL: "http://localhost:8080", Namespace: "/game", Timeout: 20 * time.Second},
		Report:          "out/2.10.1.json",
	}
	if diff := cmp.Diff(want, m, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_EmptyManifestLeavesEverythingUnset(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, ``)

	m, err := NewLoader().Load(context.Background(), path, config.Vars{})

	require.NoError(t, err)
	if diff := cmp.Diff(&config.Manifest{}, m, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"syntax error":      `graph_dir = "x`,
		"unknown attribute": `graph_dirr = "x"`,
		"wrong type":        `trials = "many"`,
		"duplicate live": `
live { url = "http://a" }
live { url = "http://b" }
`,
		"bad timeout": `
live {
  url     = "http://a"
  timeout = "soon"
}
`,
		"empty recorded":   `recorded { path = "" }`,
		"unknown var":      `graph_dir = "${nope}"`,
		"live without url": `live { }`,
	}

	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeManifest(t, content)

			_, err := NewLoader().Load(context.Background(), path, config.Vars{Graph: "g", Seeds: 1})

			require.Error(t, err)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "none.hcl"), config.Vars{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "none.hcl")
}
