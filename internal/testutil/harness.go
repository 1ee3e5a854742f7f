package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/seedgrid/internal/app"
	"github.com/specialistvlad/seedgrid/internal/hcl"
	"github.com/stretchr/testify/require"
)

// RootToken is replaced by the scenario's temporary root directory in every
// file written by the harness and in the configured opponent paths.
const RootToken = "ROOT_DIR"

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Scenario describes one end-to-end run.
type Scenario struct {
	// Files maps paths relative to the root to their content, e.g.
	// "graph/toy.2.json" or "run.hcl".
	Files map[string]string
	// Config is completed by the harness: GraphDir and SeedDir default to
	// <root>/graph and <root>/seeds, and relative ConfigPath and ReportPath
	// values are resolved against the root.
	Config app.Config
	Opts   []app.Option
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Root      string
}

// RunIntegrationTest runs a scenario using a default background context.
func RunIntegrationTest(t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, sc)
}

// RunIntegrationTestWithContext writes the scenario's files into a fresh
// temporary root and runs the whole app against them.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()

	// 1. Write the scenario files under a temporary root.
	root := t.TempDir()
	for name, content := range sc.Files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		content = strings.ReplaceAll(content, RootToken, root)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	// 2. Point the configuration at the root.
	cfg := sc.Config
	if cfg.GraphDir == "" {
		cfg.GraphDir = filepath.Join(root, "graph")
	}
	if cfg.SeedDir == "" {
		cfg.SeedDir = filepath.Join(root, "seeds")
	}
	if cfg.ConfigPath != "" && !filepath.IsAbs(cfg.ConfigPath) {
		cfg.ConfigPath = filepath.Join(root, cfg.ConfigPath)
	}
	if cfg.ReportPath != "" && !filepath.IsAbs(cfg.ReportPath) {
		cfg.ReportPath = filepath.Join(root, cfg.ReportPath)
	}
	opponents := make([]string, len(cfg.Opponents))
	for i, p := range cfg.Opponents {
		opponents[i] = strings.ReplaceAll(p, RootToken, root)
	}
	cfg.Opponents = opponents
	if cfg.Workers == 0 {
		cfg.Workers = 2
	}
	if cfg.RandSeed == 0 {
		cfg.RandSeed = 1
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	logBuffer := &SafeBuffer{}
	result := &HarnessResult{Root: root}

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = fmt.Errorf("invalid configuration: %w", err)
		return result
	}

	// 3. Run the app exactly as main does.
	result.App = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), sc.Opts...)
	result.Err = result.App.Run(ctx)
	result.LogOutput = logBuffer.String()

	if os.Getenv("SEEDGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
