package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/seedgrid/internal/app"
	"github.com/specialistvlad/seedgrid/internal/opponents"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("seedgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
SeedGrid - seed selection and competition for influence games on graphs.

Usage:
  seedgrid [options] GRAPH STRATEGY [STRATEGY...]

Arguments:
  GRAPH
    Graph name, e.g. 2.10.1. The second dot-separated field is the seed
    count. The graph is read from <graph-dir>/<GRAPH>.json.
  STRATEGY
    Strategy flag (d, b, c, l, k, pd, dk, a1, a2, ks, a2k, a2kp, r, ...)
    or 'all'. May be omitted when -config lists strategies.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL run manifest.")
	graphDirFlag := flagSet.String(app.OptGraphDir, "graph", "Directory holding <graph>.json adjacency files.")
	seedDirFlag := flagSet.String(app.OptSeedDir, "seeds", "Directory for cached seed plans.")
	trialsFlag := flagSet.Int(app.OptTrials, 1, "Competition trials to simulate (0 to 50). 0 skips the simulation.")
	randSeedFlag := flagSet.Uint64(app.OptRandSeed, 0, "Seed for every random choice. 0 derives one from the clock.")
	workersFlag := flagSet.Int(app.OptWorkers, 4, "Number of concurrent metric workers.")
	prefilterFlag := flagSet.Int(app.OptPrefilter, 0, "Degree prefilter size for the filtered strategies. 0 keeps three times the seed count.")
	opponentsFlag := flagSet.String(app.OptOpponents, "", "Comma-separated recorded opponent files or directories.")
	liveURLFlag := flagSet.String(app.OptLiveURL, "", "Socket.IO endpoint serving live opponent seeds.")
	liveTimeoutFlag := flagSet.Duration(app.OptLiveTimeout, opponents.DefaultLiveTimeout, "Timeout for the live opponent feed.")
	isolateFlag := flagSet.Bool(app.OptIsolate, false, "Keep running the other strategies when one fails.")
	strictFlag := flagSet.Bool(app.OptStrict, false, "Reject unknown strategy flags instead of skipping them.")
	reportFlag := flagSet.String(app.OptReport, "", "Write the report to this file (.json, .md, or plain text).")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No graph provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	graphName := flagSet.Arg(0)
	strategies := flagSet.Args()[1:]
	slog.Debug("Positional arguments determined.", "graph", graphName, "strategies", strategies)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GraphName:       graphName,
		Strategies:      strategies,
		ConfigPath:      *configFlag,
		GraphDir:        *graphDirFlag,
		SeedDir:         *seedDirFlag,
		Trials:          *trialsFlag,
		RandSeed:        *randSeedFlag,
		Workers:         *workersFlag,
		PrefilterSize:   *prefilterFlag,
		Opponents:       splitList(*opponentsFlag),
		LiveURL:         *liveURLFlag,
		LiveTimeout:     *liveTimeoutFlag,
		Isolate:         *isolateFlag,
		Strict:          *strictFlag,
		ReportPath:      *reportFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
		Explicit:        explicit,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
