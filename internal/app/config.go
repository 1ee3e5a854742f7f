package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/seedgrid/internal/config"
	"github.com/specialistvlad/seedgrid/internal/model"
)

// Option names that a manifest may also set. Config.Explicit is keyed by
// these.
const (
	OptGraphDir    = "graph-dir"
	OptSeedDir     = "seed-dir"
	OptTrials      = "trials"
	OptRandSeed    = "rand-seed"
	OptWorkers     = "workers"
	OptPrefilter   = "prefilter"
	OptOpponents   = "opponents"
	OptLiveURL     = "live-url"
	OptLiveTimeout = "live-timeout"
	OptIsolate     = "isolate"
	OptStrict      = "strict"
	OptReport      = "report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphName  string
	Seeds      int
	Strategies []string
	ConfigPath string // optional HCL manifest

	GraphDir      string
	SeedDir       string
	Trials        int
	RandSeed      uint64 // 0 derives a seed from the clock
	Workers       int
	PrefilterSize int // 0 keeps three times the seed count

	Opponents     []string
	LiveURL       string
	LiveNamespace string
	LiveTimeout   time.Duration

	Isolate    bool
	Strict     bool
	ReportPath string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// Explicit marks options given on the command line. A manifest never
	// overrides them.
	Explicit map[string]bool
}

// NewConfig validates cfg and fills the seed count from the graph name.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphName == "" {
		return nil, errors.New("GraphName is a required configuration field and cannot be empty")
	}
	seeds, err := SeedsFromGraphName(cfg.GraphName)
	if err != nil {
		return nil, err
	}
	cfg.Seeds = seeds

	if len(cfg.Strategies) == 0 && cfg.ConfigPath == "" {
		return nil, errors.New("at least one strategy flag (or 'all') is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Trials < 0 || c.Trials > model.RoundCount {
		return fmt.Errorf("trials must be between 0 and %d, got %d", model.RoundCount, c.Trials)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.PrefilterSize < 0 {
		return fmt.Errorf("prefilter size must not be negative, got %d", c.PrefilterSize)
	}
	if c.LiveTimeout < 0 {
		return fmt.Errorf("live timeout must not be negative, got %v", c.LiveTimeout)
	}
	return nil
}

// SeedsFromGraphName extracts the seed count from a graph name such as
// "2.10.1" (players.seeds.id) or "name.5": the second dot-separated field.
func SeedsFromGraphName(name string) (int, error) {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return 0, fmt.Errorf("graph name %q does not encode a seed count (expected e.g. name.5)", name)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("graph name %q: seed count %q must be a positive integer", name, parts[1])
	}
	return n, nil
}

// ApplyManifest fills every option not given on the command line from m and
// re-validates the result.
func (c *Config) ApplyManifest(m *config.Manifest) error {
	fromManifest := func(opt string) bool { return !c.Explicit[opt] }

	if m.GraphDir != "" && fromManifest(OptGraphDir) {
		c.GraphDir = m.GraphDir
	}
	if m.SeedDir != "" && fromManifest(OptSeedDir) {
		c.SeedDir = m.SeedDir
	}
	if m.Trials != nil && fromManifest(OptTrials) {
		c.Trials = *m.Trials
	}
	if m.RandSeed != nil && fromManifest(OptRandSeed) {
		c.RandSeed = *m.RandSeed
	}
	if m.Workers != nil && fromManifest(OptWorkers) {
		c.Workers = *m.Workers
	}
	if m.PrefilterSize != nil && fromManifest(OptPrefilter) {
		c.PrefilterSize = *m.PrefilterSize
	}
	if m.IsolateFailures != nil && fromManifest(OptIsolate) {
		c.Isolate = *m.IsolateFailures
	}
	if m.Strict != nil && fromManifest(OptStrict) {
		c.Strict = *m.Strict
	}
	if m.Report != "" && fromManifest(OptReport) {
		c.ReportPath = m.Report
	}
	if len(m.Recorded) > 0 && fromManifest(OptOpponents) {
		c.Opponents = append([]string(nil), m.Recorded...)
	}
	if m.Live != nil && fromManifest(OptLiveURL) {
		c.LiveURL = m.Live.URL
		c.LiveNamespace = m.Live.Namespace
		if m.Live.Timeout > 0 && fromManifest(OptLiveTimeout) {
			c.LiveTimeout = m.Live.Timeout
		}
	}
	if len(c.Strategies) == 0 {
		c.Strategies = append([]string(nil), m.Strategies...)
	}

	if len(c.Strategies) == 0 {
		return errors.New("no strategies given on the command line or in the manifest")
	}
	return c.validate()
}
