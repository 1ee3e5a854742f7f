package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/specialistvlad/seedgrid/internal/config"
	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/metrics"
	"github.com/specialistvlad/seedgrid/internal/opponents"
	"github.com/specialistvlad/seedgrid/internal/registry"
	"github.com/specialistvlad/seedgrid/internal/report"
	"github.com/specialistvlad/seedgrid/internal/scheduler"
	"github.com/specialistvlad/seedgrid/internal/seedstore"
	"github.com/specialistvlad/seedgrid/internal/simulate"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader

	// Collaborators. Nil ones are built from the merged configuration at the
	// start of Run.
	metrics   metrics.Provider
	store     seedstore.Store
	engine    simulate.Engine
	opponents opponents.Source

	stage      atomic.Value // string
	httpServer *http.Server
	report     *report.Report
}

// Option replaces one of the App's default collaborators.
type Option func(*App)

// WithMetrics sets the metrics provider. It is wrapped in a metrics.Cache.
func WithMetrics(p metrics.Provider) Option {
	return func(a *App) { a.metrics = p }
}

// WithStore sets the seed store instead of the directory-backed one.
func WithStore(s seedstore.Store) Option {
	return func(a *App) { a.store = s }
}

// WithEngine sets the simulation engine.
func WithEngine(e simulate.Engine) Option {
	return func(a *App) { a.engine = e }
}

// WithOpponents sets the opponent source instead of the configured
// recorded files and live feed.
func WithOpponents(s opponents.Source) Option {
	return func(a *App) { a.opponents = s }
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger. The strategy table is validated here; a broken
// table is a programmer error, so it panics.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if err := registry.New(nil, nil).Validate(); err != nil {
		panic(err)
	}
	logger.Debug("Strategy table validation passed.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.setStage("created")
	return a
}

// Report returns the report of the last Run, or nil.
func (a *App) Report() *report.Report {
	return a.report
}

// Config returns the configuration, including anything merged from a
// manifest during Run.
func (a *App) Config() *Config {
	return a.config
}

func (a *App) setStage(stage string) {
	a.stage.Store(stage)
}

// Stage returns the pipeline stage the app is in.
func (a *App) Stage() string {
	s, _ := a.stage.Load().(string)
	return s
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// newScheduler and newEngine draw from separate streams of the run seed, so
// enabling the simulation never changes the generated plans.
func newScheduler(seed uint64) *scheduler.DefaultScheduler {
	return scheduler.NewSeeded(seed)
}

func newEngine(seed uint64) simulate.Engine {
	return simulate.NewMajority(newRand(seed ^ 0x5eed))
}
