package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/seedgrid/internal/competition"
	"github.com/specialistvlad/seedgrid/internal/config"
	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/filestore"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/specialistvlad/seedgrid/internal/opponents"
	"github.com/specialistvlad/seedgrid/internal/registry"
	"github.com/specialistvlad/seedgrid/internal/report"
	"github.com/specialistvlad/seedgrid/internal/seedstore"
)

// Run executes the whole pipeline and writes the report to the output
// writer (and to the report file, if configured).
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")
	defer a.setStage("done")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	if err := a.loadManifest(ctx); err != nil {
		return err
	}
	cfg := a.config
	if cfg.RandSeed == 0 {
		cfg.RandSeed = clockSeed()
	}
	a.logger.Info("Run configured.", "graph", cfg.GraphName, "seeds", cfg.Seeds, "rand_seed", cfg.RandSeed, "trials", cfg.Trials)

	a.setStage("loading graph")
	g, err := graph.Load(ctx, cfg.GraphDir, cfg.GraphName)
	if err != nil {
		return err
	}

	cache := metrics.NewCache(a.metricsProvider())
	var regOpts []registry.Option
	if cfg.PrefilterSize > 0 {
		regOpts = append(regOpts, registry.WithPrefilterSize(cfg.PrefilterSize))
	}
	reg := registry.New(cache, newScheduler(cfg.RandSeed), regOpts...)

	strategies, err := reg.Resolve(ctx, cfg.Strategies, cfg.Strict)
	if err != nil {
		return err
	}
	if len(strategies) == 0 {
		a.logger.Warn("No known strategies requested, nothing to do.")
		return nil
	}

	a.setStage("computing metrics")
	if err := cache.Prefetch(ctx, g, cfg.Workers, neededKinds(strategies)...); err != nil {
		if !cfg.Isolate {
			return fmt.Errorf("failed to compute metrics: %w", err)
		}
		// Strategies that need the missing metric fail on their own below.
		a.logger.Warn("Metric prefetch failed, continuing.", "error", err)
	}

	a.setStage("selecting seeds")
	rep := &report.Report{Graph: g.Name(), Seeds: cfg.Seeds, Trials: cfg.Trials}
	a.report = rep
	store := a.seedStore()
	plans := make(model.CompetitorData)
	for _, s := range strategies {
		start := time.Now()
		plan, cached, err := a.planFor(ctx, reg, store, s, g, cfg.Seeds)
		row := report.StrategyRow{
			Label:   s.Label,
			Flag:    s.Flag,
			Family:  s.Family.String(),
			Cached:  cached,
			Elapsed: time.Since(start),
		}
		if err != nil {
			serr := &StrategyError{Strategy: s.Label, Err: err}
			if !cfg.Isolate {
				return serr
			}
			a.logger.Error("Strategy failed, continuing.", "strategy", s.Label, "error", err)
			row.Err = err
			rep.Strategies = append(rep.Strategies, row)
			continue
		}
		row.Distinct = len(distinct(plan))
		rep.Strategies = append(rep.Strategies, row)
		plans[s.Label] = plan
	}
	if len(plans) == 0 {
		a.writeReport(ctx, rep)
		return ErrAllStrategiesFailed
	}

	if cfg.Trials > 0 {
		a.setStage("competing")
		summary, err := a.compete(ctx, g, plans, cfg)
		if err != nil {
			return err
		}
		rep.Competition = summary
	}

	hits, misses := cache.Stats()
	a.logger.Debug("Metric cache usage.", "hits", hits, "misses", misses)
	return a.writeReport(ctx, rep)
}

// loadManifest merges the HCL manifest, if any, into the configuration.
func (a *App) loadManifest(ctx context.Context) error {
	if a.config.ConfigPath == "" {
		return nil
	}
	if a.loader == nil {
		return fmt.Errorf("a manifest was given but no loader is configured")
	}
	a.setStage("loading manifest")
	m, err := a.loader.Load(ctx, a.config.ConfigPath, config.Vars{Graph: a.config.GraphName, Seeds: a.config.Seeds})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := a.config.ApplyManifest(m); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.logger.Debug("Manifest merged.", "path", a.config.ConfigPath)
	return nil
}

// planFor reuses a cached plan or generates and persists a new one.
func (a *App) planFor(ctx context.Context, reg *registry.Registry, store seedstore.Store, s registry.Strategy, g *graph.Graph, n int) (model.SeedPlan, bool, error) {
	logger := ctxlog.FromContext(ctx).With("strategy", s.Label)

	plan, ok, err := seedstore.Fetch(ctx, store, s.Label, g, n)
	if err != nil {
		return nil, false, err
	}
	if ok {
		logger.Info("Using cached seeds.")
		return plan, true, nil
	}

	plan, err = reg.Generate(ctx, s, g, n)
	if err != nil {
		return nil, false, err
	}
	if err := store.Save(ctx, s.Label, g.Name(), plan); err != nil {
		return nil, false, fmt.Errorf("failed to save seeds: %w", err)
	}
	logger.Info("Seeds generated.")
	return plan, false, nil
}

// compete plays the generated plans against each other and the opponents.
func (a *App) compete(ctx context.Context, g *graph.Graph, plans model.CompetitorData, cfg *Config) ([]competition.TeamSummary, error) {
	data := model.CompetitorData{}
	if src := a.opponentSource(); src != nil {
		fetched, err := src.Fetch(ctx, g.Name(), cfg.Seeds)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch opponents: %w", err)
		}
		data = fetched
	}
	for _, team := range plans.Teams() {
		merged, err := competition.Merge(data, team, plans[team])
		if err != nil {
			return nil, err
		}
		data = merged
	}

	engine := a.engine
	if engine == nil {
		engine = newEngine(cfg.RandSeed)
	}
	results, err := competition.New(engine).Run(ctx, g, data, cfg.Trials)
	if err != nil {
		return nil, fmt.Errorf("competition failed: %w", err)
	}

	summary := competition.Summarize(data, results)
	for _, s := range summary {
		a.logger.Info("Team result.", "team", s.Team, "wins", s.Wins, "mean_payoff", s.MeanPayoff, "mean_unique", s.MeanUnique)
	}
	return summary, nil
}

func (a *App) writeReport(ctx context.Context, rep *report.Report) error {
	if err := report.WriteText(a.outW, rep, report.ASCII); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if a.config.ReportPath != "" {
		if err := report.WriteFile(a.config.ReportPath, rep); err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Info("Report written.", "path", a.config.ReportPath)
	}
	return nil
}

func (a *App) metricsProvider() metrics.Provider {
	if a.metrics != nil {
		return a.metrics
	}
	return metrics.NewDefault()
}

func (a *App) seedStore() seedstore.Store {
	if a.store != nil {
		return a.store
	}
	return filestore.New(a.config.SeedDir)
}

func (a *App) opponentSource() opponents.Source {
	if a.opponents != nil {
		return a.opponents
	}
	var sources opponents.Multi
	for _, path := range a.config.Opponents {
		sources = append(sources, &opponents.Recorded{Path: path})
	}
	if a.config.LiveURL != "" {
		sources = append(sources, &opponents.Live{
			URL:       a.config.LiveURL,
			Namespace: a.config.LiveNamespace,
			Timeout:   a.config.LiveTimeout,
		})
	}
	if len(sources) == 0 {
		return nil
	}
	return sources
}

// neededKinds lists the whole-graph metrics the strategies will read.
func neededKinds(strategies []registry.Strategy) []metrics.Kind {
	var kinds []metrics.Kind
	seen := make(map[metrics.Kind]bool)
	for _, s := range strategies {
		for _, k := range s.Needs {
			if !seen[k] {
				seen[k] = true
				kinds = append(kinds, k)
			}
		}
	}
	return kinds
}

func distinct(p model.SeedPlan) map[graph.NodeID]struct{} {
	out := make(map[graph.NodeID]struct{})
	for _, id := range p.Flatten() {
		out[id] = struct{}{}
	}
	return out
}
