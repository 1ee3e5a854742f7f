package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/specialistvlad/seedgrid/internal/scheduler"
	"github.com/specialistvlad/seedgrid/internal/selector"
)

// AllFlag selects every strategy.
const AllFlag = "all"

// ErrUnknownStrategy is returned by Resolve in strict mode.
var ErrUnknownStrategy = errors.New("unknown strategy")

// generateFunc builds a plan of n seeds per round for g.
type generateFunc func(ctx context.Context, r *Registry, g *graph.Graph, n int) (model.SeedPlan, error)

// Strategy is one immutable table entry.
type Strategy struct {
	ID         ID
	Flag       string
	Label      string
	Family     Family
	Kind       metrics.Kind
	Randomized bool
	// Needs lists the whole-graph metrics the generator reads, for prefetching.
	Needs []metrics.Kind

	generate generateFunc
}

// Registry holds the strategy table and the collaborators generators use.
type Registry struct {
	metrics   metrics.Provider
	scheduler scheduler.Scheduler
	prefilter int
	table     [idCount]Strategy

	mu       sync.Mutex
	filtered map[filterKey][]graph.NodeID
}

// filterKey identifies one degree-filtered ranking. Several strategies
// (degksh, alt2ksh, alt2kshp) ask for the same one.
type filterKey struct {
	g    *graph.Graph
	kind metrics.Kind
	n    int
	pre  int
}

// Option tunes a Registry.
type Option func(*Registry)

// WithPrefilterSize fixes the degree prefilter used by the degree-filtered
// strategies. Zero or less keeps the default of three times the seed count.
func WithPrefilterSize(size int) Option {
	return func(r *Registry) {
		r.prefilter = size
	}
}

// New builds the registry.
func New(p metrics.Provider, s scheduler.Scheduler, opts ...Option) *Registry {
	r := &Registry{metrics: p, scheduler: s, filtered: make(map[filterKey][]graph.NodeID)}
	for _, opt := range opts {
		opt(r)
	}
	r.table = buildTable()
	return r
}

// Strategies returns every entry in ID order.
func (r *Registry) Strategies() []Strategy {
	out := make([]Strategy, len(r.table))
	copy(out, r.table[:])
	return out
}

// Get returns the entry for id.
func (r *Registry) Get(id ID) (Strategy, bool) {
	if id < 0 || id >= idCount {
		return Strategy{}, false
	}
	return r.table[id], true
}

// Lookup finds an entry by flag or label.
func (r *Registry) Lookup(name string) (Strategy, bool) {
	for _, s := range r.table {
		if s.Flag == name || s.Label == name {
			return s, true
		}
	}
	return Strategy{}, false
}

// Resolve maps flags to strategies, preserving request order and dropping
// repeats.
func (r *Registry) Resolve(ctx context.Context, flags []string, strict bool) ([]Strategy, error) {
	logger := ctxlog.FromContext(ctx)

	var out []Strategy
	seen := make(map[ID]bool)
	add := func(s Strategy) {
		if !seen[s.ID] {
			seen[s.ID] = true
			out = append(out, s)
		}
	}

	for _, flag := range flags {
		flag = strings.TrimSpace(flag)
		if flag == AllFlag {
			for _, s := range r.table {
				add(s)
			}
			continue
		}
		s, ok := r.Lookup(flag)
		if !ok {
			if strict {
				return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, flag)
			}
			logger.Warn("Skipping unknown strategy flag.", "flag", flag)
			continue
		}
		add(s)
	}
	return out, nil
}

// Generate runs s on g and returns a plan checked to hold RoundCount rounds
// of n distinct nodes of g.
func (r *Registry) Generate(ctx context.Context, s Strategy, g *graph.Graph, n int) (model.SeedPlan, error) {
	ctx = ctxlog.With(ctx, "strategy", s.Label)
	logger := ctxlog.FromContext(ctx)
	if s.generate == nil {
		return nil, fmt.Errorf("strategy %q has no generator", s.Label)
	}
	if n <= 0 || n > g.Len() {
		return nil, fmt.Errorf("strategy %q: seed count %d out of range for %d nodes", s.Label, n, g.Len())
	}

	plan, err := s.generate(ctx, r, g, n)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: %w", s.Label, err)
	}
	plan, err = model.Normalize(plan)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: %w", s.Label, err)
	}
	if err := plan.Validate(g, n); err != nil {
		return nil, fmt.Errorf("strategy %q produced an invalid plan: %w", s.Label, err)
	}

	logger.Debug("Strategy generated seeds.", "graph", g.Name(), "n", n, "distinct", len(uniqueOf(plan)))
	return plan, nil
}

// Validate checks that the table is complete and its names are unique.
func (r *Registry) Validate() error {
	var errs []string
	flags := make(map[string]ID)
	labels := make(map[string]ID)

	for i, s := range r.table {
		id := ID(i)
		if s.ID != id {
			errs = append(errs, fmt.Sprintf("entry %d: holds id %d", i, s.ID))
		}
		if s.Flag == "" || s.Label == "" || s.generate == nil {
			errs = append(errs, fmt.Sprintf("entry %d: incomplete (flag %q, label %q)", i, s.Flag, s.Label))
			continue
		}
		if s.Flag == AllFlag || s.Label == AllFlag {
			errs = append(errs, fmt.Sprintf("entry %d: %q is reserved", i, AllFlag))
		}
		if prev, dup := flags[s.Flag]; dup {
			errs = append(errs, fmt.Sprintf("flag %q used by entries %d and %d", s.Flag, prev, id))
		}
		if prev, dup := labels[s.Label]; dup {
			errs = append(errs, fmt.Sprintf("label %q used by entries %d and %d", s.Label, prev, id))
		}
		flags[s.Flag] = id
		labels[s.Label] = id
	}

	if len(errs) > 0 {
		return fmt.Errorf("strategy table validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// prefilterSize returns the degree prefilter for n seeds.
func (r *Registry) prefilterSize(n int) int {
	if r.prefilter > 0 {
		return r.prefilter
	}
	return 3 * n
}

// filteredTopN memoises selector.DegreeFilteredTopN per graph, kind, seed
// count and prefilter size. Callers must not modify the returned slice.
func (r *Registry) filteredTopN(ctx context.Context, g *graph.Graph, kind metrics.Kind, n int) ([]graph.NodeID, error) {
	key := filterKey{g: g, kind: kind, n: n, pre: r.prefilterSize(n)}

	r.mu.Lock()
	ids, ok := r.filtered[key]
	r.mu.Unlock()
	if ok {
		return ids, nil
	}

	ids, err := selector.DegreeFilteredTopN(ctx, r.metrics, g, kind, n, key.pre)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.filtered[key] = ids
	return ids, nil
}

func uniqueOf(p model.SeedPlan) map[graph.NodeID]struct{} {
	out := make(map[graph.NodeID]struct{})
	for _, id := range p.Flatten() {
		out[id] = struct{}{}
	}
	return out
}
