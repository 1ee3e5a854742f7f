package metrics

import (
	"context"
	"sync"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/graph"
	"golang.org/x/sync/errgroup"
)

type cacheKey struct {
	g    *graph.Graph
	kind Kind
}

// Cache memoises another Provider per (graph, kind). Graphs are compared by
// identity, which is safe because a Graph never changes after Build.
//
// Cache is safe for concurrent use.
type Cache struct {
	next Provider

	mu     sync.Mutex
	scores map[cacheKey]ScoreMap
	hits   int
	misses int
}

// NewCache wraps next.
func NewCache(next Provider) *Cache {
	return &Cache{
		next:   next,
		scores: make(map[cacheKey]ScoreMap),
	}
}

// Uncached returns the provider behind p when p is a Cache, and p otherwise.
// Use it for one-off graphs, such as induced subgraphs, whose scores would
// only ever miss and then stay in memory.
func Uncached(p Provider) Provider {
	if c, ok := p.(*Cache); ok {
		return c.next
	}
	return p
}

// Scores implements Provider.
func (c *Cache) Scores(ctx context.Context, g *graph.Graph, kind Kind) (ScoreMap, error) {
	key := cacheKey{g: g, kind: kind}

	c.mu.Lock()
	if s, ok := c.scores[key]; ok {
		c.hits++
		c.mu.Unlock()
		return s, nil
	}
	c.misses++
	c.mu.Unlock()

	s, err := c.next.Scores(ctx, g, kind)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Two concurrent misses may race; keep the first so every reader shares one map.
	if existing, ok := c.scores[key]; ok {
		return existing, nil
	}
	c.scores[key] = s
	return s, nil
}

// Prefetch computes the given kinds for g with at most workers running at
// once. Already cached kinds are skipped.
func (c *Cache) Prefetch(ctx context.Context, g *graph.Graph, workers int, kinds ...Kind) error {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	seen := make(map[Kind]bool, len(kinds))
	for _, kind := range kinds {
		if seen[kind] {
			continue
		}
		seen[kind] = true
		eg.Go(func() error {
			_, err := c.Scores(egCtx, g, kind)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Debug("Metrics prefetched.", "graph", g.Name(), "kinds", len(seen), "workers", workers)
	return nil
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
