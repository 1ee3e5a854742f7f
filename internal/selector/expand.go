package selector

import (
	"context"
	"fmt"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
)

// NeighborExpansion grows a seed set outward from ranked. Each ranked node is
// taken itself if still free, followed by up to k of its best-scored free
// neighbours. Passes over ranked repeat until n seeds are collected; a pass
// that adds nothing ends the walk with ErrInsufficientCandidates.
func NeighborExpansion(g *graph.Graph, ranked []graph.NodeID, scores metrics.ScoreMap, k, n int) ([]graph.NodeID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seed count must be positive, got %d", n)
	}
	picked := newPickSet(n)
	for picked.len() < n {
		before := picked.len()
		for _, id := range ranked {
			if picked.len() == n {
				break
			}
			if g.Has(id) {
				picked.add(id)
			}
			for _, v := range bestNeighbors(g, id, scores, k, picked.free) {
				if picked.len() == n {
					break
				}
				picked.add(v)
			}
		}
		if picked.len() == before {
			return nil, fmt.Errorf("neighbour expansion stopped at %d of %d seeds: %w", before, n, ErrInsufficientCandidates)
		}
	}
	return picked.ids, nil
}

// AltDegree picks the best-connected neighbours of the n highest-degree
// hubs instead of the hubs themselves. Each hub contributes up to k of its
// highest-degree neighbours that are neither hubs nor already chosen. When
// the hubs run out the remaining degree ranking is used, and only a graph too
// small for that falls back to the hubs.
func AltDegree(ctx context.Context, p metrics.Provider, g *graph.Graph, n, k int) ([]graph.NodeID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seed count must be positive, got %d", n)
	}
	degrees, err := p.Scores(ctx, g, metrics.Degree)
	if err != nil {
		return nil, fmt.Errorf("failed to score degree: %w", err)
	}
	ranked := Rank(degrees)
	hubCount := min(n, len(ranked))
	hubs := ranked[:hubCount]
	isHub := make(map[graph.NodeID]bool, hubCount)
	for _, h := range hubs {
		isHub[h] = true
	}

	picked := newPickSet(n)
	eligible := func(v graph.NodeID) bool { return !isHub[v] && picked.free(v) }
	for _, h := range hubs {
		if picked.len() == n {
			break
		}
		for _, v := range bestNeighbors(g, h, degrees, k, eligible) {
			if picked.len() == n {
				break
			}
			picked.add(v)
		}
	}
	for _, id := range ranked[hubCount:] {
		if picked.len() == n {
			break
		}
		picked.add(id)
	}
	for _, h := range hubs {
		if picked.len() == n {
			break
		}
		picked.add(h)
	}

	if picked.len() < n {
		return nil, fmt.Errorf("alt-degree found %d of %d seeds: %w", picked.len(), n, ErrInsufficientCandidates)
	}
	return picked.ids, nil
}

// KShellSupport seeds the ceil(n/5) highest core-number nodes and surrounds
// them with support: up to four round-robin passes take one free neighbour
// per core node, best core number first. Any shortfall is filled from the
// core-number ranking.
func KShellSupport(ctx context.Context, p metrics.Provider, g *graph.Graph, n int) ([]graph.NodeID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seed count must be positive, got %d", n)
	}
	cores, err := p.Scores(ctx, g, metrics.CoreNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to score core number: %w", err)
	}
	ranked := Rank(cores)
	heads := ranked[:min((n+4)/5, len(ranked))]

	picked := newPickSet(n)
	for _, h := range heads {
		picked.add(h)
	}
	for pass := 0; pass < 4 && picked.len() < n; pass++ {
		for _, h := range heads {
			if picked.len() == n {
				break
			}
			for _, v := range bestNeighbors(g, h, cores, 1, picked.free) {
				picked.add(v)
			}
		}
	}
	for _, id := range ranked {
		if picked.len() == n {
			break
		}
		picked.add(id)
	}

	if picked.len() < n {
		return nil, fmt.Errorf("k-shell support found %d of %d seeds: %w", picked.len(), n, ErrInsufficientCandidates)
	}
	return picked.ids, nil
}

// pickSet is an insertion-ordered set of node ids.
type pickSet struct {
	ids  []graph.NodeID
	seen map[graph.NodeID]struct{}
}

func newPickSet(capacity int) *pickSet {
	return &pickSet{
		ids:  make([]graph.NodeID, 0, capacity),
		seen: make(map[graph.NodeID]struct{}, capacity),
	}
}

func (s *pickSet) add(id graph.NodeID) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *pickSet) free(id graph.NodeID) bool {
	_, ok := s.seen[id]
	return !ok
}

func (s *pickSet) len() int {
	return len(s.ids)
}
