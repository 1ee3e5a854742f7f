package metrics

import (
	"context"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// degreeCentrality is degree / (|V|-1); a lone node scores 1.
func degreeCentrality(g *graph.Graph) ScoreMap {
	scores := make(ScoreMap, g.Len())
	n := g.Len()
	for _, id := range g.Nodes() {
		if n <= 1 {
			scores[id] = 1
			continue
		}
		scores[id] = float64(g.Degree(id)) / float64(n-1)
	}
	return scores
}

// betweennessCentrality runs Brandes' algorithm on the unweighted graph and
// normalises by 1/((n-1)(n-2)). Shortest-path counts are accumulated layer by
// layer over the hop distances of each source.
func betweennessCentrality(ctx context.Context, g *graph.Graph) (ScoreMap, error) {
	nodes := g.Nodes()
	scores := make(ScoreMap, len(nodes))
	for _, id := range nodes {
		scores[id] = 0
	}

	hops := newHopIndex(g)
	for _, s := range nodes {
		dist, err := hops.from(ctx, s)
		if err != nil {
			return nil, err
		}

		var order []graph.NodeID
		preds := make(map[graph.NodeID][]graph.NodeID)
		sigma := map[graph.NodeID]float64{s: 1}
		for _, layer := range layers(nodes, dist) {
			for _, v := range layer {
				order = append(order, v)
				g.EachNeighbor(v, func(w graph.NodeID) {
					if dw, ok := dist[w]; ok && w != v && dw == dist[v]-1 {
						sigma[v] += sigma[w]
						preds[v] = append(preds[v], w)
					}
				})
			}
		}

		delta := make(map[graph.NodeID]float64, len(order))
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	n := len(nodes)
	if n > 2 {
		// Each undirected pair was counted from both ends.
		scale := 1 / float64((n-1)*(n-2))
		for id := range scores {
			scores[id] *= scale
		}
	}
	return scores, nil
}

// closenessCentrality is (r-1)/sum(dist) scaled by (r-1)/(n-1), where r is
// the size of the node's reachable set.
func closenessCentrality(ctx context.Context, g *graph.Graph) (ScoreMap, error) {
	nodes := g.Nodes()
	n := len(nodes)
	scores := make(ScoreMap, n)

	hops := newHopIndex(g)
	for _, s := range nodes {
		dist, err := hops.from(ctx, s)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, d := range dist {
			total += d
		}
		reach := len(dist)
		if total == 0 || n <= 1 {
			scores[s] = 0
			continue
		}
		c := float64(reach-1) / float64(total)
		c *= float64(reach-1) / float64(n-1)
		scores[s] = c
	}
	return scores, nil
}

// coreNumber reads core numbers off gonum's degeneracy ordering: a node's
// core number is the highest k whose core holds it. g must not contain
// self-loops.
func coreNumber(g *graph.Graph) ScoreMap {
	nodes := g.Nodes()
	index := make(map[graph.NodeID]int64, len(nodes))
	u := simple.NewUndirectedGraph()
	for i, id := range nodes {
		index[id] = int64(i)
		u.AddNode(simple.Node(i))
	}
	for _, a := range nodes {
		g.EachNeighbor(a, func(b graph.NodeID) {
			if index[a] < index[b] {
				u.SetEdge(simple.Edge{F: simple.Node(index[a]), T: simple.Node(index[b])})
			}
		})
	}

	core := make([]int, len(nodes))
	_, cores := topo.DegeneracyOrdering(u)
	for k, members := range cores {
		for _, m := range members {
			if k > core[m.ID()] {
				core[m.ID()] = k
			}
		}
	}

	scores := make(ScoreMap, len(nodes))
	for i, id := range nodes {
		scores[id] = float64(core[i])
	}
	return scores
}

// clusteringCoefficient is the fraction of a node's neighbour pairs that are
// themselves adjacent. Self-loops are ignored.
func clusteringCoefficient(g *graph.Graph) ScoreMap {
	scores := make(ScoreMap, g.Len())
	for _, id := range g.Nodes() {
		nbrs := make(map[graph.NodeID]struct{})
		g.EachNeighbor(id, func(v graph.NodeID) {
			if v != id {
				nbrs[v] = struct{}{}
			}
		})
		k := len(nbrs)
		if k < 2 {
			scores[id] = 0
			continue
		}
		links := 0
		for v := range nbrs {
			g.EachNeighbor(v, func(w graph.NodeID) {
				if w == v {
					return
				}
				if _, ok := nbrs[w]; ok {
					links++
				}
			})
		}
		// Every triangle edge was seen from both ends.
		scores[id] = float64(links) / float64(k*(k-1))
	}
	return scores
}
