package metrics

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath/algorithms"
	"github.com/katalvlaran/lvlath/core"
	"github.com/specialistvlad/seedgrid/internal/graph"
)

// hopIndex answers single-source hop distances over an undirected,
// unweighted lvlath mirror of a graph.
type hopIndex struct {
	mirror *core.Graph
	// linked marks nodes with at least one edge to another node. Only those
	// exist in the mirror.
	linked map[graph.NodeID]bool
}

func newHopIndex(g *graph.Graph) *hopIndex {
	idx := &hopIndex{
		mirror: core.NewGraph(false, false),
		linked: make(map[graph.NodeID]bool, g.Len()),
	}
	for _, u := range g.Nodes() {
		g.EachNeighbor(u, func(v graph.NodeID) {
			if u == v {
				return
			}
			idx.linked[u] = true
			// Each undirected edge is seen from both ends; add it once.
			if string(u) < string(v) {
				idx.mirror.AddEdge(string(u), string(v), 0)
			}
		})
	}
	return idx
}

// from returns the hop distance from s to every node reachable from it,
// s included at distance 0.
func (idx *hopIndex) from(ctx context.Context, s graph.NodeID) (map[graph.NodeID]int, error) {
	dist := map[graph.NodeID]int{s: 0}
	if !idx.linked[s] {
		return dist, nil
	}
	opts := &algorithms.BFSOptions{
		Ctx: ctx,
		OnEnqueue: func(v *core.Vertex, depth int) {
			dist[graph.NodeID(v.ID)] = depth
		},
	}
	if _, err := algorithms.BFS(idx.mirror, string(s), opts); err != nil {
		return nil, fmt.Errorf("bfs from %s: %w", s, err)
	}
	return dist, nil
}

// layers groups the keys of dist by distance, nearest first. Nodes within a
// layer keep the order of ids.
func layers(ids []graph.NodeID, dist map[graph.NodeID]int) [][]graph.NodeID {
	var out [][]graph.NodeID
	for _, id := range ids {
		d, ok := dist[id]
		if !ok {
			continue
		}
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}
	return out
}
