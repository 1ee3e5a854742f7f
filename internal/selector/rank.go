package selector

import (
	"errors"
	"sort"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/metrics"
)

// ErrInsufficientCandidates is returned when a selector cannot reach the
// requested number of distinct seeds.
var ErrInsufficientCandidates = errors.New("not enough candidate nodes")

// Rank orders every scored node by descending score, then ascending id.
func Rank(scores metrics.ScoreMap) []graph.NodeID {
	ids := make([]graph.NodeID, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sortByScore(ids, scores)
	return ids
}

// TopN returns the n highest-scoring nodes. It returns fewer than n ids only
// when scores holds fewer than n nodes.
func TopN(scores metrics.ScoreMap, n int) []graph.NodeID {
	if n <= 0 {
		return nil
	}
	ranked := Rank(scores)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func sortByScore(ids []graph.NodeID, scores metrics.ScoreMap) {
	sort.SliceStable(ids, func(i, j int) bool {
		si, sj := scores[ids[i]], scores[ids[j]]
		if si != sj {
			return si > sj
		}
		return ids[i].Less(ids[j])
	})
}

// bestNeighbors returns up to k neighbours of id accepted by eligible,
// best-scored first.
func bestNeighbors(g *graph.Graph, id graph.NodeID, scores metrics.ScoreMap, k int, eligible func(graph.NodeID) bool) []graph.NodeID {
	if k <= 0 {
		return nil
	}
	var pool []graph.NodeID
	seen := make(map[graph.NodeID]struct{})
	g.EachNeighbor(id, func(v graph.NodeID) {
		if v == id {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		if eligible(v) {
			pool = append(pool, v)
		}
	})
	sortByScore(pool, scores)
	if len(pool) > k {
		pool = pool[:k]
	}
	return pool
}
