package metrics

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/seedgrid/internal/graph"
)

// Kind selects a centrality measure.
type Kind int

const (
	Degree Kind = iota
	Betweenness
	Closeness
	CoreNumber
	Clustering
)

// Kinds lists every supported measure.
var Kinds = []Kind{Degree, Betweenness, Closeness, CoreNumber, Clustering}

func (k Kind) String() string {
	switch k {
	case Degree:
		return "degree"
	case Betweenness:
		return "betweenness"
	case Closeness:
		return "closeness"
	case CoreNumber:
		return "core-number"
	case Clustering:
		return "clustering"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a measure name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// ScoreMap maps every node of a graph to a score. Treat it as read-only: a
// cached map is shared by every caller.
type ScoreMap map[graph.NodeID]float64
