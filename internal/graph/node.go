package graph

import (
	"sort"
	"strconv"
)

// NodeID identifies a node. It is stable across the graph, score maps and
// seed plans of one run.
type NodeID string

// Less reports whether a sorts before b. Two base-10 integers compare by
// value, anything else compares as text; an integer sorts before text.
func (a NodeID) Less(b NodeID) bool {
	ai, aerr := strconv.ParseInt(string(a), 10, 64)
	bi, berr := strconv.ParseInt(string(b), 10, 64)
	switch {
	case aerr == nil && berr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}

// SortIDs sorts ids in place by NodeID.Less.
func SortIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}

// IDsOf converts plain strings to node ids.
func IDsOf(values ...string) []NodeID {
	ids := make([]NodeID, len(values))
	for i, v := range values {
		ids[i] = NodeID(v)
	}
	return ids
}
