package selector

import "github.com/specialistvlad/seedgrid/internal/graph"

// Interleave alternates a[0], b[0], a[1], b[1], ... skipping ids already
// taken, until n distinct ids are collected or both inputs are exhausted.
func Interleave(a, b []graph.NodeID, n int) []graph.NodeID {
	picked := newPickSet(n)
	for i := 0; picked.len() < n && (i < len(a) || i < len(b)); i++ {
		if i < len(a) {
			picked.add(a[i])
		}
		if i < len(b) && picked.len() < n {
			picked.add(b[i])
		}
	}
	return picked.ids
}

// Union returns the ids of a followed by those of b that are not in a.
func Union(a, b []graph.NodeID) []graph.NodeID {
	picked := newPickSet(len(a) + len(b))
	for _, id := range a {
		picked.add(id)
	}
	for _, id := range b {
		picked.add(id)
	}
	return picked.ids
}
