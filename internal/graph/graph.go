package graph

// Graph is an undirected graph with a fixed node set. The zero value is an
// empty graph; use Builder or Load to create one with content.
type Graph struct {
	name  string
	nodes []NodeID
	adj   map[NodeID][]NodeID
	edges int
}

// Name returns the graph name (the file stem it was loaded from).
func (g *Graph) Name() string {
	return g.name
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges, self-loops included.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Nodes returns all node ids in ascending order. The slice is a copy.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Has reports whether id is in the node set.
func (g *Graph) Has(id NodeID) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the ids adjacent to id in ascending order. A node with a
// self-loop lists itself. The slice is a copy.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	nbrs := g.adj[id]
	out := make([]NodeID, len(nbrs))
	copy(out, nbrs)
	return out
}

// EachNeighbor calls fn for every neighbour of id, in ascending order.
func (g *Graph) EachNeighbor(id NodeID, fn func(NodeID)) {
	for _, v := range g.adj[id] {
		fn(v)
	}
}

// Degree returns the number of edge endpoints at id. A self-loop counts twice.
func (g *Graph) Degree(id NodeID) int {
	d := len(g.adj[id])
	if g.HasSelfLoop(id) {
		d++
	}
	return d
}

// HasSelfLoop reports whether id is adjacent to itself.
func (g *Graph) HasSelfLoop(id NodeID) bool {
	for _, v := range g.adj[id] {
		if v == id {
			return true
		}
	}
	return false
}

// Subgraph returns the subgraph induced by ids. Ids that are not in g are
// ignored. The result shares nothing with g.
func (g *Graph) Subgraph(ids []NodeID) *Graph {
	keep := make(map[NodeID]struct{}, len(ids))
	for _, id := range ids {
		if g.Has(id) {
			keep[id] = struct{}{}
		}
	}

	b := NewBuilder(g.name)
	for id := range keep {
		b.AddNode(id)
		for _, v := range g.adj[id] {
			if _, ok := keep[v]; ok {
				b.AddEdge(id, v)
			}
		}
	}
	return b.Build()
}

// Mutable returns a Builder holding a private structural copy of g.
func (g *Graph) Mutable() *Builder {
	b := NewBuilder(g.name)
	for _, id := range g.nodes {
		b.AddNode(id)
		for _, v := range g.adj[id] {
			b.AddEdge(id, v)
		}
	}
	return b
}

// Builder accumulates nodes and undirected edges. It is not safe for
// concurrent use.
type Builder struct {
	name string
	adj  map[NodeID]map[NodeID]struct{}
}

// NewBuilder returns an empty builder for a graph called name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		adj:  make(map[NodeID]map[NodeID]struct{}),
	}
}

// AddNode adds id to the node set. Adding an existing node is a no-op.
func (b *Builder) AddNode(id NodeID) *Builder {
	if _, ok := b.adj[id]; !ok {
		b.adj[id] = make(map[NodeID]struct{})
	}
	return b
}

// AddEdge adds the undirected edge u–v, creating missing endpoints.
func (b *Builder) AddEdge(u, v NodeID) *Builder {
	b.AddNode(u)
	b.AddNode(v)
	b.adj[u][v] = struct{}{}
	b.adj[v][u] = struct{}{}
	return b
}

// RemoveNode drops id and every edge touching it.
func (b *Builder) RemoveNode(id NodeID) *Builder {
	for v := range b.adj[id] {
		delete(b.adj[v], id)
	}
	delete(b.adj, id)
	return b
}

// RemoveSelfLoops drops every edge from a node to itself.
func (b *Builder) RemoveSelfLoops() *Builder {
	for id, nbrs := range b.adj {
		delete(nbrs, id)
	}
	return b
}

// Build freezes the builder's current content into a new Graph. The builder
// may keep being used afterwards without affecting the result.
func (b *Builder) Build() *Graph {
	g := &Graph{
		name:  b.name,
		nodes: make([]NodeID, 0, len(b.adj)),
		adj:   make(map[NodeID][]NodeID, len(b.adj)),
	}

	endpoints := 0
	for id, nbrs := range b.adj {
		g.nodes = append(g.nodes, id)
		list := make([]NodeID, 0, len(nbrs))
		for v := range nbrs {
			list = append(list, v)
			if v == id {
				endpoints += 2
			} else {
				endpoints++
			}
		}
		SortIDs(list)
		g.adj[id] = list
	}
	SortIDs(g.nodes)
	g.edges = endpoints / 2
	return g
}
