// Package core: Graph edge operations.

package core

// AddEdge inserts e. Reports true iff both endpoints are present and e was
// absent, and e is now present; a missing endpoint or a duplicate edge is a
// no-op reported as false. Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(e E) bool {
	a, b := e.Endpoints()
	if !g.table.HasVertex(a) || !g.table.HasVertex(b) {
		return false
	}
	if g.table.HasEdge(e) {
		return false
	}
	g.table.InsertEdge(e)
	return true
}

// AddEdges inserts each edge in order and returns the number actually
// inserted. Complexity: O(len(edges)).
func (g *Graph[V, E]) AddEdges(edges []E) int {
	n := 0
	for _, e := range edges {
		if g.AddEdge(e) {
			n++
		}
	}
	return n
}

// RemoveEdge removes e. Reports true iff e was present and is now removed.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) RemoveEdge(e E) bool {
	if !g.table.HasEdge(e) {
		return false
	}
	g.table.RemoveEdge(e)
	return true
}

// RemoveEdges removes each edge in order and returns the number actually
// removed.
func (g *Graph[V, E]) RemoveEdges(edges []E) int {
	n := 0
	for _, e := range edges {
		if g.RemoveEdge(e) {
			n++
		}
	}
	return n
}

// RemoveEdgesWhere removes every edge satisfying pred and returns the number
// removed. Complexity: O(E).
func (g *Graph[V, E]) RemoveEdgesWhere(pred func(E) bool) int {
	n := 0
	for e := range g.table.index.byEdge {
		if pred(e) {
			g.table.RemoveEdge(e)
			n++
		}
	}
	return n
}

// HasEdge reports whether e is present. Complexity: O(1).
func (g *Graph[V, E]) HasEdge(e E) bool {
	return g.table.HasEdge(e)
}

// Edges returns a snapshot of the edge set, in unspecified order.
// Complexity: O(E).
func (g *Graph[V, E]) Edges() []E {
	return g.table.Edges()
}
