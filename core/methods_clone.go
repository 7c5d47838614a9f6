// Package core: Graph cloning and set equality.

package core

// Clone returns a deep copy of the graph: an independent Table holding the
// same vertices, edges, and Handles. Cost is proportional to the receiver's
// size. Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	return &Graph[V, E]{table: g.table.Clone()}
}

// SetEqual reports whether g and other hold the same vertex set and the
// same edge-value set. Handle identity is ignored: two graphs that grew
// through different histories compare equal when their contents agree.
// A nil other compares equal only to an empty graph. Complexity: O(V + E).
func (g *Graph[V, E]) SetEqual(other *Graph[V, E]) bool {
	if other == nil {
		return g.VertexCount() == 0 && g.EdgeCount() == 0
	}
	if g.VertexCount() != other.VertexCount() || g.EdgeCount() != other.EdgeCount() {
		return false
	}
	for v := range g.table.incidence {
		if !other.table.HasVertex(v) {
			return false
		}
	}
	for e := range g.table.index.byEdge {
		if !other.table.HasEdge(e) {
			return false
		}
	}
	return true
}
