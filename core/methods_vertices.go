// Package core: Graph vertex operations.
//
// Each mutation checks the Table precondition first and reports the outcome
// as a bool; bulk forms apply the single-element operation per element and
// count the true results. Sequence order determines processing order but is
// otherwise insignificant, since later duplicates are no-ops.

package core

// AddVertex inserts v. Reports true iff v was absent and is now present;
// an already-present vertex is a no-op. Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(v V) bool {
	if g.table.HasVertex(v) {
		return false
	}
	g.table.InsertVertex(v)
	return true
}

// AddVertices inserts each vertex in order and returns the number actually
// inserted. Complexity: O(len(vertices)).
func (g *Graph[V, E]) AddVertices(vertices []V) int {
	n := 0
	for _, v := range vertices {
		if g.AddVertex(v) {
			n++
		}
	}
	return n
}

// RemoveVertex removes v and, cascading, every edge incident to it.
// Reports true iff v was present and is now removed.
// Complexity: O(degree(v)²) worst case; see Table.RemoveVertex.
func (g *Graph[V, E]) RemoveVertex(v V) bool {
	if !g.table.HasVertex(v) {
		return false
	}
	g.table.RemoveVertex(v)
	return true
}

// RemoveVertices removes each vertex in order and returns the number
// actually removed.
func (g *Graph[V, E]) RemoveVertices(vertices []V) int {
	n := 0
	for _, v := range vertices {
		if g.RemoveVertex(v) {
			n++
		}
	}
	return n
}

// HasVertex reports whether v is present. Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v V) bool {
	return g.table.HasVertex(v)
}

// Vertices returns a snapshot of the vertex set, in unspecified order.
// Complexity: O(V).
func (g *Graph[V, E]) Vertices() []V {
	return g.table.Vertices()
}

// VerticesWhere returns the vertices satisfying pred, in unspecified order.
// Complexity: O(V).
func (g *Graph[V, E]) VerticesWhere(pred func(V) bool) []V {
	var out []V
	for v := range g.table.incidence {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// UniqueVertex returns the single vertex satisfying pred. The second result
// is false when zero or more than one vertex matches. Complexity: O(V).
func (g *Graph[V, E]) UniqueVertex(pred func(V) bool) (V, bool) {
	var match V
	found := false
	for v := range g.table.incidence {
		if !pred(v) {
			continue
		}
		if found {
			var zero V
			return zero, false
		}
		match, found = v, true
	}
	return match, found
}
