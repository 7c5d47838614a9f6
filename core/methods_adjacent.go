// Package core: Graph adjacency queries and iteration.
//
// The joint queries return (value, ok) with ok == false iff the vertex is
// absent; otherwise they return the Table's answer unchanged.

package core

import "iter"

// Degree returns the number of edges incident to v, with a self-loop
// counted once. The second result is false iff v is absent.
// Complexity: O(1).
func (g *Graph[V, E]) Degree(v V) (int, bool) {
	if !g.table.HasVertex(v) {
		return 0, false
	}
	return g.table.Degree(v), true
}

// IncidentEdges returns the edges incident to v, in unspecified order.
// The second result is false iff v is absent. Complexity: O(degree(v)).
func (g *Graph[V, E]) IncidentEdges(v V) ([]E, bool) {
	if !g.table.HasVertex(v) {
		return nil, false
	}
	return g.table.IncidentEdges(v), true
}

// AdjacentVertices returns the non-v endpoint of each edge incident to v
// (v itself for a self-loop), in unspecified order. The second result is
// false iff v is absent. Complexity: O(degree(v)).
func (g *Graph[V, E]) AdjacentVertices(v V) ([]V, bool) {
	if !g.table.HasVertex(v) {
		return nil, false
	}
	return g.table.AdjacentVertices(v), true
}

// All yields one (vertex, incident edges) pair per vertex. Enumeration
// order is unspecified and insignificant. Complexity: O(V + E) for a full
// pass.
func (g *Graph[V, E]) All() iter.Seq2[V, []E] {
	return func(yield func(V, []E) bool) {
		for v := range g.table.incidence {
			if !yield(v, g.table.IncidentEdges(v)) {
				return
			}
		}
	}
}
