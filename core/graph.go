// Package core: the Graph façade over Table.
//
// Graph wraps exactly one Table and performs the existence checks the Table
// itself omits, turning "precondition violated" into a reported outcome
// (bool / value-with-ok) instead of a fatal invariant error. All public
// mutation should go through Graph; Table is exposed for direct use by
// engines that uphold the preconditions themselves.

package core

import "fmt"

// Graph is the safety-gated public surface over a single Table. A Graph's
// lifetime governs its Table's lifetime (sole ownership); the vertex and
// edge views it exposes are derived directly from the Table's two maps.
//
// Graphs are not internally synchronized: callers sharing one across
// goroutines must serialize access externally.
type Graph[V comparable, E EdgeLike[V]] struct {
	table *Table[V, E]
}

// NewGraph returns an empty Graph. Complexity: O(1).
func NewGraph[V comparable, E EdgeLike[V]]() *Graph[V, E] {
	return &Graph[V, E]{table: NewTable[V, E]()}
}

// NewGraphFrom returns a Graph pre-populated with the given vertices and no
// edges. Duplicates in the sequence are ignored. Complexity: O(len(vertices)).
func NewGraphFrom[V comparable, E EdgeLike[V]](vertices []V) *Graph[V, E] {
	g := NewGraph[V, E]()
	for _, v := range vertices {
		g.AddVertex(v)
	}
	return g
}

// NewGraphWithEdges returns a Graph holding the given vertices and edges.
// Every edge's endpoints must appear in the vertex sequence: an edge
// referencing an outside vertex is a contract breach and panics with
// ErrForeignEndpoint. Duplicate vertices and edges in the sequences are
// ignored. Complexity: O(len(vertices) + len(edges)).
func NewGraphWithEdges[V comparable, E EdgeLike[V]](vertices []V, edges []E) *Graph[V, E] {
	g := NewGraphFrom[V, E](vertices)
	for _, e := range edges {
		a, b := e.Endpoints()
		if !g.table.HasVertex(a) {
			panic(fmt.Errorf("NewGraphWithEdges: endpoint %v: %w", a, ErrForeignEndpoint))
		}
		if !g.table.HasVertex(b) {
			panic(fmt.Errorf("NewGraphWithEdges: endpoint %v: %w", b, ErrForeignEndpoint))
		}
		g.AddEdge(e)
	}
	return g
}

// Table returns the underlying storage engine. Mutating it directly
// bypasses the façade's precondition checks; callers doing so take on the
// Table's safe-operation contracts.
func (g *Graph[V, E]) Table() *Table[V, E] {
	return g.table
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int {
	return g.table.VertexCount()
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int {
	return g.table.EdgeCount()
}

// Clear resets the graph to the empty state. Complexity: O(V + E).
func (g *Graph[V, E]) Clear() {
	g.table.Clear()
}
