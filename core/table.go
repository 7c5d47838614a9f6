// Package core: Table, the indexed adjacency storage engine.
//
// A Table owns the incidence map (vertex → set of incident Handles) and an
// EdgeIndex (Handle ↔ edge bimap). Its operations are "safe" in the
// contract sense: each documents a precondition the caller must already
// have established, and violating one is a fatal invariant error (panic),
// not a reported failure. The Graph façade performs the existence checks
// and is the intended public entry point.
//
// Invariants held after every operation:
//  1. Every Handle in any incident set has an index entry, and vice versa.
//  2. Every indexed edge's endpoints are incidence keys, each holding the
//     edge's Handle in its incident set.
//  3. No indexed edge references a vertex absent from the incidence map.

package core

import "fmt"

// Table maps vertices to their incident edges through stable opaque Handles.
// The zero Table is not usable; construct with NewTable or NewTableFrom.
type Table[V comparable, E EdgeLike[V]] struct {
	// incidence has one entry per vertex; the empty set for isolated vertices.
	incidence map[V]map[Handle]struct{}

	// index is the Handle ↔ edge bijection over edges currently present.
	index *EdgeIndex[V, E]
}

// NewTable returns an empty Table. Complexity: O(1).
func NewTable[V comparable, E EdgeLike[V]]() *Table[V, E] {
	return &Table[V, E]{
		incidence: make(map[V]map[Handle]struct{}),
		index:     NewEdgeIndex[V, E](),
	}
}

// NewTableFrom returns a Table pre-populated with the given vertices and no
// edges. Precondition: the sequence holds no duplicates; violation panics
// with ErrVertexExists. Complexity: O(len(vertices)).
func NewTableFrom[V comparable, E EdgeLike[V]](vertices []V) *Table[V, E] {
	t := NewTable[V, E]()
	for _, v := range vertices {
		t.InsertVertex(v)
	}
	return t
}

// HasVertex reports whether v is a key of the incidence map. Complexity: O(1).
func (t *Table[V, E]) HasVertex(v V) bool {
	_, ok := t.incidence[v]
	return ok
}

// HasEdge reports whether e is present in the index. Complexity: O(1).
func (t *Table[V, E]) HasEdge(e E) bool {
	_, ok := t.index.byEdge[e]
	return ok
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (t *Table[V, E]) VertexCount() int {
	return len(t.incidence)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (t *Table[V, E]) EdgeCount() int {
	return t.index.Len()
}

// Index returns the table's edge index.
func (t *Table[V, E]) Index() *EdgeIndex[V, E] {
	return t.index
}

// Degree returns the number of edges incident to v.
// Precondition: v is in the table; violation panics with ErrVertexNotFound.
// Complexity: O(1).
func (t *Table[V, E]) Degree(v V) int {
	return len(t.mustIncident("Degree", v))
}

// IncidentEdges returns the edges named by v's incident handles, in
// unspecified order.
// Precondition: v is in the table; violation panics with ErrVertexNotFound.
// Complexity: O(degree(v)).
func (t *Table[V, E]) IncidentEdges(v V) []E {
	handles := t.mustIncident("IncidentEdges", v)
	out := make([]E, 0, len(handles))
	for h := range handles {
		out = append(out, t.index.byHandle[h])
	}
	return out
}

// AdjacentVertices maps each edge incident to v to its non-v endpoint;
// a self-loop contributes v itself. The result may repeat vertices when
// parallel edges are present, matching the incident edge multiset.
// Precondition: v is in the table; violation panics with ErrVertexNotFound.
// Complexity: O(degree(v)).
func (t *Table[V, E]) AdjacentVertices(v V) []V {
	handles := t.mustIncident("AdjacentVertices", v)
	out := make([]V, 0, len(handles))
	var a, b V
	for h := range handles {
		a, b = t.index.byHandle[h].Endpoints()
		if a == v {
			out = append(out, b)
		} else {
			out = append(out, a)
		}
	}
	return out
}

// InsertVertex records v with an empty incident set.
// Precondition: v is not in the table; violation panics with ErrVertexExists.
// Complexity: O(1).
func (t *Table[V, E]) InsertVertex(v V) {
	if _, ok := t.incidence[v]; ok {
		panic(fmt.Errorf("Table.InsertVertex: %w", ErrVertexExists))
	}
	t.incidence[v] = make(map[Handle]struct{})
}

// InsertEdge mints a Handle for e, inserts the pair into the index, and adds
// the Handle to both endpoints' incident sets. Returns the minted Handle.
// Precondition: both endpoints are in the table and e is not; violation
// panics with ErrVertexNotFound or ErrEdgeExists. Complexity: O(1) amortized.
func (t *Table[V, E]) InsertEdge(e E) Handle {
	a, b := e.Endpoints()
	ia, ok := t.incidence[a]
	if !ok {
		panic(fmt.Errorf("Table.InsertEdge: endpoint %v: %w", a, ErrVertexNotFound))
	}
	ib, ok := t.incidence[b]
	if !ok {
		panic(fmt.Errorf("Table.InsertEdge: endpoint %v: %w", b, ErrVertexNotFound))
	}
	if t.HasEdge(e) {
		panic(fmt.Errorf("Table.InsertEdge: %w", ErrEdgeExists))
	}
	h := mintHandle()
	t.index.Insert(h, e)
	ia[h] = struct{}{}
	ib[h] = struct{}{}
	return h
}

// RemoveVertex removes v and every edge incident to it, returning the number
// of edges removed.
// Precondition: v is in the table; violation panics with ErrVertexNotFound.
//
// Each distinct neighbor's incident set is subtracted exactly once per
// removal pass, but the subtraction rebuilds the neighbor's whole set, so
// the worst case is O(degree(v)²). Bringing this to O(degree(v)) needs an
// incident-set representation with O(removed-count) subtraction; until then
// the quadratic cost is a documented characteristic of this operation.
func (t *Table[V, E]) RemoveVertex(v V) int {
	handles := t.mustIncident("RemoveVertex", v)

	removed := make(map[Handle]struct{}, len(handles))
	neighbors := make(map[V]struct{})
	var a, b, other V
	for h := range handles {
		a, b = t.index.RemoveHandle(h).Endpoints()
		removed[h] = struct{}{}
		other = a
		if a == v {
			other = b
		}
		if other != v {
			neighbors[other] = struct{}{}
		}
	}

	// Whole-set subtraction per distinct neighbor (the quadratic pass).
	for n := range neighbors {
		old := t.incidence[n]
		next := make(map[Handle]struct{}, len(old))
		for h := range old {
			if _, gone := removed[h]; !gone {
				next[h] = struct{}{}
			}
		}
		t.incidence[n] = next
	}

	delete(t.incidence, v)
	return len(removed)
}

// RemoveEdge removes e's Handle from the index and from both endpoints'
// incident sets.
// Precondition: e is in the table; violation panics with ErrEdgeNotFound.
// Complexity: O(1) amortized.
func (t *Table[V, E]) RemoveEdge(e E) {
	h, ok := t.index.byEdge[e]
	if !ok {
		panic(fmt.Errorf("Table.RemoveEdge: %w", ErrEdgeNotFound))
	}
	delete(t.index.byHandle, h)
	delete(t.index.byEdge, e)
	a, b := e.Endpoints()
	delete(t.incidence[a], h)
	delete(t.incidence[b], h)
}

// Clear empties both maps. Complexity: O(V + E).
func (t *Table[V, E]) Clear() {
	t.incidence = make(map[V]map[Handle]struct{})
	t.index.clear()
}

// Vertices returns a snapshot of the vertex set, in unspecified order.
// Complexity: O(V).
func (t *Table[V, E]) Vertices() []V {
	out := make([]V, 0, len(t.incidence))
	for v := range t.incidence {
		out = append(out, v)
	}
	return out
}

// Edges returns a snapshot of the edge set, in unspecified order.
// Complexity: O(E).
func (t *Table[V, E]) Edges() []E {
	out := make([]E, 0, t.index.Len())
	for e := range t.index.byEdge {
		out = append(out, e)
	}
	return out
}

// Clone returns an independent deep copy holding the same vertices, edges,
// and Handles. Complexity: O(V + E).
func (t *Table[V, E]) Clone() *Table[V, E] {
	out := &Table[V, E]{
		incidence: make(map[V]map[Handle]struct{}, len(t.incidence)),
		index:     t.index.clone(),
	}
	for v, hs := range t.incidence {
		set := make(map[Handle]struct{}, len(hs))
		for h := range hs {
			set[h] = struct{}{}
		}
		out.incidence[v] = set
	}
	return out
}

// mustIncident fetches v's incident set or panics with ErrVertexNotFound.
func (t *Table[V, E]) mustIncident(op string, v V) map[Handle]struct{} {
	handles, ok := t.incidence[v]
	if !ok {
		panic(fmt.Errorf("Table.%s(%v): %w", op, v, ErrVertexNotFound))
	}
	return handles
}
