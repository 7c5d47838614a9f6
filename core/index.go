// Package core: EdgeIndex, the bidirectional Handle ↔ edge association.
//
// EdgeIndex is a bimap built from two plain maps kept in sync by the
// wrapper methods, which enforce the bijection invariant on every mutating
// call. Violating the bijection is a programmer error and panics; callers
// holding a Table establish the preconditions first.

package core

import "fmt"

// EdgeIndex maintains a one-to-one association between Handles and edge
// values. Lookup, insertion, and removal by either side run in O(1)
// amortized time. Entries carry no ordering guarantee.
type EdgeIndex[V comparable, E EdgeLike[V]] struct {
	byHandle map[Handle]E
	byEdge   map[E]Handle
}

// NewEdgeIndex returns an empty EdgeIndex. Complexity: O(1).
func NewEdgeIndex[V comparable, E EdgeLike[V]]() *EdgeIndex[V, E] {
	return &EdgeIndex[V, E]{
		byHandle: make(map[Handle]E),
		byEdge:   make(map[E]Handle),
	}
}

// Len returns the number of (handle, edge) pairs. Complexity: O(1).
func (x *EdgeIndex[V, E]) Len() int {
	return len(x.byHandle)
}

// Insert establishes the bijection entry (h, e).
// Precondition: neither h nor e is already present; violation panics with
// ErrHandleClash or ErrEdgeExists. Complexity: O(1) amortized.
func (x *EdgeIndex[V, E]) Insert(h Handle, e E) {
	if _, ok := x.byHandle[h]; ok {
		panic(fmt.Errorf("EdgeIndex.Insert(%v): %w", h, ErrHandleClash))
	}
	if _, ok := x.byEdge[e]; ok {
		panic(fmt.Errorf("EdgeIndex.Insert(%v): %w", h, ErrEdgeExists))
	}
	x.byHandle[h] = e
	x.byEdge[e] = h
}

// RemoveHandle removes the pair named by h and returns its edge.
// Precondition: h is present; violation panics with ErrUnknownHandle.
// Complexity: O(1) amortized.
func (x *EdgeIndex[V, E]) RemoveHandle(h Handle) E {
	e, ok := x.byHandle[h]
	if !ok {
		panic(fmt.Errorf("EdgeIndex.RemoveHandle(%v): %w", h, ErrUnknownHandle))
	}
	delete(x.byHandle, h)
	delete(x.byEdge, e)
	return e
}

// RemoveEdge removes the pair holding e and returns its handle.
// Precondition: e is present; violation panics with ErrEdgeNotFound.
// Complexity: O(1) amortized.
func (x *EdgeIndex[V, E]) RemoveEdge(e E) Handle {
	h, ok := x.byEdge[e]
	if !ok {
		panic(fmt.Errorf("EdgeIndex.RemoveEdge: %w", ErrEdgeNotFound))
	}
	delete(x.byHandle, h)
	delete(x.byEdge, e)
	return h
}

// Edge looks up the edge named by h. Complexity: O(1).
func (x *EdgeIndex[V, E]) Edge(h Handle) (E, bool) {
	e, ok := x.byHandle[h]
	return e, ok
}

// Handle looks up the handle naming e. Complexity: O(1).
func (x *EdgeIndex[V, E]) Handle(e E) (Handle, bool) {
	h, ok := x.byEdge[e]
	return h, ok
}

// clone returns an independent deep copy of the bimap. Complexity: O(E).
func (x *EdgeIndex[V, E]) clone() *EdgeIndex[V, E] {
	out := &EdgeIndex[V, E]{
		byHandle: make(map[Handle]E, len(x.byHandle)),
		byEdge:   make(map[E]Handle, len(x.byEdge)),
	}
	for h, e := range x.byHandle {
		out.byHandle[h] = e
		out.byEdge[e] = h
	}
	return out
}

// clear drops every entry. Complexity: O(E).
func (x *EdgeIndex[V, E]) clear() {
	x.byHandle = make(map[Handle]E)
	x.byEdge = make(map[E]Handle)
}
