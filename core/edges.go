// Package core: edge capability contracts and the concrete edge shapes.
//
// EdgeLike is the minimal contract a Table needs from an edge value; the
// directed and weighted contracts extend it without altering Table, Graph,
// or BFS behavior. Concrete shapes cover the useful combinations:
//
//	Edge          - undirected, value semantics, identity vertices (simple graph)
//	DirectedEdge  - directed, value semantics, identity vertices
//	WeightedEdge  - undirected, value semantics plus a float64 weight
//	MultiEdge     - undirected, identity semantics (parallel edges permitted)
//	ValueEdge     - undirected, value semantics, value-semantics vertices

package core

import (
	"cmp"
	"sync/atomic"
)

// EdgeLike is the capability contract for edge values stored by a Table.
// An implementation supplies an unordered endpoint pair and an equality
// meaning consistent with its semantics: "same unordered pair ⇒ equal" for
// value-semantics edges, "same entity ⇒ equal" for identity-semantics edges.
// Equality is Go's ==, so implementations encode their semantics in their
// field layout (canonical endpoint order, or a minted serial).
type EdgeLike[V comparable] interface {
	comparable

	// Endpoints returns the two endpoint vertices. For undirected shapes the
	// order carries no meaning; self-loops return the same vertex twice.
	Endpoints() (V, V)
}

// DirectedEdgeLike is an EdgeLike whose endpoint pair has a fixed
// interpretation as (start, end).
type DirectedEdgeLike[V comparable] interface {
	EdgeLike[V]

	// Tail returns the start endpoint.
	Tail() V

	// Head returns the end endpoint.
	Head() V
}

// WeightedEdgeLike is an EdgeLike carrying an additional weight payload.
type WeightedEdgeLike[V comparable] interface {
	EdgeLike[V]

	// Weight returns the edge's weight.
	Weight() float64
}

// Edge is an undirected, value-semantics edge between two identity vertices:
// NewEdge(a, b) == NewEdge(b, a). A Table of Edge values behaves as a simple
// graph (at most one edge per unordered endpoint pair).
type Edge[P any] struct {
	u, v *Vertex[P] // canonical: u.id <= v.id
}

// NewEdge builds an Edge between u and v. The endpoints are stored in
// canonical serial order so that the unordered pair fully determines
// equality, independent of argument order. Panics with ErrNilVertex if
// either endpoint is nil. Complexity: O(1).
func NewEdge[P any](u, v *Vertex[P]) Edge[P] {
	mustEndpoints(u, v)
	if u.id > v.id {
		u, v = v, u
	}
	return Edge[P]{u: u, v: v}
}

// Endpoints returns the two endpoints in canonical order.
func (e Edge[P]) Endpoints() (*Vertex[P], *Vertex[P]) {
	return e.u, e.v
}

// DirectedEdge is a value-semantics edge whose endpoint pair is interpreted
// as (tail, head): NewDirectedEdge(a, b) != NewDirectedEdge(b, a).
type DirectedEdge[P any] struct {
	tail, head *Vertex[P]
}

// NewDirectedEdge builds a DirectedEdge from tail to head.
// Panics with ErrNilVertex if either endpoint is nil. Complexity: O(1).
func NewDirectedEdge[P any](tail, head *Vertex[P]) DirectedEdge[P] {
	mustEndpoints(tail, head)
	return DirectedEdge[P]{tail: tail, head: head}
}

// Endpoints returns (tail, head).
func (e DirectedEdge[P]) Endpoints() (*Vertex[P], *Vertex[P]) {
	return e.tail, e.head
}

// Tail returns the start endpoint.
func (e DirectedEdge[P]) Tail() *Vertex[P] {
	return e.tail
}

// Head returns the end endpoint.
func (e DirectedEdge[P]) Head() *Vertex[P] {
	return e.head
}

// WeightedEdge is an undirected value-semantics edge carrying a weight.
// The weight participates in equality, so two edges between the same
// endpoints with different weights are distinct edge values.
type WeightedEdge[P any] struct {
	u, v   *Vertex[P] // canonical: u.id <= v.id
	weight float64
}

// NewWeightedEdge builds a WeightedEdge between u and v with weight w.
// Panics with ErrNilVertex if either endpoint is nil. Complexity: O(1).
func NewWeightedEdge[P any](u, v *Vertex[P], w float64) WeightedEdge[P] {
	mustEndpoints(u, v)
	if u.id > v.id {
		u, v = v, u
	}
	return WeightedEdge[P]{u: u, v: v, weight: w}
}

// Endpoints returns the two endpoints in canonical order.
func (e WeightedEdge[P]) Endpoints() (*Vertex[P], *Vertex[P]) {
	return e.u, e.v
}

// Weight returns the edge's weight.
func (e WeightedEdge[P]) Weight() float64 {
	return e.weight
}

// multiEdgeSeq generates identity serials for MultiEdge values.
var multiEdgeSeq atomic.Uint64

// MultiEdge is an undirected, identity-semantics edge: every call to
// NewMultiEdge mints a distinct entity, so a Table of MultiEdge values
// behaves as a multigraph, permitting parallel edges between the same
// endpoint pair.
type MultiEdge[P any] struct {
	serial uint64
	u, v   *Vertex[P] // canonical: u.id <= v.id
}

// NewMultiEdge mints a new MultiEdge entity between u and v.
// Panics with ErrNilVertex if either endpoint is nil. Complexity: O(1).
func NewMultiEdge[P any](u, v *Vertex[P]) MultiEdge[P] {
	mustEndpoints(u, v)
	if u.id > v.id {
		u, v = v, u
	}
	return MultiEdge[P]{serial: multiEdgeSeq.Add(1), u: u, v: v}
}

// Endpoints returns the two endpoints in canonical order.
func (e MultiEdge[P]) Endpoints() (*Vertex[P], *Vertex[P]) {
	return e.u, e.v
}

// ValueEdge is an undirected, value-semantics edge for graphs whose vertex
// identity *is* its payload (value-semantics vertices). The ordered
// constraint supplies the canonical endpoint order, collapsing
// NewValueEdge(a, b) and NewValueEdge(b, a) to one value.
type ValueEdge[V cmp.Ordered] struct {
	u, v V // canonical: u <= v
}

// NewValueEdge builds a ValueEdge between u and v. Complexity: O(1).
func NewValueEdge[V cmp.Ordered](u, v V) ValueEdge[V] {
	if cmp.Less(v, u) {
		u, v = v, u
	}
	return ValueEdge[V]{u: u, v: v}
}

// Endpoints returns the two endpoints in canonical order.
func (e ValueEdge[V]) Endpoints() (V, V) {
	return e.u, e.v
}

// mustEndpoints rejects nil endpoints at construction time, keeping nil
// vertices out of every downstream table invariant.
func mustEndpoints[P any](u, v *Vertex[P]) {
	if u == nil || v == nil {
		panic(ErrNilVertex)
	}
}
