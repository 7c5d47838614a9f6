// Package core provides a generic in-memory graph container built around a
// handle-indexed adjacency table, with a safety-gated mutation façade,
// set-algebraic composition, and deep cloning.
//
// The storage engine is layered bottom-up:
//
//   - Handle — an opaque, process-unique token minted per edge insertion;
//     compares only by identity and is never reused.
//   - EdgeIndex — a bijective Handle ↔ edge bimap (two plain maps kept in
//     sync by a wrapper enforcing the bijection on every mutating call).
//   - Table — the adjacency storage engine: incidence map from each vertex
//     to its set of incident Handles, plus an EdgeIndex. Its operations are
//     "safe": each assumes its documented precondition and panics on a
//     violation, because continuing would silently corrupt the invariants.
//   - Graph — the façade owning one Table. It performs the existence checks
//     the Table omits and reports outcomes as bools and (value, ok) pairs;
//     no Graph operation panics.
//
// Vertex and edge semantics plug in through small contracts:
//
//   - Vertex[P] is an identity-semantics entity around an arbitrary payload;
//     two vertices with equal payloads stay distinct entities. For
//     value-semantics vertices, use a comparable payload type directly as
//     the graph's vertex type.
//   - EdgeLike[V] is the edge capability contract; DirectedEdgeLike and
//     WeightedEdgeLike extend it. Concrete shapes: Edge (simple undirected),
//     DirectedEdge, WeightedEdge, MultiEdge (identity semantics, parallel
//     edges), ValueEdge (value-semantics vertices).
//
// Set algebra composes whole graphs while preserving Handle identity:
//
//	FormUnion / Union
//	FormIntersection / Intersection
//	Subtract / Subtracting
//	FormSymmetricDifference / SymmetricDifference
//
// Union deduplicates identical edge values to one Handle and reuses
// non-colliding foreign Handles as native identifiers, so composition never
// invalidates a surviving Handle.
//
// Invariants, held after every public operation:
//
//  1. Every Handle in any incident set has an index entry, and vice versa.
//  2. Every indexed edge's endpoints are incidence keys, each holding the
//     edge's Handle in its incident set.
//  3. No indexed edge references a vertex absent from the incidence map.
//
// Error handling has two tiers. Absence of a vertex or edge on a query or
// conditional mutation is a reported outcome (false, or ok == false) on the
// Graph façade. Violating a Table or EdgeIndex precondition is a programmer
// error: the operation panics with a value wrapping one of the package
// sentinels (ErrVertexNotFound, ErrEdgeExists, ...), matchable with
// errors.Is on the recovered value.
//
// Complexity notes: all single-element operations are O(1) amortized except
// Table.RemoveVertex, whose neighbor-set subtraction is O(degree(v)²) in
// the worst case — a documented characteristic, not an oversight (see
// Table.RemoveVertex).
//
// Graphs perform no internal locking; callers sharing a graph across
// goroutines must serialize access externally.
package core
