// Package core defines the central Table, Graph, Vertex, and edge types,
// and provides the handle-indexed adjacency primitives for building,
// querying, and composing graphs.
//
// This file declares Handle, Vertex, the sentinel errors, and the
// process-wide identity counters backing both.
//
// Errors (fatal tier - used as panic values by Table and EdgeIndex):
//
//	ErrNilVertex        - nil vertex pointer passed to an edge constructor.
//	ErrVertexNotFound   - safe operation referenced a vertex outside the table.
//	ErrVertexExists     - safe insertion of a vertex already in the table.
//	ErrEdgeNotFound     - safe operation referenced an edge outside the index.
//	ErrEdgeExists       - safe insertion of an edge already in the index.
//	ErrUnknownHandle    - handle has no entry in the index.
//	ErrHandleClash      - handle is already bound to another edge.
//	ErrForeignEndpoint  - construction saw an edge endpoint outside the vertex set.

package core

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
)

// Sentinel errors for core graph operations. The Graph façade prevents all
// of them by checking preconditions first; reaching one through a Table or
// EdgeIndex call is a programmer error and surfaces as a panic, never as a
// returned error.
var (
	// ErrNilVertex indicates a nil *Vertex passed where an endpoint is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not in table")

	// ErrVertexExists indicates a safe insertion of an already-present vertex.
	ErrVertexExists = errors.New("core: vertex already in table")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not in table")

	// ErrEdgeExists indicates a safe insertion of an already-present edge.
	ErrEdgeExists = errors.New("core: edge already in table")

	// ErrUnknownHandle indicates a handle with no entry in the edge index.
	ErrUnknownHandle = errors.New("core: unknown handle")

	// ErrHandleClash indicates a handle already bound to a different edge.
	ErrHandleClash = errors.New("core: handle already bound")

	// ErrForeignEndpoint indicates a constructor edge list referenced a vertex
	// outside the given vertex sequence.
	ErrForeignEndpoint = errors.New("core: edge endpoint outside vertex set")
)

// handleSeq generates process-unique Handle identities.
var handleSeq atomic.Uint64

// Handle is an opaque, process-unique token naming one edge's storage slot
// in a Table, independent of the edge's value. Handles compare by identity
// (==) and are never reused after the edge they name is removed; the only
// way a Handle changes meaning is the implicit remapping performed by
// Table.FormUnion when two tables hold the same edge value.
//
// The zero Handle is never minted and can serve as a "no handle" marker.
type Handle struct {
	id uint64
}

// mintHandle returns a fresh Handle distinct from every previously minted one.
// Complexity: O(1).
func mintHandle() Handle {
	return Handle{id: handleSeq.Add(1)}
}

// String renders the handle for debugging ("h1", "h2", ...).
func (h Handle) String() string {
	return "h" + strconv.FormatUint(h.id, 10)
}

// vertexSeq generates process-unique Vertex identities.
var vertexSeq atomic.Uint64

// Vertex is an identity-semantics node carrying an arbitrary payload.
// Two vertices holding equal payloads are distinct entities unless they are
// the same entity: equality is pointer equality, anchored by a serial minted
// at construction rather than by the allocation address alone. A Vertex has
// no back-reference to any graph; ownership is purely the table's bookkeeping.
//
// For value-semantics vertices (identity is the payload), use a comparable
// payload type directly as the Graph's vertex type together with ValueEdge.
type Vertex[P any] struct {
	id      uint64
	payload P
}

// NewVertex mints a new Vertex entity around payload. Complexity: O(1).
func NewVertex[P any](payload P) *Vertex[P] {
	return &Vertex[P]{id: vertexSeq.Add(1), payload: payload}
}

// Payload returns the value carried by the vertex.
func (v *Vertex[P]) Payload() P {
	return v.payload
}

// ID returns the vertex's process-unique identity serial.
func (v *Vertex[P]) ID() uint64 {
	return v.id
}

// String renders the vertex for debugging ("v3(alpha)").
func (v *Vertex[P]) String() string {
	return fmt.Sprintf("v%d(%v)", v.id, v.payload)
}
