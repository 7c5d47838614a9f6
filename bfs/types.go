// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcusrossel/graph-kit/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent
	// from the source graph; no tree is produced.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Node pairs a source-graph vertex with its distance from the start vertex.
// It is the payload type of the vertices in the derived search tree.
type Node[V comparable] struct {
	// Vertex is the original source-graph vertex.
	Vertex V

	// Depth is the minimum number of predicate-eligible edge traversals
	// from the start vertex.
	Depth int
}

// Predicate decides whether the search may traverse e out of current.
// It is composed by logical AND with the default predicate (see Search).
type Predicate[V comparable, E core.EdgeLike[V]] func(current V, e E) bool

// Option configures Search behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option[V comparable, E core.EdgeLike[V]] func(*Options[V, E])

// Options holds parameters and callbacks to customize a search.
type Options[V comparable, E core.EdgeLike[V]] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Transition further restricts which incident edges are eligible,
	// on top of the default predicate.
	Transition Predicate[V, E]

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v V, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns Options with sane defaults: Background context,
// no extra transition restriction, no depth limit, no-op hooks.
func defaultOptions[V comparable, E core.EdgeLike[V]]() Options[V, E] {
	return Options[V, E]{
		Ctx:        context.Background(),
		Transition: func(V, E) bool { return true },
		OnEnqueue:  func(V, int) {},
		OnVisit:    func(V, int) error { return nil },
		MaxDepth:   0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable, E core.EdgeLike[V]](ctx context.Context) Option[V, E] {
	return func(o *Options[V, E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTransition restricts traversal to edges for which fn returns true,
// ANDed with the default predicate.
func WithTransition[V comparable, E core.EdgeLike[V]](fn Predicate[V, E]) Option[V, E] {
	return func(o *Options[V, E]) {
		if fn != nil {
			o.Transition = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[V comparable, E core.EdgeLike[V]](fn func(v V, depth int)) Option[V, E] {
	return func(o *Options[V, E]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error from
// this callback stops the search.
func WithOnVisit[V comparable, E core.EdgeLike[V]](fn func(v V, depth int) error) Option[V, E] {
	return func(o *Options[V, E]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable, E core.EdgeLike[V]](d int) Option[V, E] {
	return func(o *Options[V, E]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a search:
//   - Tree: a new, independent graph whose vertices carry (vertex, depth)
//     payloads and whose edges connect each discovery to its parent.
//   - Root: the tree vertex for the start vertex, at depth 0.
//   - Order: source vertices in visit sequence.
//   - Depth: distance (in eligible edges) from the start, per reached vertex.
//   - Parent: predecessor in the search tree; the start vertex has none.
type Result[V comparable] struct {
	Tree   *core.Graph[*core.Vertex[Node[V]], core.Edge[Node[V]]]
	Root   *core.Vertex[Node[V]]
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// PathTo reconstructs the source-graph path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	var path []V
	cur := dest
	for {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
