// Package bfs implements breadth-first search over a core.Graph, consuming
// only the graph's public adjacency queries and producing a new, independent
// tree graph whose vertex payloads pair each reached vertex with its
// distance from the start.

package bfs

import (
	"fmt"

	"github.com/marcusrossel/graph-kit/core"
)

// oriented detects the directed edge capability at runtime. It mirrors
// core.DirectedEdgeLike, which embeds comparable and is therefore usable
// only as a constraint.
type oriented[V comparable] interface {
	Tail() V
	Head() V
}

// walker encapsulates mutable search state.
type walker[V comparable, E core.EdgeLike[V]] struct {
	graph *core.Graph[V, E]
	opts  Options[V, E]
	queue []V
	// nodes doubles as the visited set and the source→tree vertex mapping.
	nodes map[V]*core.Vertex[Node[V]]
	res   *Result[V]
}

// Search runs breadth-first search on g from start, applying any number of
// functional Options, and returns the derived search tree.
//
// Eligibility of an incident edge composes two predicates by logical AND:
// the default one — every incident edge, except that edges satisfying the
// directed capability (Tail/Head) are followed only out of their tail — and
// an optional caller predicate supplied via WithTransition.
//
// Every vertex reachable from start appears exactly once in the result,
// with its Depth equal to the minimum number of eligible edge traversals
// from start. Complexity: O(V + E) over the reachable component.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation, or
// any error produced by the OnVisit hook.
func Search[V comparable, E core.EdgeLike[V]](g *core.Graph[V, E], start V, opts ...Option[V, E]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions[V, E]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[V, E]{
		graph: g,
		opts:  o,
		queue: make([]V, 0, n),
		nodes: make(map[V]*core.Vertex[Node[V]], n),
		res: &Result[V]{
			Tree:   core.NewGraph[*core.Vertex[Node[V]], core.Edge[Node[V]]](),
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Seed with the start vertex at depth 0.
	root := core.NewVertex(Node[V]{Vertex: start, Depth: 0})
	w.res.Tree.AddVertex(root)
	w.res.Root = root
	w.nodes[start] = root
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		current := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[current]

		w.res.Order = append(w.res.Order, current)
		if err := w.opts.OnVisit(current, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", current, err)
		}
		w.expand(current, d)
	}
	return nil
}

// expand discovers the unvisited neighbors of current through its eligible
// incident edges, growing the tree and the queue.
func (w *walker[V, E]) expand(current V, d int) {
	edges, _ := w.graph.IncidentEdges(current)
	for _, e := range edges {
		if !eligible(current, e) || !w.opts.Transition(current, e) {
			continue
		}
		neighbor := otherEndpoint(current, e)
		if _, seen := w.nodes[neighbor]; seen {
			continue
		}
		depth := d + 1
		if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
			continue
		}

		node := core.NewVertex(Node[V]{Vertex: neighbor, Depth: depth})
		w.res.Tree.AddVertex(node)
		w.res.Tree.AddEdge(core.NewEdge(w.nodes[current], node))
		w.nodes[neighbor] = node
		w.res.Depth[neighbor] = depth
		w.res.Parent[neighbor] = current
		w.opts.OnEnqueue(neighbor, depth)
		w.queue = append(w.queue, neighbor)
	}
}

// eligible is the default transition predicate: true for every incident
// edge in an undirected context; for directed edges, true only when current
// is the tail.
func eligible[V comparable, E core.EdgeLike[V]](current V, e E) bool {
	if de, ok := any(e).(oriented[V]); ok {
		return de.Tail() == current
	}
	return true
}

// otherEndpoint returns the endpoint of e that is not current; for a
// self-loop it returns current itself.
func otherEndpoint[V comparable, E core.EdgeLike[V]](current V, e E) V {
	a, b := e.Endpoints()
	if a == current {
		return b
	}
	return a
}
