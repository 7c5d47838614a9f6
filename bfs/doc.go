// Package bfs provides breadth-first search over a core.Graph, returning a
// derived search tree together with unweighted shortest-path distances,
// parent links, and visit order.
//
// Search consumes the graph through its public adjacency queries only and
// builds a new, independent core.Graph whose vertices carry
// Node{Vertex, Depth} payloads and whose edges connect each discovery to
// its BFS parent:
//
//	g := core.NewGraph[string, core.ValueEdge[string]]()
//	g.AddVertices([]string{"a", "b", "c"})
//	g.AddEdge(core.NewValueEdge("a", "b"))
//	g.AddEdge(core.NewValueEdge("b", "c"))
//
//	res, err := bfs.Search(g, "a")
//	// res.Depth["c"] == 2; res.Tree has vertices (a,0), (b,1), (c,2)
//
// Direction is a capability, not a mode: when the graph's edge type
// satisfies the directed contract (Tail/Head), the default transition
// predicate follows edges only out of their tail. A caller predicate
// supplied via WithTransition is ANDed on top. Hooks (WithOnEnqueue,
// WithOnVisit), depth limiting (WithMaxDepth), and cancellation
// (WithContext) follow the usual option pattern.
//
// A start vertex absent from the source graph yields
// ErrStartVertexNotFound and no tree. The search runs in O(V + E) over the
// reachable component.
package bfs
