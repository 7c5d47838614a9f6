package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusrossel/graph-kit/bfs"
	"github.com/marcusrossel/graph-kit/core"
)

type sgraph = core.Graph[string, core.ValueEdge[string]]

// buildUndirected assembles a value-vertex graph from endpoint pairs,
// adding endpoints implicitly.
func buildUndirected(pairs [][2]string) *sgraph {
	g := core.NewGraph[string, core.ValueEdge[string]]()
	for _, p := range pairs {
		g.AddVertex(p[0])
		g.AddVertex(p[1])
		g.AddEdge(core.NewValueEdge(p[0], p[1]))
	}
	return g
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := bfs.Search[string, core.ValueEdge[string]](nil, "a"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := core.NewGraph[string, core.ValueEdge[string]]()
	if _, err := bfs.Search(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}

	g.AddVertex("a")
	if _, err := bfs.Search(g, "a", bfs.WithMaxDepth[string, core.ValueEdge[string]](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_SingleVertex covers the trivial one-vertex graph.
func TestSearch_SingleVertex(t *testing.T) {
	g := core.NewGraph[string, core.ValueEdge[string]]()
	g.AddVertex("a")

	res, err := bfs.Search(g, "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, res.Order)
	assert.Equal(t, 0, res.Depth["a"])
	assert.Equal(t, 1, res.Tree.VertexCount())
	assert.Equal(t, 0, res.Tree.EdgeCount())
	assert.Equal(t, bfs.Node[string]{Vertex: "a", Depth: 0}, res.Root.Payload())
}

// TestSearch_TriangleTree pins the worked example: edges {(a,b),(b,c),(a,c)}
// from a yield tree vertices {(a,0),(b,1),(c,1)} and two root edges.
func TestSearch_TriangleTree(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})

	res, err := bfs.Search(g, "a")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 1}, res.Depth)

	// Tree shape: three vertices, two edges, both incident to the root.
	assert.Equal(t, 3, res.Tree.VertexCount())
	assert.Equal(t, 2, res.Tree.EdgeCount())
	rootDegree, ok := res.Tree.Degree(res.Root)
	require.True(t, ok)
	assert.Equal(t, 2, rootDegree)

	// Payloads carry (vertex, distance).
	payloads := make(map[bfs.Node[string]]bool)
	for _, v := range res.Tree.Vertices() {
		payloads[v.Payload()] = true
	}
	assert.Equal(t, map[bfs.Node[string]]bool{
		{Vertex: "a", Depth: 0}: true,
		{Vertex: "b", Depth: 1}: true,
		{Vertex: "c", Depth: 1}: true,
	}, payloads)
}

// TestSearch_Distances checks the unweighted shortest-path property on a
// cycle: the far side of C4 sits at depth 2, not 3.
func TestSearch_Distances(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}})

	res, err := bfs.Search(g, "a")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"a": 0, "b": 1, "d": 1, "c": 2}, res.Depth)
	assert.Equal(t, "a", res.Order[0])
	assert.Len(t, res.Order, 4)
}

// TestSearch_Disconnected ensures only the start's component is explored.
func TestSearch_Disconnected(t *testing.T) {
	g := buildUndirected([][2]string{{"x", "y"}, {"p", "q"}})

	res, err := bfs.Search(g, "x")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"x", "y"}, res.Order)
	_, reached := res.Depth["p"]
	assert.False(t, reached)
	assert.Equal(t, 2, res.Tree.VertexCount())
}

// TestSearch_SelfLoopAndDedup ensures loops do not enqueue twice and each
// vertex appears exactly once.
func TestSearch_SelfLoopAndDedup(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "a"}, {"a", "b"}})

	res, err := bfs.Search(g, "a")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b"}, res.Order)
	assert.Equal(t, 2, res.Tree.VertexCount())
	assert.Equal(t, 1, res.Tree.EdgeCount())
}

// TestSearch_DirectedDefaultPredicate checks the directed specialization:
// edges are followed only out of their tail.
func TestSearch_DirectedDefaultPredicate(t *testing.T) {
	a := core.NewVertex("a")
	b := core.NewVertex("b")
	c := core.NewVertex("c")

	g := core.NewGraph[*core.Vertex[string], core.DirectedEdge[string]]()
	g.AddVertices([]*core.Vertex[string]{a, b, c})
	g.AddEdge(core.NewDirectedEdge(a, b))
	g.AddEdge(core.NewDirectedEdge(c, b)) // points the wrong way from b

	res, err := bfs.Search(g, a)
	require.NoError(t, err)

	assert.Equal(t, map[*core.Vertex[string]]int{a: 0, b: 1}, res.Depth)
	_, reached := res.Depth[c]
	assert.False(t, reached, "edge c→b is not traversable out of b")

	// From c, both hops are tail-outward: c→b only.
	res, err = bfs.Search(g, c)
	require.NoError(t, err)
	assert.Equal(t, map[*core.Vertex[string]]int{c: 0, b: 1}, res.Depth)
}

// TestSearch_TransitionPredicate checks that the caller predicate is ANDed
// with the default.
func TestSearch_TransitionPredicate(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}, {"b", "c"}})

	res, err := bfs.Search(g, "a",
		bfs.WithTransition[string, core.ValueEdge[string]](func(current string, e core.ValueEdge[string]) bool {
			return !(e == core.NewValueEdge("b", "c"))
		}))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"a": 0, "b": 1}, res.Depth)
}

// TestSearch_MaxDepth verifies depth limiting, with 0 as the explicit
// no-limit value.
func TestSearch_MaxDepth(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}, {"b", "c"}})

	res, err := bfs.Search(g, "a", bfs.WithMaxDepth[string, core.ValueEdge[string]](1))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, res.Depth)

	res, err = bfs.Search(g, "a", bfs.WithMaxDepth[string, core.ValueEdge[string]](0))
	require.NoError(t, err)
	assert.Len(t, res.Depth, 3)
}

// TestSearch_Hooks asserts hook ordering and the abort-on-error contract.
func TestSearch_Hooks(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}, {"b", "c"}})

	var enq, vis []string
	res, err := bfs.Search(g, "a",
		bfs.WithOnEnqueue[string, core.ValueEdge[string]](func(v string, d int) { enq = append(enq, v) }),
		bfs.WithOnVisit[string, core.ValueEdge[string]](func(v string, d int) error { vis = append(vis, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, enq)
	assert.Equal(t, res.Order, vis)

	boom := errors.New("boom")
	_, err = bfs.Search(g, "a",
		bfs.WithOnVisit[string, core.ValueEdge[string]](func(v string, d int) error {
			if v == "b" {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
}

// TestSearch_PathTo covers trivial, ordinary, and unreachable targets.
func TestSearch_PathTo(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}, {"b", "c"}})

	res, err := bfs.Search(g, "a")
	require.NoError(t, err)

	path, err := res.PathTo("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)

	path, err = res.PathTo("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)

	g.AddVertex("lonely")
	res, err = bfs.Search(g, "a")
	require.NoError(t, err)
	_, err = res.PathTo("lonely")
	assert.Error(t, err)
}

// TestSearch_Cancellation verifies that a cancelled context halts the walk.
func TestSearch_Cancellation(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Search(g, "a", bfs.WithContext[string, core.ValueEdge[string]](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearch_TreeIsIndependent mutates the source graph after the search
// and checks the derived tree is unaffected.
func TestSearch_TreeIsIndependent(t *testing.T) {
	g := buildUndirected([][2]string{{"a", "b"}})

	res, err := bfs.Search(g, "a")
	require.NoError(t, err)

	g.Clear()
	assert.Equal(t, 2, res.Tree.VertexCount())
	assert.Equal(t, 1, res.Tree.EdgeCount())
}
