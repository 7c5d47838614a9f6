package core_test

import (
	"fmt"
	"sort"

	"github.com/marcusrossel/graph-kit/core"
)

// ExampleGraph_AddEdge demonstrates the reported-outcome tier: a missing
// endpoint or duplicate edge is a false, never a panic.
func ExampleGraph_AddEdge() {
	g := core.NewGraph[string, core.ValueEdge[string]]()
	g.AddVertices([]string{"a", "b"})

	fmt.Println(g.AddEdge(core.NewValueEdge("a", "b")))
	fmt.Println(g.AddEdge(core.NewValueEdge("b", "a"))) // same unordered pair
	fmt.Println(g.AddEdge(core.NewValueEdge("a", "z"))) // z absent

	// Output:
	// true
	// false
	// false
}

// ExampleGraph_Union composes two graphs; the shared edge is deduplicated.
func ExampleGraph_Union() {
	left := core.NewGraphWithEdges([]string{"a", "b"},
		[]core.ValueEdge[string]{core.NewValueEdge("a", "b")})
	right := core.NewGraphWithEdges([]string{"b", "c"},
		[]core.ValueEdge[string]{core.NewValueEdge("b", "c")})

	union := left.Union(right)

	vs := union.Vertices()
	sort.Strings(vs)
	fmt.Println(vs, union.EdgeCount())

	// Output:
	// [a b c] 2
}

// ExampleVertex shows identity semantics: equal payloads, distinct entities.
func ExampleVertex() {
	alpha := core.NewVertex("same")
	beta := core.NewVertex("same")

	g := core.NewGraph[*core.Vertex[string], core.Edge[string]]()
	g.AddVertex(alpha)
	g.AddVertex(beta)

	fmt.Println(g.VertexCount())

	// Output:
	// 2
}
