// Package core_test: shared helpers for the core test suite.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcusrossel/graph-kit/core"
)

// recoverErr runs fn and converts a panic into an error result, so tests
// can branch on fatal-tier sentinels with errors.Is. A non-error panic
// value is wrapped; a clean return yields nil.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("non-error panic: %v", r)
		}
	}()
	fn()
	return nil
}

// checkInvariants asserts the three table invariants on g:
//  1. handle/index correspondence in both directions,
//  2. every indexed edge's endpoints hold its handle,
//  3. no indexed edge references an absent vertex.
func checkInvariants[V comparable, E core.EdgeLike[V]](t *testing.T, g *core.Graph[V, E]) {
	t.Helper()
	tbl := g.Table()
	idx := tbl.Index()

	seen := 0
	for _, v := range tbl.Vertices() {
		for _, e := range tbl.IncidentEdges(v) {
			_, ok := idx.Handle(e)
			require.True(t, ok, "incident edge %v of %v missing from index", e, v)
			seen++
		}
	}

	for _, e := range tbl.Edges() {
		h, ok := idx.Handle(e)
		require.True(t, ok, "edge %v missing handle", e)
		a, b := e.Endpoints()
		for _, end := range []V{a, b} {
			require.True(t, tbl.HasVertex(end), "endpoint %v of %v absent", end, e)
			found := false
			for _, ie := range tbl.IncidentEdges(end) {
				if ih, _ := idx.Handle(ie); ih == h {
					found = true
					break
				}
			}
			require.True(t, found, "endpoint %v does not hold handle of %v", end, e)
		}
	}
}

// scenarioTable builds the worked example used across the suite:
// vertices {a,b,c,d,e,f}, edges {(a,a),(a,b),(a,c),(b,e),(c,f)} over
// value-semantics string vertices.
func scenarioTable() *core.Graph[string, core.ValueEdge[string]] {
	vertices := []string{"a", "b", "c", "d", "e", "f"}
	edges := []core.ValueEdge[string]{
		core.NewValueEdge("a", "a"),
		core.NewValueEdge("a", "b"),
		core.NewValueEdge("a", "c"),
		core.NewValueEdge("b", "e"),
		core.NewValueEdge("c", "f"),
	}
	return core.NewGraphWithEdges(vertices, edges)
}
