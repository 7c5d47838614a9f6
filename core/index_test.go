// Package core_test verifies the EdgeIndex bijection contract.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusrossel/graph-kit/core"
)

// indexFixture returns an index plus two distinct edges over fresh vertices.
func indexFixture() (*core.EdgeIndex[string, core.ValueEdge[string]], core.ValueEdge[string], core.ValueEdge[string]) {
	idx := core.NewEdgeIndex[string, core.ValueEdge[string]]()
	return idx, core.NewValueEdge("a", "b"), core.NewValueEdge("b", "c")
}

// harvest inserts e into a scratch table so the test can obtain a freshly
// minted live handle without reaching into unexported minting.
func harvest(t *testing.T, e core.ValueEdge[string]) core.Handle {
	t.Helper()
	g := core.NewGraph[string, core.ValueEdge[string]]()
	a, b := e.Endpoints()
	g.AddVertices([]string{a, b})
	require.True(t, g.AddEdge(e))
	h, ok := g.Table().Index().Handle(e)
	require.True(t, ok)
	return h
}

// TestEdgeIndex_InsertLookupRemove walks the full bimap lifecycle in both
// directions.
func TestEdgeIndex_InsertLookupRemove(t *testing.T) {
	idx, ab, bc := indexFixture()
	h1 := harvest(t, ab)
	h2 := harvest(t, bc)

	idx.Insert(h1, ab)
	idx.Insert(h2, bc)
	assert.Equal(t, 2, idx.Len())

	gotEdge, ok := idx.Edge(h1)
	require.True(t, ok)
	assert.Equal(t, ab, gotEdge)

	gotHandle, ok := idx.Handle(bc)
	require.True(t, ok)
	assert.Equal(t, h2, gotHandle)

	// Remove by handle, then by edge.
	assert.Equal(t, ab, idx.RemoveHandle(h1))
	_, ok = idx.Handle(ab)
	assert.False(t, ok, "both directions must forget a removed pair")

	assert.Equal(t, h2, idx.RemoveEdge(bc))
	assert.Equal(t, 0, idx.Len())
}

// TestEdgeIndex_BijectionViolationsPanic checks the fatal tier: duplicate
// handles, duplicate edges, and unknown removals are contract breaches.
func TestEdgeIndex_BijectionViolationsPanic(t *testing.T) {
	idx, ab, bc := indexFixture()
	h1 := harvest(t, ab)
	h2 := harvest(t, bc)
	idx.Insert(h1, ab)

	assert.ErrorIs(t, recoverErr(func() { idx.Insert(h1, bc) }), core.ErrHandleClash)
	assert.ErrorIs(t, recoverErr(func() { idx.Insert(h2, ab) }), core.ErrEdgeExists)
	assert.ErrorIs(t, recoverErr(func() { idx.RemoveHandle(h2) }), core.ErrUnknownHandle)
	assert.ErrorIs(t, recoverErr(func() { idx.RemoveEdge(bc) }), core.ErrEdgeNotFound)

	// The failed calls must not have disturbed the surviving entry.
	assert.Equal(t, 1, idx.Len())
	e, ok := idx.Edge(h1)
	require.True(t, ok)
	assert.Equal(t, ab, e)
}
