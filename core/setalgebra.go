// Package core: the set-algebra engine.
//
// The engine composes two Tables, each with its own Handle space, into one.
// Handles are process-unique, so the only collisions possible are *value*
// collisions: the same edge value present in both tables under different
// Handles. Union reconciles those through a foreign→native remapping; the
// other operations only ever shrink the native Handle set, or merge
// provably disjoint remainders.
//
// Graph exposes each operation twice: a mutating form (FormUnion, ...)
// applied to the receiver in place, and a non-mutating form (Union, ...)
// that deep-copies the receiver, mutates the copy, and returns it.

package core

// FormUnion merges other into t. Identical edge values are deduplicated to
// the native Handle; non-overlapping vertices and edges are carried over
// with their original Handles reused as native identifiers.
// A nil or identical other is a no-op. Complexity: O(V_other + E_other).
func (t *Table[V, E]) FormUnion(other *Table[V, E]) {
	if other == nil || other == t {
		return
	}

	// Carry the foreign index over, recording value collisions.
	remap := make(map[Handle]Handle)
	for h, e := range other.index.byHandle {
		if native, ok := t.index.byEdge[e]; ok {
			remap[h] = native
			continue
		}
		t.index.byHandle[h] = e
		t.index.byEdge[e] = h
	}

	// Union each foreign incident set into the native vertex entry,
	// remapping collided Handles on the way.
	for v, handles := range other.incidence {
		dst, ok := t.incidence[v]
		if !ok {
			dst = make(map[Handle]struct{}, len(handles))
			t.incidence[v] = dst
		}
		for h := range handles {
			if native, collided := remap[h]; collided {
				dst[native] = struct{}{}
			} else {
				dst[h] = struct{}{}
			}
		}
	}
}

// FormIntersection keeps only the vertices and edge values present in both
// tables, preserving native Handles. A nil other empties t; an identical
// other is a no-op. Complexity: O(V + E) over the native table.
func (t *Table[V, E]) FormIntersection(other *Table[V, E]) {
	if other == t {
		return
	}
	if other == nil {
		t.Clear()
		return
	}

	// Drop every native vertex absent from the other side, tracking the
	// losses so the edge pass can cascade.
	removed := make(map[V]struct{})
	for v := range t.incidence {
		if _, ok := other.incidence[v]; !ok {
			removed[v] = struct{}{}
			delete(t.incidence, v)
		}
	}

	// Drop every native edge incident to a removed vertex or absent from
	// the other side's edge set, pruning its Handle from surviving
	// endpoints' incident sets.
	var a, b V
	for h, e := range t.index.byHandle {
		a, b = e.Endpoints()
		_, aGone := removed[a]
		_, bGone := removed[b]
		_, shared := other.index.byEdge[e]
		if !aGone && !bGone && shared {
			continue
		}
		delete(t.index.byHandle, h)
		delete(t.index.byEdge, e)
		if set, ok := t.incidence[a]; ok {
			delete(set, h)
		}
		if set, ok := t.incidence[b]; ok {
			delete(set, h)
		}
	}
}

// Subtract removes from t every vertex present in other, cascading to the
// edges incident to a removed vertex. Edge values shared by both tables
// disappear with their endpoints, which other's own invariants guarantee
// are shared vertices. A nil other is a no-op; an identical other empties t.
// Complexity: O(V + E) over the native table.
func (t *Table[V, E]) Subtract(other *Table[V, E]) {
	if other == nil {
		return
	}
	if other == t {
		t.Clear()
		return
	}

	removed := make(map[V]struct{})
	for v := range t.incidence {
		if _, ok := other.incidence[v]; ok {
			removed[v] = struct{}{}
			delete(t.incidence, v)
		}
	}

	var a, b V
	for h, e := range t.index.byHandle {
		a, b = e.Endpoints()
		_, aGone := removed[a]
		_, bGone := removed[b]
		if !aGone && !bGone {
			continue
		}
		delete(t.index.byHandle, h)
		delete(t.index.byEdge, e)
		if set, ok := t.incidence[a]; ok {
			delete(set, h)
		}
		if set, ok := t.incidence[b]; ok {
			delete(set, h)
		}
	}
}

// FormSymmetricDifference leaves t holding exactly the vertices and edge
// values present in one table but not the other. The excision works on a
// clone of other, so the argument is never mutated. Common vertices (with
// their incident edges) are removed from both working sides, common edge
// values likewise, and the disjoint remainder of the other side merges in
// with no collision remapping needed. A nil other is a no-op; an identical
// other empties t. Complexity: O(V + E) over both tables.
func (t *Table[V, E]) FormSymmetricDifference(other *Table[V, E]) {
	if other == nil {
		return
	}
	if other == t {
		t.Clear()
		return
	}
	rest := other.Clone()

	// Excise vertices present on both sides, edges cascading.
	var common []V
	for v := range t.incidence {
		if _, ok := rest.incidence[v]; ok {
			common = append(common, v)
		}
	}
	for _, v := range common {
		t.RemoveVertex(v)
		rest.RemoveVertex(v)
	}

	// Excise edge values present on both sides. With common vertices
	// already gone this pass is vacuous for invariant-respecting tables;
	// it stays as a guard for tables mutated through Table directly.
	for e := range t.index.byEdge {
		if _, ok := rest.index.byEdge[e]; ok {
			t.RemoveEdge(e)
			rest.RemoveEdge(e)
		}
	}

	// Merge the remainder. Vertex sets and edge-value sets are disjoint
	// now, and Handle spaces never overlap across tables.
	for v, handles := range rest.incidence {
		set := make(map[Handle]struct{}, len(handles))
		for h := range handles {
			set[h] = struct{}{}
		}
		t.incidence[v] = set
	}
	for h, e := range rest.index.byHandle {
		t.index.byHandle[h] = e
		t.index.byEdge[e] = h
	}
}

// FormUnion merges other's vertices and edges into g, deduplicating
// identical edge values to one Handle. See Table.FormUnion.
func (g *Graph[V, E]) FormUnion(other *Graph[V, E]) {
	if other == nil {
		return
	}
	g.table.FormUnion(other.table)
}

// Union returns a new graph holding the union of g and other; g is not
// mutated. Cost includes copying g wholesale.
func (g *Graph[V, E]) Union(other *Graph[V, E]) *Graph[V, E] {
	out := g.Clone()
	out.FormUnion(other)
	return out
}

// FormIntersection keeps only the vertices and edges g shares with other.
// See Table.FormIntersection.
func (g *Graph[V, E]) FormIntersection(other *Graph[V, E]) {
	if other == nil {
		g.table.FormIntersection(nil)
		return
	}
	g.table.FormIntersection(other.table)
}

// Intersection returns a new graph holding the intersection of g and other;
// g is not mutated.
func (g *Graph[V, E]) Intersection(other *Graph[V, E]) *Graph[V, E] {
	out := g.Clone()
	out.FormIntersection(other)
	return out
}

// Subtract removes from g every vertex present in other, cascading to
// incident edges. See Table.Subtract.
func (g *Graph[V, E]) Subtract(other *Graph[V, E]) {
	if other == nil {
		return
	}
	g.table.Subtract(other.table)
}

// Subtracting returns a new graph holding g minus other; g is not mutated.
func (g *Graph[V, E]) Subtracting(other *Graph[V, E]) *Graph[V, E] {
	out := g.Clone()
	out.Subtract(other)
	return out
}

// FormSymmetricDifference leaves g holding the vertices and edges present
// in exactly one of g and other. The argument graph is not mutated.
// See Table.FormSymmetricDifference.
func (g *Graph[V, E]) FormSymmetricDifference(other *Graph[V, E]) {
	if other == nil {
		return
	}
	g.table.FormSymmetricDifference(other.table)
}

// SymmetricDifference returns a new graph holding the symmetric difference
// of g and other; neither input is mutated.
func (g *Graph[V, E]) SymmetricDifference(other *Graph[V, E]) *Graph[V, E] {
	out := g.Clone()
	out.FormSymmetricDifference(other)
	return out
}
