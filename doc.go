// Package graphkit is a generic in-memory graph container: vertices joined
// by edges, with incremental mutation, adjacency queries, set-algebraic
// composition of whole graphs, and breadth-first traversal that yields a
// derived tree graph.
//
// What's inside?
//
//	A small, composable library built on a handle-indexed adjacency table:
//		• core/    — Handle, EdgeIndex, Table, the Graph façade, edge shapes,
//		             and set algebra (union, intersection, difference,
//		             symmetric difference) preserving handle identity
//		• bfs/     — breadth-first search producing an independent search
//		             tree of (vertex, distance) payloads
//		• builder/ — deterministic convenience constructors (Path, Cycle,
//		             Complete, Star) for tests and fixtures
//
// Why graph-kit?
//
//   - Pluggable semantics — identity or value vertices, simple or parallel
//     edges, directed and weighted shapes, all through one edge contract
//   - Two-tier error design — reported outcomes on the Graph façade,
//     fatal invariant panics confined to the Table's safe operations
//   - Stable handles — composition deduplicates edges without invalidating
//     surviving handles
//   - Pure Go — no hidden deps beyond the standard library
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: four vertices, four edges, BFS from A reaches D at depth 2.
//
// Start with package core for the data model, then bfs for traversal.
package graphkit
