// SPDX-License-Identifier: MIT
// Package: graph-kit/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices): a simple cycle needs three vertices.
//   - Adds vertices 0..n-1, then edges (i)—((i+1) mod n) in increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			g.AddEdge(newEdge(cfg, i, (i+1)%n))
		}
		return nil
	}
}
