// SPDX-License-Identifier: MIT
// Package: graph-kit/builder
//
// helpers.go - small shared utilities for the impl_*.go constructors.

package builder

import "github.com/marcusrossel/graph-kit/core"

// newEdge builds the value edge between the vertices at indices i and j
// under the resolved identifier scheme.
func newEdge(cfg builderConfig, i, j int) core.ValueEdge[string] {
	return core.NewValueEdge(cfg.idFn(i), cfg.idFn(j))
}
