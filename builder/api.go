// SPDX-License-Identifier: MIT
// Package: graph-kit/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - All public factories are declared in impl_*.go files.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: same options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/marcusrossel/graph-kit/core"
)

// Graph is the concrete graph flavor the builder targets: value-semantics
// string vertices with simple undirected edges.
type Graph = core.Graph[string, core.ValueEdge[string]]

// IDFunc derives the vertex identifier for index i. Implementations must be
// pure: same i, same result.
type IDFunc func(i int) string

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic at runtime.
type Constructor func(g *Graph, cfg builderConfig) error

// builderConfig is the immutable resolved configuration shared by all
// constructors in one Build call.
type builderConfig struct {
	idFn IDFunc
}

// Option customizes the builder configuration.
type Option func(*builderConfig)

// WithIDFunc overrides the vertex identifier scheme. A nil fn keeps the
// default ("v0", "v1", ...).
func WithIDFunc(fn IDFunc) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// newBuilderConfig resolves options over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn: func(i int) string { return "v" + strconv.Itoa(i) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Build creates a new Graph, resolves the builder configuration from bopts,
// and applies all constructors in order. The first constructor error is
// wrapped with "Build: %w" and returned immediately; no partial cleanup is
// attempted.
//
// Complexity: option resolution O(len(bopts)); applying K constructors costs
// the sum of their individual costs.
func Build(bopts []Option, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[string, core.ValueEdge[string]]()
	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return g, nil
}
