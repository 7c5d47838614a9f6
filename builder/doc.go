// SPDX-License-Identifier: MIT

// Package builder provides deterministic convenience constructors for
// assembling graph fixtures: Path, Cycle, Complete, and Star topologies
// over value-semantics string vertices.
//
// Everything flows through one orchestrator:
//
//	g, err := builder.Build(nil, builder.Path(4), builder.Star(3))
//
// Build creates the graph, resolves functional options into an immutable
// configuration, and applies the constructors in order. The same options
// and constructor order always produce an identical graph; the default
// identifier scheme ("v0", "v1", ...) can be replaced with WithIDFunc.
// Constructors composed in one Build call share the identifier scheme, so
// their vertex sets overlap intentionally — Path then Star grows a path
// with extra spokes out of v0, not two disjoint components.
//
// Constructors validate their parameters early and return sentinel errors
// (ErrTooFewVertices); they never panic.
package builder
