// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildModel(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Public factories are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options and constructor order give identical models,
//     unique ids included.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/brep/model"
)

// Constructor applies a deterministic model mutation using the resolved
// builderConfig. Constructors validate parameters before building anything
// and wrap model errors with their method name.
type Constructor func(m *model.Model, cfg builderConfig) error

// BuildModel creates a model with options mopts, resolves the builder
// configuration from bopts, and applies all constructors in order. The first
// constructor error is wrapped with "BuildModel: %w" and returned; entities
// built before the failure are not removed.
//
// Complexity: Σ cost of each constructor plus O(len(bopts)).
func BuildModel(mopts []model.Option, bopts []BuilderOption, cons ...Constructor) (*model.Model, error) {
	m := model.NewModel(mopts...)
	if err := Apply(m, bopts, cons...); err != nil {
		return nil, err
	}

	return m, nil
}

// Apply runs constructors against an existing model.
func Apply(m *model.Model, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("BuildModel: nil model: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("BuildModel: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. Vertices are created first in
// ascending local index order, edges once per unordered vertex pair in
// first-use order, faces in the documented cycle order.

// Polygon builds one n-gon face (n ≥ 3) with its n vertices and edges.
// Complexity: O(n).
//func Polygon(n int) Constructor

// Mesh builds faces from explicit vertex cycles over n local vertices.
// Complexity: O(n + Σ|cycle|).
//func Mesh(n int, cycles [][]int) Constructor

// PlatonicSolid builds an outward-oriented closed shell for name.
// Complexity: O(V+E+F) for the chosen solid.
//func PlatonicSolid(name PlatonicName) Constructor

// Prism builds an n-sided prism (n ≥ 3): two caps plus n quads.
// Complexity: O(n).
//func Prism(n int) Constructor

// Annulus builds one face bounded by an outer n-gon with an n-gon hole.
// Complexity: O(n).
//func Annulus(n int) Constructor

// ClosedShell builds a region for every edge-connected face component
// built so far whose edges are all shared by at least two faces.
// Complexity: O(F + U).
//func ClosedShell() Constructor
