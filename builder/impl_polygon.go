// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// impl_polygon.go - implementation of Polygon(n) and Mesh(n, cycles).
//
// Contract:
//   - Polygon: n ≥ 3 (else ErrTooFewVertices); one face over the cycle 0..n-1.
//   - Mesh: every cycle has ≥ 2 vertices in [0,n) (else ErrBadCycle), checked
//     before anything is built. Two-vertex cycles build degenerate slit faces.
//   - Vertices are built in ascending local index order, edges on first use.
//
// Complexity:
//   - Polygon: O(n). Mesh: O(n + Σ|cycle|).
//
// Determinism:
//   - Unique ids follow construction order, so equal inputs give equal ids.

package builder

import (
	"github.com/katalvlaran/brep/model"
)

// Polygon returns a Constructor that builds one n-gon face.
func Polygon(n int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, n, MinPolygonSides); err != nil {
			return err
		}
		cycle := make([]int, n)
		for i := range cycle {
			cycle[i] = i
		}
		a := newAssembler(m, cfg, MethodPolygon, n)
		_, err := a.face(cycle)

		return err
	}
}

// Mesh returns a Constructor that builds n vertices and one face per cycle.
// Cycles sharing a vertex pair share the edge. A two-vertex cycle walks its
// edge there and back and yields a degenerate slit face with no area.
func Mesh(n int, cycles [][]int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := validateMin(MethodMesh, n, 1); err != nil {
			return err
		}
		if err := validateCycles(MethodMesh, n, cycles); err != nil {
			return err
		}

		return newAssembler(m, cfg, MethodMesh, n).faceAll(cycles)
	}
}
