// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// impl_prism.go - implementation of Prism(n) and Annulus(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Prism: bottom ring 0..n-1, top ring n..2n-1 with n+i above i. Faces in
//     order: bottom cap, top cap, then side quads i = 0..n-1, all outward.
//   - Annulus: outer ring 0..n-1 counter-clockwise, inner ring n..2n-1 walked
//     clockwise as the hole loop of a single face.
//
// Complexity:
//   - Time: O(n).

package builder

import (
	"github.com/katalvlaran/brep/model"
)

// Prism returns a Constructor that builds a closed n-sided prism shell.
func Prism(n int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := validateMin(MethodPrism, n, MinPolygonSides); err != nil {
			return err
		}
		bottom := make([]int, n)
		top := make([]int, n)
		for i := 0; i < n; i++ {
			bottom[i] = (n - i) % n // 0, n-1, ..., 1 seen from below
			top[i] = n + i
		}
		cycles := [][]int{bottom, top}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			cycles = append(cycles, []int{i, j, n + j, n + i})
		}

		return newAssembler(m, cfg, MethodPrism, 2*n).faceAll(cycles)
	}
}

// Annulus returns a Constructor that builds one face with one hole.
func Annulus(n int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := validateMin(MethodAnnulus, n, MinPolygonSides); err != nil {
			return err
		}
		outer := make([]int, n)
		inner := make([]int, n)
		for i := 0; i < n; i++ {
			outer[i] = i
			inner[i] = n + (n-i)%n
		}
		_, err := newAssembler(m, cfg, MethodAnnulus, 2*n).face(outer, inner)

		return err
	}
}
