// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name).
//
// Contract:
//   - name ∈ {Tetrahedron, Cube, Octahedron}; anything else → ErrOptionViolation.
//   - Builds the solid's vertices, edges and outward faces; no region. Follow
//     with ClosedShell() to bound a volume.
//
// Complexity:
//   - Time: O(V+E+F), at most 8 vertices, 12 edges and 8 faces.
//
// Determinism:
//   - Faces are built in table order (variants_platonic.go).

package builder

import (
	"fmt"

	"github.com/katalvlaran/brep/model"
)

// PlatonicSolid returns a Constructor that builds the chosen solid's shell.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		faces, ok := platonicFaces[name]
		if !ok {
			return fmt.Errorf("%s: missing face table for %q: %w", MethodPlatonicSolid, name, ErrConstructFailed)
		}

		return newAssembler(m, cfg, MethodPlatonicSolid, n).faceAll(faces)
	}
}
