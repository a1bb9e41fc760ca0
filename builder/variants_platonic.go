// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// variants_platonic.go - canonical face tables for Platonic solids.
//
// Design:
//   - Single source of truth for vertex counts and face cycles.
//   - Every face cycle is counter-clockwise seen from outside, so each edge is
//     walked once in each direction across the shell.
//
// Layouts:
//   - Tetrahedron: vertices 0..3.
//   - Cube: bottom square 0-1-2-3 at z=0, top 4-5-6-7 with i+4 above i.
//   - Octahedron: poles 0 (+z) and 1 (-z); equator 2 (+x), 4 (+y), 3 (-x), 5 (-y).

package builder

// PlatonicName enumerates the supported Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4, E=6,  F=4
	Cube                            // V=8, E=12, F=6
	Octahedron                      // V=6, E=12, F=8
)

// platonicVertexCounts maps each PlatonicName to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron: 4,
	Cube:        8,
	Octahedron:  6,
}

// platonicFaces maps each PlatonicName to its outward face cycles.
var platonicFaces = map[PlatonicName][][]int{
	Tetrahedron: {
		{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2},
	},
	Cube: {
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	},
	Octahedron: {
		// upper cap around pole 0
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		// lower cap around pole 1
		{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
	},
}
