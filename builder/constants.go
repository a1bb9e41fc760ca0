// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the fixture constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
	// MethodMesh is the canonical name for the Mesh constructor.
	MethodMesh = "Mesh"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodPrism is the canonical name for the Prism constructor.
	MethodPrism = "Prism"
	// MethodAnnulus is the canonical name for the Annulus constructor.
	MethodAnnulus = "Annulus"
	// MethodClosedShell is the canonical name for the ClosedShell constructor.
	MethodClosedShell = "ClosedShell"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinPolygonSides is the smallest polygon that bounds area without
// repeating an edge.
const MinPolygonSides = 3

// MinCycleLength is the shortest Mesh cycle. A one-vertex cycle would need
// a closed edge, which Mesh does not build; a two-vertex cycle builds a
// degenerate slit face.
const MinCycleLength = 2
