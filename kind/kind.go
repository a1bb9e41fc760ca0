// SPDX-License-Identifier: MIT
// Package kind enumerates the closed set of topological entity kinds.
//
// Every item stored in an association graph is tagged with exactly one Kind.
// The association core keys its per-item buckets by Kind, so this
// enumeration is the only coupling between the core and the entity layer.
package kind

// Kind is the discriminant of a topological entity.
// The zero value (None) never tags a live item; it marks placeholder slots.
type Kind uint8

// Enum values (stable ordering; persisted by archives).
const (
	None      Kind = iota // placeholder / invalid
	Model                 // root container
	Vertex                // dimension 0
	VertexUse             // vertex role inside edge-use contexts
	Edge                  // dimension 1
	EdgeUse               // oriented use of an edge
	LoopUse               // ordered cycle of edge-uses
	Face                  // dimension 2
	FaceUse               // one side of a face
	ShellUse              // closed set of face-uses bounding a region
	Region                // dimension 3

	count // number of kinds, keep last
)

// All lists every valid kind in enum order (None excluded).
var All = []Kind{Model, Vertex, VertexUse, Edge, EdgeUse, LoopUse, Face, FaceUse, ShellUse, Region}

// Geometric lists the geometric kinds in ascending dimension.
var Geometric = []Kind{Vertex, Edge, Face, Region}

// String returns a readable name for logs and errors.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Model:
		return "model"
	case Vertex:
		return "vertex"
	case VertexUse:
		return "vertex-use"
	case Edge:
		return "edge"
	case EdgeUse:
		return "edge-use"
	case LoopUse:
		return "loop-use"
	case Face:
		return "face"
	case FaceUse:
		return "face-use"
	case ShellUse:
		return "shell-use"
	case Region:
		return "region"
	default:
		return "unknown"
	}
}

// Valid reports whether k tags a real entity.
func (k Kind) Valid() bool { return k > None && k < count }

// IsGeometric reports whether k is one of Vertex, Edge, Face, Region.
func (k Kind) IsGeometric() bool {
	return k == Vertex || k == Edge || k == Face || k == Region
}

// IsUse reports whether k is one of the use kinds.
func (k Kind) IsUse() bool {
	return k == VertexUse || k == EdgeUse || k == LoopUse || k == FaceUse || k == ShellUse
}

// Dimension returns the topological dimension of a geometric kind,
// or -1 for every other kind.
func (k Kind) Dimension() int {
	switch k {
	case Vertex:
		return 0
	case Edge:
		return 1
	case Face:
		return 2
	case Region:
		return 3
	default:
		return -1
	}
}

// Parse maps a name produced by String back to its Kind.
// Unknown names return (None, false).
func Parse(name string) (Kind, bool) {
	for _, k := range All {
		if k.String() == name {
			return k, true
		}
	}
	return None, false
}
