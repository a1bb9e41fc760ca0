// SPDX-License-Identifier: MIT
// Package builder provides deterministic B-rep fixtures in the
// functional-options style: a Constructor mutates a model.Model under a
// resolved builderConfig, and BuildModel runs constructors in order.
//
// The package offers:
//
//   - Constructors:
//     – Polygon(n):        one n-gon face.
//     – Mesh(n, cycles):   faces from explicit local vertex cycles.
//     – PlatonicSolid(p):  Tetrahedron, Cube or Octahedron shells, outward.
//     – Prism(n):          closed n-sided prism shell.
//     – Annulus(n):        one face with an n-gon hole.
//     – ClosedShell():     one region per closed, edge-connected face set.
//   - Options:
//     – WithSides(side):   face side collected by ClosedShell (0 or 1).
//     – WithColor(rgba):   color every built face.
//     – WithFaceNames(p):  name faces "<p><index>".
//
// Guarantees:
//
//   - Each constructor builds its own vertices and edges; nothing is shared
//     between constructor calls.
//   - Equal inputs give equal models, unique ids included.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrBadCycle, ErrOptionViolation,
//     ErrConstructFailed) wrapped with the method name.
//
// Usage:
//
//	m, err := builder.BuildModel(nil, []builder.BuilderOption{builder.WithColor(props.RGBA{1, 0, 0, 1})},
//		builder.PlatonicSolid(builder.Cube),
//		builder.ClosedShell(),
//	)
package builder
