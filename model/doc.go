// SPDX-License-Identifier: MIT
// Package model implements a boundary-representation topology graph.
//
// Geometric entities (Vertex, Edge, Face, Region; dimensions 0..3) are
// connected through use entities that record orientation and adjacency:
//
//	Region ─ ShellUse ─ FaceUse ─ LoopUse ─ EdgeUse ─ VertexUse ─ Vertex
//	                       │                   │
//	                      Face                Edge
//
// Every Face has two face-uses (side 0 negative, side 1 positive). Every Edge
// owns edge-uses in twin pairs of opposite direction; the direction-1 use
// follows the edge's canonical vertex0→vertex1 orientation. A loop-use is an
// ordered cycle of edge-uses, and a face-use's first loop-use is its outer
// boundary.
//
// All entities live in an assoc.Store owned by the Model. Typed wrappers
// (Vertex, EdgeUse, ...) are small values holding the model pointer and a
// generation-checked handle; a wrapper whose item was destroyed reports
// IsValid() == false instead of aliasing a newer item.
//
// Construction:
//
//	m := model.NewModel()
//	a, b, c := m.BuildModelVertex(), m.BuildModelVertex(), m.BuildModelVertex()
//	ab, _ := m.BuildModelEdge(a, b)
//	bc, _ := m.BuildModelEdge(b, c)
//	ca, _ := m.BuildModelEdge(c, a)
//	f, _ := m.BuildModelFace([]model.Edge{ab, bc, ca}, []int{1, 1, 1})
//
// Errors are sentinel values matched with errors.Is. Failed operations are
// not rolled back; the graph keeps whatever was mutated before the failure.
//
// Events fire synchronously through Observers. BlockEvents returns a release
// func that restores the previous blocking state, so multi-step builders can
// nest guards freely.
//
// Persistence goes through Serialize (a fixed-order Visitor walk) and
// Restore; the archive package stores that stream.
package model
