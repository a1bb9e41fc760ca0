// SPDX-License-Identifier: MIT
// Package brep is an in-memory boundary-representation topology kernel:
// regions bounded by faces, faces bounded by loops of edges, edges bounded
// by vertices, each geometric entity paired with the use entities that record
// how it is used, from which side and in which direction.
//
// What is brep?
//
//	A topology-only modelling core that brings together:
//		• Association graph: generation-tagged handles, ordered buckets, and
//		  the symmetric invariant (every link is recorded at both ends)
//		• Use layer: face-uses, loop-uses, edge-use pairs and vertex-uses
//		• Geometric layer: build, split and destroy vertices, edges, faces, regions
//		• Model container: unique ids, counters, events, Validate, Reset
//		• Persistence: a visitor stream, Restore, and a Badger-backed archive
//		• Traversal and fixtures: face BFS, platonic solids, prisms, annuli
//
// Packages:
//
//	assoc/:    the association graph core (Store, Handle, ItemSet, iterators)
//	kind/:     entity kinds and their dimensions
//	props/:    typed property values and the per-entity property bag
//	model/:    entities, uses, construction, split, destroy, validation
//	walk/:     breadth-first traversal over face adjacency
//	builder/:  deterministic model fixtures in the functional-options style
//	archive/:  zstd-compressed records in a Badger key-value store
//
// Quick ASCII example:
//
//	    a───b
//	    │ ╲ │
//	    d───c
//
//	two triangular faces sharing the edge a-c: edge a-c carries four
//	edge-uses (two per face), every other edge carries two.
//
// Geometry, rendering and interactive picking are out of scope: entities
// carry opaque geometry and display handles that the kernel stores but never
// interprets.
//
//	go get github.com/katalvlaran/brep
package brep
