// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors for construction, destruction and consistency checks.
//
// Errors:
//
//	ErrInvalidEntity    - zero, stale, or foreign entity handle.
//	ErrNotDestroyable   - a higher-dimensional use still references the entity.
//	ErrEdgeUseInLoop    - an edge-use is still part of a loop-use.
//	ErrNoEdgeUse        - the edge has no use-pair to derive a new pair from.
//	ErrVertexMismatch   - adjacent edge-uses meet at different vertices.
//	ErrMalformedLoop    - vertex-use merge found no single-use side to drop.
//	ErrLengthMismatch   - parallel argument slices differ in length.
//	ErrEmptyLoop        - a loop needs at least one edge.
//	ErrBadSide          - face side is neither 0 nor 1.
//	ErrNotSplittable    - an edge-use lacks the two vertex-uses a split rewires.
//	ErrVertexUseInUse   - a vertex-use still referenced by edge-uses.
//	ErrInconsistent     - Validate found a topology violation.
//	ErrBadRecord        - Restore was given an unusable item stream.
package model

import "errors"

var (
	// ErrInvalidEntity indicates a zero, stale, or foreign entity.
	ErrInvalidEntity = errors.New("model: invalid entity")

	// ErrNotDestroyable indicates IsDestroyable returned false.
	ErrNotDestroyable = errors.New("model: entity is not destroyable")

	// ErrEdgeUseInLoop indicates an edge-use still belongs to a loop-use.
	ErrEdgeUseInLoop = errors.New("model: edge-use is part of a loop")

	// ErrNoEdgeUse indicates the edge has no existing use-pair.
	ErrNoEdgeUse = errors.New("model: edge has no edge-use pair")

	// ErrVertexMismatch indicates consecutive edge-uses do not share a vertex.
	ErrVertexMismatch = errors.New("model: edge-uses do not meet at the same vertex")

	// ErrMalformedLoop indicates neither adjacent vertex-use can be merged away.
	ErrMalformedLoop = errors.New("model: malformed loop topology")

	// ErrLengthMismatch indicates parallel slices of different length.
	ErrLengthMismatch = errors.New("model: argument lengths differ")

	// ErrEmptyLoop indicates a loop without edges.
	ErrEmptyLoop = errors.New("model: loop has no edges")

	// ErrBadSide indicates a face side outside {0, 1}.
	ErrBadSide = errors.New("model: face side must be 0 or 1")

	// ErrNotSplittable indicates an edge-use without both endpoint vertex-uses.
	ErrNotSplittable = errors.New("model: edge cannot be split")

	// ErrVertexUseInUse indicates a vertex-use still referenced by edge-uses.
	ErrVertexUseInUse = errors.New("model: vertex-use still referenced")

	// ErrInconsistent indicates a topology invariant violation.
	ErrInconsistent = errors.New("model: inconsistent topology")

	// ErrBadRecord indicates an item stream that cannot be restored.
	ErrBadRecord = errors.New("model: bad item record")
)
