// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w.
//   - Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadCycle indicates a Mesh cycle that is too short or references a
// vertex index out of range.
var ErrBadCycle = errors.New("builder: invalid vertex cycle")

// ErrConstructFailed indicates the model refused an operation, or a nil
// model or constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enumerated parameter, such as a
// solid name with no face table.
var ErrOptionViolation = errors.New("builder: invalid option value")
