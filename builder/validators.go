// SPDX-License-Identifier: MIT
// Package builder provides validation helpers that enforce constructor
// parameter contracts before any entity is built.
package builder

import "fmt"

// validateMin ensures got ≥ min, returning ErrTooFewVertices with method
// context otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateCycles checks every cycle references [0,n) and has at least
// MinCycleLength vertices, so Mesh fails before building anything.
// Complexity: O(Σ|cycle|).
func validateCycles(method string, n int, cycles [][]int) error {
	for k, c := range cycles {
		if len(c) < MinCycleLength {
			return fmt.Errorf("%s: cycle %d has %d vertices: %w", method, k, len(c), ErrBadCycle)
		}
		for _, i := range c {
			if i < 0 || i >= n {
				return fmt.Errorf("%s: cycle %d vertex %d outside [0,%d): %w", method, k, i, n, ErrBadCycle)
			}
		}
	}

	return nil
}
