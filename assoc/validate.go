// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Whole-store mirror check.

package assoc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brep/kind"
)

// Validate checks every live item's buckets: each neighbor must be live and
// hold the owner with the same multiplicity. All violations are joined.
//
// Complexity: O(Σ bucket²) in the worst case; intended for tests and repair tooling.
func (s *Store[T]) Validate() error {
	var errs []error
	for _, owner := range s.Live(kind.None) {
		o := &s.slots[owner.Index]
		for k, b := range o.buckets {
			seen := make(map[Handle]bool, len(b))
			for _, item := range b {
				if item.IsNil() || seen[item] {
					continue
				}
				seen[item] = true
				if item.Kind != k {
					errs = append(errs, fmt.Errorf("%s: %s filed under %s: %w", owner, item, k, ErrAsymmetric))
					continue
				}
				if !s.Valid(item) {
					errs = append(errs, fmt.Errorf("%s -> %s: %w", owner, item, ErrStaleHandle))
					continue
				}
				fwd, back := s.Count(owner, item), s.Count(item, owner)
				if fwd != back {
					errs = append(errs, fmt.Errorf("%s -> %s x%d, reverse x%d: %w", owner, item, fwd, back, ErrAsymmetric))
				}
			}
		}
	}
	return errors.Join(errs...)
}
