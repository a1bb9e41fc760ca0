// SPDX-License-Identifier: MIT
// File: store.go
// Role: Arena lifecycle (New/Free), handle validation, payload access.
// Determinism:
//   - Freed slots are reused lowest-index first.
//   - Live() enumerates items in slot order.

package assoc

import (
	"fmt"

	"github.com/katalvlaran/brep/kind"
)

// New allocates a live item of kind k and returns its handle.
// A freed slot is reused when available; its generation was bumped on Free.
//
// Complexity: O(1) amortized.
func (s *Store[T]) New(k kind.Kind) Handle {
	var idx uint32
	if !s.free.IsEmpty() {
		idx = s.free.Minimum()
		s.free.Remove(idx)
	} else {
		s.slots = append(s.slots, slot[T]{gen: 0})
		idx = uint32(len(s.slots) - 1)
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.kind = k
	sl.live = true
	sl.buckets = make(map[kind.Kind][]Handle)
	s.clock++
	sl.mtime = s.clock
	s.live++

	return Handle{Kind: k, Index: idx, Gen: sl.gen}
}

// Free releases the slot addressed by h. It refuses while any non-placeholder
// association remains: callers must unlink through their Destroy protocol first.
//
// Errors: ErrStaleHandle, ErrDanglingAssociations.
// Complexity: O(B) over the item's buckets.
func (s *Store[T]) Free(h Handle) error {
	sl, err := s.slot(h)
	if err != nil {
		return err
	}
	for k, b := range sl.buckets {
		for _, x := range b {
			if !x.IsNil() {
				return fmt.Errorf("Free(%s): %d %s neighbor(s) left: %w", h, len(b), k, ErrDanglingAssociations)
			}
		}
	}
	var zero T
	sl.live = false
	sl.kind = kind.None
	sl.buckets = nil
	sl.data = zero
	sl.gen++ // outstanding handles become stale immediately
	s.clock++
	s.live--
	s.free.Add(h.Index)

	return nil
}

// Valid reports whether h addresses a live item of its recorded kind.
func (s *Store[T]) Valid(h Handle) bool {
	_, err := s.slot(h)
	return err == nil
}

// Payload returns a pointer to h's payload. The pointer must not be kept
// across calls to New, which may grow the arena.
func (s *Store[T]) Payload(h Handle) (*T, bool) {
	sl, err := s.slot(h)
	if err != nil {
		return nil, false
	}
	return &sl.data, true
}

// Modified returns the modification clock value of h's last change, 0 if stale.
func (s *Store[T]) Modified(h Handle) uint64 {
	sl, err := s.slot(h)
	if err != nil {
		return 0
	}
	return sl.mtime
}

// Touch marks h modified without changing its associations.
func (s *Store[T]) Touch(h Handle) {
	if sl, err := s.slot(h); err == nil {
		s.clock++
		sl.mtime = s.clock
	}
}

// Clock returns the store-wide modification clock.
func (s *Store[T]) Clock() uint64 { return s.clock }

// Len returns the number of live items.
func (s *Store[T]) Len() int { return s.live }

// Cap returns the number of arena slots, live or free.
func (s *Store[T]) Cap() int { return len(s.slots) }

// Live returns the handles of every live item of kind k in slot order.
// Passing kind.None returns all live items.
//
// Complexity: O(Cap()).
func (s *Store[T]) Live(k kind.Kind) []Handle {
	var out []Handle
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live || (k != kind.None && sl.kind != k) {
			continue
		}
		out = append(out, Handle{Kind: sl.kind, Index: uint32(i), Gen: sl.gen})
	}
	return out
}

// slot resolves h to its live arena cell.
func (s *Store[T]) slot(h Handle) (*slot[T], error) {
	if h.IsNil() || int(h.Index) >= len(s.slots) {
		return nil, fmt.Errorf("%s: %w", h, ErrStaleHandle)
	}
	sl := &s.slots[h.Index]
	if !sl.live || sl.gen != h.Gen || sl.kind != h.Kind {
		return nil, fmt.Errorf("%s: %w", h, ErrStaleHandle)
	}
	return sl, nil
}

func (s *Store[T]) touch(sl *slot[T]) {
	s.clock++
	sl.mtime = s.clock
}
