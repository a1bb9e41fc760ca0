// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Mirrored association mutators and ordered bucket queries.
// Determinism:
//   - Buckets preserve insertion order; positional inserts shift later entries.
//   - Kinds() returns bucket kinds ascending.
// Implementation:
//   - Stage 1: resolve both handles, reject stale and self links.
//   - Stage 2: mutate owner bucket, then the mirrored item bucket.
//   - Stage 3: bump both modification stamps.

package assoc

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/brep/kind"
)

// AddAssociation appends item to owner's bucket for item.Kind and appends
// owner to item's bucket for owner.Kind. Duplicates are allowed; a repeated
// call increases the multiplicity on both sides.
//
// Errors: ErrStaleHandle, ErrSelfAssociation.
// Complexity: O(1) amortized.
func (s *Store[T]) AddAssociation(owner, item Handle) error {
	o, i, err := s.pair(owner, item)
	if err != nil {
		return err
	}
	o.buckets[item.Kind] = append(o.buckets[item.Kind], item)
	i.buckets[owner.Kind] = append(i.buckets[owner.Kind], owner)
	s.touch(o)
	s.touch(i)

	return nil
}

// AddAssociationInPosition inserts item at position index of owner's bucket
// and appends owner to item's bucket. When index exceeds the bucket length the
// gap is padded with Nil placeholders and a warning is logged.
//
// Errors: ErrStaleHandle, ErrSelfAssociation, ErrBadIndex.
// Complexity: O(n) in the bucket length.
func (s *Store[T]) AddAssociationInPosition(owner Handle, index int, item Handle) error {
	if index < 0 {
		return fmt.Errorf("AddAssociationInPosition(%s, %d): %w", owner, index, ErrBadIndex)
	}
	o, i, err := s.pair(owner, item)
	if err != nil {
		return err
	}
	o.buckets[item.Kind] = s.insertAt(owner, o.buckets[item.Kind], index, item)
	i.buckets[owner.Kind] = append(i.buckets[owner.Kind], owner)
	s.touch(o)
	s.touch(i)

	return nil
}

// InsertOneWay inserts item at position index of owner's bucket without
// mirroring. Archive readers restore each side of every association in its
// recorded order with this call; any other use breaks symmetry.
//
// Errors: ErrStaleHandle, ErrBadIndex.
func (s *Store[T]) InsertOneWay(owner Handle, index int, item Handle) error {
	if index < 0 {
		return fmt.Errorf("InsertOneWay(%s, %d): %w", owner, index, ErrBadIndex)
	}
	o, err := s.slot(owner)
	if err != nil {
		return err
	}
	if !s.Valid(item) {
		return fmt.Errorf("InsertOneWay(%s): item %s: %w", owner, item, ErrStaleHandle)
	}
	o.buckets[item.Kind] = s.insertAt(owner, o.buckets[item.Kind], index, item)
	s.touch(o)

	return nil
}

// InsertPlaceholder inserts a Nil entry at position index of owner's bucket
// for kind k. Archive readers use it to restore padded slots in place.
//
// Errors: ErrStaleHandle, ErrBadIndex.
func (s *Store[T]) InsertPlaceholder(owner Handle, k kind.Kind, index int) error {
	if index < 0 {
		return fmt.Errorf("InsertPlaceholder(%s, %d): %w", owner, index, ErrBadIndex)
	}
	o, err := s.slot(owner)
	if err != nil {
		return err
	}
	o.buckets[k] = s.insertAt(owner, o.buckets[k], index, Nil)
	s.touch(o)

	return nil
}

// RemoveAssociation removes every occurrence of item from owner's bucket and
// every occurrence of owner from item's bucket. Unrelated pairs are a no-op.
// Stale handles are ignored, matching the silent no-op contract.
//
// Complexity: O(n) in both bucket lengths.
func (s *Store[T]) RemoveAssociation(owner, item Handle) {
	o, err := s.slot(owner)
	if err != nil {
		return
	}
	i, err := s.slot(item)
	if err != nil {
		return
	}
	changed := removeAll(o.buckets, item)
	if removeAll(i.buckets, owner) {
		changed = true
	}
	if changed {
		s.touch(o)
		s.touch(i)
	}
}

// RemoveAllAssociations clears owner's bucket for kind k and the mirrored
// entries on each former neighbor. The bucket key itself is dropped.
//
// Complexity: O(n·m) where m is the neighbors' bucket lengths.
func (s *Store[T]) RemoveAllAssociations(owner Handle, k kind.Kind) {
	o, err := s.slot(owner)
	if err != nil {
		return
	}
	items, ok := o.buckets[k]
	if !ok {
		return
	}
	delete(o.buckets, k)
	for _, it := range items {
		if it.IsNil() {
			continue
		}
		if i, err := s.slot(it); err == nil {
			removeAll(i.buckets, owner)
			s.touch(i)
		}
	}
	s.touch(o)
}

// ReplaceAssociation swaps the entry at position index of owner's k-bucket
// for item, keeping its position, and fixes both mirrors.
//
// Errors: ErrStaleHandle, ErrSelfAssociation, ErrBadIndex.
func (s *Store[T]) ReplaceAssociation(owner Handle, index int, item Handle) error {
	o, i, err := s.pair(owner, item)
	if err != nil {
		return err
	}
	b := o.buckets[item.Kind]
	if index < 0 || index >= len(b) {
		return fmt.Errorf("ReplaceAssociation(%s, %d): %w", owner, index, ErrBadIndex)
	}
	old := b[index]
	if old == item {
		return nil
	}
	b[index] = item
	if !old.IsNil() {
		if ps, err := s.slot(old); err == nil {
			removeOne(ps.buckets, owner)
			s.touch(ps)
		}
	}
	i.buckets[owner.Kind] = append(i.buckets[owner.Kind], owner)
	s.touch(o)
	s.touch(i)

	return nil
}

// NumberOfAssociations returns the length of owner's bucket for k,
// placeholders included. Stale handles report 0.
func (s *Store[T]) NumberOfAssociations(owner Handle, k kind.Kind) int {
	o, err := s.slot(owner)
	if err != nil {
		return 0
	}
	return len(o.buckets[k])
}

// Associations returns a copy of owner's bucket for k.
func (s *Store[T]) Associations(owner Handle, k kind.Kind) []Handle {
	o, err := s.slot(owner)
	if err != nil {
		return nil
	}
	return slices.Clone(o.buckets[k])
}

// At returns the i-th entry of owner's bucket for k.
func (s *Store[T]) At(owner Handle, k kind.Kind, i int) (Handle, bool) {
	o, err := s.slot(owner)
	if err != nil {
		return Nil, false
	}
	b := o.buckets[k]
	if i < 0 || i >= len(b) {
		return Nil, false
	}
	return b[i], true
}

// IndexOf returns the first position of item in owner's bucket for item.Kind, or -1.
func (s *Store[T]) IndexOf(owner, item Handle) int {
	o, err := s.slot(owner)
	if err != nil {
		return -1
	}
	return slices.Index(o.buckets[item.Kind], item)
}

// Count returns the multiplicity of item in owner's bucket.
func (s *Store[T]) Count(owner, item Handle) int {
	o, err := s.slot(owner)
	if err != nil {
		return 0
	}
	n := 0
	for _, x := range o.buckets[item.Kind] {
		if x == item {
			n++
		}
	}
	return n
}

// HasAssociation reports whether owner holds item at least once.
func (s *Store[T]) HasAssociation(owner, item Handle) bool {
	return s.IndexOf(owner, item) >= 0
}

// Kinds returns the kinds of owner's non-empty buckets, ascending.
func (s *Store[T]) Kinds(owner Handle) []kind.Kind {
	o, err := s.slot(owner)
	if err != nil {
		return nil
	}
	out := make([]kind.Kind, 0, len(o.buckets))
	for k, b := range o.buckets {
		if len(b) > 0 {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// pair resolves owner and item for a mirrored mutation.
func (s *Store[T]) pair(owner, item Handle) (*slot[T], *slot[T], error) {
	if owner == item {
		return nil, nil, fmt.Errorf("%s: %w", owner, ErrSelfAssociation)
	}
	o, err := s.slot(owner)
	if err != nil {
		return nil, nil, err
	}
	i, err := s.slot(item)
	if err != nil {
		return nil, nil, err
	}
	return o, i, nil
}

// insertAt places item at index, padding with Nil when index is past the end.
func (s *Store[T]) insertAt(owner Handle, b []Handle, index int, item Handle) []Handle {
	if index > len(b) {
		s.log.BestEffort("assoc.insert", "padding bucket with placeholders",
			"owner", owner.String(), "kind", item.Kind.String(), "len", len(b), "index", index)
		for len(b) < index {
			b = append(b, Nil)
		}
	}
	return slices.Insert(b, index, item)
}

// removeAll deletes every occurrence of h from its bucket; empty buckets are dropped.
func removeAll(buckets map[kind.Kind][]Handle, h Handle) bool {
	b, ok := buckets[h.Kind]
	if !ok {
		return false
	}
	n := len(b)
	b = slices.DeleteFunc(b, func(x Handle) bool { return x == h })
	if len(b) == n {
		return false
	}
	if len(b) == 0 {
		delete(buckets, h.Kind)
	} else {
		buckets[h.Kind] = b
	}
	return true
}

// removeOne deletes the first occurrence of h.
func removeOne(buckets map[kind.Kind][]Handle, h Handle) {
	b := buckets[h.Kind]
	if i := slices.Index(b, h); i >= 0 {
		b = slices.Delete(b, i, i+1)
		if len(b) == 0 {
			delete(buckets, h.Kind)
		} else {
			buckets[h.Kind] = b
		}
	}
}
