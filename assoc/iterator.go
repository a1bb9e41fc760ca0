// SPDX-License-Identifier: MIT
// File: iterator.go
// Role: Cursor over one live association bucket.

package assoc

import "github.com/katalvlaran/brep/kind"

// Iterator walks owner's bucket for one kind, reading the live bucket on
// every step so positional inserts made while iterating are observed.
// Nil placeholders are skipped.
//
//	it := s.NewIterator(loop, kind.EdgeUse)
//	for it.Next() {
//	    eu := it.Item()
//	}
type Iterator[T any] struct {
	s     *Store[T]
	owner Handle
	k     kind.Kind
	pos   int
	cur   Handle
}

// NewIterator returns an Iterator positioned before the first entry.
func (s *Store[T]) NewIterator(owner Handle, k kind.Kind) *Iterator[T] {
	return &Iterator[T]{s: s, owner: owner, k: k, pos: -1}
}

// Next advances to the next non-placeholder entry and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	for {
		it.pos++
		h, ok := it.s.At(it.owner, it.k, it.pos)
		if !ok {
			it.cur = Nil
			return false
		}
		if !h.IsNil() {
			it.cur = h
			return true
		}
	}
}

// Item returns the entry at the cursor, Nil before Next or after exhaustion.
func (it *Iterator[T]) Item() Handle { return it.cur }

// Index returns the bucket position of the cursor.
func (it *Iterator[T]) Index() int { return it.pos }

// Reset rewinds the cursor.
func (it *Iterator[T]) Reset() {
	it.pos = -1
	it.cur = Nil
}

// Len returns the current bucket length, placeholders included.
func (it *Iterator[T]) Len() int {
	return it.s.NumberOfAssociations(it.owner, it.k)
}
