// SPDX-License-Identifier: MIT
// File: itemset.go
// Role: Caller-built handle collection with optional set semantics.
// Determinism:
//   - Insertion order is kept in both modes; unique mode drops repeats.

package assoc

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// ItemSet collects handles for multi-pass algorithms. In unique mode it
// behaves as an insertion-ordered set backed by a linked hash set.
type ItemSet struct {
	unique bool
	set    *linkedhashset.Set
	list   []Handle
	pos    int
	snap   []Handle
}

// NewItemSet returns an empty ItemSet.
func NewItemSet(unique bool) *ItemSet {
	s := &ItemSet{unique: unique, pos: -1}
	if unique {
		s.set = linkedhashset.New()
	}
	return s
}

// Add inserts h and reports whether the collection grew.
func (s *ItemSet) Add(h Handle) bool {
	if s.unique {
		if s.set.Contains(h) {
			return false
		}
		s.set.Add(h)
		return true
	}
	s.list = append(s.list, h)
	return true
}

// Remove deletes h (every occurrence in list mode).
func (s *ItemSet) Remove(h Handle) {
	if s.unique {
		s.set.Remove(h)
		return
	}
	out := s.list[:0]
	for _, x := range s.list {
		if x != h {
			out = append(out, x)
		}
	}
	s.list = out
}

// Contains reports whether h is present.
func (s *ItemSet) Contains(h Handle) bool {
	if s.unique {
		return s.set.Contains(h)
	}
	for _, x := range s.list {
		if x == h {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (s *ItemSet) Len() int {
	if s.unique {
		return s.set.Size()
	}
	return len(s.list)
}

// Items returns the entries in insertion order.
func (s *ItemSet) Items() []Handle {
	if !s.unique {
		out := make([]Handle, len(s.list))
		copy(out, s.list)
		return out
	}
	vals := s.set.Values()
	out := make([]Handle, 0, len(vals))
	for _, v := range vals {
		out = append(out, v.(Handle))
	}
	return out
}

// Next advances the built-in cursor. The first call of a pass takes a
// snapshot of Items; changes made during the pass show after Reset.
//
// Complexity: O(n) for the first call of a pass, O(1) after.
func (s *ItemSet) Next() bool {
	if s.pos < 0 {
		s.snap = s.Items()
	}
	s.pos++
	return s.pos < len(s.snap)
}

// Item returns the entry at the cursor.
func (s *ItemSet) Item() Handle {
	if s.pos < 0 || s.pos >= len(s.snap) {
		return Nil
	}
	return s.snap[s.pos]
}

// Reset rewinds the cursor and drops the pass snapshot.
func (s *ItemSet) Reset() {
	s.pos = -1
	s.snap = nil
}
