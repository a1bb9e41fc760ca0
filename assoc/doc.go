// SPDX-License-Identifier: MIT
// Package assoc implements the association graph underneath the topology model.
//
// Every item lives in a generation-tagged arena slot of a Store and owns a
// set of ordered buckets, one per neighbor kind:
//
//	loop-use ──EdgeUse──▶ [eu0, eu1, eu2]
//	eu0      ──LoopUse──▶ [loop-use]
//
// Mutators are mirrored: adding item to owner also records owner on item,
// and removal drops every occurrence on both sides. Positional inserts keep
// bucket order meaningful (edge order around a loop, a use's two endpoints).
//
// Handles are values {Kind, Index, Gen}. Freeing an item bumps its slot
// generation so stale handles fail closed instead of aliasing a newer item.
// Free refuses while associations remain: the model's Destroy protocols
// unlink first, then release.
//
// ItemSet is a caller-owned collection for multi-pass algorithms, with an
// optional set mode.
//
// Complexity:
//
//   - New, Free, AddAssociation: O(1) amortized.
//   - Positional insert, RemoveAssociation: O(n) in bucket length.
//   - Validate: O(total associations × bucket length).
package assoc
