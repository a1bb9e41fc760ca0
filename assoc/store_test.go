// SPDX-License-Identifier: MIT
// Package assoc_test verifies the arena lifecycle and mirrored association contracts.

package assoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
)

type payload struct{ id int64 }

func newStore() *assoc.Store[payload] { return assoc.NewStore[payload]() }

// TestStore_NewFreeGeneration verifies slot reuse invalidates stale handles.
func TestStore_NewFreeGeneration(t *testing.T) {
	s := newStore()
	a := s.New(kind.Vertex)
	require.True(t, s.Valid(a))
	assert.Equal(t, 1, s.Len())

	p, ok := s.Payload(a)
	require.True(t, ok)
	p.id = 7

	require.NoError(t, s.Free(a))
	assert.False(t, s.Valid(a))
	_, ok = s.Payload(a)
	assert.False(t, ok)
	require.ErrorIs(t, s.Free(a), assoc.ErrStaleHandle)

	b := s.New(kind.Edge)
	assert.Equal(t, a.Index, b.Index, "freed slot is reused")
	assert.NotEqual(t, a.Gen, b.Gen)
	assert.False(t, s.Valid(a), "old handle must not alias the new occupant")
	q, _ := s.Payload(b)
	assert.Zero(t, q.id, "payload is cleared on free")
}

// TestStore_FreeRequiresUnlink verifies Free refuses while neighbors remain.
func TestStore_FreeRequiresUnlink(t *testing.T) {
	s := newStore()
	e := s.New(kind.Edge)
	eu := s.New(kind.EdgeUse)
	require.NoError(t, s.AddAssociation(e, eu))

	require.ErrorIs(t, s.Free(eu), assoc.ErrDanglingAssociations)
	s.RemoveAssociation(e, eu)
	require.NoError(t, s.Free(eu))
	assert.Zero(t, s.NumberOfAssociations(e, kind.EdgeUse))
}

// TestStore_NilHandle verifies the zero handle never resolves.
func TestStore_NilHandle(t *testing.T) {
	s := newStore()
	assert.True(t, assoc.Nil.IsNil())
	assert.False(t, s.Valid(assoc.Nil))
	assert.Equal(t, "nil", assoc.Nil.String())
	assert.Equal(t, -1, s.IndexOf(assoc.Nil, s.New(kind.Face)))
}

// TestStore_LiveOrder verifies Live filters by kind in slot order.
func TestStore_LiveOrder(t *testing.T) {
	s := newStore()
	v0 := s.New(kind.Vertex)
	_ = s.New(kind.Edge)
	v1 := s.New(kind.Vertex)
	assert.Equal(t, []assoc.Handle{v0, v1}, s.Live(kind.Vertex))
	assert.Len(t, s.Live(kind.None), 3)
	assert.Equal(t, "vertex#0.1", v0.String())
}

// TestStore_ModifiedStamp verifies both sides of a mutation are stamped.
func TestStore_ModifiedStamp(t *testing.T) {
	s := newStore()
	a := s.New(kind.LoopUse)
	b := s.New(kind.EdgeUse)
	before := s.Modified(a)
	require.NoError(t, s.AddAssociation(a, b))
	assert.Greater(t, s.Modified(a), before)
	assert.Equal(t, s.Clock(), s.Modified(b))

	s.Touch(a)
	assert.Equal(t, s.Clock(), s.Modified(a))
}
