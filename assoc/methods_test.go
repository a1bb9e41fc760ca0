// SPDX-License-Identifier: MIT
package assoc_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/internal/logging"
	"github.com/katalvlaran/brep/kind"
)

// TestAssociation_Symmetric verifies add mirrors and counts agree on both sides.
func TestAssociation_Symmetric(t *testing.T) {
	s := newStore()
	lu := s.New(kind.LoopUse)
	eu := s.New(kind.EdgeUse)

	require.NoError(t, s.AddAssociation(lu, eu))
	require.NoError(t, s.AddAssociation(lu, eu))

	assert.Equal(t, 2, s.NumberOfAssociations(lu, kind.EdgeUse))
	assert.Equal(t, 2, s.NumberOfAssociations(eu, kind.LoopUse))
	assert.Equal(t, 2, s.Count(eu, lu))
	assert.True(t, s.HasAssociation(eu, lu))
	require.NoError(t, s.Validate())

	s.RemoveAssociation(eu, lu)
	assert.Zero(t, s.NumberOfAssociations(lu, kind.EdgeUse), "removal drops every occurrence")
	assert.Zero(t, s.NumberOfAssociations(eu, kind.LoopUse))
	assert.Empty(t, s.Kinds(lu))

	// removing an unrelated pair is a no-op
	other := s.New(kind.EdgeUse)
	clock := s.Clock()
	s.RemoveAssociation(lu, other)
	assert.Equal(t, clock, s.Clock())
}

// TestAssociation_Rejects verifies stale and self links are refused.
func TestAssociation_Rejects(t *testing.T) {
	s := newStore()
	a := s.New(kind.EdgeUse)
	require.ErrorIs(t, s.AddAssociation(a, a), assoc.ErrSelfAssociation)

	b := s.New(kind.EdgeUse)
	require.NoError(t, s.Free(b))
	require.ErrorIs(t, s.AddAssociation(a, b), assoc.ErrStaleHandle)
	require.ErrorIs(t, s.AddAssociationInPosition(a, -1, b), assoc.ErrBadIndex)
}

// TestAssociation_InPosition verifies ordered insertion and placeholder padding.
func TestAssociation_InPosition(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s := assoc.NewStore[payload](assoc.WithLogger(log), assoc.WithCapacity(8))

	eu := s.New(kind.EdgeUse)
	v0 := s.New(kind.VertexUse)
	v1 := s.New(kind.VertexUse)
	v2 := s.New(kind.VertexUse)

	require.NoError(t, s.AddAssociation(eu, v0))
	require.NoError(t, s.AddAssociation(eu, v1))
	require.NoError(t, s.AddAssociationInPosition(eu, 1, v2))
	assert.Equal(t, []assoc.Handle{v0, v2, v1}, s.Associations(eu, kind.VertexUse))
	assert.Equal(t, 1, s.IndexOf(eu, v2))

	lu := s.New(kind.LoopUse)
	require.NoError(t, s.AddAssociationInPosition(lu, 2, eu))
	got := s.Associations(lu, kind.EdgeUse)
	require.Len(t, got, 3)
	assert.True(t, got[0].IsNil())
	assert.True(t, got[1].IsNil())
	assert.Equal(t, eu, got[2])
	assert.Contains(t, buf.String(), "padding bucket")
	require.NoError(t, s.Validate(), "placeholders are not associations")
}

// TestAssociation_Replace verifies position-preserving replacement.
func TestAssociation_Replace(t *testing.T) {
	s := newStore()
	eu := s.New(kind.EdgeUse)
	a := s.New(kind.VertexUse)
	b := s.New(kind.VertexUse)
	c := s.New(kind.VertexUse)
	require.NoError(t, s.AddAssociation(eu, a))
	require.NoError(t, s.AddAssociation(eu, b))

	require.NoError(t, s.ReplaceAssociation(eu, 0, c))
	assert.Equal(t, []assoc.Handle{c, b}, s.Associations(eu, kind.VertexUse))
	assert.Zero(t, s.NumberOfAssociations(a, kind.EdgeUse))
	assert.Equal(t, 1, s.NumberOfAssociations(c, kind.EdgeUse))
	require.NoError(t, s.Validate())

	require.ErrorIs(t, s.ReplaceAssociation(eu, 5, a), assoc.ErrBadIndex)
}

// TestAssociation_RemoveAll verifies the bucket is dropped and mirrors cleared.
func TestAssociation_RemoveAll(t *testing.T) {
	s := newStore()
	e := s.New(kind.Edge)
	u0 := s.New(kind.EdgeUse)
	u1 := s.New(kind.EdgeUse)
	require.NoError(t, s.AddAssociation(e, u0))
	require.NoError(t, s.AddAssociation(e, u1))

	s.RemoveAllAssociations(e, kind.EdgeUse)
	assert.Zero(t, s.NumberOfAssociations(e, kind.EdgeUse))
	assert.Zero(t, s.NumberOfAssociations(u0, kind.Edge))
	assert.Zero(t, s.NumberOfAssociations(u1, kind.Edge))
	require.NoError(t, s.Validate())
}

// TestValidate_DetectsOneWay verifies one-sided inserts are reported.
func TestValidate_DetectsOneWay(t *testing.T) {
	s := newStore()
	a := s.New(kind.Face)
	b := s.New(kind.FaceUse)
	require.NoError(t, s.InsertOneWay(a, 0, b))
	require.ErrorIs(t, s.Validate(), assoc.ErrAsymmetric)

	require.NoError(t, s.InsertOneWay(b, 0, a))
	require.NoError(t, s.Validate())
}

// TestInsertPlaceholder_KeepsPositions verifies a one-way restore of a
// padded bucket reproduces the original slot layout.
func TestInsertPlaceholder_KeepsPositions(t *testing.T) {
	s := newStore()
	eu := s.New(kind.EdgeUse)
	vu := s.New(kind.VertexUse)
	require.NoError(t, s.InsertPlaceholder(eu, kind.VertexUse, 0))
	require.NoError(t, s.InsertOneWay(eu, 1, vu))
	require.NoError(t, s.InsertOneWay(vu, 0, eu))

	assert.Equal(t, []assoc.Handle{assoc.Nil, vu}, s.Associations(eu, kind.VertexUse))
	require.NoError(t, s.Validate())

	require.ErrorIs(t, s.InsertPlaceholder(eu, kind.VertexUse, -1), assoc.ErrBadIndex)
	stale := s.New(kind.Face)
	require.NoError(t, s.Free(stale))
	require.ErrorIs(t, s.InsertPlaceholder(stale, kind.FaceUse, 0), assoc.ErrStaleHandle)
}

// TestIterator_LiveView verifies the iterator observes inserts and skips placeholders.
func TestIterator_LiveView(t *testing.T) {
	s := newStore()
	lu := s.New(kind.LoopUse)
	e0 := s.New(kind.EdgeUse)
	e1 := s.New(kind.EdgeUse)
	e2 := s.New(kind.EdgeUse)
	require.NoError(t, s.AddAssociation(lu, e0))
	require.NoError(t, s.AddAssociation(lu, e1))

	it := s.NewIterator(lu, kind.EdgeUse)
	var seen []assoc.Handle
	for it.Next() {
		seen = append(seen, it.Item())
		if it.Item() == e0 {
			require.NoError(t, s.AddAssociationInPosition(lu, 1, e2))
		}
	}
	assert.Equal(t, []assoc.Handle{e0, e2, e1}, seen)
	assert.Equal(t, 3, it.Len())
	assert.True(t, it.Item().IsNil())

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, 0, it.Index())
}
