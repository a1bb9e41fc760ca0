// SPDX-License-Identifier: MIT
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/kind"
)

// triangle builds a single face over three fresh vertices.
func triangle(t *testing.T) (*Model, Face, []Vertex) {
	t.Helper()
	m := NewModel()
	v := []Vertex{m.BuildModelVertex(), m.BuildModelVertex(), m.BuildModelVertex()}
	var edges []Edge
	for i := range v {
		e, err := m.BuildModelEdge(v[i], v[(i+1)%3])
		require.NoError(t, err)
		edges = append(edges, e)
	}
	f, err := m.BuildModelFace(edges, []int{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m, f, v
}

func TestValidate_ExtraTwin(t *testing.T) {
	m := NewModel()
	a, _ := m.BuildModelEdge(Vertex{}, Vertex{})
	b, _ := m.BuildModelEdge(Vertex{}, Vertex{})
	require.NoError(t, m.store.AddAssociation(a.EdgeUse(0).h, b.EdgeUse(0).h))

	err := m.Validate()
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Contains(t, err.Error(), "has 2 twins")
}

func TestValidate_SharedDirection(t *testing.T) {
	m := NewModel()
	e, _ := m.BuildModelEdge(m.BuildModelVertex(), m.BuildModelVertex())
	e.EdgeUse(0).SetDirection(1)

	err := m.Validate()
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Contains(t, err.Error(), "share direction")
}

func TestValidate_OneSidedAssociation(t *testing.T) {
	m, f, _ := triangle(t)
	lu := f.FaceUse(1).OuterLoopUse()
	require.NoError(t, m.store.InsertOneWay(lu.h, 0, f.h))

	require.ErrorIs(t, m.Validate(), ErrInconsistent)
}

func TestValidate_BrokenLoop(t *testing.T) {
	m, f, _ := triangle(t)
	stray := m.BuildModelVertex().BuildVertexUse()
	eu := f.FaceUse(1).OuterLoopUse().EdgeUse(0)
	require.NoError(t, m.store.ReplaceAssociation(eu.h, 1, stray.h))

	err := m.Validate()
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Contains(t, err.Error(), "breaks between positions 0 and 1")
}

func TestValidate_MissingFaceUse(t *testing.T) {
	m, f, _ := triangle(t)
	fu := f.FaceUse(0)
	m.store.RemoveAssociation(f.h, fu.h)
	assert.Equal(t, 1, m.store.NumberOfAssociations(f.h, kind.FaceUse))

	err := m.Validate()
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Contains(t, err.Error(), "has 1 face-uses")
}
