// SPDX-License-Identifier: MIT
// Package builder_test checks every constructor's topology, orientation and
// error contract.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/builder"
	"github.com/katalvlaran/brep/kind"
	"github.com/katalvlaran/brep/model"
	"github.com/katalvlaran/brep/props"
)

// assertOutward verifies each edge is walked once in each direction by the
// positive face sides, the mark of a consistently oriented closed shell.
func assertOutward(t *testing.T, m *model.Model) {
	t.Helper()
	for _, e := range m.Edges() {
		var dirs []int
		for _, eu := range e.EdgeUses() {
			if eu.LoopUse().FaceUse().Side() == 1 {
				dirs = append(dirs, eu.Direction())
			}
		}
		assert.ElementsMatch(t, []int{0, 1}, dirs, "edge %d", e.UniqueID())
	}
}

func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name          string
		ctor          builder.Constructor
		wantV, wantE  int
		wantF         int
		closedOutward bool
	}{
		{name: "Polygon(5)", ctor: builder.Polygon(5), wantV: 5, wantE: 5, wantF: 1},
		{name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron), wantV: 4, wantE: 6, wantF: 4, closedOutward: true},
		{name: "Cube", ctor: builder.PlatonicSolid(builder.Cube), wantV: 8, wantE: 12, wantF: 6, closedOutward: true},
		{name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron), wantV: 6, wantE: 12, wantF: 8, closedOutward: true},
		{name: "Prism(3)", ctor: builder.Prism(3), wantV: 6, wantE: 9, wantF: 5, closedOutward: true},
		{name: "Prism(6)", ctor: builder.Prism(6), wantV: 12, wantE: 18, wantF: 8, closedOutward: true},
		{name: "Annulus(4)", ctor: builder.Annulus(4), wantV: 8, wantE: 8, wantF: 1},
		{name: "Mesh(slit)", ctor: builder.Mesh(2, [][]int{{0, 1}}), wantV: 2, wantE: 1, wantF: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildModel(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, m.NumberOf(kind.Vertex))
			assert.Equal(t, tc.wantE, m.NumberOf(kind.Edge))
			assert.Equal(t, tc.wantF, m.NumberOf(kind.Face))
			if tc.closedOutward {
				assertOutward(t, m)
				for _, e := range m.Edges() {
					assert.Equal(t, 2, e.NumberOfAdjacentFaces())
				}
			}
			require.NoError(t, m.Validate())
		})
	}
}

func TestAnnulus_Hole(t *testing.T) {
	m, err := builder.BuildModel(nil, nil, builder.Annulus(5))
	require.NoError(t, err)
	f := m.Faces()[0]
	assert.Equal(t, 2, f.NumberOfLoops())
	assert.Equal(t, 1, f.NumberOfHoles())
	assert.Zero(t, f.NumberOfDegenerateLoops())
	assert.Len(t, f.Vertices(), 10)
}

func TestMesh_Slit(t *testing.T) {
	m, err := builder.BuildModel(nil, nil, builder.Mesh(2, [][]int{{0, 1}}))
	require.NoError(t, err)
	f := m.Faces()[0]
	assert.Equal(t, 2, f.FaceUse(1).OuterLoopUse().NumberOfEdgeUses())
	assert.Equal(t, 4, m.Edges()[0].NumberOfEdgeUses())
	assert.Equal(t, 1, f.NumberOfModelEdges(), "slit walks one edge there and back")
	assert.Zero(t, f.NumberOfHoles())
}

// TestClosedShell verifies only closed components are bounded.
func TestClosedShell(t *testing.T) {
	m, err := builder.BuildModel(nil, nil,
		builder.PlatonicSolid(builder.Cube),
		builder.Polygon(4),
		builder.Prism(3),
		builder.ClosedShell(),
	)
	require.NoError(t, err)

	regions := m.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, 6, regions[0].NumberOfFaces())
	assert.Equal(t, 5, regions[1].NumberOfFaces())
	for _, r := range regions {
		assert.Equal(t, 1, r.NumberOfShells())
		for _, f := range r.Faces() {
			assert.Equal(t, r, f.AdjacentRegion(0))
		}
	}
	square := m.Faces()[6]
	assert.False(t, square.AdjacentRegion(0).IsValid())

	require.NoError(t, builder.Apply(m, nil, builder.ClosedShell()))
	assert.Len(t, m.Regions(), 2, "already bounded components are skipped")

	require.NoError(t, builder.Apply(m, []builder.BuilderOption{builder.WithSides(1)}, builder.ClosedShell()))
	require.Len(t, m.Regions(), 4)
	assert.Equal(t, m.Regions()[2], m.Faces()[0].AdjacentRegion(1))
	require.NoError(t, m.Validate())
}

func TestBuilders_Options(t *testing.T) {
	red := props.RGBA{1, 0, 0, 1}
	m, err := builder.BuildModel(nil,
		[]builder.BuilderOption{builder.WithColor(red), builder.WithFaceNames("side-")},
		builder.Prism(4))
	require.NoError(t, err)
	faces := m.Faces()
	for _, f := range faces {
		assert.Equal(t, red, f.Color())
	}
	name, ok := faces[2].Property(props.KeyName)
	require.True(t, ok)
	assert.Equal(t, "side-2", name.S)

	plain, err := builder.BuildModel(nil, nil, builder.Polygon(3))
	require.NoError(t, err)
	_, named := plain.Faces()[0].Property(props.KeyName)
	assert.False(t, named)
	assert.Equal(t, props.DefaultColor, plain.Faces()[0].Color())

	assert.Panics(t, func() { builder.WithSides(2) })
	assert.Panics(t, func() { builder.WithColor(props.RGBA{2, 0, 0, 1}) })
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Polygon(2)", builder.Polygon(2), builder.ErrTooFewVertices},
		{"Prism(1)", builder.Prism(1), builder.ErrTooFewVertices},
		{"Annulus(0)", builder.Annulus(0), builder.ErrTooFewVertices},
		{"unknown solid", builder.PlatonicSolid(builder.PlatonicName(42)), builder.ErrOptionViolation},
		{"mesh index", builder.Mesh(3, [][]int{{0, 1, 3}}), builder.ErrBadCycle},
		{"mesh short", builder.Mesh(3, [][]int{{0}}), builder.ErrBadCycle},
		{"mesh repeat", builder.Mesh(3, [][]int{{0, 0, 1}}), builder.ErrBadCycle},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildModel(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Polygon(3)), builder.ErrConstructFailed)

	// validation precedes construction
	m := model.NewModel()
	require.Error(t, builder.Apply(m, nil, builder.Mesh(3, [][]int{{0, 1, 2}, {0, 9}})))
	assert.Zero(t, m.NumberOfGeometricEntities())
}

// TestBuilders_Deterministic verifies equal inputs yield equal ids.
func TestBuilders_Deterministic(t *testing.T) {
	build := func() *model.Model {
		m, err := builder.BuildModel(nil, nil,
			builder.PlatonicSolid(builder.Octahedron), builder.Annulus(3), builder.ClosedShell())
		require.NoError(t, err)
		return m
	}
	a, b := build(), build()
	assert.Equal(t, a.LargestUsedUniqueID(), b.LargestUsedUniqueID())
	for i, f := range a.Faces() {
		g := b.Faces()[i]
		assert.Equal(t, f.UniqueID(), g.UniqueID())
		assert.Equal(t, f.FaceUse(1).OuterLoopUse().EdgeUse(0).UniqueID(),
			g.FaceUse(1).OuterLoopUse().EdgeUse(0).UniqueID())
	}
}
