// SPDX-License-Identifier: MIT
// Package model_test verifies container-level contracts: ids, events,
// lookup, downcasts, properties and Reset.
package model_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/kind"
	"github.com/katalvlaran/brep/model"
	"github.com/katalvlaran/brep/props"
)

func TestModel_UniqueIDsMonotonic(t *testing.T) {
	m := model.NewModel()
	prev := int64(0)
	for i := 0; i < 50; i++ {
		id := m.NextUniquePersistentID()
		require.Greater(t, id, prev)
		prev = id
	}
	assert.Equal(t, int64(50), m.LargestUsedUniqueID())

	m.SetLargestUsedUniqueID(1000)
	assert.Equal(t, int64(1001), m.NextUniquePersistentID())
}

func TestModel_UseIDsAreNegative(t *testing.T) {
	m := model.NewModel()
	v0, v1 := m.BuildModelVertex(), m.BuildModelVertex()
	e, err := m.BuildModelEdge(v0, v1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), v0.UniqueID())
	assert.Equal(t, int64(3), e.UniqueID())
	ids := map[int64]bool{}
	for _, eu := range e.EdgeUses() {
		assert.Less(t, eu.UniqueID(), int64(0))
		assert.LessOrEqual(t, eu.UniqueID(), model.DefaultUseIDBase)
		ids[eu.UniqueID()] = true
		for i := 0; i < 2; i++ {
			vu := eu.VertexUse(i)
			assert.Less(t, vu.UniqueID(), int64(0))
			ids[vu.UniqueID()] = true
		}
	}
	assert.Len(t, ids, 6, "two edge-uses and four vertex-uses, all distinct")

	custom := model.NewModel(model.WithUseIDBase(-500))
	a, b := custom.BuildModelVertex(), custom.BuildModelVertex()
	ce, _ := custom.BuildModelEdge(a, b)
	assert.Equal(t, int64(-500), ce.EdgeUse(0).UniqueID())
}

func TestModel_SetUniqueID(t *testing.T) {
	m := model.NewModel()
	v := m.BuildModelVertex()
	stamp := v.Modified()

	v.SetUniqueID(v.UniqueID())
	assert.Equal(t, stamp, v.Modified(), "unchanged id is a no-op")

	v.SetUniqueID(77)
	assert.Equal(t, int64(77), v.UniqueID())
	assert.Greater(t, v.Modified(), stamp)
	assert.Equal(t, int64(1), m.LargestUsedUniqueID(), "counter is not advanced")
}

func TestModel_ResetTetrahedron(t *testing.T) {
	var events []model.Event
	fx, faces := tetrahedron(t, model.WithObserver(func(ev model.Event) { events = append(events, ev) }))
	m := fx.m
	_, err := m.BuildModelRegion(faces, []int{0, 0, 0, 0})
	require.NoError(t, err)

	vuID := fx.v[0].VertexUses()[0].UniqueID()
	require.Equal(t, 4+6+4+1, m.NumberOfGeometricEntities())

	events = nil
	require.NoError(t, m.Reset())
	assert.Zero(t, m.NumberOfGeometricEntities())
	assert.Equal(t, int64(1), m.NextUniquePersistentID())

	_, found := m.ModelEntity(vuID)
	assert.False(t, found, "vertex-uses are released with their edges")
	for _, v := range fx.v {
		assert.False(t, v.IsValid())
	}
	require.Len(t, events, 1)
	assert.Equal(t, model.ModelReset, events[0].Kind)
	assert.Nil(t, events[0].Entity)
	require.NoError(t, m.Validate())
}

func TestModel_EventsBlockedDuringFaceBuild(t *testing.T) {
	counts := map[model.EventKind]int{}
	fx := newFixture(t, 3, model.WithObserver(func(ev model.Event) { counts[ev.Kind]++ }))
	fx.face(t, 0, 1, 2)

	assert.Equal(t, 3+3+1, counts[model.EntityCreated])
	assert.Zero(t, counts[model.BoundaryModified], "loop assembly is folded into EntityCreated")
	assert.False(t, fx.m.EventsBlocked())
}

func TestModel_BlockEventsNests(t *testing.T) {
	var got []model.EventKind
	m := model.NewModel()
	m.AddObserver(func(ev model.Event) { got = append(got, ev.Kind) })

	outer := m.BlockEvents()
	inner := m.BlockEvents()
	m.BuildModelVertex()
	inner()
	assert.True(t, m.EventsBlocked(), "inner release restores the outer block")
	m.BuildModelVertex()
	outer()
	assert.False(t, m.EventsBlocked())
	assert.Empty(t, got)

	v := m.BuildModelVertex()
	m.InvokeModelGeometricEntityEvent(model.EntitiesAboutToMerge, v)
	assert.Equal(t, []model.EventKind{model.EntityCreated, model.EntitiesAboutToMerge}, got)
	assert.Equal(t, "entities-about-to-merge", model.EntitiesAboutToMerge.String())
}

func TestModel_ModelEntityLookup(t *testing.T) {
	fx, faces := tetrahedron(t)
	m := fx.m

	ent, ok := m.ModelEntity(faces[2].UniqueID())
	require.True(t, ok)
	f, ok := model.AsFace(ent)
	require.True(t, ok)
	assert.Equal(t, faces[2], f)

	eu := faces[0].FaceUse(1).OuterLoopUse().EdgeUse(0)
	ent, ok = m.ModelEntityOfKind(kind.EdgeUse, eu.UniqueID())
	require.True(t, ok)
	assert.Equal(t, kind.EdgeUse, ent.Kind())

	_, ok = m.ModelEntityOfKind(kind.Vertex, faces[2].UniqueID())
	assert.False(t, ok, "kind filter applies")
	_, ok = m.ModelEntity(9999)
	assert.False(t, ok)
}

func TestModel_DowncastsFailClosed(t *testing.T) {
	m := model.NewModel()
	v := m.BuildModelVertex()

	_, ok := model.AsEdge(v)
	assert.False(t, ok)
	_, ok = model.AsVertex(nil)
	assert.False(t, ok)
	got, ok := model.AsVertex(v)
	require.True(t, ok)
	assert.Equal(t, v, got)
	g, ok := model.AsGeometric(v)
	require.True(t, ok)
	assert.Equal(t, 0, g.Dimension())

	require.NoError(t, m.DestroyModelGeometricEntity(v))
	_, ok = model.AsVertex(v)
	assert.False(t, ok, "stale handles never downcast")
	_, ok = model.AsVertexUse(model.VertexUse{})
	assert.False(t, ok)
}

func TestModel_DestroyRefused(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	fx := newFixture(t, 2, model.WithLogger(logger))
	e, _ := fx.edge(t, 0, 1)

	err := fx.m.DestroyModelGeometricEntity(fx.v[0])
	require.ErrorIs(t, err, model.ErrNotDestroyable)
	assert.Contains(t, buf.String(), "precondition violated")

	require.NoError(t, fx.m.DestroyModelGeometricEntity(e))
	assert.Zero(t, fx.v[0].NumberOfVertexUses())
	require.NoError(t, fx.m.DestroyModelGeometricEntity(fx.v[0]))
	assert.Equal(t, 1, fx.m.NumberOf(kind.Vertex))
	require.ErrorIs(t, fx.m.DestroyModelGeometricEntity(fx.v[0]), model.ErrInvalidEntity)
}

type box [6]float64

func (b box) Bounds() [6]float64 { return b }

func TestModel_PropertiesAndGeometry(t *testing.T) {
	var kinds []model.EventKind
	m := model.NewModel(model.WithObserver(func(ev model.Event) { kinds = append(kinds, ev.Kind) }))
	v := m.BuildModelVertex()

	assert.Equal(t, props.DefaultColor, v.Color())
	assert.Equal(t, 1, v.Visibility())
	v.SetColor(props.RGBA{1, 0, 0, 1})
	v.SetVisibility(0)
	v.SetPickable(0)
	v.SetProperty("material", props.String("steel"))
	assert.Equal(t, props.RGBA{1, 0, 0, 1}, v.Color())
	assert.Equal(t, 0, v.Visibility())
	assert.Equal(t, 0, v.Pickable())
	bag := v.Properties()
	assert.Equal(t, 4, bag.Len())

	_, ok := v.Bounds()
	assert.False(t, ok)
	v.SetGeometry(box{0, 1, 0, 2, 0, 3})
	b, ok := v.Bounds()
	require.True(t, ok)
	assert.Equal(t, [6]float64{0, 1, 0, 2, 0, 3}, b)
	v.SetDisplayProperty("actor-7")
	assert.Equal(t, "actor-7", v.DisplayProperty())
	assert.Equal(t, []model.EventKind{model.EntityCreated, model.GeometrySet}, kinds)
}
