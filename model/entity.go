// SPDX-License-Identifier: MIT
// File: entity.go
// Role: Entity interfaces, the shared handle wrapper, properties,
// geometry collaborator, and fail-closed downcasts.

package model

import (
	"fmt"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
	"github.com/katalvlaran/brep/props"
)

// Entity is any topological object owned by a Model.
type Entity interface {
	Handle() assoc.Handle
	Kind() kind.Kind
	Model() *Model
	IsValid() bool
	UniqueID() int64
	SetUniqueID(id int64)
	Property(name string) (props.Value, bool)
	SetProperty(name string, v props.Value)
}

// GeometricEntity is a Vertex, Edge, Face or Region.
type GeometricEntity interface {
	Entity
	Dimension() int
	IsDestroyable() bool
	Geometry() any
	SetGeometry(g any)
	Bounds() ([6]float64, bool)
	DisplayProperty() any
	SetDisplayProperty(d any)

	destroy() error
}

// Bounder is implemented by geometry handles that can report an axis-aligned
// box as {xmin, xmax, ymin, ymax, zmin, zmax}.
type Bounder interface {
	Bounds() [6]float64
}

// entity is the value shared by every typed wrapper. The zero value is invalid.
type entity struct {
	m *Model
	h assoc.Handle
}

// Handle returns the arena handle.
func (e entity) Handle() assoc.Handle { return e.h }

// Kind returns the entity kind.
func (e entity) Kind() kind.Kind { return e.h.Kind }

// Model returns the owning model, nil for a zero entity.
func (e entity) Model() *Model { return e.m }

// IsValid reports whether the entity is live in its model.
func (e entity) IsValid() bool { return e.m != nil && e.m.store.Valid(e.h) }

// String renders kind(uid).
func (e entity) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("%s(invalid)", e.h.Kind)
	}
	return fmt.Sprintf("%s(%d)", e.h.Kind, e.UniqueID())
}

// UniqueID returns the persistent id, 0 for an invalid entity.
func (e entity) UniqueID() int64 {
	if r := e.rec(); r != nil {
		return r.uid
	}
	return 0
}

// SetUniqueID assigns id without collision checks and without advancing
// the model counter.
func (e entity) SetUniqueID(id int64) {
	r := e.rec()
	if r == nil || r.uid == id {
		return
	}
	r.uid = id
	e.m.store.Touch(e.h)
}

// Modified returns the entity's modification stamp.
func (e entity) Modified() uint64 {
	if e.m == nil {
		return 0
	}
	return e.m.store.Modified(e.h)
}

// Property returns a named property.
func (e entity) Property(name string) (props.Value, bool) {
	if r := e.rec(); r != nil {
		return r.props.Get(name)
	}
	return props.Value{}, false
}

// SetProperty stores a named property.
func (e entity) SetProperty(name string, v props.Value) {
	if r := e.rec(); r != nil {
		r.props.Set(name, v)
		e.m.store.Touch(e.h)
	}
}

// Properties returns a copy of the property bag.
func (e entity) Properties() props.Bag {
	if r := e.rec(); r != nil {
		return r.props.Clone()
	}
	return props.Bag{}
}

// Color returns the display color, props.DefaultColor when unset.
func (e entity) Color() props.RGBA {
	if r := e.rec(); r != nil {
		c, _ := r.props.Color()
		return c
	}
	return props.DefaultColor
}

// SetColor stores the display color.
func (e entity) SetColor(c props.RGBA) {
	if r := e.rec(); r != nil {
		r.props.SetColor(c)
		e.m.store.Touch(e.h)
	}
}

// Visibility returns 1 unless hidden.
func (e entity) Visibility() int {
	if r := e.rec(); r != nil {
		return r.props.Visibility()
	}
	return 1
}

// SetVisibility stores the visibility flag.
func (e entity) SetVisibility(v int) {
	if r := e.rec(); r != nil {
		r.props.SetVisibility(v)
		e.m.store.Touch(e.h)
	}
}

// Pickable returns 1 unless picking is disabled.
func (e entity) Pickable() int {
	if r := e.rec(); r != nil {
		return r.props.Pickable()
	}
	return 1
}

// SetPickable stores the pickable flag.
func (e entity) SetPickable(p int) {
	if r := e.rec(); r != nil {
		r.props.SetPickable(p)
		e.m.store.Touch(e.h)
	}
}

func (e entity) rec() *record {
	if e.m == nil {
		return nil
	}
	r, ok := e.m.store.Payload(e.h)
	if !ok {
		return nil
	}
	return r
}

// assocs returns the entity's k-bucket without placeholders.
func (e entity) assocs(k kind.Kind) []assoc.Handle {
	if e.m == nil {
		return nil
	}
	hs := e.m.store.Associations(e.h, k)
	out := hs[:0]
	for _, h := range hs {
		if !h.IsNil() {
			out = append(out, h)
		}
	}
	return out
}

// one returns the single k-neighbor, Nil when absent.
func (e entity) one(k kind.Kind) assoc.Handle {
	if e.m == nil {
		return assoc.Nil
	}
	return e.m.first(e.h, k)
}

// geometric adds the geometry collaborator to vertices, edges, faces and regions.
type geometric struct{ entity }

// Dimension returns 0..3.
func (g geometric) Dimension() int { return g.h.Kind.Dimension() }

// Geometry returns the opaque geometry handle.
func (g geometric) Geometry() any {
	if r := g.rec(); r != nil {
		return r.geometry
	}
	return nil
}

// SetGeometry stores an opaque geometry handle and fires GeometrySet.
func (g geometric) SetGeometry(x any) {
	r := g.rec()
	if r == nil {
		return
	}
	r.geometry = x
	g.m.store.Touch(g.h)
	g.m.emit(Event{Kind: GeometrySet, Entity: g.m.geometricOf(g.h)})
}

// Bounds delegates to the geometry handle when it implements Bounder.
func (g geometric) Bounds() ([6]float64, bool) {
	if b, ok := g.Geometry().(Bounder); ok {
		return b.Bounds(), true
	}
	return [6]float64{}, false
}

// DisplayProperty returns the opaque display handle.
func (g geometric) DisplayProperty() any {
	if r := g.rec(); r != nil {
		return r.display
	}
	return nil
}

// SetDisplayProperty stores an opaque display handle.
func (g geometric) SetDisplayProperty(d any) {
	if r := g.rec(); r != nil {
		r.display = d
		g.m.store.Touch(g.h)
	}
}

// detach removes a geometric entity from the model's top-level bucket and frees it.
func (g geometric) detach() error {
	g.m.store.RemoveAssociation(g.m.root, g.h)
	return g.m.release(g.h)
}

// AsVertex downcasts e, failing closed on mismatch or stale handles.
func AsVertex(e Entity) (Vertex, bool) { return as[Vertex](e) }

// AsEdge downcasts e.
func AsEdge(e Entity) (Edge, bool) { return as[Edge](e) }

// AsFace downcasts e.
func AsFace(e Entity) (Face, bool) { return as[Face](e) }

// AsRegion downcasts e.
func AsRegion(e Entity) (Region, bool) { return as[Region](e) }

// AsVertexUse downcasts e.
func AsVertexUse(e Entity) (VertexUse, bool) { return as[VertexUse](e) }

// AsEdgeUse downcasts e.
func AsEdgeUse(e Entity) (EdgeUse, bool) { return as[EdgeUse](e) }

// AsLoopUse downcasts e.
func AsLoopUse(e Entity) (LoopUse, bool) { return as[LoopUse](e) }

// AsFaceUse downcasts e.
func AsFaceUse(e Entity) (FaceUse, bool) { return as[FaceUse](e) }

// AsShellUse downcasts e.
func AsShellUse(e Entity) (ShellUse, bool) { return as[ShellUse](e) }

// AsGeometric downcasts e to GeometricEntity.
func AsGeometric(e Entity) (GeometricEntity, bool) {
	g, ok := e.(GeometricEntity)
	if !ok || !g.IsValid() {
		return nil, false
	}
	return g, true
}

func as[T Entity](e Entity) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	t, ok := e.(T)
	if !ok || !t.IsValid() {
		return zero, false
	}
	return t, true
}
