// SPDX-License-Identifier: MIT
// File: edge.go
// Role: Dimension-1 cell: construction, use-pairs, adjacency queries.
//
// Edge-uses are stored in pairs: EdgeUse(2k) has direction 0 and
// EdgeUse(2k+1) is its canonical (direction 1) twin.

package model

import (
	"fmt"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
)

// Edge is a dimension-1 cell.
type Edge struct{ geometric }

// BuildModelEdge creates an edge from v0 to v1 with its default use-pair.
// Either vertex may be the zero Vertex for floating or periodic edges.
func (m *Model) BuildModelEdge(v0, v1 Vertex) (Edge, error) {
	for _, v := range [...]Vertex{v0, v1} {
		if v != (Vertex{}) && !m.owns(v) {
			err := fmt.Errorf("BuildModelEdge: %w", ErrInvalidEntity)
			m.log.Precondition("BuildModelEdge", kind.Edge, 0, err)
			return Edge{}, err
		}
	}
	e := Edge{geometric{m.newItem(kind.Edge)}}
	m.link(m.root, e.h)
	e.newUsePair(v0, v1)
	m.log.Built(kind.Edge, e.UniqueID(), "v0", v0.UniqueID(), "v1", v1.UniqueID())
	m.emit(Event{Kind: EntityCreated, Entity: e})

	return e, nil
}

// newUsePair builds a direction-0 / direction-1 pair with fresh vertex-uses
// and returns the canonical use.
func (e Edge) newUsePair(v0, v1 Vertex) EdgeUse {
	m := e.m
	use0 := EdgeUse{m.newItem(kind.EdgeUse)}
	use1 := EdgeUse{m.newItem(kind.EdgeUse)}
	m.link(e.h, use0.h)
	m.link(e.h, use1.h)
	m.link(use0.h, use1.h)
	use0.initialize(v0, v1, 0)
	use1.initialize(v0, v1, 1)

	return use1
}

// BuildModelEdgeUsePair adds a use-pair with the vertices of the existing
// first pair and returns its canonical use.
func (e Edge) BuildModelEdgeUsePair() (EdgeUse, error) {
	if !e.IsValid() {
		return EdgeUse{}, fmt.Errorf("BuildModelEdgeUsePair: %w", ErrInvalidEntity)
	}
	canon := e.canonicalUse()
	if !canon.IsValid() {
		err := fmt.Errorf("BuildModelEdgeUsePair(edge %d): %w", e.UniqueID(), ErrNoEdgeUse)
		e.m.log.Precondition("BuildModelEdgeUsePair", kind.Edge, e.UniqueID(), err)
		return EdgeUse{}, err
	}
	return e.newUsePair(canon.Vertex(0), canon.Vertex(1)), nil
}

// DestroyModelEdgeUsePair destroys eu and its twin. Neither may be in a loop.
func (e Edge) DestroyModelEdgeUsePair(eu EdgeUse) error {
	if !e.IsValid() || !eu.IsValid() || eu.Edge() != e {
		return fmt.Errorf("DestroyModelEdgeUsePair: %w", ErrInvalidEntity)
	}
	return e.destroyUsePair(eu)
}

func (e Edge) destroyUsePair(eu EdgeUse) error {
	pair := eu.Pair()
	for _, x := range [...]EdgeUse{eu, pair} {
		if x.IsValid() && x.LoopUse().IsValid() {
			err := fmt.Errorf("destroy use-pair of edge %d: %w", e.UniqueID(), ErrEdgeUseInLoop)
			e.m.log.Precondition("Edge.DestroyModelEdgeUsePair", kind.Edge, e.UniqueID(), err)
			return err
		}
	}
	if err := eu.destroy(); err != nil {
		return err
	}
	return pair.destroy()
}

// EdgeUses returns the edge's uses in pair order.
func (e Edge) EdgeUses() []EdgeUse {
	return wrapAll(e.m, e.assocs(kind.EdgeUse), func(x entity) EdgeUse { return EdgeUse{x} })
}

// NumberOfEdgeUses returns the number of uses; 2 per pair.
func (e Edge) NumberOfEdgeUses() int { return len(e.assocs(kind.EdgeUse)) }

// EdgeUse returns use i, zero when out of range.
func (e Edge) EdgeUse(i int) EdgeUse {
	if e.m == nil {
		return EdgeUse{}
	}
	h, ok := e.m.store.At(e.h, kind.EdgeUse, i)
	if !ok || h.IsNil() {
		return EdgeUse{}
	}
	return EdgeUse{entity{m: e.m, h: h}}
}

// canonicalUse returns the first direction-1 use.
func (e Edge) canonicalUse() EdgeUse {
	for _, eu := range e.EdgeUses() {
		if eu.Direction() == 1 {
			return eu
		}
	}
	return EdgeUse{}
}

// AdjacentVertex returns vertex 0 (start) or 1 (end) of the canonical use.
func (e Edge) AdjacentVertex(which int) Vertex {
	return e.canonicalUse().Vertex(which)
}

// NumberOfAdjacentVertices counts distinct endpoint vertices: 2 for an open
// edge, 1 for a closed edge, 0 for a floating one.
func (e Edge) NumberOfAdjacentVertices() int {
	v0, v1 := e.AdjacentVertex(0), e.AdjacentVertex(1)
	n := 0
	if v0.IsValid() {
		n++
	}
	if v1.IsValid() && v1 != v0 {
		n++
	}
	return n
}

// AdjacentFaces returns the distinct faces whose loops use e.
func (e Edge) AdjacentFaces() []Face {
	set := assoc.NewItemSet(true)
	for _, eu := range e.EdgeUses() {
		if f := eu.LoopUse().FaceUse().Face(); f.IsValid() {
			set.Add(f.h)
		}
	}
	return wrapAll(e.m, set.Items(), func(x entity) Face { return Face{geometric{x}} })
}

// NumberOfAdjacentFaces returns len(AdjacentFaces()).
func (e Edge) NumberOfAdjacentFaces() int { return len(e.AdjacentFaces()) }

// IsDestroyable reports whether no use is part of a loop.
func (e Edge) IsDestroyable() bool {
	for _, eu := range e.EdgeUses() {
		if eu.LoopUse().IsValid() {
			return false
		}
	}
	return true
}

func (e Edge) destroy() error {
	if !e.IsDestroyable() {
		return fmt.Errorf("destroy edge %d: %w", e.UniqueID(), ErrNotDestroyable)
	}
	for e.NumberOfEdgeUses() > 0 {
		if err := e.destroyUsePair(e.EdgeUse(0)); err != nil {
			return err
		}
	}
	return e.detach()
}
