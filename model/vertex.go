// SPDX-License-Identifier: MIT
// File: vertex.go
// Role: Dimension-0 cell and its vertex-uses.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
)

// Vertex is a dimension-0 cell.
type Vertex struct{ geometric }

// BuildModelVertex creates a vertex with the next unique id and fires EntityCreated.
func (m *Model) BuildModelVertex() Vertex {
	v := Vertex{geometric{m.newItem(kind.Vertex)}}
	m.link(m.root, v.h)
	m.log.Built(kind.Vertex, v.UniqueID())
	m.emit(Event{Kind: EntityCreated, Entity: v})

	return v
}

// BuildVertexUse attaches a new vertex-use to v.
func (v Vertex) BuildVertexUse() VertexUse {
	if !v.IsValid() {
		return VertexUse{}
	}
	vu := VertexUse{v.m.newItem(kind.VertexUse)}
	v.m.link(v.h, vu.h)
	return vu
}

// DestroyVertexUse frees vu once no edge-use references it.
func (v Vertex) DestroyVertexUse(vu VertexUse) error {
	if !v.IsValid() || !vu.IsValid() || vu.Vertex() != v {
		return fmt.Errorf("DestroyVertexUse: %w", ErrInvalidEntity)
	}
	if n := vu.NumberOfEdgeUses(); n > 0 {
		return fmt.Errorf("DestroyVertexUse: %d edge-use(s): %w", n, ErrVertexUseInUse)
	}
	v.m.store.RemoveAssociation(v.h, vu.h)
	return v.m.release(vu.h)
}

// NumberOfVertexUses returns how many vertex-uses reference v.
func (v Vertex) NumberOfVertexUses() int {
	return len(v.assocs(kind.VertexUse))
}

// VertexUses returns v's vertex-uses in creation order.
func (v Vertex) VertexUses() []VertexUse {
	return wrapAll(v.m, v.assocs(kind.VertexUse), func(e entity) VertexUse { return VertexUse{e} })
}

// AdjacentEdges returns the distinct edges incident to v.
func (v Vertex) AdjacentEdges() []Edge {
	set := assoc.NewItemSet(true)
	for _, vu := range v.VertexUses() {
		for _, eu := range vu.EdgeUses() {
			if e := eu.Edge(); e.IsValid() {
				set.Add(e.h)
			}
		}
	}
	return wrapAll(v.m, set.Items(), func(e entity) Edge { return Edge{geometric{e}} })
}

// NumberOfAdjacentEdges returns len(AdjacentEdges()).
func (v Vertex) NumberOfAdjacentEdges() int { return len(v.AdjacentEdges()) }

// IsDestroyable reports whether no vertex-use remains.
func (v Vertex) IsDestroyable() bool { return v.NumberOfVertexUses() == 0 }

func (v Vertex) destroy() error {
	if !v.IsDestroyable() {
		return fmt.Errorf("destroy vertex %d: %w", v.UniqueID(), ErrNotDestroyable)
	}
	return v.detach()
}

// destroyVertexUses frees every vertex-use that no edge-use references.
func (v Vertex) destroyVertexUses() error {
	var errs []error
	for _, vu := range v.VertexUses() {
		if vu.NumberOfEdgeUses() == 0 {
			errs = append(errs, v.DestroyVertexUse(vu))
		}
	}
	return errors.Join(errs...)
}

// VertexUse is the role a vertex plays in one or more edge-use contexts.
type VertexUse struct{ entity }

// Vertex returns the used vertex.
func (vu VertexUse) Vertex() Vertex {
	h := vu.one(kind.Vertex)
	if h.IsNil() {
		return Vertex{}
	}
	return Vertex{geometric{entity{m: vu.m, h: h}}}
}

// EdgeUses returns the distinct edge-uses referencing vu.
func (vu VertexUse) EdgeUses() []EdgeUse {
	set := assoc.NewItemSet(true)
	for _, h := range vu.assocs(kind.EdgeUse) {
		set.Add(h)
	}
	return wrapAll(vu.m, set.Items(), func(e entity) EdgeUse { return EdgeUse{e} })
}

// NumberOfEdgeUses counts distinct referencing edge-uses; a self-loop
// edge-use holding vu at both ends counts once.
func (vu VertexUse) NumberOfEdgeUses() int { return len(vu.EdgeUses()) }

// destroyIfOrphan frees vu when no edge-use references it any more.
func (vu VertexUse) destroyIfOrphan() error {
	if !vu.IsValid() || vu.NumberOfEdgeUses() > 0 {
		return nil
	}
	if v := vu.Vertex(); v.IsValid() {
		vu.m.store.RemoveAssociation(v.h, vu.h)
	}
	return vu.m.release(vu.h)
}
