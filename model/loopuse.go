// SPDX-License-Identifier: MIT
// File: loopuse.go
// Role: Ordered cycle of edge-uses bounding one side of a face.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brep/kind"
)

// LoopUse is an ordered, closed sequence of edge-uses. Order defines the
// traversal direction.
type LoopUse struct{ entity }

// FaceUse returns the owning face-use.
func (lu LoopUse) FaceUse() FaceUse {
	h := lu.one(kind.FaceUse)
	if h.IsNil() {
		return FaceUse{}
	}
	return FaceUse{entity{m: lu.m, h: h}}
}

// EdgeUses returns the loop's edge-uses in traversal order.
func (lu LoopUse) EdgeUses() []EdgeUse {
	return wrapAll(lu.m, lu.assocs(kind.EdgeUse), func(e entity) EdgeUse { return EdgeUse{e} })
}

// NumberOfEdgeUses returns the loop length.
func (lu LoopUse) NumberOfEdgeUses() int { return len(lu.assocs(kind.EdgeUse)) }

// EdgeUse returns the i-th edge-use, zero when out of range.
func (lu LoopUse) EdgeUse(i int) EdgeUse {
	if lu.m == nil {
		return EdgeUse{}
	}
	h, ok := lu.m.store.At(lu.h, kind.EdgeUse, i)
	if !ok || h.IsNil() {
		return EdgeUse{}
	}
	return EdgeUse{entity{m: lu.m, h: h}}
}

// IndexOf returns the position of eu in the loop, -1 when absent.
func (lu LoopUse) IndexOf(eu EdgeUse) int {
	if lu.m == nil {
		return -1
	}
	return lu.m.store.IndexOf(lu.h, eu.h)
}

// InsertEdgeUse places eu at position i. eu must not belong to another loop.
// Positions past the end are padded with a logged warning.
func (lu LoopUse) InsertEdgeUse(i int, eu EdgeUse) error {
	if !lu.IsValid() || !eu.IsValid() || eu.m != lu.m {
		return fmt.Errorf("InsertEdgeUse: %w", ErrInvalidEntity)
	}
	if other := eu.LoopUse(); other.IsValid() && other != lu {
		return fmt.Errorf("InsertEdgeUse(edge-use %d): %w", eu.UniqueID(), ErrEdgeUseInLoop)
	}
	return lu.m.store.AddAssociationInPosition(lu.h, i, eu.h)
}

// Vertices returns the start vertex of each edge-use in traversal order.
func (lu LoopUse) Vertices() []Vertex {
	eus := lu.EdgeUses()
	out := make([]Vertex, 0, len(eus))
	for _, eu := range eus {
		out = append(out, eu.Vertex(0))
	}
	return out
}

// destroy detaches every edge-use and frees the loop. Extra use-pairs left
// without any loop on an edge that still has more than its default pair are
// destroyed along the way.
func (lu LoopUse) destroy() error {
	eus := lu.EdgeUses()
	lu.m.store.RemoveAllAssociations(lu.h, kind.EdgeUse)

	var errs []error
	for _, eu := range eus {
		if !eu.IsValid() {
			continue
		}
		e := eu.Edge()
		if e.NumberOfEdgeUses() > 2 && !eu.LoopUse().IsValid() && !eu.Pair().LoopUse().IsValid() {
			errs = append(errs, e.destroyUsePair(eu))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	lu.m.store.RemoveAllAssociations(lu.h, kind.FaceUse)
	return lu.m.release(lu.h)
}
