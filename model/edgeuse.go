// SPDX-License-Identifier: MIT
// File: edgeuse.go
// Role: Oriented use of an edge; pairing, direction, vertex-use slots.
//
// An edge-use holds 0, 1 or 2 vertex-uses in traversal order, a direction
// flag (1 = the edge's canonical vertex0→vertex1 orientation) and exactly one
// paired edge-use of the opposite direction. It belongs to at most one loop-use.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brep/kind"
	"github.com/katalvlaran/brep/props"
)

// EdgeUse is one oriented participation of an edge in a boundary.
type EdgeUse struct{ entity }

// Direction returns 1 when eu follows the edge's canonical orientation, else 0.
func (eu EdgeUse) Direction() int {
	if r := eu.rec(); r != nil {
		if d, ok := r.props.Int(props.KeyDirection); ok && d != 0 {
			return 1
		}
	}
	return 0
}

// SetDirection stores d normalized to 0 or 1.
func (eu EdgeUse) SetDirection(d int) {
	if d != 0 {
		d = 1
	}
	eu.SetProperty(props.KeyDirection, props.Int(int64(d)))
}

// Pair returns the opposite-direction twin.
func (eu EdgeUse) Pair() EdgeUse {
	h := eu.one(kind.EdgeUse)
	if h.IsNil() {
		return EdgeUse{}
	}
	return EdgeUse{entity{m: eu.m, h: h}}
}

// Edge returns the used edge.
func (eu EdgeUse) Edge() Edge {
	h := eu.one(kind.Edge)
	if h.IsNil() {
		return Edge{}
	}
	return Edge{geometric{entity{m: eu.m, h: h}}}
}

// LoopUse returns the loop-use eu belongs to, zero when free.
func (eu EdgeUse) LoopUse() LoopUse {
	h := eu.one(kind.LoopUse)
	if h.IsNil() {
		return LoopUse{}
	}
	return LoopUse{entity{m: eu.m, h: h}}
}

// VertexUse returns the vertex-use in slot i (0 = start, 1 = end).
func (eu EdgeUse) VertexUse(i int) VertexUse {
	if eu.m == nil {
		return VertexUse{}
	}
	h, ok := eu.m.store.At(eu.h, kind.VertexUse, i)
	if !ok || h.IsNil() {
		return VertexUse{}
	}
	return VertexUse{entity{m: eu.m, h: h}}
}

// NumberOfVertexUses returns how many vertex-use slots are filled.
func (eu EdgeUse) NumberOfVertexUses() int {
	return len(eu.assocs(kind.VertexUse))
}

// Vertex returns the vertex behind slot i.
func (eu EdgeUse) Vertex(i int) Vertex {
	return eu.VertexUse(i).Vertex()
}

// initialize sets direction and builds fresh vertex-uses: (v0, v1) for the
// canonical use, (v1, v0) for its twin. A zero vertex leaves its slot empty.
func (eu EdgeUse) initialize(v0, v1 Vertex, dir int) {
	eu.SetDirection(dir)
	start, end := v0, v1
	if eu.Direction() == 0 {
		start, end = v1, v0
	}
	if start.IsValid() {
		eu.setVertexUse(0, start.BuildVertexUse())
	}
	if end.IsValid() {
		eu.setVertexUse(1, end.BuildVertexUse())
	}
}

// setVertexUse fills slot i, replacing whatever was there.
func (eu EdgeUse) setVertexUse(i int, vu VertexUse) {
	store := eu.m.store
	n := store.NumberOfAssociations(eu.h, kind.VertexUse)
	if i == 1 && n == 0 {
		eu.m.log.BestEffort("EdgeUse.setVertexUse", "vertex-use 1 set without vertex-use 0", "edge-use", eu.UniqueID())
	}
	if i < n {
		if err := store.ReplaceAssociation(eu.h, i, vu.h); err != nil {
			eu.m.log.BestEffort("EdgeUse.setVertexUse", "replace failed", "error", err)
		}
		return
	}
	if err := store.AddAssociationInPosition(eu.h, i, vu.h); err != nil {
		eu.m.log.BestEffort("EdgeUse.setVertexUse", "insert failed", "error", err)
	}
}

// releaseVertexUses unlinks every vertex-use and frees those no other
// edge-use references. A self-loop vertex-use is freed once.
func (eu EdgeUse) releaseVertexUses() error {
	var errs []error
	seen := make(map[VertexUse]bool, 2)
	for _, h := range eu.assocs(kind.VertexUse) {
		vu := VertexUse{entity{m: eu.m, h: h}}
		if seen[vu] {
			continue
		}
		seen[vu] = true
		eu.m.store.RemoveAssociation(eu.h, vu.h)
		errs = append(errs, vu.destroyIfOrphan())
	}
	eu.m.store.RemoveAllAssociations(eu.h, kind.VertexUse)
	return errors.Join(errs...)
}

// destroy frees eu. It refuses while eu is part of a loop; the pairing and
// edge links are dropped here.
func (eu EdgeUse) destroy() error {
	if !eu.IsValid() {
		return nil
	}
	if eu.LoopUse().IsValid() {
		err := fmt.Errorf("destroy edge-use %d: %w", eu.UniqueID(), ErrEdgeUseInLoop)
		eu.m.log.Precondition("EdgeUse.Destroy", kind.EdgeUse, eu.UniqueID(), err)
		return err
	}
	if err := eu.releaseVertexUses(); err != nil {
		return err
	}
	eu.m.store.RemoveAllAssociations(eu.h, kind.EdgeUse)
	eu.m.store.RemoveAllAssociations(eu.h, kind.Edge)
	return eu.m.release(eu.h)
}
