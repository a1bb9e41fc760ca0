// SPDX-License-Identifier: MIT
// File: split.go
// Role: Edge splitting and closed-edge degeneration.
//
// Splitting edge v0→v1 at vn leaves the original edge as v0→vn and creates a
// new edge vn→v1. For every use-pair (c canonical, p its twin):
//
//	canonical side:  c = [a0, vn]        cN = [vn, a1]     cN spliced at index(c)+1
//	paired side:     p = [vn, b1]        pN = [b0, vn]     pN spliced at index(p)
//
// The paired loop runs v1→v0, so its continuation pN (v1→vn) precedes p.

package model

import (
	"fmt"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
)

// canonicalPairs returns one direction-1 representative per use-pair,
// de-duplicated by identity, in edge order.
func (e Edge) canonicalPairs() []EdgeUse {
	set := assoc.NewItemSet(true)
	for _, eu := range e.EdgeUses() {
		c := eu
		if eu.Direction() == 0 {
			c = eu.Pair()
		}
		if c.IsValid() {
			set.Add(c.h)
		}
	}
	return wrapAll(e.m, set.Items(), func(x entity) EdgeUse { return EdgeUse{x} })
}

// SplitModelEdge inserts newVertex into edge and returns the edge created
// for the newVertex→end portion. Every use-pair and loop is rewired so that
// traversal order is preserved on both face sides. Fires EntitySplit with the
// new edge in Event.Other.
func (m *Model) SplitModelEdge(edge Edge, newVertex Vertex) (Edge, error) {
	if !m.owns(edge) || !m.owns(newVertex) {
		return Edge{}, fmt.Errorf("SplitModelEdge: %w", ErrInvalidEntity)
	}
	reps := edge.canonicalPairs()
	if len(reps) == 0 {
		err := fmt.Errorf("SplitModelEdge(edge %d): %w", edge.UniqueID(), ErrNoEdgeUse)
		m.log.Precondition("SplitModelEdge", kind.Edge, edge.UniqueID(), err)
		return Edge{}, err
	}
	for _, c := range reps {
		if c.NumberOfVertexUses() != 2 || c.Pair().NumberOfVertexUses() != 2 {
			err := fmt.Errorf("SplitModelEdge(edge %d): %w", edge.UniqueID(), ErrNotSplittable)
			m.log.Precondition("SplitModelEdge", kind.Edge, edge.UniqueID(), err)
			return Edge{}, err
		}
	}
	end := edge.AdjacentVertex(1)

	release := m.BlockEvents()
	var created Edge
	for k, c := range reps {
		p := c.Pair()

		var cN EdgeUse
		if k == 0 {
			ne, err := m.BuildModelEdge(newVertex, end)
			if err != nil {
				release()
				return Edge{}, err
			}
			created, cN = ne, ne.canonicalUse()
		} else {
			var err error
			if cN, err = created.BuildModelEdgeUsePair(); err != nil {
				release()
				return created, err
			}
		}
		pN := cN.Pair()
		// the correct vertex-uses come from the split, not the pair constructor
		if err := cN.releaseVertexUses(); err != nil {
			release()
			return created, err
		}
		if err := pN.releaseVertexUses(); err != nil {
			release()
			return created, err
		}

		vnc, vnp := newVertex.BuildVertexUse(), newVertex.BuildVertexUse()
		a1, b0 := c.VertexUse(1), p.VertexUse(0)

		if err := m.store.ReplaceAssociation(c.h, 1, vnc.h); err != nil {
			release()
			return created, err
		}
		cN.setVertexUse(0, vnc)
		cN.setVertexUse(1, a1)

		if err := m.store.ReplaceAssociation(p.h, 0, vnp.h); err != nil {
			release()
			return created, err
		}
		pN.setVertexUse(0, b0)
		pN.setVertexUse(1, vnp)

		if lc := c.LoopUse(); lc.IsValid() {
			if err := lc.InsertEdgeUse(lc.IndexOf(c)+1, cN); err != nil {
				release()
				return created, err
			}
		}
		if lp := p.LoopUse(); lp.IsValid() {
			if err := lp.InsertEdgeUse(lp.IndexOf(p), pN); err != nil {
				release()
				return created, err
			}
		}
	}
	release()

	m.log.Built(kind.Edge, created.UniqueID(), "split-from", edge.UniqueID(), "pairs", len(reps))
	m.emit(Event{Kind: EntitySplit, Entity: edge, Other: created})
	return created, nil
}

// SplitModelEdgeLoop closes e on v: every use of every pair degenerates to a
// single vertex-use of v repeated at both ends, one vertex-use per side.
// Fires BoundaryModified.
func (e Edge) SplitModelEdgeLoop(v Vertex) error {
	if !e.IsValid() || !e.m.owns(v) {
		return fmt.Errorf("SplitModelEdgeLoop: %w", ErrInvalidEntity)
	}
	reps := e.canonicalPairs()
	if len(reps) == 0 {
		return fmt.Errorf("SplitModelEdgeLoop(edge %d): %w", e.UniqueID(), ErrNoEdgeUse)
	}
	for _, c := range reps {
		for _, u := range [...]EdgeUse{c, c.Pair()} {
			if !u.IsValid() {
				continue
			}
			if err := u.releaseVertexUses(); err != nil {
				return err
			}
			vu := v.BuildVertexUse()
			u.setVertexUse(0, vu)
			u.setVertexUse(1, vu)
		}
	}
	e.m.emit(Event{Kind: BoundaryModified, Entity: e})
	return nil
}
