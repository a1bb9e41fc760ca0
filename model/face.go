// SPDX-License-Identifier: MIT
// File: face.go
// Role: Dimension-2 cell: construction, loop assembly, hole counting.

package model

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
)

// Face is a dimension-2 cell with exactly two face-uses.
type Face struct{ geometric }

// BuildModelFace creates a face with its two face-uses and, when edges is
// non-empty, an outer loop. Events are blocked while the loop is assembled
// and one EntityCreated fires afterwards.
//
// On error the partially built face is returned and remains in the model.
func (m *Model) BuildModelFace(edges []Edge, dirs []int) (Face, error) {
	f := Face{geometric{m.newItem(kind.Face)}}
	m.link(m.root, f.h)
	for side := 0; side < 2; side++ {
		fu := FaceUse{m.newItem(kind.FaceUse)}
		m.link(f.h, fu.h)
	}

	if len(edges) > 0 || len(dirs) > 0 {
		release := m.BlockEvents()
		err := f.AddLoop(edges, dirs)
		release()
		if err != nil {
			m.log.Precondition("BuildModelFace", kind.Face, f.UniqueID(), err)
			return f, err
		}
	}
	m.log.Built(kind.Face, f.UniqueID(), "edges", len(edges))
	m.emit(Event{Kind: EntityCreated, Entity: f})

	return f, nil
}

// AddLoop appends a loop built from an ordered, oriented edge cycle.
// dirs[i] = 1 traverses edges[i] from vertex 0 to vertex 1.
//
// Implementation:
//   - Stage 1: per edge, reuse the unclaimed default use-pair or build a new pair.
//   - Stage 2: merge the vertex-uses meeting at each corner, on both sides.
//   - Stage 3: face-use 1 gets the selected uses forward; face-use 0 gets
//     their twins in reverse order.
//   - Stage 4: fire BoundaryModified.
func (f Face) AddLoop(edges []Edge, dirs []int) error {
	if !f.IsValid() {
		return fmt.Errorf("AddLoop: %w", ErrInvalidEntity)
	}
	if len(edges) != len(dirs) {
		return fmt.Errorf("AddLoop(%d edges, %d dirs): %w", len(edges), len(dirs), ErrLengthMismatch)
	}
	if len(edges) == 0 {
		return fmt.Errorf("AddLoop: %w", ErrEmptyLoop)
	}
	for _, e := range edges {
		if !f.m.owns(e) {
			return fmt.Errorf("AddLoop: edge: %w", ErrInvalidEntity)
		}
	}

	// Stage 1
	eus := make([]EdgeUse, len(edges))
	pairs := make([]EdgeUse, len(edges))
	claimed := make(map[EdgeUse]bool, len(edges))
	for i, e := range edges {
		dir := 0
		if dirs[i] != 0 {
			dir = 1
		}
		eu, err := f.selectEdgeUse(e, dir, claimed)
		if err != nil {
			return err
		}
		eus[i], pairs[i] = eu, eu.Pair()
		claimed[eu], claimed[pairs[i]] = true, true
	}

	// Stage 2
	n := len(eus)
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		if err := f.m.CombineModelVertexUses(eus[prev], 1, eus[i], 0); err != nil {
			return err
		}
		if err := f.m.CombineModelVertexUses(pairs[i], 1, pairs[prev], 0); err != nil {
			return err
		}
	}

	// Stage 3
	pos := LoopUse{f.m.newItem(kind.LoopUse)}
	neg := LoopUse{f.m.newItem(kind.LoopUse)}
	f.m.link(f.FaceUse(1).h, pos.h)
	f.m.link(f.FaceUse(0).h, neg.h)
	for i := 0; i < n; i++ {
		f.m.link(pos.h, eus[i].h)
	}
	for i := n - 1; i >= 0; i-- {
		f.m.link(neg.h, pairs[i].h)
	}

	// Stage 4
	f.m.emit(Event{Kind: BoundaryModified, Entity: f})
	return nil
}

// selectEdgeUse returns the use of e with direction dir for a new loop.
func (f Face) selectEdgeUse(e Edge, dir int, claimed map[EdgeUse]bool) (EdgeUse, error) {
	if e.NumberOfEdgeUses() == 2 {
		u0, u1 := e.EdgeUse(0), e.EdgeUse(1)
		if !u0.LoopUse().IsValid() && !claimed[u0] && !claimed[u1] {
			if u := e.EdgeUse(dir); u.Direction() == dir {
				return u, nil
			}
			return e.EdgeUse(1 - dir), nil
		}
	}
	canon, err := e.BuildModelEdgeUsePair()
	if err != nil {
		return EdgeUse{}, err
	}
	if dir == 1 {
		return canon, nil
	}
	return canon.Pair(), nil
}

// CombineModelVertexUses merges the vertex-use in slot sa of a with the one
// in slot sb of b. The side referenced by a single edge-use is destroyed and
// replaced in place by the other; an already shared vertex-use is left alone.
func (m *Model) CombineModelVertexUses(a EdgeUse, sa int, b EdgeUse, sb int) error {
	va, vb := a.VertexUse(sa), b.VertexUse(sb)
	switch {
	case !va.IsValid() && !vb.IsValid():
		return nil // vertexless periodic edge
	case !va.IsValid() || !vb.IsValid():
		return fmt.Errorf("CombineModelVertexUses: missing vertex-use: %w", ErrMalformedLoop)
	case va == vb:
		return nil
	case va.Vertex() != vb.Vertex():
		return fmt.Errorf("CombineModelVertexUses(vertex %d, vertex %d): %w",
			va.Vertex().UniqueID(), vb.Vertex().UniqueID(), ErrVertexMismatch)
	}

	keep, drop := va, vb
	if vb.NumberOfEdgeUses() != 1 {
		if va.NumberOfEdgeUses() != 1 {
			return fmt.Errorf("CombineModelVertexUses(vertex %d): %w", va.Vertex().UniqueID(), ErrMalformedLoop)
		}
		keep, drop = vb, va
	}
	return m.replaceVertexUse(drop, keep)
}

// replaceVertexUse rewires every slot holding drop to keep, then frees drop.
func (m *Model) replaceVertexUse(drop, keep VertexUse) error {
	for _, eu := range drop.EdgeUses() {
		for i, h := range m.store.Associations(eu.h, kind.VertexUse) {
			if h != drop.h {
				continue
			}
			if err := m.store.ReplaceAssociation(eu.h, i, keep.h); err != nil {
				return err
			}
		}
	}
	return drop.destroyIfOrphan()
}

// FaceUse returns side 0 (negative) or 1 (positive).
func (f Face) FaceUse(side int) FaceUse {
	if f.m == nil {
		return FaceUse{}
	}
	h, ok := f.m.store.At(f.h, kind.FaceUse, side)
	if !ok || h.IsNil() {
		return FaceUse{}
	}
	return FaceUse{entity{m: f.m, h: h}}
}

// NumberOfLoops returns the loop count (outer loop included).
func (f Face) NumberOfLoops() int { return f.FaceUse(0).NumberOfLoopUses() }

// NumberOfHoles counts inner loops that traverse some edge an odd number of
// times. A loop traversing each of its edges twice encloses no area and is
// degenerate, not a hole.
func (f Face) NumberOfHoles() int {
	holes := 0
	for i, lu := range f.FaceUse(0).LoopUses() {
		if i == 0 {
			continue
		}
		parity := hashset.New()
		seen := make(map[assoc.Handle]int)
		for _, eu := range lu.EdgeUses() {
			e := eu.Edge().h
			seen[e]++
			if parity.Contains(e) {
				parity.Remove(e)
			} else {
				parity.Add(e)
			}
		}
		for e, n := range seen {
			if n > 2 {
				f.m.log.BestEffort("Face.NumberOfHoles", "edge traversed more than twice in one loop",
					"face", f.UniqueID(), "edge", e.String(), "count", n)
			}
		}
		if !parity.Empty() {
			holes++
		}
	}
	return holes
}

// NumberOfDegenerateLoops returns loops − holes − 1 (the outer loop).
func (f Face) NumberOfDegenerateLoops() int {
	n := f.NumberOfLoops()
	if n == 0 {
		return 0
	}
	return n - f.NumberOfHoles() - 1
}

// Edges returns the distinct edges of every loop, in loop order.
func (f Face) Edges() []Edge {
	set := assoc.NewItemSet(true)
	for _, lu := range f.FaceUse(1).LoopUses() {
		for _, eu := range lu.EdgeUses() {
			set.Add(eu.Edge().h)
		}
	}
	return wrapAll(f.m, set.Items(), func(e entity) Edge { return Edge{geometric{e}} })
}

// NumberOfModelEdges returns len(Edges()).
func (f Face) NumberOfModelEdges() int { return len(f.Edges()) }

// Vertices returns the distinct loop vertices in traversal order.
func (f Face) Vertices() []Vertex {
	set := assoc.NewItemSet(true)
	for _, lu := range f.FaceUse(1).LoopUses() {
		for _, v := range lu.Vertices() {
			if v.IsValid() {
				set.Add(v.h)
			}
		}
	}
	return wrapAll(f.m, set.Items(), func(e entity) Vertex { return Vertex{geometric{e}} })
}

// AdjacentRegion returns the region bounded by the given side, zero when none.
func (f Face) AdjacentRegion(side int) Region {
	return f.FaceUse(side).ShellUse().Region()
}

// IsDestroyable reports whether neither face-use belongs to a shell.
func (f Face) IsDestroyable() bool {
	return !f.FaceUse(0).ShellUse().IsValid() && !f.FaceUse(1).ShellUse().IsValid()
}

func (f Face) destroy() error {
	if !f.IsDestroyable() {
		return fmt.Errorf("destroy face %d: %w", f.UniqueID(), ErrNotDestroyable)
	}
	for _, fu := range [...]FaceUse{f.FaceUse(0), f.FaceUse(1)} {
		if !fu.IsValid() {
			continue
		}
		if err := fu.destroy(); err != nil {
			return err
		}
	}
	return f.detach()
}
