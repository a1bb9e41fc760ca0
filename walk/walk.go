// SPDX-License-Identifier: MIT
// File: walk.go
// Role: Breadth-first traversal over face adjacency.
// Determinism:
//   - Neighbors are produced in loop order of the current face's edges, then
//     in edge-use order of each edge, so the visit order is reproducible.

package walk

import (
	"context"
	"fmt"

	"github.com/katalvlaran/brep/model"
)

type queueItem struct {
	face  model.Face
	depth int
}

// walker holds mutable traversal state.
type walker struct {
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[model.Face]bool
	res     *Result
}

// Faces walks breadth-first from start across shared edges. Two faces are
// adjacent when some edge bounds both.
//
// Returns ErrModelNil, ErrStartFaceNotFound, ErrOptionViolation, a context
// error, or the wrapped OnVisit error. The partial result is returned
// alongside hook and context errors.
//
// Complexity: O(F + U), U = edge-uses reachable from the visited faces.
func Faces(m *model.Model, start model.Face, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !start.IsValid() || start.Model() != m {
		return nil, ErrStartFaceNotFound
	}

	n := m.NumberOf(start.Kind())
	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[model.Face]bool, n),
		res: &Result{
			Order:  make([]model.Face, 0, n),
			Depth:  make(map[model.Face]int, n),
			Parent: make(map[model.Face]model.Face, n),
		},
	}
	w.enqueue(start, 0, model.Face{})

	return w.res, w.loop()
}

func (w *walker) enqueue(f model.Face, d int, parent model.Face) {
	w.visited[f] = true
	w.res.Depth[f] = d
	if parent.IsValid() {
		w.res.Parent[f] = parent
	}
	w.queue = append(w.queue, queueItem{face: f, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.face)
		if err := w.opts.OnVisit(item.face, item.depth); err != nil {
			return fmt.Errorf("walk: OnVisit error at face %d: %w", item.face.UniqueID(), err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every unseen
// face sharing an edge with item.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range item.face.Edges() {
		for _, nbr := range e.AdjacentFaces() {
			if nbr == item.face || w.visited[nbr] {
				continue
			}
			if !w.opts.FilterFace(item.face, nbr, e) {
				continue
			}
			w.enqueue(nbr, next, item.face)
		}
	}
}

// Components partitions the model's faces into edge-connected groups, in
// face creation order. Faces without loops form singleton groups.
func Components(m *model.Model, opts ...Option) ([][]model.Face, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	seen := make(map[model.Face]bool)
	var out [][]model.Face
	for _, f := range m.Faces() {
		if seen[f] {
			continue
		}
		res, err := Faces(m, f, opts...)
		if err != nil {
			return out, err
		}
		for _, g := range res.Order {
			seen[g] = true
		}
		out = append(out, res.Order)
	}
	return out, nil
}
