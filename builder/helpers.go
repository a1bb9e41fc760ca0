// SPDX-License-Identifier: MIT
// Package builder provides internal helpers used by the constructors to turn
// local vertex-index cycles into model faces.
//
// Design principles:
//   - Each constructor call owns one assembler: its own vertex block and its
//     own edge table, so constructors never share entities.
//   - Edges are created once per unordered pair, oriented from the lower to
//     the higher local index.
//   - Errors carry the constructor's method name.
package builder

import (
	"fmt"

	"github.com/katalvlaran/brep/model"
	"github.com/katalvlaran/brep/props"
)

// assembler accumulates one constructor's entities.
type assembler struct {
	m      *model.Model
	cfg    builderConfig
	method string
	v      []model.Vertex
	edges  map[[2]int]model.Edge
	faces  []model.Face
}

// newAssembler creates n vertices in ascending local index order.
// Complexity: O(n).
func newAssembler(m *model.Model, cfg builderConfig, method string, n int) *assembler {
	a := &assembler{
		m:      m,
		cfg:    cfg,
		method: method,
		v:      make([]model.Vertex, n),
		edges:  make(map[[2]int]model.Edge, n),
	}
	for i := range a.v {
		a.v[i] = m.BuildModelVertex()
	}

	return a
}

// edge returns the edge joining local vertices i and j, building it on first
// use, and the direction that walks i→j.
func (a *assembler) edge(i, j int) (model.Edge, int, error) {
	lo, hi, dir := i, j, 1
	if i > j {
		lo, hi, dir = j, i, 0
	}
	key := [2]int{lo, hi}
	if e, ok := a.edges[key]; ok {
		return e, dir, nil
	}
	e, err := a.m.BuildModelEdge(a.v[lo], a.v[hi])
	if err != nil {
		return model.Edge{}, 0, fmt.Errorf("%s: BuildModelEdge(%d,%d): %w", a.method, lo, hi, err)
	}
	a.edges[key] = e

	return e, dir, nil
}

// loop converts a closed vertex cycle into edges and directions.
func (a *assembler) loop(cycle []int) ([]model.Edge, []int, error) {
	if len(cycle) < MinCycleLength {
		return nil, nil, fmt.Errorf("%s: cycle of %d vertices: %w", a.method, len(cycle), ErrBadCycle)
	}
	for _, i := range cycle {
		if i < 0 || i >= len(a.v) {
			return nil, nil, fmt.Errorf("%s: vertex index %d outside [0,%d): %w", a.method, i, len(a.v), ErrBadCycle)
		}
	}
	edges := make([]model.Edge, len(cycle))
	dirs := make([]int, len(cycle))
	for k, i := range cycle {
		j := cycle[(k+1)%len(cycle)]
		if i == j {
			return nil, nil, fmt.Errorf("%s: repeated vertex %d: %w", a.method, i, ErrBadCycle)
		}
		e, dir, err := a.edge(i, j)
		if err != nil {
			return nil, nil, err
		}
		edges[k], dirs[k] = e, dir
	}

	return edges, dirs, nil
}

// face builds a face bounded by outer plus one inner loop per hole, then
// applies the configured color and name.
func (a *assembler) face(outer []int, holes ...[]int) (model.Face, error) {
	edges, dirs, err := a.loop(outer)
	if err != nil {
		return model.Face{}, err
	}
	f, err := a.m.BuildModelFace(edges, dirs)
	if err != nil {
		return f, fmt.Errorf("%s: BuildModelFace: %w", a.method, err)
	}
	for _, h := range holes {
		he, hd, err := a.loop(h)
		if err != nil {
			return f, err
		}
		if err := f.AddLoop(he, hd); err != nil {
			return f, fmt.Errorf("%s: AddLoop: %w", a.method, err)
		}
	}
	if a.cfg.hasColor {
		f.SetColor(a.cfg.color)
	}
	if a.cfg.namePrefix != "" {
		f.SetProperty(props.KeyName, props.String(fmt.Sprintf("%s%d", a.cfg.namePrefix, len(a.faces))))
	}
	a.faces = append(a.faces, f)

	return f, nil
}

// faceAll builds one face per cycle, in order.
func (a *assembler) faceAll(cycles [][]int) error {
	for _, c := range cycles {
		if _, err := a.face(c); err != nil {
			return err
		}
	}

	return nil
}
