// SPDX-License-Identifier: MIT
package model_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/model"
)

// fixture builds faces from vertex-index cycles, creating each edge once
// with canonical orientation from the lower to the higher vertex index.
type fixture struct {
	m     *model.Model
	v     []model.Vertex
	edges map[[2]int]model.Edge
}

func newFixture(t *testing.T, n int, opts ...model.Option) *fixture {
	t.Helper()
	fx := &fixture{m: model.NewModel(opts...), edges: make(map[[2]int]model.Edge)}
	for i := 0; i < n; i++ {
		fx.v = append(fx.v, fx.m.BuildModelVertex())
	}
	return fx
}

// edge returns the edge joining a and b plus the direction that walks a→b.
func (fx *fixture) edge(t *testing.T, a, b int) (model.Edge, int) {
	t.Helper()
	lo, hi, dir := a, b, 1
	if a > b {
		lo, hi, dir = b, a, 0
	}
	key := [2]int{lo, hi}
	if e, ok := fx.edges[key]; ok {
		return e, dir
	}
	e, err := fx.m.BuildModelEdge(fx.v[lo], fx.v[hi])
	require.NoError(t, err)
	fx.edges[key] = e
	return e, dir
}

// loop converts a vertex cycle into edges and directions.
func (fx *fixture) loop(t *testing.T, cycle ...int) ([]model.Edge, []int) {
	t.Helper()
	edges := make([]model.Edge, len(cycle))
	dirs := make([]int, len(cycle))
	for i, a := range cycle {
		edges[i], dirs[i] = fx.edge(t, a, cycle[(i+1)%len(cycle)])
	}
	return edges, dirs
}

func (fx *fixture) face(t *testing.T, cycle ...int) model.Face {
	t.Helper()
	edges, dirs := fx.loop(t, cycle...)
	f, err := fx.m.BuildModelFace(edges, dirs)
	require.NoError(t, err)
	return f
}

// tetrahedron returns four outward-oriented triangles over vertices 0..3.
func tetrahedron(t *testing.T, opts ...model.Option) (*fixture, []model.Face) {
	t.Helper()
	fx := newFixture(t, 4, opts...)
	faces := []model.Face{
		fx.face(t, 0, 2, 1),
		fx.face(t, 0, 1, 3),
		fx.face(t, 1, 2, 3),
		fx.face(t, 0, 3, 2),
	}
	return fx, faces
}

// loopVertices lists the start vertex of each edge-use of lu.
func loopVertices(lu model.LoopUse) []model.Vertex {
	return lu.Vertices()
}

// captureHandler keeps every record it receives.
type captureHandler struct {
	mu   sync.Mutex
	recs []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recs = append(h.recs, r.Clone())
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

// matching returns the records with message msg, logged at level.
func (h *captureHandler) matching(level slog.Level, msg string) []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Record
	for _, r := range h.recs {
		if r.Level == level && r.Message == msg {
			out = append(out, r)
		}
	}
	return out
}

// attr returns the value of key on r.
func attr(r slog.Record, key string) (slog.Value, bool) {
	var (
		v  slog.Value
		ok bool
	)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			v, ok = a.Value, true
			return false
		}
		return true
	})
	return v, ok
}
