// SPDX-License-Identifier: MIT
// File: types.go
// Role: Options, sentinel errors and the traversal result.

package walk

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/brep/model"
)

// Sentinel errors for face traversal.
var (
	// ErrModelNil is returned when a nil model is passed.
	ErrModelNil = errors.New("walk: model is nil")

	// ErrStartFaceNotFound is returned when the start face is stale or
	// belongs to another model.
	ErrStartFaceNotFound = errors.New("walk: start face not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrNoPath is returned by PathTo for a face that was not reached.
	ErrNoPath = errors.New("walk: face not reached")
)

// Option configures traversal via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when the walk starts.
type Option func(*Options)

// Options holds parameters and callbacks for a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a face is visited. A non-nil error aborts the
	// walk and is returned wrapped.
	OnVisit func(f model.Face, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterFace can refuse a step from curr to next across a shared edge.
	FilterFace func(curr, next model.Face, across model.Edge) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(model.Face, int) error { return nil },
		FilterFace: func(_, _ model.Face, _ model.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook; returning an error stops the walk.
func WithOnVisit(fn func(f model.Face, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterFace skips steps for which fn returns false.
func WithFilterFace(fn func(curr, next model.Face, across model.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterFace = fn
		}
	}
}

// ManifoldOnly is a FilterFace that refuses to cross edges shared by more
// than two faces.
func ManifoldOnly(_, _ model.Face, across model.Edge) bool {
	return across.NumberOfAdjacentFaces() <= 2
}

// Result holds the outcome of a face walk.
//   - Order: faces in visit sequence.
//   - Depth: edge-crossings from the start face.
//   - Parent: predecessor in the walk tree; the start has none.
type Result struct {
	Order  []model.Face
	Depth  map[model.Face]int
	Parent map[model.Face]model.Face
}

// PathTo reconstructs the face chain from the start to dest.
func (r *Result) PathTo(dest model.Face) ([]model.Face, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("PathTo(face %d): %w", dest.UniqueID(), ErrNoPath)
	}
	path := []model.Face{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
