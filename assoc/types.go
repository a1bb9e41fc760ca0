// SPDX-License-Identifier: MIT
// File: types.go
// Role: Handle, Store layout, sentinel errors, and the NewStore constructor.
//
// Errors:
//
//	ErrStaleHandle          - handle is zero, freed, or from an older generation.
//	ErrSelfAssociation      - an item cannot be associated with itself.
//	ErrBadIndex             - negative insertion index.
//	ErrDanglingAssociations - Free was called on an item that still has neighbors.
//	ErrAsymmetric           - Validate found a one-sided association.
package assoc

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/brep/internal/logging"
	"github.com/katalvlaran/brep/kind"
)

// Sentinel errors for association operations.
var (
	// ErrStaleHandle indicates the handle does not address a live item.
	ErrStaleHandle = errors.New("assoc: stale or invalid handle")

	// ErrSelfAssociation indicates owner and item are the same handle.
	ErrSelfAssociation = errors.New("assoc: item cannot be associated with itself")

	// ErrBadIndex indicates a negative ordinal position.
	ErrBadIndex = errors.New("assoc: negative position")

	// ErrDanglingAssociations indicates an attempt to free an item that is still linked.
	ErrDanglingAssociations = errors.New("assoc: item still has associations")

	// ErrAsymmetric indicates an association without its mirrored reverse entry.
	ErrAsymmetric = errors.New("assoc: asymmetric association")
)

// Handle addresses one item in a Store: its kind, arena slot and generation.
// The zero Handle is Nil and doubles as the placeholder written by padded
// positional inserts.
type Handle struct {
	Kind  kind.Kind
	Index uint32
	Gen   uint32
}

// Nil is the zero Handle.
var Nil Handle

// IsNil reports whether h is the zero Handle.
func (h Handle) IsNil() bool { return h == Nil }

// String renders h as kind#index.gen.
func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%s#%d.%d", h.Kind, h.Index, h.Gen)
}

// slot is one arena cell. A freed slot keeps its bumped generation so that
// outstanding handles to the previous occupant are detected as stale.
type slot[T any] struct {
	kind    kind.Kind
	gen     uint32
	live    bool
	mtime   uint64
	buckets map[kind.Kind][]Handle
	data    T
}

// Store is an arena of items, each owning ordered association buckets keyed
// by neighbor kind, plus a caller-defined payload T.
//
// Every public mutator keeps the mirror invariant: owner.bucket[item.Kind]
// holds item exactly as many times as item.bucket[owner.Kind] holds owner.
// The only exception is InsertOneWay, which archive readers use while
// restoring both sides explicitly.
//
// Store is not safe for concurrent use.
type Store[T any] struct {
	slots []slot[T]
	free  *roaring.Bitmap // freed slot indices available for reuse
	live  int
	clock uint64 // modification clock, bumped on every mutation
	log   *logging.Logger
}

// Option configures a Store before use.
type Option func(*config)

type config struct {
	log      *logging.Logger
	capacity int
}

// WithLogger routes warnings (padding, stale lookups) to l.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCapacity preallocates room for n items.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// NewStore returns an empty Store.
// Complexity: O(capacity).
func NewStore[T any](opts ...Option) *Store[T] {
	cfg := config{log: logging.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[T]{
		slots: make([]slot[T], 0, cfg.capacity),
		free:  roaring.New(),
		log:   cfg.log,
	}
}
