// SPDX-License-Identifier: MIT
// File: serialize.go
// Role: Persistence hooks: a fixed-order visit of model scalars and every
// item's association buckets, and the inverse Restore.
// Determinism:
//   - Items are visited in arena slot order; the model root is always Ref 0.
//   - Buckets are visited in ascending kind order, entries in bucket order.
//   - Placeholder entries keep their bucket position as PlaceholderRef.

package model

import (
	"fmt"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
	"github.com/katalvlaran/brep/props"
)

// Header carries the model scalars.
type Header struct {
	LargestUsedUniqueID int64 `json:"largest_uid"`
	NextUseID           int64 `json:"next_use_id"`
	Items               int   `json:"items"`
}

// PlaceholderRef marks a padded Nil slot in BucketRecord.Refs.
const PlaceholderRef = -1

// BucketRecord is one association bucket; Refs are archive-local ordinals
// or PlaceholderRef.
type BucketRecord struct {
	Kind kind.Kind `json:"kind"`
	Refs []int     `json:"refs"`
}

// ItemRecord is one arena item.
type ItemRecord struct {
	Ref        int                    `json:"ref"`
	Kind       kind.Kind              `json:"kind"`
	UniqueID   int64                  `json:"uid"`
	Properties map[string]props.Value `json:"props,omitempty"`
	Buckets    []BucketRecord         `json:"buckets,omitempty"`
}

// Visitor receives the serialization stream. VisitHeader is called once,
// before any VisitItem.
type Visitor interface {
	VisitHeader(h Header) error
	VisitItem(r ItemRecord) error
}

// Serialize walks the model in a fixed order. Geometry and display handles
// are opaque and not visited.
func (m *Model) Serialize(v Visitor) error {
	live := m.store.Live(kind.None)
	ord := make(map[assoc.Handle]int, len(live))
	for i, h := range live {
		ord[h] = i
	}
	if ord[m.root] != 0 {
		return fmt.Errorf("Serialize: root at ordinal %d: %w", ord[m.root], ErrInconsistent)
	}

	hdr := Header{
		LargestUsedUniqueID: m.largestUID,
		NextUseID:           m.nextUseID,
		Items:               len(live),
	}
	if err := v.VisitHeader(hdr); err != nil {
		return err
	}

	for i, h := range live {
		rec := ItemRecord{Ref: i, Kind: h.Kind}
		if r, ok := m.store.Payload(h); ok {
			rec.UniqueID = r.uid
			if r.props.Len() > 0 {
				rec.Properties = r.props.Snapshot()
			}
		}
		for _, k := range m.store.Kinds(h) {
			b := BucketRecord{Kind: k}
			for _, x := range m.store.Associations(h, k) {
				if x.IsNil() {
					b.Refs = append(b.Refs, PlaceholderRef)
					continue
				}
				n, ok := ord[x]
				if !ok {
					return fmt.Errorf("Serialize: %s -> %s: %w", h, x, assoc.ErrStaleHandle)
				}
				b.Refs = append(b.Refs, n)
			}
			if len(b.Refs) > 0 {
				rec.Buckets = append(rec.Buckets, b)
			}
		}
		if err := v.VisitItem(rec); err != nil {
			return err
		}
	}
	return nil
}

// Restore rebuilds a model from a serialization stream. Every item is
// allocated first, then each side of every association is re-inserted at its
// recorded position, ids are restored without touching the counters, and the
// counters are set from the header. The result is validated before return.
func Restore(hdr Header, items []ItemRecord, opts ...Option) (*Model, error) {
	if len(items) == 0 || items[0].Kind != kind.Model {
		return nil, fmt.Errorf("Restore: first item must be the model root: %w", ErrBadRecord)
	}
	if hdr.Items != 0 && hdr.Items != len(items) {
		return nil, fmt.Errorf("Restore: header lists %d items, got %d: %w", hdr.Items, len(items), ErrBadRecord)
	}
	m := NewModel(opts...)

	handles := make([]assoc.Handle, len(items))
	for i, it := range items {
		if it.Ref != i {
			return nil, fmt.Errorf("Restore: item %d has ref %d: %w", i, it.Ref, ErrBadRecord)
		}
		if i == 0 {
			handles[0] = m.root
			continue
		}
		if !it.Kind.Valid() || it.Kind == kind.Model {
			return nil, fmt.Errorf("Restore: item %d kind %d: %w", i, it.Kind, ErrBadRecord)
		}
		handles[i] = m.store.New(it.Kind)
	}

	for i, it := range items {
		h := handles[i]
		if r, ok := m.store.Payload(h); ok {
			r.uid = it.UniqueID
			r.props = props.FromMap(it.Properties)
		}
		for _, b := range it.Buckets {
			for pos, ref := range b.Refs {
				if ref == PlaceholderRef {
					if err := m.store.InsertPlaceholder(h, b.Kind, pos); err != nil {
						return nil, fmt.Errorf("Restore: item %d: %w", i, err)
					}
					continue
				}
				if ref < 0 || ref >= len(handles) || handles[ref].Kind != b.Kind {
					return nil, fmt.Errorf("Restore: item %d bucket %s ref %d: %w", i, b.Kind, ref, ErrBadRecord)
				}
				if err := m.store.InsertOneWay(h, pos, handles[ref]); err != nil {
					return nil, fmt.Errorf("Restore: item %d: %w", i, err)
				}
			}
		}
	}

	m.largestUID = hdr.LargestUsedUniqueID
	if hdr.NextUseID < 0 {
		m.nextUseID = hdr.NextUseID
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
