// SPDX-License-Identifier: MIT
// File: model.go
// Role: Model container: options, id issuance, top-level buckets,
// entity lookup, guarded destruction and Reset.

package model

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/internal/logging"
	"github.com/katalvlaran/brep/kind"
	"github.com/katalvlaran/brep/props"
)

// DefaultUseIDBase is the first id handed to a use entity.
const DefaultUseIDBase int64 = -100

// record is the payload stored with every arena item.
type record struct {
	uid      int64
	props    props.Bag
	geometry any
	display  any
}

// Model owns the association store and every entity in it.
// A Model is not safe for concurrent use.
type Model struct {
	store      *assoc.Store[record]
	root       assoc.Handle
	largestUID int64
	nextUseID  int64
	useIDBase  int64
	blocked    bool
	observers  []Observer
	log        *logging.Logger
}

// Option configures a Model at construction.
type Option func(*Model)

// WithLogger routes diagnostics to l. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = logging.New(l)
		}
	}
}

// WithObserver registers fn for mutation events.
func WithObserver(fn Observer) Option {
	return func(m *Model) { m.AddObserver(fn) }
}

// WithUseIDBase sets the first (negative) id handed to use entities.
func WithUseIDBase(base int64) Option {
	return func(m *Model) {
		if base < 0 {
			m.useIDBase = base
		}
	}
}

// NewModel returns an empty Model.
func NewModel(opts ...Option) *Model {
	m := &Model{
		log:       logging.Nop(),
		useIDBase: DefaultUseIDBase,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.store = assoc.NewStore[record](assoc.WithLogger(m.log))
	m.root = m.store.New(kind.Model)
	m.nextUseID = m.useIDBase

	return m
}

// NextUniquePersistentID pre-increments and returns the id counter.
func (m *Model) NextUniquePersistentID() int64 {
	m.largestUID++
	m.store.Touch(m.root)
	return m.largestUID
}

// LargestUsedUniqueID returns the last id issued.
func (m *Model) LargestUsedUniqueID() int64 { return m.largestUID }

// SetLargestUsedUniqueID overrides the counter after direct id assignment.
func (m *Model) SetLargestUsedUniqueID(id int64) {
	if id != m.largestUID {
		m.largestUID = id
		m.store.Touch(m.root)
	}
}

// nextUseUID hands out the next ephemeral negative id.
func (m *Model) nextUseUID() int64 {
	id := m.nextUseID
	m.nextUseID--
	return id
}

// Modified returns the model's modification stamp.
func (m *Model) Modified() uint64 { return m.store.Modified(m.root) }

// Vertices returns the model's vertices in insertion order.
func (m *Model) Vertices() []Vertex {
	return wrapAll(m, m.store.Associations(m.root, kind.Vertex), func(e entity) Vertex { return Vertex{geometric{e}} })
}

// Edges returns the model's edges in insertion order.
func (m *Model) Edges() []Edge {
	return wrapAll(m, m.store.Associations(m.root, kind.Edge), func(e entity) Edge { return Edge{geometric{e}} })
}

// Faces returns the model's faces in insertion order.
func (m *Model) Faces() []Face {
	return wrapAll(m, m.store.Associations(m.root, kind.Face), func(e entity) Face { return Face{geometric{e}} })
}

// Regions returns the model's regions in insertion order.
func (m *Model) Regions() []Region {
	return wrapAll(m, m.store.Associations(m.root, kind.Region), func(e entity) Region { return Region{geometric{e}} })
}

// NumberOf returns how many top-level entities of kind k the model holds.
func (m *Model) NumberOf(k kind.Kind) int {
	return m.store.NumberOfAssociations(m.root, k)
}

// NumberOfGeometricEntities returns vertices + edges + faces + regions.
func (m *Model) NumberOfGeometricEntities() int {
	n := 0
	for _, k := range kind.Geometric {
		n += m.NumberOf(k)
	}
	return n
}

// ModelEntity finds any entity (geometric or use) by unique id.
// Complexity: O(N) over all live items; no index is kept.
func (m *Model) ModelEntity(id int64) (Entity, bool) {
	return m.ModelEntityOfKind(kind.None, id)
}

// ModelEntityOfKind finds an entity of kind k by unique id.
// kind.None searches every kind.
func (m *Model) ModelEntityOfKind(k kind.Kind, id int64) (Entity, bool) {
	for _, h := range m.store.Live(k) {
		if h.Kind == kind.Model {
			continue
		}
		if r, ok := m.store.Payload(h); ok && r.uid == id {
			return m.entityOf(h), true
		}
	}
	return nil, false
}

// DestroyModelGeometricEntity destroys ent when IsDestroyable allows it.
// AboutToDestroy fires before any mutation. A failure deep in the cascade
// leaves the graph partially mutated.
func (m *Model) DestroyModelGeometricEntity(ent GeometricEntity) error {
	if ent == nil || !m.owns(ent) {
		return fmt.Errorf("DestroyModelGeometricEntity: %w", ErrInvalidEntity)
	}
	if !ent.IsDestroyable() {
		err := fmt.Errorf("DestroyModelGeometricEntity(%s): %w", ent.Kind(), ErrNotDestroyable)
		m.log.Precondition("DestroyModelGeometricEntity", ent.Kind(), ent.UniqueID(), err)
		return err
	}
	m.emit(Event{Kind: AboutToDestroy, Entity: ent})
	id, k := ent.UniqueID(), ent.Kind()
	if err := ent.destroy(); err != nil {
		m.log.Precondition("DestroyModelGeometricEntity", k, id, err)
		return err
	}
	m.store.Touch(m.root)
	m.log.Destroyed(k, id)

	return nil
}

// Reset destroys every region, face, edge and vertex in that order, then
// restarts the unique-id counter at 0 and fires ModelReset. The Model stays
// usable. Errors from individual entities are joined; destruction continues.
func (m *Model) Reset() error {
	release := m.BlockEvents()
	var errs []error
	for _, r := range m.Regions() {
		errs = append(errs, r.destroy())
	}
	for _, f := range m.Faces() {
		errs = append(errs, f.destroy())
	}
	for _, e := range m.Edges() {
		errs = append(errs, e.destroy())
	}
	for _, v := range m.Vertices() {
		errs = append(errs, v.destroyVertexUses(), v.destroy())
	}
	for _, k := range kind.Geometric {
		m.store.RemoveAllAssociations(m.root, k)
	}
	m.largestUID = 0
	m.store.Touch(m.root)
	release()

	m.emit(Event{Kind: ModelReset})
	return errors.Join(errs...)
}

// newItem allocates an item of kind k and assigns its id.
func (m *Model) newItem(k kind.Kind) entity {
	h := m.store.New(k)
	r, _ := m.store.Payload(h)
	if k.IsUse() {
		r.uid = m.nextUseUID()
	} else {
		r.uid = m.NextUniquePersistentID()
	}
	return entity{m: m, h: h}
}

// link associates owner and item; both are known live.
func (m *Model) link(owner, item assoc.Handle) {
	if err := m.store.AddAssociation(owner, item); err != nil {
		m.log.BestEffort("link", "association refused", "owner", owner.String(), "item", item.String(), "error", err)
	}
}

// release frees h; the caller has already unlinked it.
func (m *Model) release(h assoc.Handle) error {
	if err := m.store.Free(h); err != nil {
		return fmt.Errorf("release %s: %w", h.Kind, err)
	}
	return nil
}

func (m *Model) owns(e Entity) bool {
	return e != nil && e.Model() == m && e.IsValid()
}

// first returns the first entry of h's k-bucket, Nil when empty.
func (m *Model) first(h assoc.Handle, k kind.Kind) assoc.Handle {
	x, ok := m.store.At(h, k, 0)
	if !ok {
		return assoc.Nil
	}
	return x
}

// entityOf wraps h in its typed entity.
func (m *Model) entityOf(h assoc.Handle) Entity {
	e := entity{m: m, h: h}
	switch h.Kind {
	case kind.Vertex:
		return Vertex{geometric{e}}
	case kind.Edge:
		return Edge{geometric{e}}
	case kind.Face:
		return Face{geometric{e}}
	case kind.Region:
		return Region{geometric{e}}
	case kind.VertexUse:
		return VertexUse{e}
	case kind.EdgeUse:
		return EdgeUse{e}
	case kind.LoopUse:
		return LoopUse{e}
	case kind.FaceUse:
		return FaceUse{e}
	case kind.ShellUse:
		return ShellUse{e}
	}
	return nil
}

// geometricOf wraps h as a GeometricEntity, nil for use kinds.
func (m *Model) geometricOf(h assoc.Handle) GeometricEntity {
	g, _ := m.entityOf(h).(GeometricEntity)
	return g
}

func wrapAll[T any](m *Model, hs []assoc.Handle, wrap func(entity) T) []T {
	out := make([]T, 0, len(hs))
	for _, h := range hs {
		if h.IsNil() {
			continue
		}
		out = append(out, wrap(entity{m: m, h: h}))
	}
	return out
}
