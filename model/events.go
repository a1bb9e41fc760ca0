// SPDX-License-Identifier: MIT
// File: events.go
// Role: Mutation notifications and the scoped event-blocking guard.
// Concurrency:
//   - Observers run synchronously on the mutating call stack. During
//     AboutToDestroy and EntityCreated only downward adjacencies are
//     guaranteed complete.

package model

// EventKind tags a geometric-entity notification.
type EventKind uint8

const (
	// EntityCreated follows construction of a vertex, edge, face or region.
	EntityCreated EventKind = iota + 1
	// BoundaryModified follows loop insertion or boundary rewiring.
	BoundaryModified
	// AboutToDestroy precedes destruction; the entity is still intact.
	AboutToDestroy
	// EntitiesAboutToMerge precedes a merge of two entities.
	EntitiesAboutToMerge
	// EntitySplit follows an edge split; Other holds the new edge.
	EntitySplit
	// GeometrySet follows SetGeometry.
	GeometrySet
	// ModelReset follows Reset; Entity is nil.
	ModelReset
)

var eventNames = [...]string{
	EntityCreated:        "entity-created",
	BoundaryModified:     "boundary-modified",
	AboutToDestroy:       "about-to-destroy",
	EntitiesAboutToMerge: "entities-about-to-merge",
	EntitySplit:          "entity-split",
	GeometrySet:          "geometry-set",
	ModelReset:           "model-reset",
}

// String returns the event's kebab-case name.
func (k EventKind) String() string {
	if int(k) < len(eventNames) && eventNames[k] != "" {
		return eventNames[k]
	}
	return "unknown"
}

// Event is delivered to every Observer.
type Event struct {
	Kind   EventKind
	Entity GeometricEntity // nil for ModelReset
	Other  GeometricEntity // second participant (split result, merge partner)
}

// Observer receives model notifications.
type Observer func(Event)

// AddObserver registers fn; nil is ignored.
func (m *Model) AddObserver(fn Observer) {
	if fn != nil {
		m.observers = append(m.observers, fn)
	}
}

// InvokeModelGeometricEntityEvent notifies observers unless events are blocked.
func (m *Model) InvokeModelGeometricEntityEvent(kind EventKind, ent GeometricEntity) {
	m.emit(Event{Kind: kind, Entity: ent})
}

// BlockEvents suppresses notifications until the returned release func runs.
// Release restores the state observed at acquisition, so guards nest:
//
//	release := m.BlockEvents()
//	defer release()
func (m *Model) BlockEvents() (release func()) {
	prev := m.blocked
	m.blocked = true
	return func() { m.blocked = prev }
}

// EventsBlocked reports whether notifications are currently suppressed.
func (m *Model) EventsBlocked() bool { return m.blocked }

func (m *Model) emit(ev Event) {
	if m.blocked {
		return
	}
	for _, fn := range m.observers {
		fn(ev)
	}
}
