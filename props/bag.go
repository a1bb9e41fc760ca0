// SPDX-License-Identifier: MIT
// File: bag.go
// Role: Named property bag attached to every model entity.
// Determinism:
//   - Keys() returns names sorted ascending.
// Concurrency:
//   - Not safe for concurrent mutation; entities are single-threaded.

package props

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Reserved keys used by the entity layer.
const (
	KeyColor      = "color"      // 4 floats, RGBA
	KeyVisibility = "visibility" // int flag, 1 when absent
	KeyPickable   = "pickable"   // int flag, 1 when absent
	KeyDirection  = "direction"  // int 0/1 on edge-uses
	KeyName       = "name"       // optional user label
)

// ErrBadColor indicates a color vector that does not hold exactly 4 components.
var ErrBadColor = errors.New("props: color must have 4 components")

// RGBA is a display color with components in [0,1].
type RGBA [4]float64

// DefaultColor is reported when no color has been assigned.
var DefaultColor = RGBA{1, 1, 1, 1}

// Bag maps property names to typed values. The zero Bag is ready to use.
type Bag struct {
	values map[string]Value
}

// Set stores v under name, replacing any previous value.
func (b *Bag) Set(name string, v Value) {
	if b.values == nil {
		b.values = make(map[string]Value)
	}
	b.values[name] = v
}

// Get returns the value stored under name.
func (b *Bag) Get(name string) (Value, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Has reports whether name is present.
func (b *Bag) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Delete removes name; absent names are ignored.
func (b *Bag) Delete(name string) {
	delete(b.values, name)
}

// Len returns the number of stored properties.
func (b *Bag) Len() int { return len(b.values) }

// Keys returns the stored names sorted ascending.
func (b *Bag) Keys() []string {
	return slices.Sorted(maps.Keys(b.values))
}

// Clone returns an independent copy of the bag.
func (b *Bag) Clone() Bag {
	out := Bag{}
	for k, v := range b.values {
		if v.Type == TypeFloats {
			v.Vec = slices.Clone(v.Vec)
		}
		out.Set(k, v)
	}
	return out
}

// Snapshot returns a copy of the underlying map for serialization.
func (b *Bag) Snapshot() map[string]Value {
	c := b.Clone()
	if c.values == nil {
		return map[string]Value{}
	}
	return c.values
}

// Int returns the int stored under name.
func (b *Bag) Int(name string) (int64, bool) {
	v, ok := b.values[name]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Color returns the stored color, or DefaultColor and false when unset.
func (b *Bag) Color() (RGBA, bool) {
	v, ok := b.values[KeyColor]
	if !ok || v.Type != TypeFloats || len(v.Vec) != 4 {
		return DefaultColor, false
	}
	return RGBA{v.Vec[0], v.Vec[1], v.Vec[2], v.Vec[3]}, true
}

// SetColor stores c under KeyColor.
func (b *Bag) SetColor(c RGBA) {
	b.Set(KeyColor, Floats(c[0], c[1], c[2], c[3]))
}

// SetColorSlice validates and stores a color given as a slice.
func (b *Bag) SetColorSlice(c []float64) error {
	if len(c) != 4 {
		return fmt.Errorf("SetColorSlice(len=%d): %w", len(c), ErrBadColor)
	}
	b.SetColor(RGBA{c[0], c[1], c[2], c[3]})
	return nil
}

// Visibility returns the visibility flag; 1 when absent.
func (b *Bag) Visibility() int {
	return b.flag(KeyVisibility)
}

// SetVisibility stores the visibility flag normalized to 0/1.
func (b *Bag) SetVisibility(visible int) {
	b.Set(KeyVisibility, Int(normalizeFlag(visible)))
}

// Pickable returns the pickable flag; 1 when absent.
func (b *Bag) Pickable() int {
	return b.flag(KeyPickable)
}

// SetPickable stores the pickable flag normalized to 0/1.
func (b *Bag) SetPickable(pickable int) {
	b.Set(KeyPickable, Int(normalizeFlag(pickable)))
}

func (b *Bag) flag(name string) int {
	v, ok := b.Int(name)
	if !ok {
		return 1
	}
	return int(v)
}

func normalizeFlag(v int) int64 {
	if v != 0 {
		return 1
	}
	return 0
}

// FromMap builds a bag from a serialized snapshot.
func FromMap(m map[string]Value) Bag {
	b := Bag{}
	for k, v := range m {
		b.Set(k, v)
	}
	return b
}
