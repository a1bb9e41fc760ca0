// SPDX-License-Identifier: MIT
// File: value.go
// Role: Small typed scalar/vector values stored in a property Bag.
// Policy:
//   - No reflection; the Type tag selects the populated field.
//   - The JSON shape is persisted by archives; keep field tags stable.

package props

import (
	"fmt"
	"slices"
)

// Type identifies the concrete type stored in a Value.
type Type uint8

const (
	// TypeInvalid marks the zero Value.
	TypeInvalid Type = iota
	// TypeInt holds an int64.
	TypeInt
	// TypeFloat holds a float64.
	TypeFloat
	// TypeString holds a string.
	TypeString
	// TypeBool holds a bool.
	TypeBool
	// TypeFloats holds a small float64 vector (colors, bounds).
	TypeFloats
)

// String returns a readable type name.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeFloats:
		return "floats"
	default:
		return "invalid"
	}
}

// Value is a tagged union of the property types.
type Value struct {
	Type Type      `json:"t"`
	I64  int64     `json:"i,omitempty"`
	F64  float64   `json:"f,omitempty"`
	S    string    `json:"s,omitempty"`
	B    bool      `json:"b,omitempty"`
	Vec  []float64 `json:"v,omitempty"`
}

// Int returns an int-typed Value.
func Int(v int64) Value { return Value{Type: TypeInt, I64: v} }

// Float returns a float-typed Value.
func Float(v float64) Value { return Value{Type: TypeFloat, F64: v} }

// String returns a string-typed Value.
func String(v string) Value { return Value{Type: TypeString, S: v} }

// Bool returns a bool-typed Value.
func Bool(v bool) Value { return Value{Type: TypeBool, B: v} }

// Floats returns a vector-typed Value holding a copy of v.
func Floats(v ...float64) Value { return Value{Type: TypeFloats, Vec: slices.Clone(v)} }

// AsInt returns the int payload when Type is TypeInt.
func (v Value) AsInt() (int64, bool) {
	if v.Type != TypeInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat returns the float payload; ints are widened.
func (v Value) AsFloat() (float64, bool) {
	switch v.Type {
	case TypeFloat:
		return v.F64, true
	case TypeInt:
		return float64(v.I64), true
	default:
		return 0, false
	}
}

// AsString returns the string payload when Type is TypeString.
func (v Value) AsString() (string, bool) {
	if v.Type != TypeString {
		return "", false
	}
	return v.S, true
}

// AsBool returns the bool payload when Type is TypeBool.
func (v Value) AsBool() (bool, bool) {
	if v.Type != TypeBool {
		return false, false
	}
	return v.B, true
}

// AsFloats returns a copy of the vector payload when Type is TypeFloats.
func (v Value) AsFloats() ([]float64, bool) {
	if v.Type != TypeFloats {
		return nil, false
	}
	return slices.Clone(v.Vec), true
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case TypeInt:
		return v.I64 == o.I64
	case TypeFloat:
		return v.F64 == o.F64
	case TypeString:
		return v.S == o.S
	case TypeBool:
		return v.B == o.B
	case TypeFloats:
		return slices.Equal(v.Vec, o.Vec)
	default:
		return true
	}
}

// GoString renders the value for test failure output.
func (v Value) GoString() string {
	switch v.Type {
	case TypeInt:
		return fmt.Sprintf("props.Int(%d)", v.I64)
	case TypeFloat:
		return fmt.Sprintf("props.Float(%g)", v.F64)
	case TypeString:
		return fmt.Sprintf("props.String(%q)", v.S)
	case TypeBool:
		return fmt.Sprintf("props.Bool(%t)", v.B)
	case TypeFloats:
		return fmt.Sprintf("props.Floats(%v)", v.Vec)
	default:
		return "props.Value{}"
	}
}
