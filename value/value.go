// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package value provides a tagged, single slot container for the scalar
// types a configuration option can hold.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies which scalar a Value currently holds.
type Type int

const (
	// TypeUnknown is the zero state. It is distinct from any zero valued
	// scalar: an int option set to 0 is TypeInt, not TypeUnknown.
	TypeUnknown Type = iota
	TypeInt
	TypeNumber
	TypeBool
	TypeString
)

// String implements the fmt.Stringer interface.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// TypeMismatchError occurs when a typed accessor is called on a Value
// whose tag does not match the accessor.
type TypeMismatchError struct {
	Want Type
	Got  Type
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("value is a %s, not a %s", e.Got, e.Want)
}

// Value holds exactly one of {nothing, int, number, bool, string}. The
// zero Value is empty. Values have plain value semantics: assignment
// copies the payload.
type Value struct {
	kind Type
	i    int64
	f    float64
	b    bool
	s    string
}

// Unknown returns the empty Value.
func Unknown() Value {
	return Value{}
}

// Int returns a Value holding an integer.
func Int(i int64) Value {
	return Value{kind: TypeInt, i: i}
}

// Number returns a Value holding a floating point number.
func Number(f float64) Value {
	return Value{kind: TypeNumber, f: f}
}

// Bool returns a Value holding a boolean.
func Bool(b bool) Value {
	return Value{kind: TypeBool, b: b}
}

// String returns a Value holding a string.
func String(s string) Value {
	return Value{kind: TypeString, s: s}
}

// Type returns the tag of the currently held scalar.
func (v Value) Type() Type {
	return v.kind
}

// IsEmpty reports whether the Value holds nothing.
func (v Value) IsEmpty() bool {
	return v.kind == TypeUnknown
}

// Take returns the held scalar and resets the receiver to the empty
// state.
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}

// Int returns the held integer or a TypeMismatchError.
func (v Value) Int() (int64, error) {
	if v.kind != TypeInt {
		return 0, TypeMismatchError{Want: TypeInt, Got: v.kind}
	}
	return v.i, nil
}

// Number returns the held floating point number or a TypeMismatchError.
func (v Value) Number() (float64, error) {
	if v.kind != TypeNumber {
		return 0, TypeMismatchError{Want: TypeNumber, Got: v.kind}
	}
	return v.f, nil
}

// Bool returns the held boolean or a TypeMismatchError.
func (v Value) Bool() (bool, error) {
	if v.kind != TypeBool {
		return false, TypeMismatchError{Want: TypeBool, Got: v.kind}
	}
	return v.b, nil
}

// Text returns the held string or a TypeMismatchError.
func (v Value) Text() (string, error) {
	if v.kind != TypeString {
		return "", TypeMismatchError{Want: TypeString, Got: v.kind}
	}
	return v.s, nil
}

// String implements the fmt.Stringer interface. Integers render as
// decimal, numbers as fixed point, booleans as "true"/"false" and
// strings quoted. The empty Value renders as "".
func (v Value) String() string {
	switch v.kind {
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeNumber:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeString:
		return strconv.Quote(v.s)
	default:
		return ""
	}
}

// Native returns the held scalar as its natural Go type, or nil for the
// empty Value. It is the bridge to encoders which expect plain Go
// values.
func (v Value) Native() any {
	switch v.kind {
	case TypeInt:
		return v.i
	case TypeNumber:
		return v.f
	case TypeBool:
		return v.b
	case TypeString:
		return v.s
	default:
		return nil
	}
}

// ParseAs converts a command line token into a Value of the wanted
// type. A failed int or number conversion yields the empty Value. Bool
// conversion treats a case insensitive "false" or "f" as false and any
// other text as true. TypeString and TypeUnknown always succeed and
// store the literal token.
func ParseAs(token string, want Type) Value {
	switch want {
	case TypeInt:
		i, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Value{}
		}
		return Int(i)
	case TypeNumber:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}
		}
		return Number(f)
	case TypeBool:
		switch strings.ToLower(token) {
		case "false", "f":
			return Bool(false)
		default:
			return Bool(true)
		}
	default:
		return String(token)
	}
}
