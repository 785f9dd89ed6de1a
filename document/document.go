// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package document models a loaded configuration file as a tree of
// nested maps with scalar leaves, and converts between that tree shape
// and the flat dot-path key form the resolution engine works with.
package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/miniconf-go/miniconf/value"
)

// Map is a single document node: keys map to either a nested Map or a
// scalar leaf held as a value.Value.
type Map map[string]any

// ArrayNodeError occurs when a document contains an array node. Array
// values are unsupported and are rejected rather than silently
// corrupted by flattening.
type ArrayNodeError struct {
	Key string
}

// Error implements the error interface.
func (e ArrayNodeError) Error() string {
	return fmt.Sprintf("document key holds an array, which is unsupported: %s", e.Key)
}

// UnsupportedScalarError occurs when a decoded document holds a leaf of
// a type outside {int, number, bool, string}.
type UnsupportedScalarError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e UnsupportedScalarError) Error() string {
	return fmt.Sprintf("document key holds an unsupported scalar type %T: %s", e.Value, e.Key)
}

// ConflictingKeyError occurs when unflattening finds a dot-path key
// whose prefix is already bound to a scalar leaf.
type ConflictingKeyError struct {
	Key string
}

// Error implements the error interface.
func (e ConflictingKeyError) Error() string {
	return fmt.Sprintf("dot-path key conflicts with an existing scalar at: %s", e.Key)
}

// Flatten walks the tree depth first, joining the keys along each path
// with "." and yielding one entry per scalar leaf.
func (m Map) Flatten() (map[string]value.Value, error) {
	flat := make(map[string]value.Value)
	err := walk(m, nil, flat)
	if err != nil {
		return nil, err
	}
	return flat, nil
}

func walk(m Map, chain []string, flat map[string]value.Value) error {
	for k, v := range m {
		switch x := v.(type) {
		case Map:
			err := walk(x, append(chain, k), flat)
			if err != nil {
				return err
			}
		case value.Value:
			flat[strings.Join(append(chain, k), ".")] = x
		default:
			return UnsupportedScalarError{
				Key:   strings.Join(append(chain, k), "."),
				Value: v,
			}
		}
	}
	return nil
}

// Unflatten is the inverse of Flatten: it splits each dot-path key into
// segments, building or reusing intermediate Map nodes, with the final
// segment holding the scalar.
func Unflatten(flat map[string]value.Value) (Map, error) {
	root := make(Map)
	for k, v := range flat {
		err := set(root, strings.Split(k, "."), k, v)
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}

func set(m Map, chain []string, key string, v value.Value) error {
	if len(chain) == 1 {
		if _, ok := m[chain[0]].(Map); ok {
			return ConflictingKeyError{Key: key}
		}
		m[chain[0]] = v
		return nil
	}

	old, ok := m[chain[0]]
	if !ok {
		old = make(Map)
		m[chain[0]] = old
	}
	sub, ok := old.(Map)
	if !ok {
		return ConflictingKeyError{Key: key}
	}
	return set(sub, chain[1:], key, v)
}

// normalize converts the raw map a format decoder produced into a Map
// with value.Value leaves.
func normalize(raw map[string]any, chain []string) (Map, error) {
	m := make(Map, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case map[string]any:
			sub, err := normalize(x, append(chain, k))
			if err != nil {
				return nil, err
			}
			m[k] = sub
		case []any:
			return nil, ArrayNodeError{Key: strings.Join(append(chain, k), ".")}
		default:
			leaf, err := scalar(strings.Join(append(chain, k), "."), v)
			if err != nil {
				return nil, err
			}
			m[k] = leaf
		}
	}
	return m, nil
}

func scalar(key string, v any) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Unknown(), nil
	case bool:
		return value.Bool(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case uint64:
		return value.Int(int64(x)), nil
	case float64:
		return value.Number(x), nil
	case string:
		return value.String(x), nil
	case json.Number:
		i, err := x.Int64()
		if err == nil {
			return value.Int(i), nil
		}
		f, err := x.Float64()
		if err == nil {
			return value.Number(f), nil
		}
		return value.Unknown(), UnsupportedScalarError{Key: key, Value: v}
	default:
		return value.Unknown(), UnsupportedScalarError{Key: key, Value: v}
	}
}

// Native converts the tree back into plain Go scalars, the shape
// encoders and struct decoders expect.
func (m Map) Native() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch x := v.(type) {
		case Map:
			out[k] = x.Native()
		case value.Value:
			out[k] = x.Native()
		}
	}
	return out
}
