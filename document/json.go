// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"encoding/json"
	"fmt"
	"io"
)

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.cause
}

// FromJson parses a JSON object from the given io.Reader into a tree.
// Numbers without a fractional part decode as ints, all others as
// floating point numbers.
func FromJson(r io.Reader) (Map, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	raw := make(map[string]any)
	err := dec.Decode(&raw)
	if err != nil {
		return nil, InvalidJsonError{cause: err}
	}
	return normalize(raw, nil)
}

// WriteJson writes the tree as an indented JSON object.
func WriteJson(w io.Writer, m Map) error {
	b, err := json.MarshalIndent(m.Native(), "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
