// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// InvalidTomlError occurs if the underlying io.Reader contains invalid TOML.
type InvalidTomlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidTomlError) Error() string {
	return fmt.Sprintf("invalid toml: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidTomlError) Unwrap() error {
	return e.cause
}

// FromToml parses a TOML document from the given io.Reader into a tree.
func FromToml(r io.Reader) (Map, error) {
	raw := make(map[string]any)
	_, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, InvalidTomlError{cause: err}
	}
	return normalize(raw, nil)
}

// WriteToml writes the tree as a TOML document.
func WriteToml(w io.Writer, m Map) error {
	return toml.NewEncoder(w).Encode(m.Native())
}
