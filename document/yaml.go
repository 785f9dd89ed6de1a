// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// InvalidYamlError occurs if the underlying io.Reader contains invalid YAML.
type InvalidYamlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}

// FromYaml parses a YAML mapping from the given io.Reader into a tree.
func FromYaml(r io.Reader) (Map, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	err = yaml.Unmarshal(b, &raw)
	if err != nil {
		return nil, InvalidYamlError{cause: err}
	}
	return normalize(raw, nil)
}

// WriteYaml writes the tree as a YAML mapping.
func WriteYaml(w io.Writer, m Map) error {
	b, err := yaml.Marshal(m.Native())
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
