// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miniconf-go/miniconf/internal/try"
	"github.com/miniconf-go/miniconf/value"
)

// Format identifies a supported document file format.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
	FormatHCL
	FormatFlat
)

// String implements the fmt.Stringer interface.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatHCL:
		return "hcl"
	case FormatFlat:
		return "flat"
	default:
		return "json"
	}
}

// UnsupportedFormatError occurs when asked to write a format which only
// supports reading.
type UnsupportedFormatError struct {
	Format Format
}

// Error implements the error interface.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format does not support writing: %s", e.Format)
}

// Detect maps a file extension to its Format. Absent or unrecognized
// extensions default to JSON.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".hcl":
		return FormatHCL
	case ".csv", ".conf", ".txt":
		return FormatFlat
	default:
		return FormatJSON
	}
}

// Read parses a document of the given format from r. The name is only
// used for diagnostics.
func Read(r io.Reader, f Format, name string) (Map, error) {
	switch f {
	case FormatYAML:
		return FromYaml(r)
	case FormatTOML:
		return FromToml(r)
	case FormatHCL:
		return FromHcl(name, r)
	case FormatFlat:
		return FromFlat(r)
	default:
		return FromJson(r)
	}
}

// Write serializes the tree to w in the given format.
func Write(w io.Writer, m Map, f Format) error {
	switch f {
	case FormatYAML:
		return WriteYaml(w, m)
	case FormatTOML:
		return WriteToml(w, m)
	case FormatHCL:
		return UnsupportedFormatError{Format: f}
	case FormatFlat:
		flat, err := m.Flatten()
		if err != nil {
			return err
		}
		return WriteFlat(w, flat)
	default:
		return WriteJson(w, m)
	}
}

// Load opens the file at path and parses it with the reader selected by
// its extension.
func Load(path string) (_ Map, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, f)

	return Read(f, Detect(path), filepath.Base(path))
}

// Save writes the flat key to value map at path, nesting dot-path keys
// back into a tree unless the extension selects the flat format.
func Save(path string, flat map[string]value.Value) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer try.Close(&err, f)

	format := Detect(path)
	if format == FormatFlat {
		return WriteFlat(f, flat)
	}

	m, err := Unflatten(flat)
	if err != nil {
		return err
	}
	return Write(f, m, format)
}
