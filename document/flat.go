// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/miniconf-go/miniconf/value"
)

// InvalidFlatError occurs when a line of a flat key,value document
// cannot be split into a key and a value.
type InvalidFlatError struct {
	Line int
}

// Error implements the error interface.
func (e InvalidFlatError) Error() string {
	return fmt.Sprintf("invalid key,value line: %d", e.Line)
}

// FromFlat parses a flat document of one "key,value" pair per line into
// a tree, rebuilding nesting from dot-path keys. Blank lines and lines
// starting with '#' are skipped. Scalar types are inferred: integer,
// then floating point, then the literals true/false, then quoted or
// plain text.
func FromFlat(r io.Reader) (Map, error) {
	flat := make(map[string]value.Value)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, raw, ok := strings.Cut(text, ",")
		if !ok {
			return nil, InvalidFlatError{Line: line}
		}
		flat[strings.TrimSpace(key)] = inferScalar(strings.TrimSpace(raw))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Unflatten(flat)
}

func inferScalar(raw string) value.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.Number(f)
	}
	switch raw {
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	if s, err := strconv.Unquote(raw); err == nil {
		return value.String(s)
	}
	return value.String(raw)
}

// WriteFlat writes a flat key to value map as "key,value" lines in
// sorted key order. Strings are quoted, booleans render as true/false
// and numbers as decimal text.
func WriteFlat(w io.Writer, flat map[string]value.Value) error {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, err := fmt.Fprintf(w, "%s,%s\n", k, flat[k])
		if err != nil {
			return err
		}
	}
	return nil
}
