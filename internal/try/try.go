// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides small helpers for error handling in deferred calls.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError wraps an error returned by an io.Closer.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v if it is an io.Closer and joins any close failure onto
// *err. It is meant to be deferred.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	var werr error = CloseError{Cause: cerr}
	if *err == nil {
		*err = werr
		return
	}
	*err = errors.Join(*err, werr)
}
