// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import "fmt"

// ResolveError is returned by [Config.Parse] when resolution fails. It
// carries the error severity records from the diagnostic log.
type ResolveError struct {
	Records []Record
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if len(e.Records) == 1 {
		return fmt.Sprintf("configuration resolution failed: %s", e.Records[0].Message)
	}
	return fmt.Sprintf("configuration resolution failed with %d errors", len(e.Records))
}
