// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/miniconf-go/miniconf/value"
)

// Usage writes a one line usage summary to w. Hidden options are
// excluded; optional options render in brackets.
func (c *Config) Usage(w io.Writer) {
	prog := "program"
	if c.program != "" {
		prog = filepath.Base(c.program)
	}

	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(prog)
	for _, k := range c.order {
		opt := c.opts[k]
		if opt.hidden {
			continue
		}

		part := "--" + opt.key
		if opt.declaredType() != value.TypeBool {
			part += " <" + displayType(opt) + ">"
		}
		if !opt.required {
			part = "[" + part + "]"
		}
		b.WriteString(" ")
		b.WriteString(part)
	}
	fmt.Fprintln(w, b.String())
}

// Help writes the usage summary, the program description and a table
// of the declared options to w.
func (c *Config) Help(w io.Writer) {
	c.Usage(w)
	if c.description != "" {
		fmt.Fprintf(w, "\n%s\n", c.description)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, k := range c.order {
		opt := c.opts[k]
		if opt.hidden {
			continue
		}

		flags := "--" + opt.key
		if opt.shortFlag != "" {
			flags += ", -" + opt.shortFlag
		}

		detail := opt.description
		switch {
		case opt.required:
			detail += " (required)"
		case !opt.defaultValue.IsEmpty():
			detail += " (default: " + opt.defaultValue.String() + ")"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", flags, displayType(opt), strings.TrimSpace(detail))
	}
	tw.Flush()
}

// displayType names an option's type for help output. Options with no
// declared type capture their value as text, so they display as
// strings.
func displayType(opt *Option) string {
	if opt.declaredType() == value.TypeUnknown {
		return value.TypeString.String()
	}
	return opt.declaredType().String()
}

func printRow(w io.Writer, key string, v value.Value) {
	fmt.Fprintf(w, "%s = %s\n", key, v)
}
