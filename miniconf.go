// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package miniconf resolves configuration options for command line
// driven applications. Applications declare named, typed options with
// defaults, flags and required-ness; Parse merges three sources in a
// fixed precedence order (compiled-in defaults, an optional structured
// config file, command line tokens) into a flat, validated key to
// value map.
package miniconf

import (
	"io"
	"os"
	"sort"

	"github.com/miniconf-go/miniconf/document"
	"github.com/miniconf-go/miniconf/value"

	"go.uber.org/zap"
)

// Reserved option keys injected by New unless explicitly disabled.
// Both are hidden: they never appear in help output, are excluded from
// required-ness checks and are stripped from the resolved map.
const (
	KeyHelp   = "help"
	KeyConfig = "config"
)

type entry struct {
	val      value.Value
	declared bool
}

// Config owns the option registry, runs resolution and holds the
// resolved values afterwards. It is built once by the host application
// and is not safe for concurrent use.
type Config struct {
	description string

	opts  map[string]*Option
	order []string

	log *diagnosticLog

	helpEnabled   bool
	configEnabled bool
	helpOut       io.Writer
	loadDocument  func(path string) (document.Map, error)

	program       string
	resolved      map[string]entry
	helpRequested bool
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// Logger mirrors every diagnostic record to the given zap logger.
//
// Default logger is a nop.
func Logger(l *zap.Logger) ConfigOption {
	return func(c *Config) {
		c.log.logger = l
	}
}

// LogThreshold sets the minimum severity a diagnostic must have to be
// recorded. SeverityNone suppresses all records and disables
// abort-on-error, for lenient embedding.
//
// Default threshold is SeverityInfo.
func LogThreshold(min Severity) ConfigOption {
	return func(c *Config) {
		c.log.min = min
	}
}

// Description sets the program description shown in help output.
func Description(d string) ConfigOption {
	return func(c *Config) {
		c.description = d
	}
}

// DisableHelp skips injecting the reserved "help" option and disables
// help rendering.
func DisableHelp() ConfigOption {
	return func(c *Config) {
		c.helpEnabled = false
	}
}

// DisableConfigFile skips injecting the reserved "config" option and
// disables the config file precedence layer.
func DisableConfigFile() ConfigOption {
	return func(c *Config) {
		c.configEnabled = false
	}
}

// HelpOutput sets the io.Writer help is rendered to when the reserved
// "help" option resolves to true.
//
// Default is os.Stdout.
func HelpOutput(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.helpOut = w
	}
}

// DocumentLoader replaces the function used to read a config file path
// into a document tree.
//
// Default is document.Load, which dispatches on the file extension.
func DocumentLoader(fn func(path string) (document.Map, error)) ConfigOption {
	return func(c *Config) {
		c.loadDocument = fn
	}
}

// New returns a Config with the reserved "help" and "config" options
// registered, unless disabled.
func New(opts ...ConfigOption) *Config {
	c := &Config{
		opts:          make(map[string]*Option),
		log:           newDiagnosticLog(),
		helpEnabled:   true,
		configEnabled: true,
		helpOut:       os.Stdout,
		loadDocument:  document.Load,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.helpEnabled {
		c.Option(KeyHelp).Default(value.Bool(false)).Description("show usage information").Hidden(true)
	}
	if c.configEnabled {
		c.Option(KeyConfig).Default(value.String("")).Description("load options from a config file").Hidden(true)
	}
	return c
}

// Option registers the key if it is new and returns a builder for
// chained mutation of its declaration. Registration order is preserved
// for deterministic help and serialization layout.
func (c *Config) Option(key string) *OptionBuilder {
	opt, ok := c.opts[key]
	if !ok {
		opt = &Option{key: key}
		c.opts[key] = opt
		c.order = append(c.order, key)
	}
	return &OptionBuilder{opt: opt}
}

// Options returns the registered options in registration order.
func (c *Config) Options() []*Option {
	out := make([]*Option, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.opts[k])
	}
	return out
}

// Get returns the resolved value for key, or the empty value for keys
// which were never resolved.
func (c *Config) Get(key string) value.Value {
	return c.resolved[key].val
}

// Contains reports whether key is present in the resolved map.
func (c *Config) Contains(key string) bool {
	_, ok := c.resolved[key]
	return ok
}

// Keys returns the resolved keys: declared options in registration
// order, then stray keys sorted.
func (c *Config) Keys() []string {
	var out []string
	for _, k := range c.order {
		if _, ok := c.resolved[k]; ok {
			out = append(out, k)
		}
	}
	return append(out, c.Strays()...)
}

// Strays returns the sorted resolved keys which have no matching
// declared option, from unrecognized flags or extra config file
// entries.
func (c *Config) Strays() []string {
	var out []string
	for k, e := range c.resolved {
		if !e.declared {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Records returns the diagnostic log in emission order.
func (c *Config) Records() []Record {
	return c.log.records
}

// HelpRequested reports whether the last Parse saw the reserved "help"
// option resolve to true.
func (c *Config) HelpRequested() bool {
	return c.helpRequested
}

// WriteLog renders the diagnostic log to w, one record per line.
func (c *Config) WriteLog(w io.Writer) {
	c.log.write(w)
}

// flat snapshots the resolved map, declared and stray entries alike.
func (c *Config) flat() map[string]value.Value {
	out := make(map[string]value.Value, len(c.resolved))
	for k, e := range c.resolved {
		out[k] = e.val
	}
	return out
}

// Serialize writes the resolved map to w in the given format, nesting
// dot-path keys back into a tree unless the flat format is selected.
func (c *Config) Serialize(w io.Writer, f document.Format) error {
	flat := c.flat()
	if f == document.FormatFlat {
		return document.WriteFlat(w, flat)
	}

	m, err := document.Unflatten(flat)
	if err != nil {
		return err
	}
	return document.Write(w, m, f)
}

// SerializeFile writes the resolved map to path in the format selected
// by the path's extension.
func (c *Config) SerializeFile(path string) error {
	return document.Save(path, c.flat())
}

// Print writes the resolved key/value pairs to w, declared options in
// registration order followed by sorted strays.
func (c *Config) Print(w io.Writer) {
	for _, k := range c.Keys() {
		printRow(w, k, c.resolved[k].val)
	}
}
