// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import "github.com/miniconf-go/miniconf/value"

// Option is the static declaration of one configuration option. Its
// default value fixes the option's declared type; an empty default is
// only legal on required options, which have no declared type and
// capture their value as text.
type Option struct {
	key          string
	shortFlag    string
	description  string
	defaultValue value.Value
	required     bool
	hidden       bool
}

// Key returns the canonical (long) key. Keys may contain "." segments
// denoting nesting in a config file document.
func (o *Option) Key() string {
	return o.key
}

// ShortFlag returns the single token alias, or "" if none is set.
func (o *Option) ShortFlag() string {
	return o.shortFlag
}

// Description returns the help text for the option.
func (o *Option) Description() string {
	return o.description
}

// Default returns the option's default value.
func (o *Option) Default() value.Value {
	return o.defaultValue
}

// Required reports whether resolution fails when no value is supplied.
func (o *Option) Required() bool {
	return o.required
}

// declaredType is the type tokens and file values are parsed against.
func (o *Option) declaredType() value.Type {
	return o.defaultValue.Type()
}

// OptionBuilder mutates a registered option through a chained call
// style:
//
//	conf.Option("port").ShortFlag("p").Default(value.Int(8080)).Description("listen port")
type OptionBuilder struct {
	opt *Option
}

// ShortFlag sets the single token alias for the option.
func (b *OptionBuilder) ShortFlag(s string) *OptionBuilder {
	b.opt.shortFlag = s
	return b
}

// Description sets the help text for the option.
func (b *OptionBuilder) Description(s string) *OptionBuilder {
	b.opt.description = s
	return b
}

// Default sets the default value, which also fixes the option's
// declared type.
func (b *OptionBuilder) Default(v value.Value) *OptionBuilder {
	b.opt.defaultValue = v
	return b
}

// Required marks the option as mandatory.
func (b *OptionBuilder) Required(r bool) *OptionBuilder {
	b.opt.required = r
	return b
}

// Hidden excludes the option from help rendering and required-ness
// checks. Engine reserved options are hidden.
func (b *OptionBuilder) Hidden(h bool) *OptionBuilder {
	b.opt.hidden = h
	return b
}
