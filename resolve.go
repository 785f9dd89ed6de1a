// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import (
	"math"
	"strconv"
	"strings"

	"github.com/miniconf-go/miniconf/value"
)

type tokenKind int

const (
	tokenUnknown tokenKind = iota
	tokenLongFlag
	tokenShortFlag
	tokenValue
)

// classify tags one command line token. The numeric literal check runs
// before the flag prefix check so a negative number like "-3.14" is a
// value, not a short flag.
func classify(token string) (tokenKind, string) {
	if token == "" {
		return tokenUnknown, ""
	}
	if strings.HasPrefix(token, "-") {
		if _, err := strconv.ParseFloat(token, 64); err == nil {
			return tokenValue, token
		}
		if strings.HasPrefix(token, "--") {
			return tokenLongFlag, token[2:]
		}
		return tokenShortFlag, token[1:]
	}
	return tokenValue, token
}

// Parse resolves the option registry against an argv style token
// stream. args[0] is the program name and is not classified. It
// returns a *ResolveError when the worst diagnostic severity reaches
// SeverityError, unless the log threshold is SeverityNone.
func (c *Config) Parse(args []string) error {
	c.resolved = make(map[string]entry)
	c.helpRequested = false
	c.log.reset()
	if len(args) > 0 {
		c.program = args[0]
	}

	c.checkFormat()
	if c.log.failed() {
		return c.fail()
	}

	// layer 1: defaults
	for _, k := range c.order {
		c.resolved[k] = entry{val: c.opts[k].defaultValue, declared: true}
	}

	// layer 2: config file
	skip := c.mergeFile(args)

	// layer 3: command line, left to right
	c.scan(args, skip)

	if c.helpEnabled {
		if on, err := c.Get(KeyHelp).Bool(); err == nil && on {
			c.helpRequested = true
			c.Help(c.helpOut)
		}
	}

	// reserved entries are engine internal
	for k, opt := range c.opts {
		if opt.hidden {
			delete(c.resolved, k)
		}
	}

	c.validate()

	if c.log.failed() {
		return c.fail()
	}
	return nil
}

func (c *Config) fail() error {
	return &ResolveError{Records: c.log.errors()}
}

// mergeFile loads the config file layer, if any, over the defaults. It
// returns the index of a token consumed as the sole positional config
// path, or -1.
func (c *Config) mergeFile(args []string) int {
	if !c.configEnabled {
		return -1
	}

	path, skip := c.findConfigPath(args)
	if path == "" {
		return skip
	}

	doc, err := c.loadDocument(path)
	if err != nil {
		c.log.report(SeverityError, path, "cannot load config file: "+err.Error())
		return skip
	}
	flat, err := doc.Flatten()
	if err != nil {
		c.log.report(SeverityError, path, "cannot flatten config file: "+err.Error())
		return skip
	}

	for k, v := range flat {
		opt, ok := c.opts[k]
		if !ok {
			// stray entry, kept with the document's scalar type
			c.resolved[k] = entry{val: v}
			continue
		}

		cv, ok := coerce(v, opt.declaredType())
		if !ok {
			c.log.report(SeverityWarning, k, "config file value is a "+v.Type().String()+", not a "+opt.declaredType().String())
			continue
		}
		c.resolved[k] = entry{val: cv, declared: true}
		c.log.report(SeverityInfo, k, "option set from config file")
	}

	c.resolved[KeyConfig] = entry{val: value.String(path), declared: true}
	return skip
}

// findConfigPath scans the token stream for the reserved config flag
// followed by a value. Failing that, a sole positional argument is
// treated as a config file path; an explicit flag wins if both are
// present.
func (c *Config) findConfigPath(args []string) (string, int) {
	for i := 1; i < len(args)-1; i++ {
		kind, key := classify(args[i])
		if kind != tokenLongFlag && kind != tokenShortFlag {
			continue
		}
		if kind == tokenShortFlag {
			opt := c.lookupShortFlag(key)
			if opt == nil || opt.key != KeyConfig {
				continue
			}
		} else if key != KeyConfig {
			continue
		}
		if kind, _ := classify(args[i+1]); kind == tokenValue {
			return args[i+1], -1
		}
	}

	if len(args) == 2 {
		if kind, _ := classify(args[1]); kind == tokenValue {
			return args[1], 1
		}
	}
	return "", -1
}

type pendingOption struct {
	key      string
	typ      value.Type
	declared bool
}

// scan walks the token stream applying the classifier per token, with
// the option awaiting a value as the only mutable state. The token at
// index skip was already consumed as the sole positional config path.
func (c *Config) scan(args []string, skip int) {
	var pending *pendingOption

	for i := 1; i < len(args); i++ {
		if i == skip {
			continue
		}
		tok := args[i]

		kind, body := classify(tok)
		switch kind {
		case tokenLongFlag:
			opt, ok := c.opts[body]
			if !ok {
				// wildcard: capture the unknown flag as a text valued stray
				c.log.report(SeverityWarning, tok, "unrecognized option")
				pending = &pendingOption{key: body, typ: value.TypeString}
				continue
			}
			pending = c.applyFlag(opt, tok)

		case tokenShortFlag:
			opt := c.lookupShortFlag(body)
			if opt == nil {
				c.log.report(SeverityWarning, tok, "unrecognized short flag")
				pending = nil
				continue
			}
			pending = c.applyFlag(opt, tok)

		case tokenValue:
			if pending == nil {
				c.log.report(SeverityWarning, tok, "orphaned value without a preceding flag")
				continue
			}
			v := value.ParseAs(tok, pending.typ)
			if v.IsEmpty() {
				c.log.report(SeverityWarning, tok, "cannot parse value as "+pending.typ.String())
			} else {
				c.resolved[pending.key] = entry{val: v, declared: pending.declared}
				c.log.report(SeverityInfo, tok, "option "+strconv.Quote(pending.key)+" set from command line")
			}
			pending = nil

		case tokenUnknown:
			c.log.report(SeverityError, tok, "malformed token")
		}
	}
}

// applyFlag records a recognized flag token. A bool typed flag is true
// by presence alone; an explicit following value can still override it.
func (c *Config) applyFlag(opt *Option, tok string) *pendingOption {
	if opt.declaredType() == value.TypeBool {
		c.resolved[opt.key] = entry{val: value.Bool(true), declared: true}
		c.log.report(SeverityInfo, tok, "option "+strconv.Quote(opt.key)+" enabled")
	}
	return &pendingOption{key: opt.key, typ: opt.declaredType(), declared: true}
}

// lookupShortFlag translates a short flag to its option by linear
// search. Registries are small, so no index is kept.
func (c *Config) lookupShortFlag(s string) *Option {
	for _, k := range c.order {
		if opt := c.opts[k]; opt.shortFlag != "" && opt.shortFlag == s {
			return opt
		}
	}
	return nil
}

// coerce converts a config file scalar to an option's declared type.
// Ints and numbers convert between each other (numbers only when
// integral); an empty declared type accepts any scalar.
func coerce(v value.Value, want value.Type) (value.Value, bool) {
	if v.Type() == want || want == value.TypeUnknown {
		return v, true
	}
	switch {
	case v.Type() == value.TypeInt && want == value.TypeNumber:
		i, _ := v.Int()
		return value.Number(float64(i)), true
	case v.Type() == value.TypeNumber && want == value.TypeInt:
		f, _ := v.Number()
		if f == math.Trunc(f) {
			return value.Int(int64(f)), true
		}
	}
	return value.Unknown(), false
}
