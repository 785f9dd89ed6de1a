// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import "strconv"

// checkFormat detects registry misconfiguration before any token is
// read: duplicate short flags and non-required options without a
// default are errors, missing short flags or descriptions are
// warnings. Hidden options are exempt.
func (c *Config) checkFormat() {
	seen := make(map[string]string)
	for _, k := range c.order {
		opt := c.opts[k]
		if opt.hidden {
			continue
		}

		if opt.defaultValue.IsEmpty() && !opt.required {
			c.log.report(SeverityError, k, "non-required option has no default value")
		}

		switch prev, ok := seen[opt.shortFlag]; {
		case opt.shortFlag == "":
			c.log.report(SeverityWarning, k, "option has no short flag")
		case ok:
			c.log.report(SeverityError, k, "duplicate short flag -"+opt.shortFlag+", already used by "+strconv.Quote(prev))
		default:
			seen[opt.shortFlag] = k
		}

		if opt.description == "" {
			c.log.report(SeverityWarning, k, "option has no description")
		}
	}
}

// validate checks the resolved map after the scan: every non-hidden
// registry option must be present and non-empty.
func (c *Config) validate() {
	for _, k := range c.order {
		opt := c.opts[k]
		if opt.hidden {
			continue
		}

		e, ok := c.resolved[k]
		if !ok {
			c.log.report(SeverityError, k, "option is missing from the resolved set")
			continue
		}
		if e.val.IsEmpty() {
			c.log.report(SeverityError, k, "option has no value")
		}
	}
}
