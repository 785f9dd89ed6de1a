// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/miniconf-go/miniconf/value"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name         string
		token        string
		expectedKind tokenKind
		expectedBody string
	}{
		{name: "empty token", token: "", expectedKind: tokenUnknown},
		{name: "long flag", token: "--foo", expectedKind: tokenLongFlag, expectedBody: "foo"},
		{name: "short flag", token: "-f", expectedKind: tokenShortFlag, expectedBody: "f"},
		{name: "plain value", token: "bar", expectedKind: tokenValue, expectedBody: "bar"},
		{name: "negative float is a value", token: "-3.14", expectedKind: tokenValue, expectedBody: "-3.14"},
		{name: "negative int is a value", token: "-42", expectedKind: tokenValue, expectedBody: "-42"},
		{name: "dashed word is a short flag", token: "-3x", expectedKind: tokenShortFlag, expectedBody: "3x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, body := classify(tc.token)
			require.Equal(t, tc.expectedKind, kind)
			require.Equal(t, tc.expectedBody, body)
		})
	}
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func newNumberConfig() *Config {
	c := New(HelpOutput(io.Discard))
	c.Option("n").ShortFlag("n").Default(value.Number(1.0)).Description("a number value")
	return c
}

func TestParse_Precedence(t *testing.T) {
	file := `{"n": 2.0}`

	t.Run("command line overrides file overrides default", func(t *testing.T) {
		c := newNumberConfig()
		path := writeFile(t, "settings.json", file)
		require.NoError(t, c.Parse([]string{"prog", "--config", path, "--n", "3.0"}))

		f, err := c.Get("n").Number()
		require.NoError(t, err)
		require.Equal(t, 3.0, f)
	})

	t.Run("file overrides default", func(t *testing.T) {
		c := newNumberConfig()
		path := writeFile(t, "settings.json", file)
		require.NoError(t, c.Parse([]string{"prog", "--config", path}))

		f, err := c.Get("n").Number()
		require.NoError(t, err)
		require.Equal(t, 2.0, f)
	})

	t.Run("default survives when nothing overrides it", func(t *testing.T) {
		c := newNumberConfig()
		require.NoError(t, c.Parse([]string{"prog"}))

		f, err := c.Get("n").Number()
		require.NoError(t, err)
		require.Equal(t, 1.0, f)
	})
}

func TestParse_SolePositionalIsConfigFile(t *testing.T) {
	c := newNumberConfig()
	path := writeFile(t, "settings.json", `{"n": 2.0}`)
	require.NoError(t, c.Parse([]string{"prog", path}))

	f, err := c.Get("n").Number()
	require.NoError(t, err)
	require.Equal(t, 2.0, f)

	// the path token was consumed, so it must not be reported as an
	// orphaned value
	for _, r := range c.Records() {
		require.NotEqual(t, SeverityWarning, r.Severity, "unexpected warning: %s", r.Message)
	}
}

func TestParse_ShortFlag(t *testing.T) {
	c := newNumberConfig()
	require.NoError(t, c.Parse([]string{"prog", "-n", "4.5"}))

	f, err := c.Get("n").Number()
	require.NoError(t, err)
	require.Equal(t, 4.5, f)
}

func TestParse_NegativeNumberFollowsFlag(t *testing.T) {
	c := newNumberConfig()
	require.NoError(t, c.Parse([]string{"prog", "--n", "-3.14"}))

	f, err := c.Get("n").Number()
	require.NoError(t, err)
	require.Equal(t, -3.14, f)
}

func TestParse_BoolFlagShorthand(t *testing.T) {
	newBoolConfig := func() *Config {
		c := New(HelpOutput(io.Discard))
		c.Option("b").ShortFlag("b").Default(value.Bool(false)).Description("a boolean value")
		return c
	}

	t.Run("presence implies true", func(t *testing.T) {
		c := newBoolConfig()
		require.NoError(t, c.Parse([]string{"prog", "--b"}))

		b, err := c.Get("b").Bool()
		require.NoError(t, err)
		require.True(t, b)
	})

	t.Run("explicit value overrides the shorthand", func(t *testing.T) {
		c := newBoolConfig()
		require.NoError(t, c.Parse([]string{"prog", "--b", "false"}))

		b, err := c.Get("b").Bool()
		require.NoError(t, err)
		require.False(t, b)
	})

	t.Run("text parsing policy", func(t *testing.T) {
		testCases := []struct {
			token    string
			expected bool
		}{
			{token: "false", expected: false},
			{token: "False", expected: false},
			{token: "F", expected: false},
			{token: "f", expected: false},
			// only the false family parses to false
			{token: "0", expected: true},
			{token: "no", expected: true},
		}

		for _, tc := range testCases {
			t.Run(tc.token, func(t *testing.T) {
				c := newBoolConfig()
				require.NoError(t, c.Parse([]string{"prog", "--b", tc.token}))

				b, err := c.Get("b").Bool()
				require.NoError(t, err)
				require.Equal(t, tc.expected, b)
			})
		}
	})
}

func TestParse_UnrecognizedLongFlagBecomesStray(t *testing.T) {
	c := newNumberConfig()
	require.NoError(t, c.Parse([]string{"prog", "--zzz", "42"}))

	s, err := c.Get("zzz").Text()
	require.NoError(t, err)
	require.Equal(t, "42", s)
	require.Equal(t, []string{"zzz"}, c.Strays())

	warned := false
	for _, r := range c.Records() {
		if r.Severity == SeverityWarning && r.Token == "--zzz" {
			warned = true
		}
	}
	require.True(t, warned)
}

func TestParse_UnrecognizedShortFlagIsDiscarded(t *testing.T) {
	c := newNumberConfig()
	require.NoError(t, c.Parse([]string{"prog", "-x", "42"}))

	require.False(t, c.Contains("x"))
	require.Empty(t, c.Strays())

	// -x warns, and the value after it warns as orphaned
	warnings := 0
	for _, r := range c.Records() {
		if r.Severity == SeverityWarning {
			warnings++
		}
	}
	require.Equal(t, 2, warnings)
}

func TestParse_OrphanedValueIsDiscarded(t *testing.T) {
	c := newNumberConfig()
	require.NoError(t, c.Parse([]string{"prog", "--n", "2.0", "stray-less"}))

	f, err := c.Get("n").Number()
	require.NoError(t, err)
	require.Equal(t, 2.0, f)

	warned := false
	for _, r := range c.Records() {
		if r.Severity == SeverityWarning && r.Token == "stray-less" {
			warned = true
		}
	}
	require.True(t, warned)
}

func TestParse_UnparsableValueKeepsPrior(t *testing.T) {
	c := New(HelpOutput(io.Discard))
	c.Option("i").ShortFlag("i").Default(value.Int(7)).Description("an integer value")
	require.NoError(t, c.Parse([]string{"prog", "--i", "not-a-number"}))

	i, err := c.Get("i").Int()
	require.NoError(t, err)
	require.Equal(t, int64(7), i)
}

func TestParse_EmptyTokenIsMalformed(t *testing.T) {
	c := newNumberConfig()
	err := c.Parse([]string{"prog", ""})
	require.Error(t, err)

	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	require.NotEmpty(t, rerr.Records)
}

func TestParse_FileValueCoercion(t *testing.T) {
	t.Run("file int coerces to a number option", func(t *testing.T) {
		c := newNumberConfig()
		path := writeFile(t, "settings.json", `{"n": 2}`)
		require.NoError(t, c.Parse([]string{"prog", "--config", path}))

		f, err := c.Get("n").Number()
		require.NoError(t, err)
		require.Equal(t, 2.0, f)
	})

	t.Run("incompatible file value keeps the default", func(t *testing.T) {
		c := newNumberConfig()
		path := writeFile(t, "settings.json", `{"n": "loud"}`)
		require.NoError(t, c.Parse([]string{"prog", "--config", path}))

		f, err := c.Get("n").Number()
		require.NoError(t, err)
		require.Equal(t, 1.0, f)
	})

	t.Run("undeclared file keys become strays", func(t *testing.T) {
		c := newNumberConfig()
		path := writeFile(t, "settings.json", `{"n": 2.0, "extra": {"depth": 3}}`)
		require.NoError(t, c.Parse([]string{"prog", "--config", path}))

		require.Equal(t, []string{"extra.depth"}, c.Strays())

		i, err := c.Get("extra.depth").Int()
		require.NoError(t, err)
		require.Equal(t, int64(3), i)
	})
}

func TestParse_NestedKeysFromYamlFile(t *testing.T) {
	c := New(HelpOutput(io.Discard))
	c.Option("part1.value1").ShortFlag("p1v1").Default(value.String("p1v1")).Description("nested value")
	c.Option("part2.subpart1.value1").ShortFlag("p2s1v1").Default(value.String("p2s1v1")).Description("nested value")

	path := writeFile(t, "settings.yaml", `
part1:
  value1: from-file
part2:
  subpart1:
    value1: also-from-file
`)
	require.NoError(t, c.Parse([]string{"prog", "--config", path}))

	s, err := c.Get("part1.value1").Text()
	require.NoError(t, err)
	require.Equal(t, "from-file", s)

	s, err = c.Get("part2.subpart1.value1").Text()
	require.NoError(t, err)
	require.Equal(t, "also-from-file", s)
}

func TestParse_UnreadableConfigFileFails(t *testing.T) {
	c := newNumberConfig()
	err := c.Parse([]string{"prog", "--config", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

func TestParse_MissingKeyReturnsEmptyValue(t *testing.T) {
	c := newNumberConfig()
	require.NoError(t, c.Parse([]string{"prog"}))

	v := c.Get("never-declared")
	require.True(t, v.IsEmpty())
	require.False(t, c.Contains("never-declared"))
}

func TestParse_ReservedEntriesAreStripped(t *testing.T) {
	c := newNumberConfig()
	path := writeFile(t, "settings.json", `{"n": 2.0}`)
	require.NoError(t, c.Parse([]string{"prog", "--config", path}))

	require.False(t, c.Contains(KeyConfig))
	require.False(t, c.Contains(KeyHelp))
}

func TestParse_HelpRequested(t *testing.T) {
	var buf bytes.Buffer
	c := New(HelpOutput(&buf))
	c.Option("n").ShortFlag("n").Default(value.Number(1.0)).Description("a number value")
	require.NoError(t, c.Parse([]string{"prog", "--help"}))

	require.True(t, c.HelpRequested())
	require.Contains(t, buf.String(), "usage:")
	require.Contains(t, buf.String(), "--n")
}
