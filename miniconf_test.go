// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/miniconf-go/miniconf/document"
	"github.com/miniconf-go/miniconf/value"

	"github.com/stretchr/testify/require"
)

func newServerConfig() *Config {
	c := New(HelpOutput(io.Discard))
	c.Option("host").ShortFlag("H").Default(value.String("localhost")).Description("listen host")
	c.Option("port").ShortFlag("p").Default(value.Int(8080)).Description("listen port")
	c.Option("server.tls").ShortFlag("T").Default(value.Bool(false)).Description("enable tls")
	return c
}

func TestConfig_Keys(t *testing.T) {
	c := newServerConfig()
	require.NoError(t, c.Parse([]string{"prog", "--zzz", "1", "--aaa", "2"}))

	// declared options in registration order, then sorted strays
	require.Equal(t, []string{"host", "port", "server.tls", "aaa", "zzz"}, c.Keys())
}

func TestConfig_Serialize(t *testing.T) {
	formats := []document.Format{
		document.FormatJSON,
		document.FormatYAML,
		document.FormatTOML,
		document.FormatFlat,
	}

	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			c := newServerConfig()
			require.NoError(t, c.Parse([]string{"prog", "--port", "9090", "--server.tls"}))

			var buf bytes.Buffer
			require.NoError(t, c.Serialize(&buf, f))

			m, err := document.Read(&buf, f, "settings")
			require.NoError(t, err)

			flat, err := m.Flatten()
			require.NoError(t, err)
			require.Equal(t, map[string]value.Value{
				"host":       value.String("localhost"),
				"port":       value.Int(9090),
				"server.tls": value.Bool(true),
			}, flat)
		})
	}
}

func TestConfig_SerializeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	c := newServerConfig()
	require.NoError(t, c.Parse([]string{"prog", "--port", "9090"}))
	require.NoError(t, c.SerializeFile(path))

	// a fresh config loads the serialized settings back
	c2 := newServerConfig()
	require.NoError(t, c2.Parse([]string{"prog", "--config", path}))

	i, err := c2.Get("port").Int()
	require.NoError(t, err)
	require.Equal(t, int64(9090), i)
}

func TestConfig_DisableConfigFile(t *testing.T) {
	c := New(DisableConfigFile(), HelpOutput(io.Discard))
	c.Option("n").ShortFlag("n").Default(value.Number(1.0)).Description("a number value")

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, c.Parse([]string{"prog", path}))

	// without the config layer, a sole positional is just an orphan
	f, err := c.Get("n").Number()
	require.NoError(t, err)
	require.Equal(t, 1.0, f)

	warned := false
	for _, r := range c.Records() {
		if r.Severity == SeverityWarning && r.Token == path {
			warned = true
		}
	}
	require.True(t, warned)
}

func TestConfig_DocumentLoader(t *testing.T) {
	loaded := ""
	loader := func(path string) (document.Map, error) {
		loaded = path
		return document.Map{"n": value.Number(2.0)}, nil
	}

	c := New(DocumentLoader(loader), HelpOutput(io.Discard))
	c.Option("n").ShortFlag("n").Default(value.Number(1.0)).Description("a number value")

	require.NoError(t, c.Parse([]string{"prog", "--config", "anywhere.json"}))
	require.Equal(t, "anywhere.json", loaded)

	f, err := c.Get("n").Number()
	require.NoError(t, err)
	require.Equal(t, 2.0, f)
}
