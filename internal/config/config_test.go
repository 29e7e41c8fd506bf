package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddao/adaptive_contacts/internal/layout"
)

// isolate points the user config dir and ACV_ env at nothing.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, k := range []string{
		"ACV_CONFIG", "ACV_CONTACTS_FILE", "ACV_LAYOUT_ORIENTATION",
		"ACV_LAYOUT_ORIENTATION_FILE", "ACV_LAYOUT_ASPECT", "ACV_LOG_FILE", "ACV_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("acv", pflag.ContinueOnError)
	fs.String("contacts", "", "")
	fs.String("orientation", "auto", "")
	fs.String("orientation-file", "", "")
	fs.Float64("aspect", layout.DefaultAspect, "")
	fs.String("log-file", "", "")
	fs.String("log-level", "info", "")
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "auto", c.Layout.Orientation)
	assert.Equal(t, layout.DefaultAspect, c.Layout.Aspect)
	assert.Equal(t, "info", c.Log.Level)
	assert.Empty(t, c.Contacts.File)
	assert.Equal(t, layout.Unknown, c.Orientation())
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
contacts:
  file: /tmp/people.yaml
layout:
  orientation: landscape
  orientation_file: /tmp/orientation
  aspect: 1.5
log:
  file: /tmp/acv.log
  level: debug
`)

	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/people.yaml", c.Contacts.File)
	assert.Equal(t, layout.Landscape, c.Orientation())
	assert.Equal(t, "/tmp/orientation", c.Layout.OrientationFile)
	assert.Equal(t, 1.5, c.Layout.Aspect)
	assert.Equal(t, "/tmp/acv.log", c.Log.File)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "layout:\n  orientation: landscape\n")
	t.Setenv("ACV_LAYOUT_ORIENTATION", "portrait")

	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, layout.Portrait, c.Orientation())
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "log:\n  level: warn\n")
	t.Setenv("ACV_CONFIG", path)

	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "layout:\n  orientation: landscape\n")
	t.Setenv("ACV_LAYOUT_ORIENTATION", "landscape")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--orientation", "portrait", "--aspect", "3", "--contacts", "x.yaml"}))

	c, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, layout.Portrait, c.Orientation())
	assert.Equal(t, 3.0, c.Layout.Aspect)
	assert.Equal(t, "x.yaml", c.Contacts.File)
}

func TestLoadUnsetFlagsKeepFileValues(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "layout:\n  orientation: landscape\n")

	c, err := Load(path, testFlags())
	require.NoError(t, err)
	assert.Equal(t, layout.Landscape, c.Orientation())
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err, "explicit config must exist")

	_, err = Load(writeConfig(t, "layout:\n  orientation: sideways\n"), nil)
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "layout:\n  aspect: -1\n"), nil)
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "layout: [unterminated\n"), nil)
	assert.Error(t, err)
}
