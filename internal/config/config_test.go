package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{KeyColor, KeyEmoji, KeyVerbose, KeyDirectory, KeyRecursive, KeyWSLMarkers, KeyAbsolute} {
		name := "LINKMAN_" + strings.ToUpper(key)
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func writeConfig(t *testing.T, xdg, content string) {
	t.Helper()
	dir := filepath.Join(xdg, "linkman")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Color:      "auto",
		Emoji:      true,
		Verbose:    false,
		Directory:  ".",
		Recursive:  true,
		WSLMarkers: true,
		Absolute:   false,
	}, cfg)
}

func TestLoadFromFile(t *testing.T) {
	xdg := isolate(t)
	writeConfig(t, xdg, "color: never\nemoji: false\ndirectory: /srv\nrecursive: false\nwsl_markers: false\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Color)
	assert.False(t, cfg.Emoji)
	assert.Equal(t, "/srv", cfg.Directory)
	assert.False(t, cfg.Recursive)
	assert.False(t, cfg.WSLMarkers)
	assert.False(t, cfg.Absolute, "unset keys keep defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	xdg := isolate(t)
	writeConfig(t, xdg, "color: never\n")
	t.Setenv("LINKMAN_COLOR", "always")
	t.Setenv("LINKMAN_VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "always", cfg.Color)
	assert.True(t, cfg.Verbose)
}

func TestLoadMalformedFile(t *testing.T) {
	xdg := isolate(t)
	writeConfig(t, xdg, "color: [never\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	assert.Equal(t, filepath.Join(home, ".config", "linkman"), Dir())
	assert.Equal(t, filepath.Join(home, ".config", "linkman", "config.yaml"), FilePath())
}
