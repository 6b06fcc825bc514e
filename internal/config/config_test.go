package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG_CONFIG_HOME at an empty directory and clears
// XDGICONS_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{"THEME", "FALLBACK_THEME", "SEARCH_PATHS", "SIZE", "SCALE", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+name, "")
		os.Unsetenv(EnvPrefix + name)
	}
	xdg.Reload()
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := isolate(t)

	p := filepath.Join(dir, AppName, "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("theme = \"breeze\"\nsearch_paths = [\"/opt/icons\", \"/usr/share/icons\"]\nsize = 32\n"), 0o644))

	assert.Equal(t, p, DefaultPath())

	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, p, path)
	assert.Equal(t, "breeze", cfg.Theme)
	assert.Equal(t, []string{"/opt/icons", "/usr/share/icons"}, cfg.SearchPaths)
	assert.Equal(t, uint16(32), cfg.Size)
	assert.Equal(t, uint16(1), cfg.Scale)
	assert.Equal(t, "hicolor", cfg.FallbackTheme)
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	p := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(p, []byte("fallback_theme = \"Adwaita\"\nscale = 2\n"), 0o644))

	cfg, path, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, p, path)
	assert.Equal(t, "Adwaita", cfg.FallbackTheme)
	assert.Equal(t, uint16(2), cfg.Scale)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolate(t)

	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte("theme = \"breeze\"\n"), 0o644))

	t.Setenv("XDGICONS_THEME", "Papirus")
	t.Setenv("XDGICONS_SEARCH_PATHS", "/a:/b")
	t.Setenv("XDGICONS_SIZE", "64")

	cfg, _, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "Papirus", cfg.Theme)
	assert.Equal(t, []string{"/a", "/b"}, cfg.SearchPaths)
	assert.Equal(t, uint16(64), cfg.Size)
}

func TestLoadRejectsZeroSize(t *testing.T) {
	isolate(t)
	t.Setenv("XDGICONS_SIZE", "0")

	_, _, err := Load("")
	require.Error(t, err)
}

func TestConfigTOML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "breeze"
	cfg.SearchPaths = []string{"/usr/share/icons"}

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, out, "theme = ")
	assert.Contains(t, out, "breeze")

	var decoded Config
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *cfg, decoded)
}
