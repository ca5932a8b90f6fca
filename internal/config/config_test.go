package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Spice Route")
	cfg.Menu.Path = "menu.csv"
	cfg.Logging.Level = "debug"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestRoundTrip_TOML(t *testing.T) {
	cfg := Default("Spice Route")
	cfg.Logging.Format = "json"

	path := filepath.Join(t.TempDir(), "tablebill.toml")
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[restaurant]")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Diner")

	assert.Equal(t, "My Diner", cfg.Restaurant.Name)
	assert.Empty(t, cfg.Menu.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("restaurant:\n  name: Tandoor\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Tandoor", cfg.Restaurant.Name)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("restaurant: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Cafe")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Cafe")
	assert.Contains(t, contents, "level: warn")
	assert.NotContains(t, contents, "path:", "empty menu path is omitted")
}

func TestMenuPath(t *testing.T) {
	cfg := Default("x")
	assert.Empty(t, cfg.MenuPath("/srv/bill/tablebill.yaml"))

	cfg.Menu.Path = "menus/dinner.csv"
	assert.Equal(t, filepath.Join("/srv/bill", "menus/dinner.csv"), cfg.MenuPath("/srv/bill/tablebill.yaml"))

	cfg.Menu.Path = "/etc/tablebill/menu.csv"
	assert.Equal(t, "/etc/tablebill/menu.csv", cfg.MenuPath("/srv/bill/tablebill.yaml"))
}
