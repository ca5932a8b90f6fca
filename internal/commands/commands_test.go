package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebill/tablebill/internal/commands"
	"github.com/tablebill/tablebill/internal/config"
	"github.com/tablebill/tablebill/internal/menu"
)

func runTablebill(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInit_WritesConfigAndMenu(t *testing.T) {
	dir := t.TempDir()
	out, err := runTablebill(t, "", "init", dir, "--name", "Spice Route")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized Spice Route")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Spice Route", cfg.Restaurant.Name)
	assert.Equal(t, "menu.csv", cfg.Menu.Path)

	catalog, err := menu.Load(filepath.Join(dir, "menu.csv"))
	require.NoError(t, err)
	assert.Equal(t, menu.Default().Len(), catalog.Len())
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runTablebill(t, "", "init", t.TempDir())
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := runTablebill(t, "", "init", dir, "--name", "First")
	require.NoError(t, err)

	_, err = runTablebill(t, "", "init", dir, "--name", "Second")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "First", cfg.Restaurant.Name)
}

func TestMenu_All(t *testing.T) {
	out, err := runTablebill(t, "", "menu")
	require.NoError(t, err)
	for _, want := range []string{"Beverage", "Appetizer", "Main Course", "Dessert", "Kadai Chicken", "$14.75"} {
		assert.Contains(t, out, want)
	}
}

func TestMenu_Category(t *testing.T) {
	out, err := runTablebill(t, "", "menu", "--category", "dessert")
	require.NoError(t, err)
	assert.Contains(t, out, "Gulab Jamun")
	assert.NotContains(t, out, "Soda")

	_, err = runTablebill(t, "", "menu", "--category", "soup")
	require.Error(t, err)
}

func TestMenu_FromConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	menuCSV := menu.Header + "\nBeverage,Chai,1.50\nDessert,Kheer,3.75\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.csv"), []byte(menuCSV), 0o644))

	cfg := config.Default("Corner Cafe")
	cfg.Menu.Path = "custom.csv"
	cfgPath := filepath.Join(dir, "tablebill.toml")
	require.NoError(t, config.Save(cfgPath, cfg))

	out, err := runTablebill(t, "", "menu", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Chai")
	assert.Contains(t, out, "dessert-01")
	assert.NotContains(t, out, "Soda")
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := runTablebill(t, "", "menu", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestQuote(t *testing.T) {
	out, err := runTablebill(t, "", "quote", "Soda", "beverage-01")
	require.NoError(t, err)
	assert.Contains(t, out, "$3.50")
	assert.Contains(t, out, "$0.46")
	assert.Contains(t, out, "$3.96")
}

func TestQuote_TwoCategories(t *testing.T) {
	out, err := runTablebill(t, "", "quote", "Veg Biryani", "Ice Cream")
	require.NoError(t, err)
	assert.Contains(t, out, "$22.50")
	assert.Contains(t, out, "$2.93")
	assert.Contains(t, out, "$25.43")
}

func TestQuote_UnknownItem(t *testing.T) {
	_, err := runTablebill(t, "", "quote", "Soda", "Pizza")
	require.Error(t, err)
	assert.ErrorIs(t, err, menu.ErrUnknownEntry)
}

func TestQuote_RequiresItems(t *testing.T) {
	_, err := runTablebill(t, "", "quote")
	require.Error(t, err)
}

func TestRun_Session(t *testing.T) {
	dir := t.TempDir()
	_, err := runTablebill(t, "", "init", dir, "--name", "Spice Route")
	require.NoError(t, err)

	script := strings.Join([]string{
		"menu beverage",
		"add 2",
		"qty 1 3",
		"qty 1 0",
		"remove",
		"show",
		"quit",
	}, "\n")
	out, err := runTablebill(t, script, "run", "--config", filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	assert.Contains(t, out, "== Spice Route ==")
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "$7.50", "quantity 3 was shown")
	assert.Contains(t, out, "Please select an item to remove")

	last := out[strings.LastIndex(out, "Total:"):]
	assert.Contains(t, last, "$2.83", "final total after clamping to 1")
}

func TestRun_DebugLogging(t *testing.T) {
	out, err := runTablebill(t, "add Tea\nquit\n", "run", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "entry_id=beverage-03")
}

func TestRun_BadLogLevel(t *testing.T) {
	_, err := runTablebill(t, "", "run", "--log-level", "chatty")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runTablebill(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
