package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tablebill/tablebill/internal/config"
	"github.com/tablebill/tablebill/internal/menu"
)

const menuFileName = "menu.csv"

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a config file and an editable menu",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "restaurant name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(out io.Writer, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	// Write menu.csv from the built-in menu.
	if err := menu.Default().Save(filepath.Join(dir, menuFileName)); err != nil {
		return fmt.Errorf("writing menu: %w", err)
	}

	// Write tablebill.yaml pointing at it.
	cfg := config.Default(name)
	cfg.Menu.Path = menuFileName
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(out, "Initialized %s at %s\n", name, dir)
	return nil
}
