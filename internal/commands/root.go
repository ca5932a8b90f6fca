package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tablebill/tablebill/internal/buildinfo"
	"github.com/tablebill/tablebill/internal/config"
	"github.com/tablebill/tablebill/internal/logging"
	"github.com/tablebill/tablebill/internal/menu"
)

type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "tablebill",
		Short:   "Restaurant order billing",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", config.FileName, "config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMenuCommand(&flags))
	rootCmd.AddCommand(newQuoteCommand(&flags))
	rootCmd.AddCommand(newRunCommand(&flags))

	return rootCmd
}

// env is what every billing command needs: config, catalog, and logger.
type env struct {
	cfg     *config.Config
	catalog *menu.Catalog
	log     *logrus.Logger
}

// loadEnv reads the config file, falling back to defaults when the default
// config file is absent. An explicitly named file must exist.
func loadEnv(cmd *cobra.Command, flags *globalFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default("")
	default:
		return nil, err
	}

	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	log, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	catalog := menu.Default()
	if path := cfg.MenuPath(flags.configPath); path != "" {
		catalog, err = menu.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading menu %s: %w", path, err)
		}
		log.WithFields(logrus.Fields{"path": path, "entries": catalog.Len()}).Debug("menu loaded")
	}

	return &env{cfg: cfg, catalog: catalog, log: log}, nil
}
