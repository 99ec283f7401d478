package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/solarreport/internal/config"
	"github.com/nao1215/solarreport/internal/log"
	"github.com/nao1215/solarreport/internal/ui"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for solarreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solarreport",
		Short: "Fixed-width reports about planets and their moons",
		Long: `solarreport renders four reports about a catalog of planets and moons:

  planets      every planet with its moons
  moons        every moon with its mass
  gravity      the average surface gravity of each planet's moons
  temperature  the average temperature of each planet's moons

Catalogs are YAML or JSON files. They can be read directly with --catalog
or imported once into a local SQLite store with 'solarreport import'.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.LogFormatText, "Log format: text or json")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .solarreport in current or home directory)")

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		ui.Error("Error: %v\n", err)
		os.Exit(1)
	}
}

// getBoolFlag retrieves a bool flag from the command or the root's
// persistent flags, falling back to def when neither defines it.
func getBoolFlag(cmd *cobra.Command, name string, def bool) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return def
		}
	}
	return v
}

// getStringFlag retrieves a string flag from the command or the root's
// persistent flags, falling back to def when neither defines it.
func getStringFlag(cmd *cobra.Command, name, def string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return def
		}
	}
	return v
}

// loadConfig builds a Config from defaults, the configuration file and the
// global flags. Command-specific flags are applied by the caller.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getBoolFlag(cmd, "verbose", false)
	cfg.LogFormat = getStringFlag(cmd, "log-format", config.LogFormatText)
	cfg.ConfigFilePath = getStringFlag(cmd, "config", "")

	// An explicit config path must exist; the default search may find nothing.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}

// setupLogger creates a structured logger on stderr for cfg.
func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return log.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
