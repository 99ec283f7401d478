package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/solarreport/internal/config"
	"github.com/nao1215/solarreport/internal/ui"
	"github.com/spf13/cobra"
)

//go:embed templates/solarreport.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new solarreport configuration file",
		Long: `Initialize creates a new .solarreport configuration file in the current directory.

The generated file documents every available option:
- catalog files to read instead of the SQLite store
- the store directory
- the default output format and title-casing language
- the reports to run when none is named

Examples:
  # Create .solarreport in current directory
  solarreport init

  # Create config file at a specific path
  solarreport init -o myconfig.yaml

  # Force overwrite existing file
  solarreport init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/solarreport.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	printer := ui.NewPrinter(cmd.ErrOrStderr())
	printer.Success("Created configuration file: %s\n", outputPath)
	printer.Info("\nEdit this file to set:\n")
	printer.Info("  - the catalog files reports are read from\n")
	printer.Info("  - the default format, language and reports\n")

	return nil
}
