package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/solarreport/internal/catalog"
	"github.com/nao1215/solarreport/internal/config"
	"github.com/nao1215/solarreport/internal/database"
	"github.com/nao1215/solarreport/internal/ui"
	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <catalog-file>...",
		Short: "Import catalog files into the SQLite store",
		Long: `Import parses one or more catalog files, merges them in the order given and
replaces the contents of the SQLite catalog store with the result.

The import is all or nothing: if any file fails to parse, or two files
define the same planet, the store is left untouched.

Examples:
  # Import one catalog
  solarreport import solar.yaml

  # Merge several catalogs, parsing up to 8 files at once
  solarreport import -j 8 inner.yaml giants.json dwarfs.yaml

  # Use a custom store location
  solarreport import --db-dir ./db solar.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportCmd,
	}

	cmd.Flags().String("db-dir", "",
		"Directory of the SQLite catalog store (default: XDG data directory)")
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of catalog files parsed concurrently")

	return cmd
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db-dir") {
		if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
			return err
		}
	}
	if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
		return err
	}
	cfg.Catalogs = args

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg)

	ctx, cancel := signalContext(cmd)
	defer cancel()

	return runImport(ctx, cfg, ui.NewPrinter(cmd.ErrOrStderr()), logger)
}

// runImport loads cfg.Catalogs and stores them in the database in cfg.DBDir.
func runImport(ctx context.Context, cfg *config.Config, printer *ui.Printer, logger *slog.Logger) error {
	loader := catalog.NewBatchLoader(
		catalog.WithConcurrency(cfg.Jobs),
		catalog.WithBatchLogger(logger),
	)
	c, err := loader.LoadAll(ctx, cfg.Catalogs)
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		printer.Warning("The catalog is empty; reports will only show notices.\n")
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveCatalog(ctx, c, strings.Join(cfg.Catalogs, ", ")); err != nil {
		return err
	}

	planets, moons, err := db.Counts(ctx)
	if err != nil {
		return err
	}

	logger.Info("catalog imported", "path", db.Path(), "planets", planets, "moons", moons)
	printer.Success("Imported %d planets and %d moons\n", planets, moons)
	printer.Info("Catalog store: %s\n", db.Path())

	return nil
}
