package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/solarreport/internal/catalog"
	"github.com/nao1215/solarreport/internal/config"
	"github.com/nao1215/solarreport/internal/database"
	"github.com/nao1215/solarreport/internal/report"
	"github.com/nao1215/solarreport/internal/table"
	"github.com/nao1215/solarreport/internal/textcase"
	"github.com/spf13/cobra"
)

// catalogSource provides planets and moons for the reports.
type catalogSource interface {
	report.PlanetProvider
	report.MoonProvider
}

// flusher is implemented by renderers that buffer output.
type flusher interface {
	Flush()
}

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	names := make([]string, 0, len(report.Kinds()))
	for _, k := range report.Kinds() {
		names = append(names, string(k))
	}

	cmd := &cobra.Command{
		Use:   "report [planets|moons|gravity|temperature]...",
		Short: "Render planet and moon reports",
		Long: `Report renders the named reports in the order given, or all four when
no report is named.

Planets and moons come from the catalog files given with --catalog (or the
'catalog' key of the configuration file). Without catalog files, the SQLite
store filled by 'solarreport import' is read.

Examples:
  # All reports from the imported catalog
  solarreport report

  # Only the gravity report, straight from a catalog file
  solarreport report gravity --catalog solar.yaml

  # Markdown output with French title-casing
  solarreport report -f markdown -l fr -o reports/solar.md`,
		Args:      cobra.OnlyValidArgs,
		ValidArgs: names,
		RunE:      runReportCmd,
	}

	cmd.Flags().StringSlice("catalog", nil,
		"Catalog file(s) to read instead of the SQLite store (repeatable)")
	cmd.Flags().String("db-dir", "",
		"Directory of the SQLite catalog store (default: XDG data directory)")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Output format: "+strings.Join(formatNames(), " or "))
	cmd.Flags().StringP("lang", "l", config.DefaultLanguage,
		"Language used to title-case ids (BCP 47 tag, e.g. en, fr, tr)")
	cmd.Flags().StringP("output", "o", "",
		"Write reports to the specified file path (creates directories if needed)")
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of catalog files parsed concurrently")

	return cmd
}

func formatNames() []string {
	formats := table.Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildReportConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg)

	ctx, cancel := signalContext(cmd)
	defer cancel()

	return runReport(ctx, cfg, cmd.OutOrStdout(), logger)
}

// buildReportConfig creates a Config from the configuration file and the
// report command's flags. Flags only override the file when set.
func buildReportConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("catalog") {
		if cfg.Catalogs, err = flags.GetStringSlice("catalog"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("db-dir") {
		if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("lang") {
		if cfg.Language, err = flags.GetString("lang"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}

	cfg.OutputFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Reports = args
	}

	return cfg, nil
}

// runReport renders the configured reports to stdout or cfg.OutputFile.
func runReport(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	kinds, err := cfg.ReportKinds()
	if err != nil {
		return err
	}

	tag, err := textcase.ParseLanguage(cfg.Language)
	if err != nil {
		return err
	}

	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	output := stdout
	if cfg.OutputFile != "" {
		f, err := createOutputFile(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	renderer, err := table.New(table.Format(cfg.Format), output)
	if err != nil {
		return err
	}

	gen := report.NewGenerator(source, source, renderer,
		report.WithLanguage(tag),
		report.WithLogger(logger),
	)
	if err := gen.Run(ctx, kinds...); err != nil {
		return err
	}

	if f, ok := renderer.(flusher); ok {
		f.Flush()
	}
	return renderer.Err()
}

// openSource returns the catalog files' provider when catalogs are
// configured, otherwise the SQLite store.
func openSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (catalogSource, func(), error) {
	if cfg.UsesCatalogFiles() {
		loader := catalog.NewBatchLoader(
			catalog.WithConcurrency(cfg.Jobs),
			catalog.WithBatchLogger(logger),
		)
		c, err := loader.LoadAll(ctx, cfg.Catalogs)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewProvider(c), func() {}, nil
	}

	db, err := database.Open(cfg.DBDir, database.ReadOnlyOptions())
	if err != nil {
		return nil, nil, err
	}

	record, err := db.LastImport(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if record != nil {
		logger.Debug("reading catalog store",
			"path", db.Path(),
			"source", record.Source,
			"imported", record.Timestamp,
		)
	}

	return db, func() { _ = db.Close() }, nil
}

// createOutputFile creates path and any missing parent directories.
func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
