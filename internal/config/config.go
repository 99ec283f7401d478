package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/solarreport/internal/report"
	"github.com/nao1215/solarreport/internal/table"
	"github.com/nao1215/solarreport/internal/textcase"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "solarreport"

	// DefaultFormat renders reports as fixed-width text tables.
	DefaultFormat = string(table.FormatText)

	// DefaultLanguage is the language whose casing rules title-case ids.
	DefaultLanguage = "en"

	// DefaultJobs is the number of catalog files parsed concurrently.
	DefaultJobs = 4

	// LogFormatText writes human-readable log lines.
	LogFormatText = "text"

	// LogFormatJSON writes one JSON object per log line.
	LogFormatJSON = "json"
)

// Config holds all configuration options for solarreport.
// It is populated from defaults, the config file and CLI flags, in that
// order, and passed explicitly to the commands that need it.
type Config struct {
	// Catalogs are catalog files to read planets and moons from.
	// When empty, the SQLite store in DBDir is used instead.
	Catalogs []string

	// DBDir is the directory holding the SQLite catalog store.
	// Defaults to the XDG data directory (~/.local/share/solarreport on Linux).
	DBDir string

	// Format is the table format: "text" or "markdown".
	Format string

	// Language is the BCP 47 tag used to title-case planet and moon ids.
	Language string

	// Reports are the report names to render, in order.
	// When empty, every report runs.
	Reports []string

	// OutputFile is the file reports are written to.
	// When empty, reports go to stdout.
	OutputFile string

	// Jobs is the number of catalog files parsed concurrently.
	Jobs int

	// Verbose enables debug log output.
	Verbose bool

	// LogFormat is "text" or "json".
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, .solarreport is searched in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DBDir:     XDGDataDir(),
		Format:    DefaultFormat,
		Language:  DefaultLanguage,
		Jobs:      DefaultJobs,
		LogFormat: LogFormatText,
	}
}

// XDGDataDir returns the XDG data directory for solarreport.
// On Linux: ~/.local/share/solarreport
// On macOS: ~/Library/Application Support/solarreport
// On Windows: %LOCALAPPDATA%\solarreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for solarreport.
// On Linux: ~/.config/solarreport
// On macOS: ~/Library/Application Support/solarreport
// On Windows: %APPDATA%\solarreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if !table.Format(c.Format).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	if _, err := textcase.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLanguage, err)
	}

	for _, name := range c.Reports {
		if _, err := report.ParseKind(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidReport, err)
		}
	}

	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

// ReportKinds returns the configured reports as report kinds, or every
// report when none is configured. Call Validate first.
func (c *Config) ReportKinds() ([]report.Kind, error) {
	if len(c.Reports) == 0 {
		return report.Kinds(), nil
	}

	kinds := make([]report.Kind, 0, len(c.Reports))
	for _, name := range c.Reports {
		kind, err := report.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// UsesCatalogFiles reports whether reports read catalog files directly
// instead of the SQLite store.
func (c *Config) UsesCatalogFiles() bool {
	return len(c.Catalogs) > 0
}
