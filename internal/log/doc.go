// Package log builds the slog loggers used by solarreport.
//
// Loggers write to stderr only, so report output on stdout is never mixed
// with log lines. The level is Warn by default and Debug in verbose mode.
//
// Paths under the user's home directory are shortened to "~" by the
// HomeHandler, which keeps logs free of the user name when they are shared:
//
//	logger := log.NewLogger(os.Stderr, true)
//	logger.Info("catalog loaded", "path", "/home/alice/solar.yaml")
//	// ... path=~/solar.yaml
//
//	slog.SetDefault(logger)
package log
