package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() while users still get a readable message.
var (
	// ErrInvalidFormat is returned when the output format is not one of
	// the supported table formats.
	ErrInvalidFormat = errors.New("invalid format: must be text or markdown")

	// ErrInvalidLanguage is returned when the language is not a valid
	// BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidReport is returned when a report name is not known.
	ErrInvalidReport = errors.New("invalid report")

	// ErrInvalidJobs is returned when the number of parallel catalog
	// loads is not positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrInvalidLogFormat is returned when the log format is neither
	// text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")
)
