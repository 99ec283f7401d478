package table

import "errors"

// ErrUnknownFormat is returned by New for a format other than text or markdown.
var ErrUnknownFormat = errors.New("unknown table format: must be text or markdown")
