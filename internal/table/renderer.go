package table

import (
	"fmt"
	"io"
)

// Renderer draws tables one line at a time.
//
// Drawing methods return nothing: an error from the underlying writer is
// remembered, later calls become no-ops, and the first error is reported by
// Err. This mirrors bufio.Writer and keeps report code free of per-line
// error checks.
type Renderer interface {
	// DrawRule draws a horizontal border sized to widths.
	DrawRule(widths []int)

	// DrawRow draws one row. len(cells) must equal len(widths).
	DrawRow(cells []string, widths []int)

	// DrawHeader draws a rule, a row of labels and another rule.
	DrawHeader(labels []string, widths []int)

	// DrawBlankLines emits count empty lines.
	DrawBlankLines(count int)

	// WriteLine writes a free-standing line of text, such as a notice.
	WriteLine(text string)

	// Err returns the first error encountered while writing, if any.
	Err() error
}

// Format selects a Renderer implementation.
type Format string

const (
	// FormatText draws fixed-width text tables.
	FormatText Format = "text"

	// FormatMarkdown draws GitHub-flavoured Markdown tables.
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown}
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatMarkdown:
		return true
	default:
		return false
	}
}

// New returns a Renderer for format that writes to output.
func New(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(output), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
