package table

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownRenderer draws the same call sequence as TextRenderer as
// GitHub-flavoured Markdown tables. Column widths are ignored.
//
// Calls are interpreted as follows:
//   - the first row after a closed table (or at start) is the header
//   - DrawHeader starts a new table with the given labels
//   - a rule closes the current table once it has body rows
//   - DrawBlankLines and WriteLine close the current table, even header-only
//
// A table is written when it is closed. Call Flush to write a table that
// is still open.
type MarkdownRenderer struct {
	output io.Writer
	err    error

	// header is the open table's header; nil when no table is open.
	header []string
	rows   [][]string
}

var _ Renderer = (*MarkdownRenderer)(nil)

// NewMarkdownRenderer creates a MarkdownRenderer that writes to output.
func NewMarkdownRenderer(output io.Writer) *MarkdownRenderer {
	return &MarkdownRenderer{output: output}
}

// DrawRule closes the open table if it already has body rows.
func (r *MarkdownRenderer) DrawRule(_ []int) {
	if r.header != nil && len(r.rows) > 0 {
		r.Flush()
	}
}

// DrawRow adds a body row, or opens a table with cells as its header.
func (r *MarkdownRenderer) DrawRow(cells []string, _ []int) {
	row := escapeCells(cells)
	if r.header == nil {
		r.header = row
		return
	}
	r.rows = append(r.rows, row)
}

// DrawHeader closes any open table and opens a new one with labels.
func (r *MarkdownRenderer) DrawHeader(labels []string, _ []int) {
	r.Flush()
	r.header = escapeCells(labels)
}

// DrawBlankLines closes the open table. Markdown collapses consecutive
// blank lines, so count only matters as a table boundary.
func (r *MarkdownRenderer) DrawBlankLines(_ int) {
	r.Flush()
}

// WriteLine closes the open table and writes text as a paragraph.
func (r *MarkdownRenderer) WriteLine(text string) {
	r.Flush()
	md := markdown.NewMarkdown(r.output)
	md.PlainText(text).PlainText("").PlainText("")
	r.build(md)
}

// Flush writes the open table, if any.
func (r *MarkdownRenderer) Flush() {
	if r.header == nil {
		return
	}

	md := markdown.NewMarkdown(r.output)
	md.Table(markdown.TableSet{
		Header: r.header,
		Rows:   r.rows,
	})
	md.PlainText("")

	r.header = nil
	r.rows = nil
	r.build(md)
}

// Err returns the first error encountered while writing.
func (r *MarkdownRenderer) Err() error {
	return r.err
}

func (r *MarkdownRenderer) build(md *markdown.Markdown) {
	if r.err != nil {
		return
	}
	r.err = md.Build()
}

// escapeCells escapes pipe characters so cell text cannot split a column.
func escapeCells(cells []string) []string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return escaped
}
