package table

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// ruleChar fills a column in a horizontal rule.
	ruleChar = "-"

	// ruleJoint joins two columns in a horizontal rule.
	ruleJoint = "+"

	// cellSeparator separates two cells in a row.
	cellSeparator = "|"
)

// cellWidth measures text in terminal cells. East Asian ambiguous runes
// count as one cell whatever the locale, so output does not depend on
// LANG or LC_ALL.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// TextRenderer draws fixed-width text tables to an io.Writer.
//
// Cells are padded with spaces on the right up to their column width,
// measured in terminal cells. Text longer than its column is written in
// full and pushes the following borders to the right; it is never truncated.
type TextRenderer struct {
	output io.Writer
	err    error
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a TextRenderer that writes to output.
func NewTextRenderer(output io.Writer) *TextRenderer {
	return &TextRenderer{output: output}
}

// DrawRule draws "-" repeated width times per column, joined by "+".
func (r *TextRenderer) DrawRule(widths []int) {
	r.writeLine(Rule(widths))
}

// DrawRow draws cells padded to widths, separated by "|".
func (r *TextRenderer) DrawRow(cells []string, widths []int) {
	r.writeLine(Row(cells, widths))
}

// DrawHeader draws a rule, the labels as a row, and a closing rule.
func (r *TextRenderer) DrawHeader(labels []string, widths []int) {
	r.DrawRule(widths)
	r.DrawRow(labels, widths)
	r.DrawRule(widths)
}

// DrawBlankLines emits count empty lines. Non-positive counts emit nothing.
func (r *TextRenderer) DrawBlankLines(count int) {
	if count <= 0 {
		return
	}
	r.write(strings.Repeat("\n", count))
}

// WriteLine writes text followed by a line break.
func (r *TextRenderer) WriteLine(text string) {
	r.writeLine(text)
}

// Err returns the first write error.
func (r *TextRenderer) Err() error {
	return r.err
}

func (r *TextRenderer) writeLine(line string) {
	r.write(line + "\n")
}

func (r *TextRenderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.output, s)
}

// Rule returns a horizontal rule for widths without a line break.
// Negative widths are treated as zero.
func Rule(widths []int) string {
	var sb strings.Builder
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(ruleJoint)
		}
		if w > 0 {
			sb.WriteString(strings.Repeat(ruleChar, w))
		}
	}
	return sb.String()
}

// Row returns cells padded to widths and joined by "|", without a line break.
// Cells beyond len(widths) are written unpadded.
func Row(cells []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(cellSeparator)
		}
		if i < len(widths) {
			cell = cellWidth.FillRight(cell, widths[i])
		}
		sb.WriteString(cell)
	}
	return sb.String()
}
