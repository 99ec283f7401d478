// Package table draws fixed-width text tables.
//
// A table is built from four primitives issued in sequence by the caller:
// horizontal rules, rows of cells, headers (rule, labelled row, rule) and
// blank lines between tables. Column widths are supplied by the caller for
// every call; nothing is measured from the content. A row must be drawn
// with exactly as many widths as the rule that opened its table, otherwise
// the vertical borders drift.
//
// Example of a two-section table drawn by TextRenderer:
//
//	--------------------+--------------------+------------------------------+--------------------
//	Planet's Number     |Planet's Id         |Planet's Semi-Major Axis      |Total Moons
//	1                   |Terre               |149598023                     |1
//	--------------------+--------------------+------------------------------+--------------------
//	Moon's Number       |Moon's Id
//	1                   |La Lune
//	--------------------+------------------------------------------------------------------------
//
// MarkdownRenderer accepts the same call sequence and emits GitHub-flavoured
// Markdown tables instead.
package table
