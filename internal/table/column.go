package table

// Column pairs a fixed width with the label shown in the header.
type Column struct {
	Width int
	Label string
}

// Columns is the ordered layout of one table.
type Columns []Column

// Widths returns the column widths in order.
func (c Columns) Widths() []int {
	widths := make([]int, len(c))
	for i, col := range c {
		widths[i] = col.Width
	}
	return widths
}

// Labels returns the column labels in order.
func (c Columns) Labels() []string {
	labels := make([]string, len(c))
	for i, col := range c {
		labels[i] = col.Label
	}
	return labels
}

// TotalWidth returns the width of a rule drawn for c, separators included.
func (c Columns) TotalWidth() int {
	if len(c) == 0 {
		return 0
	}
	total := len(c) - 1
	for _, col := range c {
		total += col.Width
	}
	return total
}
