package parser

// isBlankRow reports whether every cell of row is empty.
func isBlankRow(row []string) bool {
	return countNonEmptyCells(row) == 0
}

// countNonEmptyCells counts non-empty cells in a row.
func countNonEmptyCells(row []string) int {
	count := 0
	for _, cell := range row {
		if cell != "" {
			count++
		}
	}
	return count
}
