// Package models defines data structures shared by the survey conversion pipeline.
package models

// Table represents a parsed survey export.
type Table struct {
	// Source is the file name the table was read from (no path).
	Source string `json:"source"`
	// Header holds the column labels of row 0.
	Header []string `json:"header"`
	// Rows holds the respondent rows. Rows may be shorter than Header.
	Rows [][]string `json:"rows,omitempty"`
}

// Empty reports whether the table carries nothing to process.
func (t *Table) Empty() bool {
	return t == nil || len(t.Header) == 0 || len(t.Rows) == 0
}
