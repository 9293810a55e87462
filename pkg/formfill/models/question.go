package models

// QuestionGroup represents the set of columns that make up one logical question.
type QuestionGroup struct {
	// Key is the question text preceding the first separator.
	Key string `json:"key"`
	// Columns lists every composite header sharing Key, in header order.
	Columns []string `json:"columns"`
}
