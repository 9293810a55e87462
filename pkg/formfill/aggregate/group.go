// Package aggregate reconstructs logical survey questions from exported columns
// and renders one answer string per question for every respondent.
package aggregate

import (
	"strings"

	"github.com/ukaji3/formfill-go/pkg/formfill/models"
)

// DefaultSeparator splits a composite header into question and suffix.
const DefaultSeparator = " / "

// GroupQuestions groups composite headers by their question prefix.
// Groups appear in first-occurrence order; columns keep header order.
func GroupQuestions(header []string, separator string) []models.QuestionGroup {
	if separator == "" {
		separator = DefaultSeparator
	}

	var groups []models.QuestionGroup
	index := make(map[string]int)
	for _, h := range header {
		key, _, ok := strings.Cut(h, separator)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.QuestionGroup{Key: key})
		}
		groups[i].Columns = append(groups[i].Columns, h)
	}
	return groups
}

// columnIndex maps each header label to its first position.
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

// value returns the cell of row under label. Missing labels and cells past the
// end of a short row read as absent.
func (c columnIndex) value(row []string, label string) (string, bool) {
	i, ok := c[label]
	if !ok || i >= len(row) {
		return "", false
	}
	return row[i], true
}
