package aggregate

import (
	"strings"

	"github.com/ukaji3/formfill-go/pkg/formfill/models"
)

// Options configures answer rendering.
type Options struct {
	// Separator splits composite headers. Empty means DefaultSeparator.
	Separator string
	// ScoreMarker is the header suffix identifying a score column.
	ScoreMarker string
	// ScoreLabel is the word written before the score value.
	ScoreLabel string
}

// DefaultOptions returns the literals used by Yandex Forms exports.
func DefaultOptions() Options {
	return Options{
		Separator:   DefaultSeparator,
		ScoreMarker: "Баллы",
		ScoreLabel:  "баллы",
	}
}

// Aggregate renders one answer mapping per data row.
// It returns nil when the header or rows are empty.
func Aggregate(header []string, rows [][]string, opts Options) []*models.Answers {
	if len(header) == 0 || len(rows) == 0 {
		return nil
	}
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	groups := GroupQuestions(header, opts.Separator)
	idx := newColumnIndex(header)

	result := make([]*models.Answers, 0, len(rows))
	for _, row := range rows {
		result = append(result, aggregateRow(header, row, groups, idx, opts))
	}
	return result
}

// AggregateTable is Aggregate over a parsed table.
func AggregateTable(t *models.Table, opts Options) []*models.Answers {
	if t == nil {
		return nil
	}
	return Aggregate(t.Header, t.Rows, opts)
}

func aggregateRow(header, row []string, groups []models.QuestionGroup, idx columnIndex, opts Options) *models.Answers {
	answers := models.NewAnswers()
	processed := make(map[string]bool, len(groups))

	for _, g := range groups {
		answers.Set(g.Key, renderGroup(g, row, idx, opts))
		processed[g.Key] = true
	}

	// Simple fields not already captured as a group key.
	for i, h := range header {
		if strings.Contains(h, opts.Separator) || processed[h] {
			continue
		}
		if i < len(row) {
			answers.Set(h, row[i])
		}
	}
	return answers
}

// renderGroup renders the answer of one question group for one row.
func renderGroup(g models.QuestionGroup, row []string, idx columnIndex, opts Options) string {
	var (
		b     strings.Builder
		score string
	)

	if v, ok := idx.value(row, g.Key); ok && v != "" {
		b.WriteString(v)
	}

	for _, column := range g.Columns {
		v, ok := idx.value(row, column)
		if !ok || v == "" {
			continue
		}
		_, suffix, _ := strings.Cut(column, opts.Separator)
		if suffix == "" {
			continue
		}
		if suffix == opts.ScoreMarker {
			score = v
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(suffix)
	}

	answer := b.String()
	if score != "" {
		if answer != "" {
			answer += "; " + opts.ScoreLabel + " - " + score
		} else {
			answer = opts.ScoreLabel + " - " + score
		}
	}
	return answer
}
