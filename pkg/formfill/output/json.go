// Package output provides JSON serialization for aggregated survey answers.
package output

import (
	"encoding/json"

	"github.com/ukaji3/formfill-go/pkg/formfill/models"
)

// Report is the inspect view of one survey export.
type Report struct {
	Source      string            `json:"source"`
	Questions   []string          `json:"questions"`
	Respondents []*models.Answers `json:"respondents"`
}

// NewReport builds a report. Questions are taken from the first respondent.
func NewReport(source string, answers []*models.Answers) *Report {
	r := &Report{Source: source, Questions: []string{}, Respondents: answers}
	if len(answers) > 0 {
		r.Questions = answers[0].Keys()
	}
	if r.Respondents == nil {
		r.Respondents = []*models.Answers{}
	}
	return r
}

// ToJSON serializes a report to JSON.
func ToJSON(r *Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// AnswersToJSON serializes the answer mappings alone as a JSON array.
func AnswersToJSON(answers []*models.Answers, pretty bool) ([]byte, error) {
	if answers == nil {
		answers = []*models.Answers{}
	}
	if pretty {
		return json.MarshalIndent(answers, "", "  ")
	}
	return json.Marshal(answers)
}
