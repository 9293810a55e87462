package filler

import (
	"strings"

	"github.com/ukaji3/formfill-go/pkg/formfill/docx"
)

// ReplaceAnswerAfterQuestion fills the first placeholder that follows the
// question label inside a single region. Regions are tried in document
// priority order and the search stops at the first fill. It returns the
// region that received the answer.
func ReplaceAnswerAfterQuestion(doc *docx.Document, question, answer, placeholder string) (docx.Region, bool) {
	for _, region := range doc.Regions() {
		if ReplaceInParagraphs(region.Paragraphs(), question, answer, placeholder) {
			return region, true
		}
	}
	return nil, false
}

// ReplaceInParagraphs scans paragraphs top to bottom. The first paragraph
// containing question arms the search; the next later paragraph containing
// placeholder gets answer and the scan stops.
func ReplaceInParagraphs(paragraphs []*docx.Paragraph, question, answer, placeholder string) bool {
	questionFound := false
	for _, p := range paragraphs {
		text := p.Text()
		if strings.Contains(text, question) {
			questionFound = true
			continue
		}
		if questionFound && strings.Contains(text, placeholder) {
			return p.ReplaceText(placeholder, answer)
		}
	}
	return false
}

// ReplaceRemaining replaces every placeholder still present in any region
// and returns the number of paragraphs rewritten.
func ReplaceRemaining(doc *docx.Document, placeholder, replacement string) int {
	n := 0
	for _, region := range doc.Regions() {
		for _, p := range region.Paragraphs() {
			if p.ReplaceText(placeholder, replacement) {
				n++
			}
		}
	}
	return n
}
