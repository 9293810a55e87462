package filler

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ukaji3/formfill-go/pkg/formfill/models"
)

// SanitizeName keeps Latin and Cyrillic letters, ASCII digits and ASCII
// whitespace, then collapses each whitespace run into a single underscore.
// Other Unicode spaces such as NBSP are removed like any other character.
func SanitizeName(name string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range name {
		switch {
		case isASCIISpace(r):
			if !inSpace {
				b.WriteByte('_')
				inSpace = true
			}
			continue
		case r >= '0' && r <= '9':
		case unicode.IsLetter(r) && (unicode.Is(unicode.Latin, r) || unicode.Is(unicode.Cyrillic, r)):
		default:
			// Removed characters do not break a whitespace run.
			continue
		}
		b.WriteRune(r)
		inSpace = false
	}
	return b.String()
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// RespondentName returns the display name of the ordinal-th respondent (1-based).
func (o Options) RespondentName(answers *models.Answers, ordinal int) string {
	if name, ok := answers.Get(o.NameField); ok {
		return name
	}
	return fmt.Sprintf(o.FallbackName, ordinal)
}

// FileName returns the output file name for a respondent name.
func (o Options) FileName(name string) string {
	return o.FilePrefix + "_" + SanitizeName(name) + o.Extension
}
