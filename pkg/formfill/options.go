// Package formfill converts survey exports into one filled document per respondent.
package formfill

import (
	"github.com/ukaji3/formfill-go/pkg/formfill/aggregate"
	"github.com/ukaji3/formfill-go/pkg/formfill/filler"
	"github.com/ukaji3/formfill-go/pkg/formfill/parser"
)

// Options configures a conversion job.
type Options struct {
	// Parser controls how the survey export is read.
	Parser parser.Options
	// Aggregate controls how answers are rendered.
	Aggregate aggregate.Options
	// Filler holds the document literals and naming rules.
	Filler filler.Options
}

// DefaultOptions returns default job options.
func DefaultOptions() Options {
	return Options{
		Parser:    parser.DefaultOptions(),
		Aggregate: aggregate.DefaultOptions(),
		Filler:    filler.DefaultOptions(),
	}
}
