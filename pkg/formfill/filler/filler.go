// Package filler renders one document per respondent by writing answers into
// the placeholders of a template document.
package filler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/formfill-go/pkg/formfill/docx"
	"github.com/ukaji3/formfill-go/pkg/formfill/models"
)

// Filler writes answer mappings into template documents.
type Filler struct {
	opts     Options
	logger   *zap.Logger
	progress func(line string)
}

// Option customizes a Filler.
type Option func(*Filler)

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Filler) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithProgress registers a receiver for human-readable progress lines.
func WithProgress(fn func(line string)) Option {
	return func(f *Filler) {
		f.progress = fn
	}
}

// New creates a Filler.
func New(opts Options, options ...Option) *Filler {
	f := &Filler{opts: opts, logger: zap.NewNop()}
	for _, o := range options {
		o(f)
	}
	return f
}

// Stats summarizes the placeholders rewritten in one document.
type Stats struct {
	// Placed counts questions whose answer found a placeholder.
	Placed int
	// Unplaced counts questions without a placeholder after their label.
	Unplaced int
	// Remaining counts paragraphs swept to the not-specified marker.
	Remaining int
}

func (f *Filler) report(format string, args ...any) {
	if f.progress != nil {
		f.progress(fmt.Sprintf(format, args...))
	}
}

// Fill writes one document per answer mapping into outputDir and returns the
// written paths. An empty templatePath synthesizes a template from the first
// mapping. The first failure aborts the remaining respondents.
func (f *Filler) Fill(templatePath, outputDir string, answers []*models.Answers) ([]string, error) {
	if len(answers) == 0 {
		f.logger.Info("nothing to process")
		f.report("nothing to process")
		return nil, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	if templatePath == "" {
		templatePath = filepath.Join(outputDir, f.opts.AutoTemplateName)
		if err := f.CreateTemplate(templatePath, answers[0]); err != nil {
			return nil, err
		}
		f.logger.Info("created automatic template", zap.String("path", templatePath))
		f.report("created automatic template: %s", templatePath)
	}

	written := make(map[string]bool, len(answers))
	files := make([]string, 0, len(answers))
	for i, a := range answers {
		name := f.opts.RespondentName(a, i+1)
		outputPath := filepath.Join(outputDir, f.opts.FileName(name))
		if written[outputPath] {
			f.logger.Warn("output file overwritten by a later respondent",
				zap.String("path", outputPath), zap.Int("respondent", i+1))
		}

		stats, err := f.FillFile(templatePath, outputPath, a)
		if err != nil {
			return files, fmt.Errorf("respondent %d (%s): %w", i+1, name, err)
		}
		written[outputPath] = true
		files = append(files, outputPath)

		f.logger.Info("created document",
			zap.String("path", outputPath),
			zap.String("respondent", name),
			zap.Int("placed", stats.Placed),
			zap.Int("unplaced", stats.Unplaced),
			zap.Int("remaining", stats.Remaining))
		f.report("created document %s for %s", outputPath, name)
	}
	return files, nil
}

// FillFile loads a fresh copy of the template, fills it and saves it to outputPath.
func (f *Filler) FillFile(templatePath, outputPath string, answers *models.Answers) (Stats, error) {
	doc, err := docx.Open(templatePath)
	if err != nil {
		return Stats{}, fmt.Errorf("open template: %w", err)
	}
	stats := f.FillDocument(doc, answers)
	if err := doc.Save(outputPath); err != nil {
		return stats, fmt.Errorf("save document: %w", err)
	}
	return stats, nil
}

// FillDocument writes every answer after its question label, then sweeps the
// placeholders left over.
func (f *Filler) FillDocument(doc *docx.Document, answers *models.Answers) Stats {
	var stats Stats
	for _, p := range answers.Pairs() {
		if strings.TrimSpace(p.Question) == "" {
			continue
		}
		answer := p.Answer
		if strings.TrimSpace(answer) == "" {
			answer = f.opts.NotSpecified
		}

		region, ok := ReplaceAnswerAfterQuestion(doc, p.Question, answer, f.opts.Placeholder)
		if !ok {
			stats.Unplaced++
			f.logger.Debug("no placeholder after question", zap.String("question", p.Question))
			continue
		}
		stats.Placed++
		f.logger.Debug("answer placed",
			zap.String("question", p.Question),
			zap.Stringer("region", region.Kind()))
	}
	stats.Remaining = ReplaceRemaining(doc, f.opts.Placeholder, f.opts.NotSpecified)
	return stats
}

// CreateTemplate synthesizes a template listing the questions of sample and
// saves it to path.
func (f *Filler) CreateTemplate(path string, sample *models.Answers) error {
	b := docx.NewBuilder()
	b.AddParagraph(f.opts.Title, docx.RunStyle{Bold: true, SizePt: f.opts.TitleSizePt}, docx.AlignCenter)
	b.AddEmptyParagraph()

	for _, question := range sample.Keys() {
		b.AddParagraph(question, docx.RunStyle{Bold: true}, docx.AlignDefault)
		b.AddParagraph(f.opts.AnswerLabel+f.opts.Placeholder, docx.RunStyle{}, docx.AlignDefault)
		b.AddEmptyParagraph()
	}

	if err := b.Document().Save(path); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}
