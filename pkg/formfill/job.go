package formfill

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/formfill-go/pkg/formfill/aggregate"
	"github.com/ukaji3/formfill-go/pkg/formfill/filler"
	"github.com/ukaji3/formfill-go/pkg/formfill/models"
	"github.com/ukaji3/formfill-go/pkg/formfill/output"
	"github.com/ukaji3/formfill-go/pkg/formfill/parser"
)

// Request names the files of one conversion job.
type Request struct {
	// ResponsesPath is the survey export (CSV or xlsx).
	ResponsesPath string
	// TemplatePath is the template document. Empty synthesizes one.
	TemplatePath string
	// OutputDir receives the generated documents. It is created if absent.
	OutputDir string
}

// Result describes a finished job.
type Result struct {
	JobID       uuid.UUID
	Respondents int
	Files       []string
	// Template is the template actually used; empty when nothing was processed.
	Template string
}

type runConfig struct {
	logger   *zap.Logger
	progress func(line string)
}

// RunOption customizes Run and Start.
type RunOption func(*runConfig)

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) RunOption {
	return func(c *runConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProgress registers a receiver for human-readable progress lines.
func WithProgress(fn func(line string)) RunOption {
	return func(c *runConfig) {
		c.progress = fn
	}
}

func newRunConfig(options []RunOption) *runConfig {
	c := &runConfig{logger: zap.NewNop()}
	for _, o := range options {
		o(c)
	}
	return c
}

func (c *runConfig) report(format string, args ...any) {
	if c.progress != nil {
		c.progress(fmt.Sprintf(format, args...))
	}
}

// Run converts a survey export into one document per respondent.
func Run(req Request, opts Options, options ...RunOption) (*Result, error) {
	cfg := newRunConfig(options)
	result := &Result{JobID: uuid.New()}
	logger := cfg.logger.With(zap.String("job_id", result.JobID.String()))

	if err := validate(req); err != nil {
		return nil, err
	}
	logger.Info("job started",
		zap.String("responses", req.ResponsesPath),
		zap.String("template", req.TemplatePath),
		zap.String("output_dir", req.OutputDir))

	table, answers, err := load(req.ResponsesPath, opts)
	if err != nil {
		return nil, err
	}
	result.Respondents = len(answers)
	logger.Info("responses read",
		zap.String("source", table.Source),
		zap.Int("columns", len(table.Header)),
		zap.Int("respondents", len(answers)))
	cfg.report("read %d respondents from %s", len(answers), table.Source)

	f := filler.New(opts.Filler, filler.WithLogger(logger), filler.WithProgress(cfg.progress))
	files, err := f.Fill(req.TemplatePath, req.OutputDir, answers)
	if err != nil {
		return nil, NewJobError(StageFill, req.OutputDir, ErrDocumentIO, err)
	}
	result.Files = files
	if len(answers) > 0 {
		result.Template = req.TemplatePath
		if result.Template == "" {
			result.Template = filepath.Join(req.OutputDir, opts.Filler.AutoTemplateName)
		}
	}

	logger.Info("job finished", zap.Int("documents", len(files)))
	return result, nil
}

// Inspect reads and aggregates a survey export without writing documents.
func Inspect(responsesPath string, opts Options) (*output.Report, error) {
	if err := checkExists(responsesPath); err != nil {
		return nil, err
	}
	table, answers, err := load(responsesPath, opts)
	if err != nil {
		return nil, err
	}
	return output.NewReport(table.Source, answers), nil
}

// GenerateTemplate synthesizes the automatic template for a survey export in
// outputDir and returns its path.
func GenerateTemplate(responsesPath, outputDir string, opts Options, options ...RunOption) (string, error) {
	cfg := newRunConfig(options)
	if err := checkExists(responsesPath); err != nil {
		return "", err
	}
	_, answers, err := load(responsesPath, opts)
	if err != nil {
		return "", err
	}
	if len(answers) == 0 {
		return "", NewJobError(StageTemplate, responsesPath, nil, errors.New("no respondents to take questions from"))
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", NewJobError(StageTemplate, outputDir, ErrDocumentIO, err)
	}
	path := filepath.Join(outputDir, opts.Filler.AutoTemplateName)
	if err := filler.New(opts.Filler, filler.WithLogger(cfg.logger)).CreateTemplate(path, answers[0]); err != nil {
		return "", NewJobError(StageTemplate, path, ErrDocumentIO, err)
	}
	cfg.logger.Info("created automatic template", zap.String("path", path), zap.Int("questions", answers[0].Len()))
	cfg.report("created automatic template: %s", path)
	return path, nil
}

func validate(req Request) error {
	if err := checkExists(req.ResponsesPath); err != nil {
		return err
	}
	if req.TemplatePath != "" {
		if err := checkExists(req.TemplatePath); err != nil {
			return err
		}
	}
	if req.OutputDir == "" {
		return NewJobError(StageValidate, "", nil, errors.New("output directory is required"))
	}
	return nil
}

func checkExists(path string) error {
	if path == "" {
		return NewJobError(StageValidate, "", ErrInputNotFound, errors.New("no input file given"))
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewJobError(StageValidate, path, ErrInputNotFound, err)
		}
		return NewJobError(StageValidate, path, nil, err)
	}
	if info.IsDir() {
		return NewJobError(StageValidate, path, ErrInputNotFound, errors.New("is a directory"))
	}
	return nil
}

func load(path string, opts Options) (*models.Table, []*models.Answers, error) {
	table, err := parser.ReadTable(path, opts.Parser)
	if err != nil {
		return nil, nil, NewJobError(StageRead, path, nil, err)
	}
	return table, aggregate.AggregateTable(table, opts.Aggregate), nil
}

// Outcome is the terminal signal of a started job.
type Outcome struct {
	Result  *Result
	Err     error
	Message string
}

// Job is a conversion running on its own goroutine.
type Job struct {
	lines chan string
	done  chan Outcome
}

// Start runs the job on a worker goroutine. Progress lines are published on
// Lines, which must be drained; the final Outcome follows on Done once Lines
// is closed. A WithProgress option is replaced by the Lines channel.
func Start(req Request, opts Options, options ...RunOption) *Job {
	j := &Job{
		lines: make(chan string, 64),
		done:  make(chan Outcome, 1),
	}
	options = append(options, WithProgress(func(line string) { j.lines <- line }))

	go func() {
		defer close(j.done)
		result, err := Run(req, opts, options...)
		close(j.lines)
		j.done <- newOutcome(result, err)
	}()
	return j
}

func newOutcome(result *Result, err error) Outcome {
	if err != nil {
		return Outcome{Err: err, Message: fmt.Sprintf("conversion failed: %v", err)}
	}
	if len(result.Files) == 0 {
		return Outcome{Result: result, Message: "nothing to process"}
	}
	return Outcome{
		Result:  result,
		Message: fmt.Sprintf("conversion finished: %d documents written", len(result.Files)),
	}
}

// Lines returns the progress line channel. It is closed when the job ends.
func (j *Job) Lines() <-chan string {
	return j.lines
}

// Done returns the outcome channel. It delivers exactly one Outcome.
func (j *Job) Done() <-chan Outcome {
	return j.done
}

// Wait discards remaining progress lines and returns the outcome.
func (j *Job) Wait() Outcome {
	for range j.lines {
	}
	return <-j.done
}
