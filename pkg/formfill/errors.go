package formfill

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the survey export or template does not exist.
var ErrInputNotFound = errors.New("input not found")

// ErrDocumentIO indicates a template could not be read or an output document
// could not be written.
var ErrDocumentIO = errors.New("document i/o failed")

// Stage names the job step an error occurred in.
type Stage string

const (
	StageValidate Stage = "validate"
	StageRead     Stage = "read"
	StageTemplate Stage = "template"
	StageFill     Stage = "fill"
)

// JobError represents a failed conversion job.
type JobError struct {
	Stage Stage
	Path  string
	// Kind is one of the sentinel errors of this package, or nil.
	Kind error
	Err  error
}

func (e *JobError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Stage)
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Kind != nil {
		msg += ": " + e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *JobError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// NewJobError creates a new JobError.
func NewJobError(stage Stage, path string, kind, err error) *JobError {
	return &JobError{
		Stage: stage,
		Path:  path,
		Kind:  kind,
		Err:   err,
	}
}
