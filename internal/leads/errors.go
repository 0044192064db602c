package leads

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncomplete is matched by MissingFieldsError
	ErrIncomplete = errors.New("all fields are required")

	// ErrInvalidVolume is returned when the volume is not one of the offered ranges
	ErrInvalidVolume = errors.New("volume must be one of 1-10, 11-50, 51-200, 200+")

	// ErrUnknownField is returned for form names outside the six lead fields
	ErrUnknownField = errors.New("unknown lead field")
)

// MissingFieldsError lists the blank fields of a rejected submission.
type MissingFieldsError struct {
	Fields []Field
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: missing %s", ErrIncomplete, strings.Join(names, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrIncomplete
}

// SubmissionError wraps a failure reported by a Submitter.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "leads: submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
