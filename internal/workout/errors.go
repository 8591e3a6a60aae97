package workout

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("invalid workout input")
	ErrNotFound        = errors.New("workout not found")
	ErrDuplicateID     = errors.New("duplicate workout id")
	ErrSnapshotCorrupt = errors.New("workouts snapshot corrupt")
)

// ValidationError names the offending input. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
