// Package engine turns declarative customization inputs into structured
// training routines. All operations are deterministic for a given request
// seed and catalog.
package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates means filtering was so restrictive that no exercise
	// survived even after relaxation.
	ErrNoCandidates = errors.New("no candidate exercises after filtering")

	// ErrEmptyRoutine means an adaptation removed every exercise.
	ErrEmptyRoutine = errors.New("adaptation removed all exercises")
)

// InvalidInputError reports a request field that fails validation
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// UnknownExerciseError reports a name that resolves to nothing in the catalog
type UnknownExerciseError struct {
	Name string
}

func (e *UnknownExerciseError) Error() string {
	return fmt.Sprintf("unknown exercise: %q", e.Name)
}

// InvalidGoalError reports program goals that cannot be planned
type InvalidGoalError struct {
	Reason string
}

func (e *InvalidGoalError) Error() string {
	return fmt.Sprintf("invalid goal: %s", e.Reason)
}
