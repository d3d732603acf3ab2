package task

import (
	"errors"
	"fmt"
)

// Sentinel errors for record validation.
var (
	// ErrMissingField indicates a required field (id, title, due_date,
	// estimated_hours, importance) is absent or empty.
	ErrMissingField = errors.New("required field missing")
	// ErrBadDate indicates a due date that does not parse as a calendar date.
	ErrBadDate = errors.New("invalid due date")
	// ErrOutOfRange indicates a numeric field outside its valid range.
	ErrOutOfRange = errors.New("value out of range")
	// ErrDuplicateID indicates two or more records share the same identifier.
	ErrDuplicateID = errors.New("duplicate task ID")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	// ValCatMissingField indicates a required field is absent or empty.
	ValCatMissingField ValidationCategory = "missing_field"
	// ValCatBadDate indicates an unparseable due date.
	ValCatBadDate ValidationCategory = "bad_date"
	// ValCatOutOfRange indicates a numeric field outside its valid range.
	ValCatOutOfRange ValidationCategory = "out_of_range"
	// ValCatDuplicateID indicates a repeated task identifier.
	ValCatDuplicateID ValidationCategory = "duplicate_id"
)

// ValidationError records a per-record validation problem with enough
// context to point the caller at the offending record and field.
type ValidationError struct {
	Category ValidationCategory // Machine-readable category for programmatic handling
	Index    int                // Position of the record in the input batch
	TaskID   string             // Canonical identifier, when the record has one
	Field    string
	Err      error
}

// Error returns a human-readable string including record and field context.
func (e *ValidationError) Error() string {
	prefix := fmt.Sprintf("record %d", e.Index)
	if e.TaskID != "" {
		prefix += " (task " + e.TaskID + ")"
	}
	if e.Field != "" {
		return prefix + ": " + e.Field + ": " + e.Err.Error()
	}
	return prefix + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
