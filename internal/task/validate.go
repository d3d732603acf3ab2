package task

import (
	"fmt"
	"math"
	"strings"
)

// Validation bounds for numeric record fields.
const (
	MinEstimatedHours = 0.5
	MinImportance     = 1
	MaxImportance     = 10
)

// ValidateBatch checks every record against the schema and range rules and
// returns the validated tasks (preserving input order) alongside the
// per-record errors. A record with any failing field is excluded from the
// task list; the batch as a whole never fails here.
//
// Dependency identifiers are not required to resolve within the batch; they
// pass through unchanged.
func ValidateBatch(records []Record) ([]Task, []*ValidationError) {
	var (
		tasks []Task
		errs  []*ValidationError
		seen  = make(map[string]int, len(records)) // canonical id → first record index
	)

	for i, rec := range records {
		recErrs := validateRecord(i, rec)

		if !rec.ID.IsZero() {
			canonical := rec.ID.String()
			if first, dup := seen[canonical]; dup {
				recErrs = append(recErrs, &ValidationError{
					Category: ValCatDuplicateID,
					Index:    i,
					TaskID:   canonical,
					Field:    "id",
					Err:      fmt.Errorf("%w: %q already used by record %d", ErrDuplicateID, canonical, first),
				})
			} else {
				seen[canonical] = i
			}
		}

		if len(recErrs) > 0 {
			errs = append(errs, recErrs...)
			continue
		}

		due, _ := ParseDate(rec.DueDate) // already checked by validateRecord
		deps := rec.Dependencies
		if deps == nil {
			deps = []ID{}
		}
		tasks = append(tasks, Task{
			ID:             rec.ID,
			Title:          strings.TrimSpace(rec.Title),
			Due:            due,
			EstimatedHours: *rec.EstimatedHours,
			Importance:     int(*rec.Importance),
			Dependencies:   deps,
		})
	}

	return tasks, errs
}

// validateRecord applies the field-level rules to one record and returns an
// error per failing field.
func validateRecord(index int, rec Record) []*ValidationError {
	var errs []*ValidationError
	taskID := ""
	if !rec.ID.IsZero() {
		taskID = rec.ID.String()
	}

	fail := func(cat ValidationCategory, field string, err error) {
		errs = append(errs, &ValidationError{
			Category: cat,
			Index:    index,
			TaskID:   taskID,
			Field:    field,
			Err:      err,
		})
	}

	if rec.ID.IsZero() {
		fail(ValCatMissingField, "id", fmt.Errorf("%w: id", ErrMissingField))
	}

	if strings.TrimSpace(rec.Title) == "" {
		fail(ValCatMissingField, "title", fmt.Errorf("%w: title", ErrMissingField))
	}

	if strings.TrimSpace(rec.DueDate) == "" {
		fail(ValCatMissingField, "due_date", fmt.Errorf("%w: due_date", ErrMissingField))
	} else if _, err := ParseDate(rec.DueDate); err != nil {
		fail(ValCatBadDate, "due_date", fmt.Errorf("%w: %v", ErrBadDate, err))
	}

	switch {
	case rec.EstimatedHours == nil:
		fail(ValCatMissingField, "estimated_hours", fmt.Errorf("%w: estimated_hours", ErrMissingField))
	case *rec.EstimatedHours < MinEstimatedHours:
		fail(ValCatOutOfRange, "estimated_hours",
			fmt.Errorf("%w: estimated_hours must be at least %.1f, got %g", ErrOutOfRange, MinEstimatedHours, *rec.EstimatedHours))
	}

	switch {
	case rec.Importance == nil:
		fail(ValCatMissingField, "importance", fmt.Errorf("%w: importance", ErrMissingField))
	case *rec.Importance != math.Trunc(*rec.Importance):
		fail(ValCatOutOfRange, "importance",
			fmt.Errorf("%w: importance must be an integer, got %g", ErrOutOfRange, *rec.Importance))
	case *rec.Importance < MinImportance || *rec.Importance > MaxImportance:
		fail(ValCatOutOfRange, "importance",
			fmt.Errorf("%w: importance must be between %d and %d, got %g", ErrOutOfRange, MinImportance, MaxImportance, *rec.Importance))
	}

	return errs
}
