// Package task defines the task record types shared by the prioritization
// pipeline: flexible identifiers, naive calendar dates, raw input records,
// and batch validation.
package task

// Record is a raw task record as supplied by a caller, before validation.
// Numeric fields are pointers so that a missing field is distinguishable
// from a zero value; Importance is a float so that non-integer input can be
// rejected by the validator rather than at decode time.
type Record struct {
	ID             ID       `json:"id"`
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
	Importance     *float64 `json:"importance"`
	Dependencies   []ID     `json:"dependencies,omitempty"`
}

// Task is a validated, normalized task. All fields have been checked by
// ValidateBatch; Dependencies is never nil and may contain identifiers that
// do not resolve within the batch.
type Task struct {
	ID             ID
	Title          string
	Due            Date
	EstimatedHours float64
	Importance     int
	Dependencies   []ID
}

// DependencyIDs returns the canonical string forms of the task's
// dependencies, preserving order and dropping duplicates.
func (t Task) DependencyIDs() []string {
	seen := make(map[string]bool, len(t.Dependencies))
	ids := make([]string, 0, len(t.Dependencies))
	for _, dep := range t.Dependencies {
		s := dep.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		ids = append(ids, s)
	}
	return ids
}
