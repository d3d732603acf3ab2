package api

import (
	"triage/internal/engine"
	"triage/internal/task"
)

// AnalyzeRequest is the request body shared by the analyze and suggest
// endpoints. Strategy and ReferenceDate are optional; an absent strategy
// falls back to the server default and an absent reference date means the
// current day.
type AnalyzeRequest struct {
	Tasks         []task.Record `json:"tasks"          validate:"required,min=1"`
	Strategy      string        `json:"strategy"`
	ReferenceDate string        `json:"reference_date"`
}

// ScoredTaskResponse is one ranked task with its score breakdown. The input
// fields are echoed back unchanged so clients can render without a join.
type ScoredTaskResponse struct {
	ID             task.ID          `json:"id"`
	Title          string           `json:"title"`
	DueDate        task.Date        `json:"due_date"`
	EstimatedHours float64          `json:"estimated_hours"`
	Importance     int              `json:"importance"`
	Dependencies   []task.ID        `json:"dependencies"`
	Score          float64          `json:"priority_score"`
	Breakdown      engine.Breakdown `json:"score_breakdown"`
}

// ValidationErrorResponse is one rejected input record.
type ValidationErrorResponse struct {
	Index    int    `json:"index"`
	TaskID   string `json:"task_id,omitempty"`
	Field    string `json:"field,omitempty"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// AnalyzeResponse is the body of a successful analyze call.
type AnalyzeResponse struct {
	StrategyUsed  string                    `json:"strategy_used"`
	ReferenceDate task.Date                 `json:"reference_date"`
	TotalTasks    int                       `json:"total_tasks"`
	Tasks         []ScoredTaskResponse      `json:"tasks"`
	Cycles        [][]string                `json:"circular_dependencies"`
	Errors        []ValidationErrorResponse `json:"errors,omitempty"`
}

// SuggestResponse is the body of a successful suggest call.
type SuggestResponse struct {
	StrategyUsed  string                    `json:"strategy_used"`
	ReferenceDate task.Date                 `json:"reference_date"`
	TasksAnalyzed int                       `json:"tasks_analyzed"`
	Suggestions   []engine.Suggestion       `json:"suggestions"`
	Cycles        [][]string                `json:"circular_dependencies"`
	Errors        []ValidationErrorResponse `json:"errors,omitempty"`
}

// StrategiesResponse is the body of the strategy catalog endpoint.
type StrategiesResponse struct {
	Strategies []engine.Strategy `json:"strategies"`
	Default    string            `json:"default"`
}

// ToAnalyzeResponse converts an engine result to its wire form. The CLI
// reuses it for --json output so both surfaces emit identical shapes.
func ToAnalyzeResponse(res *engine.Result) AnalyzeResponse {
	tasks := make([]ScoredTaskResponse, 0, len(res.Tasks))
	for _, st := range res.Tasks {
		tasks = append(tasks, ScoredTaskResponse{
			ID:             st.Task.ID,
			Title:          st.Task.Title,
			DueDate:        st.Task.Due,
			EstimatedHours: st.Task.EstimatedHours,
			Importance:     st.Task.Importance,
			Dependencies:   st.Task.Dependencies,
			Score:          st.Breakdown.Total,
			Breakdown:      st.Breakdown,
		})
	}
	return AnalyzeResponse{
		StrategyUsed:  res.Strategy,
		ReferenceDate: res.Reference,
		TotalTasks:    res.TotalTasks(),
		Tasks:         tasks,
		Cycles:        res.CycleGroups,
		Errors:        toValidationErrors(res.Errors),
	}
}

// ToSuggestResponse converts a suggest result to its wire form.
func ToSuggestResponse(res *engine.SuggestResult) SuggestResponse {
	return SuggestResponse{
		StrategyUsed:  res.Strategy,
		ReferenceDate: res.Reference,
		TasksAnalyzed: res.TasksAnalyzed,
		Suggestions:   res.Suggestions,
		Cycles:        res.CycleGroups,
		Errors:        toValidationErrors(res.Errors),
	}
}

func toValidationErrors(verrs []*task.ValidationError) []ValidationErrorResponse {
	if len(verrs) == 0 {
		return nil
	}
	out := make([]ValidationErrorResponse, 0, len(verrs))
	for _, ve := range verrs {
		out = append(out, ValidationErrorResponse{
			Index:    ve.Index,
			TaskID:   ve.TaskID,
			Field:    ve.Field,
			Category: string(ve.Category),
			Message:  ve.Err.Error(),
		})
	}
	return out
}
