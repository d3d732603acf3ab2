// Package engine implements the task prioritization pipeline: batch
// validation, dependency graph analysis, multi-factor scoring under a named
// strategy, ranking, and shortlist generation. The engine is a pure,
// synchronous computation over one request-scoped batch; it holds no
// process-wide state, so any number of invocations may run concurrently.
package engine

import (
	"triage/internal/depgraph"
	"triage/internal/task"
)

// ScoredTask pairs a validated task with its computed score breakdown. The
// original task fields pass through unchanged.
type ScoredTask struct {
	Task      task.Task
	Breakdown Breakdown
}

// Result is the output of one Analyze invocation. Tasks is ranked per the
// tie-break rules; CycleGroups reports circular dependencies as data (never
// as an error); Errors collects the per-record validation failures for the
// records excluded from Tasks.
type Result struct {
	Strategy    string
	Reference   task.Date
	Tasks       []ScoredTask
	CycleGroups [][]string
	Errors      []*task.ValidationError
}

// TotalTasks returns the number of tasks that survived validation and were
// scored and ranked.
func (r *Result) TotalTasks() int {
	return len(r.Tasks)
}

// SuggestResult is the output of one Suggest invocation: the top-three
// shortlist plus the analysis context callers surface alongside it.
type SuggestResult struct {
	Strategy      string
	Reference     task.Date
	Suggestions   []Suggestion
	TasksAnalyzed int
	CycleGroups   [][]string
	Errors        []*task.ValidationError
}

// Analyze runs the full pipeline for one batch: resolve the strategy,
// validate records, build the dependency graph, score every valid task
// against the reference date, and rank. An unknown strategy is a structural
// error and aborts with no partial output; per-record validation failures
// are partial and reported in the result.
func Analyze(records []task.Record, strategy string, ref task.Date) (*Result, error) {
	weights, err := StrategyWeights(strategy)
	if err != nil {
		return nil, err
	}

	tasks, verrs := task.ValidateBatch(records)
	graph := depgraph.Build(tasks)

	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, ScoredTask{
			Task:      t,
			Breakdown: Score(t, ref, graph.FanIn(t.ID.String()), weights),
		})
	}
	rank(scored)

	return &Result{
		Strategy:    strategy,
		Reference:   ref,
		Tasks:       scored,
		CycleGroups: graph.CycleGroups(),
		Errors:      verrs,
	}, nil
}

// Suggest runs Analyze and derives the top-three shortlist from the ranked
// output. The shortlist is always a prefix of the Analyze ranking with the
// same scores; no re-scoring happens.
func Suggest(records []task.Record, strategy string, ref task.Date) (*SuggestResult, error) {
	res, err := Analyze(records, strategy, ref)
	if err != nil {
		return nil, err
	}

	// StrategyWeights cannot fail here; Analyze already resolved it.
	weights, _ := StrategyWeights(strategy)

	return &SuggestResult{
		Strategy:      strategy,
		Reference:     res.Reference,
		Suggestions:   buildSuggestions(res.Tasks, weights),
		TasksAnalyzed: res.TotalTasks(),
		CycleGroups:   res.CycleGroups,
		Errors:        res.Errors,
	}, nil
}
