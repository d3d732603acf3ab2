package engine

import (
	"errors"
	"reflect"
	"testing"

	"triage/internal/task"
)

func recordFixture(id string, due string, hours, importance float64, deps ...string) task.Record {
	depIDs := make([]task.ID, 0, len(deps))
	for _, d := range deps {
		depIDs = append(depIDs, task.StringID(d))
	}
	return task.Record{
		ID:             task.StringID(id),
		Title:          "Task " + id,
		DueDate:        due,
		EstimatedHours: &hours,
		Importance:     &importance,
		Dependencies:   depIDs,
	}
}

func TestAnalyzeUnknownStrategyAborts(t *testing.T) {
	t.Parallel()
	ref := mustDate(t, "2026-08-26")
	res, err := Analyze([]task.Record{recordFixture("a", "2026-09-01", 1, 5)}, "aggressive", ref)
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
	if res != nil {
		t.Error("structural failure must produce no partial output")
	}
}

func TestAnalyzePartialValidation(t *testing.T) {
	t.Parallel()
	ref := mustDate(t, "2026-08-26")
	bad := recordFixture("bad", "not a date", 1, 5)
	res, err := Analyze([]task.Record{
		recordFixture("a", "2026-08-26", 1, 5),
		bad,
		recordFixture("b", "2026-08-27", 1, 5),
	}, StrategySmartBalance, ref)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalTasks() != 2 {
		t.Errorf("TotalTasks = %d, want 2", res.TotalTasks())
	}
	if len(res.Errors) != 1 || res.Errors[0].TaskID != "bad" {
		t.Errorf("validation errors = %v", res.Errors)
	}
}

func TestAnalyzeRanksAndReportsCycles(t *testing.T) {
	t.Parallel()
	ref := mustDate(t, "2026-08-26")
	res, err := Analyze([]task.Record{
		recordFixture("a", "2026-09-30", 8, 3, "b"),
		recordFixture("b", "2026-09-30", 8, 3, "a"),
		recordFixture("urgent", "2026-08-20", 1, 9),
	}, StrategySmartBalance, ref)
	if err != nil {
		t.Fatal(err)
	}

	// Cycles are data, not errors: the cyclic tasks still get scored.
	if res.TotalTasks() != 3 {
		t.Fatalf("TotalTasks = %d, want 3", res.TotalTasks())
	}
	if !reflect.DeepEqual(res.CycleGroups, [][]string{{"a", "b"}}) {
		t.Errorf("cycle groups = %v", res.CycleGroups)
	}
	if res.Tasks[0].Task.ID.String() != "urgent" {
		t.Errorf("overdue task should rank first, got %s", res.Tasks[0].Task.ID)
	}
	// The mutual dependency gives each cyclic task fan-in 1.
	for _, st := range res.Tasks[1:] {
		if st.Breakdown.Dependency != 15 {
			t.Errorf("task %s dependency score = %v, want 15", st.Task.ID, st.Breakdown.Dependency)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	t.Parallel()
	ref := mustDate(t, "2026-08-26")
	records := []task.Record{
		recordFixture("a", "2026-08-27", 2, 7, "c"),
		recordFixture("b", "2026-09-05", 5, 4),
		recordFixture("c", "2026-08-20", 1, 9),
	}
	first, err := Analyze(records, StrategyDeadlineDriven, ref)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Analyze(records, StrategyDeadlineDriven, ref)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatal("identical inputs produced different output")
		}
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	t.Parallel()
	res, err := Analyze(nil, StrategySmartBalance, mustDate(t, "2026-08-26"))
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalTasks() != 0 || len(res.CycleGroups) != 0 {
		t.Errorf("empty batch should produce an empty result: %+v", res)
	}
}

func TestSuggestIsPrefixOfAnalyze(t *testing.T) {
	t.Parallel()
	ref := mustDate(t, "2026-08-26")
	records := []task.Record{
		recordFixture("a", "2026-08-20", 2, 9),
		recordFixture("b", "2026-08-26", 1, 7),
		recordFixture("c", "2026-09-15", 8, 3),
		recordFixture("d", "2026-09-20", 6, 5),
	}

	analyzed, err := Analyze(records, StrategySmartBalance, ref)
	if err != nil {
		t.Fatal(err)
	}
	suggested, err := Suggest(records, StrategySmartBalance, ref)
	if err != nil {
		t.Fatal(err)
	}

	if suggested.TasksAnalyzed != analyzed.TotalTasks() {
		t.Errorf("TasksAnalyzed = %d, want %d", suggested.TasksAnalyzed, analyzed.TotalTasks())
	}
	if len(suggested.Suggestions) != MaxSuggestions {
		t.Fatalf("got %d suggestions", len(suggested.Suggestions))
	}
	for i, s := range suggested.Suggestions {
		if s.TaskID != analyzed.Tasks[i].Task.ID {
			t.Errorf("suggestion %d id %s does not match ranking %s", i, s.TaskID, analyzed.Tasks[i].Task.ID)
		}
		if s.Score != analyzed.Tasks[i].Breakdown.Total {
			t.Errorf("suggestion %d score %v does not match ranking %v", i, s.Score, analyzed.Tasks[i].Breakdown.Total)
		}
	}
}

func TestSuggestUnknownStrategy(t *testing.T) {
	t.Parallel()
	_, err := Suggest(nil, "yolo", mustDate(t, "2026-08-26"))
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}
