package ui

import (
	"bytes"
	"strings"
	"testing"

	"triage/internal/engine"
	"triage/internal/task"
)

func testPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &Printer{Out: out, Err: errOut}, out, errOut
}

func analyzeFixture(t *testing.T) *engine.Result {
	t.Helper()
	hours, importance := 2.0, 9.0
	ref, err := task.ParseDate("2026-08-26")
	if err != nil {
		t.Fatal(err)
	}
	res, err := engine.Analyze([]task.Record{
		{ID: task.StringID("report"), Title: "Write the report", DueDate: "2026-08-26",
			EstimatedHours: &hours, Importance: &importance},
	}, engine.StrategySmartBalance, ref)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestRankingOutput(t *testing.T) {
	t.Parallel()
	p, out, _ := testPrinter()
	p.Ranking(analyzeFixture(t))

	got := out.String()
	for _, want := range []string{"ranked tasks", "smart_balance", "report", "76.25"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRankingEmpty(t *testing.T) {
	t.Parallel()
	p, out, errOut := testPrinter()
	p.Ranking(&engine.Result{Strategy: engine.StrategySmartBalance})
	if out.Len() != 0 {
		t.Error("empty result should write nothing to stdout")
	}
	if !strings.Contains(errOut.String(), "no tasks") {
		t.Errorf("expected a 'no tasks' notice, got %q", errOut.String())
	}
}

func TestCycleWarning(t *testing.T) {
	t.Parallel()
	p, out, errOut := testPrinter()
	p.CycleWarning([][]string{{"a", "b"}})

	if out.Len() != 0 {
		t.Error("warnings belong on stderr")
	}
	got := errOut.String()
	if !strings.Contains(got, "circular dependencies") || !strings.Contains(got, "a → b") {
		t.Errorf("banner = %q", got)
	}

	// No banner for an acyclic batch.
	_, _, quiet := testPrinter()
	p.Err = quiet
	p.CycleWarning(nil)
	if quiet.Len() != 0 {
		t.Error("no groups should print no banner")
	}
}

func TestSuggestionsOutput(t *testing.T) {
	t.Parallel()
	p, out, _ := testPrinter()
	hours, importance := 1.0, 8.0
	ref, _ := task.ParseDate("2026-08-26")
	res, err := engine.Suggest([]task.Record{
		{ID: task.StringID("quick"), Title: "Quick fix", DueDate: "2026-08-20",
			EstimatedHours: &hours, Importance: &importance},
	}, engine.StrategySmartBalance, ref)
	if err != nil {
		t.Fatal(err)
	}
	p.Suggestions(res)

	got := out.String()
	if !strings.Contains(got, "#1 quick") || !strings.Contains(got, "highest priority") {
		t.Errorf("suggestion card missing content:\n%s", got)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate should pass short strings through, got %q", got)
	}
	if got := truncate("a very long title indeed", 10); len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate(10) = %q", got)
	}
}
