// Package ui renders engine output for the terminal: ranked task tables,
// suggestion cards, cycle warnings, and validation error lists. Data goes to
// stdout so it can be piped; banners and diagnostics go to stderr.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"triage/internal/engine"
	"triage/internal/task"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes formatted engine output. Out receives data (default
// stdout); Err receives banners and diagnostics (default stderr).
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.Err, dim+"%s"+reset+"\n", msg)
}

// CycleWarning prints the warning banner for detected circular dependencies.
// Cycles never block ranking, so this is a warning, not an error.
func (p *Printer) CycleWarning(groups [][]string) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(p.Err, yellow+bold+"⚠ circular dependencies detected"+reset+" — scores shown anyway\n")
	for _, group := range groups {
		fmt.Fprintf(p.Err, "  "+yellow+"↻ "+reset+"%s\n", strings.Join(group, " → "))
	}
}

// ValidationErrors lists the records that were excluded from the ranking.
func (p *Printer) ValidationErrors(errs []*task.ValidationError) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(p.Err, red+bold+"✗ %d record(s) failed validation:"+reset+"\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(p.Err, "  "+red+"• "+reset+"%s\n", e.Error())
	}
}

// Ranking prints the ranked task table with per-task score breakdowns.
func (p *Printer) Ranking(res *engine.Result) {
	if res.TotalTasks() == 0 {
		p.Info("no tasks to rank")
		return
	}

	fmt.Fprintf(p.Out, bold+cyan+"ranked tasks"+reset+dim+" (strategy: %s, reference: %s)"+reset+"\n",
		res.Strategy, res.Reference)
	for i, st := range res.Tasks {
		fmt.Fprintf(p.Out, bold+"%2d."+reset+" %-14s %-32s "+bold+"%7.2f"+reset+"\n",
			i+1, st.Task.ID, truncate(st.Task.Title, 32), st.Breakdown.Total)
		fmt.Fprintf(p.Out, dim+"     due %s · urgency %.0f · importance %.0f · effort %.0f · dependents %.0f"+reset+"\n",
			st.Task.Due, st.Breakdown.Urgency, st.Breakdown.Importance,
			st.Breakdown.Effort, st.Breakdown.Dependency)
	}
}

// Suggestions prints the top-three shortlist as cards.
func (p *Printer) Suggestions(res *engine.SuggestResult) {
	if len(res.Suggestions) == 0 {
		p.Info("no tasks to suggest")
		return
	}

	fmt.Fprintf(p.Out, bold+cyan+"what to work on next"+reset+dim+" (strategy: %s)"+reset+"\n\n", res.Strategy)
	for _, s := range res.Suggestions {
		fmt.Fprintf(p.Out, green+bold+"#%d %s"+reset+"  %s "+dim+"(%.2f)"+reset+"\n",
			s.Rank, s.TaskID, s.Title, s.Score)
		fmt.Fprintf(p.Out, "   "+bold+"%s"+reset+"\n", s.Explanation)
		fmt.Fprintf(p.Out, "   "+dim+"%s"+reset+"\n\n", s.WhyToday)
	}
}

// Strategies prints the built-in strategy catalog.
func (p *Printer) Strategies(catalog []engine.Strategy) {
	fmt.Fprintln(p.Out, bold+cyan+"strategies"+reset)
	for _, s := range catalog {
		fmt.Fprintf(p.Out, "  "+bold+"%-16s"+reset+" %s\n", s.Name, s.Description)
		fmt.Fprintf(p.Out, dim+"                   urgency %.2f · importance %.2f · effort %.2f · dependencies %.2f"+reset+"\n",
			s.Weights.Urgency, s.Weights.Importance, s.Weights.Effort, s.Weights.Dependency)
	}
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
