package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"triage/internal/engine"
	"triage/internal/task"
)

// Model is the interactive ranking browser: one task batch analyzed under a
// switchable strategy, with a cursor over the ranked rows and a breakdown
// panel for the selected task.
type Model struct {
	records    []task.Record
	reference  task.Date
	strategies []engine.Strategy
	stratIdx   int
	keys       KeyMap

	result      *engine.Result
	suggestions []engine.Suggestion

	cursor      int
	showSuggest bool
	width       int
	height      int
}

// NewModel builds the browser for one batch. The initial strategy selects
// the matching catalog entry, falling back to the first entry for names not
// in the catalog (Analyze will have rejected those upstream anyway).
func NewModel(records []task.Record, strategy string, ref task.Date) Model {
	m := Model{
		records:    records,
		reference:  ref,
		strategies: engine.Strategies(),
		keys:       DefaultKeyMap(),
		width:      80,
		height:     24,
	}
	for i, s := range m.strategies {
		if s.Name == strategy {
			m.stratIdx = i
			break
		}
	}
	m.reanalyze()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.result.Tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Strategy):
			m.stratIdx = (m.stratIdx + 1) % len(m.strategies)
			m.reanalyze()
		case key.Matches(msg, m.keys.Suggest):
			m.showSuggest = !m.showSuggest
		}
	}
	return m, nil
}

// Strategy returns the name of the currently selected strategy.
func (m Model) Strategy() string {
	return m.strategies[m.stratIdx].Name
}

// Selected returns the ranked task under the cursor, or nil when the batch
// produced no valid tasks.
func (m Model) Selected() *engine.ScoredTask {
	if m.cursor < 0 || m.cursor >= len(m.result.Tasks) {
		return nil
	}
	return &m.result.Tasks[m.cursor]
}

// reanalyze recomputes the ranking under the current strategy. The catalog
// only holds known strategies, so the error path is unreachable here.
func (m *Model) reanalyze() {
	res, err := engine.Analyze(m.records, m.Strategy(), m.reference)
	if err != nil {
		res = &engine.Result{Strategy: m.Strategy(), Reference: m.reference}
	}
	m.result = res

	sres, err := engine.Suggest(m.records, m.Strategy(), m.reference)
	if err == nil {
		m.suggestions = sres.Suggestions
	} else {
		m.suggestions = nil
	}

	if m.cursor >= len(m.result.Tasks) {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.statusBar())
	b.WriteString("\n")

	if len(m.result.CycleGroups) > 0 {
		b.WriteString(m.cycleBanner())
		b.WriteString("\n")
	}

	if len(m.result.Tasks) == 0 {
		b.WriteString(styleRow.Render("no valid tasks to rank"))
		b.WriteString("\n")
	} else {
		for i := range m.result.Tasks {
			b.WriteString(m.renderRow(i))
			b.WriteString("\n")
		}
	}

	if sel := m.Selected(); sel != nil {
		b.WriteString(m.renderDetail(sel))
		b.WriteString("\n")
	}

	b.WriteString(styleFooter.Render(m.helpLine()))
	return b.String()
}

func (m Model) statusBar() string {
	left := styleStatusLabel.Render("triage") + " " + m.Strategy()
	right := fmt.Sprintf("%d ranked · %d invalid · ref %s",
		m.result.TotalTasks(), len(m.result.Errors), m.reference)
	return styleStatusBar.Render(left + "  " + right)
}

func (m Model) cycleBanner() string {
	groups := make([]string, 0, len(m.result.CycleGroups))
	for _, g := range m.result.CycleGroups {
		groups = append(groups, strings.Join(g, " → "))
	}
	return styleCycleBanner.Render("⚠ circular dependencies: " + strings.Join(groups, "; "))
}

func (m Model) renderRow(i int) string {
	st := m.result.Tasks[i]
	line := fmt.Sprintf("%2d. %-6s %-30s %s %s",
		i+1,
		st.Task.ID.String(),
		truncate(st.Task.Title, 30),
		st.Task.Due.String(),
		styleScore.Render(fmt.Sprintf("%7.2f", st.Breakdown.Total)))
	if st.Breakdown.Urgency > 100 {
		line += " " + styleOverdue.Render("overdue")
	}
	if i == m.cursor {
		return selectionIndicator + styleRowSelected.Render(line)
	}
	return " " + styleRow.Render(line)
}

func (m Model) renderDetail(sel *engine.ScoredTask) string {
	b := sel.Breakdown
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", sel.Task.Title)
	fmt.Fprintf(&sb, "urgency %.2f  importance %.2f  effort %.2f  dependencies %.2f\n",
		b.Urgency, b.Importance, b.Effort, b.Dependency)
	fmt.Fprintf(&sb, "total %.2f under %s", b.Total, m.Strategy())

	if m.showSuggest {
		if s := m.suggestionFor(sel.Task.ID); s != nil {
			fmt.Fprintf(&sb, "\n%s", styleSuggestion.Render(
				fmt.Sprintf("#%d %s — %s", s.Rank, s.Explanation, s.WhyToday)))
		}
	}
	return styleDetail.Width(min(m.width-2, 76)).Render(sb.String())
}

func (m Model) suggestionFor(id task.ID) *engine.Suggestion {
	for i := range m.suggestions {
		if m.suggestions[i].TaskID.String() == id.String() {
			return &m.suggestions[i]
		}
	}
	return nil
}

func (m Model) helpLine() string {
	parts := []string{
		m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key + " move",
		m.keys.Strategy.Help().Key + " " + m.keys.Strategy.Help().Desc,
		m.keys.Suggest.Help().Key + " " + m.keys.Suggest.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return strings.Join(parts, "  ·  ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return s[:n-1] + "…"
}
