package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"triage/internal/task"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program over one task batch. The program
// uses the alternate screen buffer for a clean TUI experience.
func NewProgram(records []task.Record, strategy string, ref task.Date, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(NewModel(records, strategy, ref), allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(records []task.Record, strategy string, ref task.Date) error {
	p := NewProgram(records, strategy, ref)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given
// writer. Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
