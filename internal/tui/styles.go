package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent  = lipgloss.Color("#FFD700") // Gold — overdue/attention
	colorSuccess = lipgloss.Color("#00E676") // Green — low-effort wins
	colorDanger  = lipgloss.Color("#FF5252") // Red — errors/cycles
	colorMuted   = lipgloss.Color("#636363") // Gray — de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorSurface = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Row styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	styleRow = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleScore = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleOverdue = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

// Banner shown when the batch has circular dependencies.
var styleCycleBanner = lipgloss.NewStyle().
	Foreground(colorDanger).
	Bold(true)

// Detail panel for the selected task's score breakdown.
var styleDetail = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// Footer help line.
var styleFooter = lipgloss.NewStyle().
	Foreground(colorMuted)

// Suggestion highlight inside the detail panel.
var styleSuggestion = lipgloss.NewStyle().
	Foreground(colorSuccess)
