// Package tui is the interactive questionnaire filler: one page per question.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Primary     = lipgloss.Color("#2196F3")
	Success     = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Muted       = lipgloss.Color("#7a8699")
)

// Styles holds the lipgloss styles used by the views.
type Styles struct {
	Title    lipgloss.Style
	Author   lipgloss.Style
	Counter  lipgloss.Style
	Prompt   lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Error    lipgloss.Style
	Banner   lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style
	Scale    lipgloss.Style
	ScaleOn  lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Author:   lipgloss.NewStyle().Italic(true).Foreground(Muted),
		Counter:  lipgloss.NewStyle().Foreground(Muted),
		Prompt:   lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(Success),
		Option:   lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle().Foreground(Destructive),
		Banner: lipgloss.NewStyle().
			Foreground(Destructive).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Destructive).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Bold(true).Foreground(Success),
		Help:    lipgloss.NewStyle().Foreground(Muted),
		Scale:   lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(Muted),
		ScaleOn: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(Primary).Bold(true).Foreground(Primary),
		Frame:   lipgloss.NewStyle().Padding(1, 2),
	}
}
