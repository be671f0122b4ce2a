package cli

import "github.com/charmbracelet/lipgloss"

// styles for human-readable command output.
type styles struct {
	Title   lipgloss.Style
	Entry   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func newStyles() *styles {
	var (
		primary   = lipgloss.Color("#7C3AED")
		secondary = lipgloss.Color("#06B6D4")
		muted     = lipgloss.Color("#6C7086")
		success   = lipgloss.Color("#A6E3A1")
		failure   = lipgloss.Color("#F38BA8")
	)
	return &styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		Entry:   lipgloss.NewStyle().Bold(true).Foreground(secondary),
		Label:   lipgloss.NewStyle().Foreground(muted).Width(12),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Success: lipgloss.NewStyle().Foreground(success),
		Error:   lipgloss.NewStyle().Foreground(failure),
	}
}
