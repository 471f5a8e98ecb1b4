package repl

import "github.com/charmbracelet/lipgloss"

// Styles contains the pre-configured lipgloss styles for the session.
type Styles struct {
	// Title styles the session banner.
	Title lipgloss.Style

	// Prompt styles the input prompt.
	Prompt lipgloss.Style

	// Muted styles hints and secondary output.
	Muted lipgloss.Style

	// Success styles successful result lines.
	Success lipgloss.Style

	// Error styles failure lines.
	Error lipgloss.Style
}

// DefaultStyles returns the default session styles.
func DefaultStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}
