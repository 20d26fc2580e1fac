package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the matrix-flavored style set. Colors mirror the original
// client: green for the user, cyan for the peer, yellow notifications,
// dim timestamps.
type Theme struct {
	Info         lipgloss.Style
	Error        lipgloss.Style
	Incoming     lipgloss.Style
	Outgoing     lipgloss.Style
	Timestamp    lipgloss.Style
	Notification lipgloss.Style
	Command      lipgloss.Style
	PromptStatic lipgloss.Style
	PromptFlag   lipgloss.Style
	Banner       lipgloss.Style
}

func MatrixTheme() Theme {
	return Theme{
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Faint(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Incoming:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Outgoing:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Timestamp:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Faint(true),
		Notification: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Command:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		PromptStatic: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		PromptFlag:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 2),
	}
}
