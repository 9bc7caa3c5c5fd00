package stools

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	cheese  lipgloss.Style
	base    lipgloss.Style
	counter lipgloss.Style
	empty   lipgloss.Style
	failed  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cheese:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		base:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		counter: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		empty:   lipgloss.NewStyle().Faint(true),
		failed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
