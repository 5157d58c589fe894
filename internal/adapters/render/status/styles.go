package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	feature     lipgloss.Style
	detail      lipgloss.Style
	warning     lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	key         lipgloss.Style
	meta        lipgloss.Style
	success     lipgloss.Style
	clientError lipgloss.Style
	serverError lipgloss.Style
	body        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		feature:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		key:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		success:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		clientError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		serverError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
	}
}
