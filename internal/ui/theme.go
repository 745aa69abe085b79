package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette and premade styles used by the renderers.
type Theme struct {
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Danger    lipgloss.Color
	Success   lipgloss.Color
	Selection lipgloss.Color

	Logo       lipgloss.Style
	Title      lipgloss.Style
	Label      lipgloss.Style
	MutedText  lipgloss.Style
	DangerText lipgloss.Style
	NoticeText lipgloss.Style
	Selected   lipgloss.Style
	Card       lipgloss.Style
	Hint       lipgloss.Style
}

// DefaultTheme returns the single built-in palette.
func DefaultTheme() Theme {
	t := Theme{
		Accent:    lipgloss.Color("99"),
		Muted:     lipgloss.Color("243"),
		Danger:    lipgloss.Color("203"),
		Success:   lipgloss.Color("78"),
		Selection: lipgloss.Color("57"),
	}
	t.Logo = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Title = lipgloss.NewStyle().Bold(true)
	t.Label = lipgloss.NewStyle().Foreground(t.Accent)
	t.MutedText = lipgloss.NewStyle().Foreground(t.Muted)
	t.DangerText = lipgloss.NewStyle().Foreground(t.Danger)
	t.NoticeText = lipgloss.NewStyle().Foreground(t.Success)
	t.Selected = lipgloss.NewStyle().Background(t.Selection).Foreground(lipgloss.Color("255"))
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1)
	t.Hint = lipgloss.NewStyle().Foreground(t.Muted)
	return t
}
