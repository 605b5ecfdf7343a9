package teatour

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles used by the popover card.
type Styles struct {
	Card     lipgloss.Style
	Title    lipgloss.Style
	Content  lipgloss.Style
	Progress lipgloss.Style
	Hint     lipgloss.Style
	Badge    lipgloss.Style
}

// DefaultStyles returns the baseline popover appearance.
func DefaultStyles() Styles {
	return Styles{
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		Content:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
