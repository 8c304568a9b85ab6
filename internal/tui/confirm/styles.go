package confirm

import "github.com/charmbracelet/lipgloss"

// Colors used in the confirmation prompt.
var (
	ColorPrimary = lipgloss.Color("#6C5CE7") // Purple
	ColorWarning = lipgloss.Color("#FDCB6E") // Yellow
	ColorMuted   = lipgloss.Color("#636E72") // Gray
)

// Styles holds the styles for the confirmation prompt.
type Styles struct {
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Command     lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Dialog: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Command: lipgloss.NewStyle().
			Foreground(ColorWarning),
		HelpKey: lipgloss.NewStyle().
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}
