package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// Plan listing
	OldName = lipgloss.NewStyle().
		Foreground(Muted)

	Arrow = lipgloss.NewStyle().
		Foreground(Primary).
		SetString(" -> ")

	NewName = lipgloss.NewStyle().
		Foreground(Secondary)

	// Messages
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Help
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)
)

// RenderPair renders one "old -> new" plan line
func RenderPair(oldName, newName string) string {
	return OldName.Render(oldName) + Arrow.String() + NewName.Render(newName)
}
