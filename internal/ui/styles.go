// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/querypad/internal/config"
)

var (
	statusBarStyle  lipgloss.Style
	connectionStyle lipgloss.Style
	stateStyle      lipgloss.Style
	errorStyle      lipgloss.Style
	successStyle    lipgloss.Style
	faintStyle      lipgloss.Style
	editorBoxStyle  lipgloss.Style
)

// InitStyles builds the style set from the configured theme. Must be
// called before the first View.
func InitStyles(theme config.Theme) {
	statusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.BgSecondary)).
		Foreground(lipgloss.Color(theme.TextPrimary))

	connectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color(theme.BgPrimary)).
		Padding(0, 1).
		Bold(true)

	stateStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.BgPrimary)).
		Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error)).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success))

	faintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TextFaint))

	editorBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TextFaint)).
		Padding(0, 1)
}
