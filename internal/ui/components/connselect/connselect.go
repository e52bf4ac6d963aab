// Package connselect is the startup screen for picking a connection.
package connselect

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/querypad/internal/config"
)

// SelectedMsg is emitted when the user confirms a connection.
type SelectedMsg struct {
	Connection config.Connection
}

// Model lists the configured connections.
type Model struct {
	connections []config.Connection
	cursor      int

	titleStyle    lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	faintStyle    lipgloss.Style
}

// New builds a selector over the configured connections.
func New(connections []config.Connection) Model {
	return Model{
		connections: connections,
		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#88C0D0")).
			Bold(true).
			MarginBottom(1),
		itemStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D8DEE9")).
			PaddingLeft(2),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E3440")).
			Background(lipgloss.Color("#88C0D0")).
			PaddingLeft(2),
		faintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4C566A")),
	}
}

// Update handles navigation and selection keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.connections)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.connections) {
			conn := m.connections[m.cursor]
			return m, func() tea.Msg { return SelectedMsg{Connection: conn} }
		}
	}

	return m, nil
}

// View renders the list.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.titleStyle.Render("Select a connection"))
	sb.WriteString("\n")

	if len(m.connections) == 0 {
		sb.WriteString(m.faintStyle.Render("No connections configured. Add one with /connect add <name> <dsn>."))
		return sb.String()
	}

	for i, conn := range m.connections {
		label := conn.Name + " (" + conn.Type + ")"
		if i == m.cursor {
			sb.WriteString(m.selectedStyle.Render("> " + label))
		} else {
			sb.WriteString(m.itemStyle.Render(label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.faintStyle.Render("\nenter to connect, ctrl+c to quit"))
	return sb.String()
}
