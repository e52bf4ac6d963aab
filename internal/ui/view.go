// internal/ui/view.go
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/querypad/internal/ui/highlight"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.appState {
	case StateSelecting:
		return m.viewSelector()
	case StateConnecting:
		return m.viewConnecting()
	}
	return m.viewEditor()
}

func (m Model) viewSelector() string {
	var b strings.Builder
	b.WriteString(m.selector.View())
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return b.String()
}

func (m Model) viewConnecting() string {
	name := ""
	if m.conn != nil {
		name = m.conn.Name
	}
	return faintStyle.Render("Connecting to " + name + "...")
}

func (m Model) viewEditor() string {
	var sections []string

	sections = append(sections, editorBoxStyle.Render(m.editor.View()))

	if popup := m.popup.View(); popup != "" {
		sections = append(sections, popup)
	}

	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}

	switch {
	case m.showingHistory:
		sections = append(sections, m.histTable.View())
		sections = append(sections, faintStyle.Render("/history use <#> to recall, /history rm <#> to delete, esc to close"))

	case m.result != nil && m.errMsg == "":
		if m.lastQuery != "" {
			sections = append(sections, faintStyle.Render("> ")+highlight.SQL(m.lastQuery))
		}
		sections = append(sections, m.results.View())
	}

	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.conn != nil {
		parts = append(parts, connectionStyle.Render(m.conn.Name))
		info := fmt.Sprintf(" %s@%s/%s ", m.conn.User, m.conn.Host, m.conn.Database)
		if m.conn.Type == "sqlite" {
			info = fmt.Sprintf(" sqlite:%s ", m.conn.Database)
		}
		parts = append(parts, statusBarStyle.Render(info))
	}

	switch {
	case m.loading:
		parts = append(parts, stateStyle.Render("running"))
	case m.loadingSchema:
		parts = append(parts, stateStyle.Render("loading schema"))
	}

	if m.ring.Browsing() {
		parts = append(parts, faintStyle.Render(" history "))
	}

	if m.statusMsg != "" {
		parts = append(parts, successStyle.Render(" "+m.statusMsg))
	}

	parts = append(parts, faintStyle.Render("  ctrl+d run · ctrl+space complete · esc quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
