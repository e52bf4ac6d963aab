// Package suggestions is the completion popup: a bordered dropdown over
// the editor listing ranked candidates.
package suggestions

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/querypad/internal/complete"
)

// Styles for the dropdown.
type Styles struct {
	Box      lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Kind     lipgloss.Style
	Loading  lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4C566A")).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D8DEE9")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E3440")).
			Background(lipgloss.Color("#88C0D0")),
		Kind: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4C566A")),
		Loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4C566A")).
			Italic(true),
	}
}

// Model holds the popup state.
type Model struct {
	items    []complete.Candidate
	selected int
	visible  bool
	loading  bool
	maxShow  int
	styles   Styles
}

// New returns a hidden, empty popup.
func New() Model {
	return Model{maxShow: 8, styles: DefaultStyles()}
}

// SetItems replaces the candidate list and resets the selection. An empty
// list hides the popup.
func (m Model) SetItems(items []complete.Candidate) Model {
	m.items = items
	m.selected = 0
	m.visible = len(items) > 0
	return m
}

// SetLoading toggles the schema-loading placeholder.
func (m Model) SetLoading(loading bool) Model {
	m.loading = loading
	return m
}

// Hide closes the popup.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// Visible reports whether the popup is on screen. Key dispatch consults
// this before treating arrow keys as history recall.
func (m Model) Visible() bool { return m.visible }

// MoveUp moves the selection up one entry.
func (m Model) MoveUp() Model {
	if m.selected > 0 {
		m.selected--
	}
	return m
}

// MoveDown moves the selection down one entry.
func (m Model) MoveDown() Model {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
	return m
}

// Selected returns the highlighted candidate; ok is false when the popup
// is empty.
func (m Model) Selected() (complete.Candidate, bool) {
	if !m.visible || m.selected >= len(m.items) {
		return complete.Candidate{}, false
	}
	return m.items[m.selected], true
}

func kindLabel(k complete.Kind) string {
	switch k {
	case complete.KindSnippet:
		return "s"
	case complete.KindKeyword:
		return "k"
	case complete.KindTable:
		return "t"
	case complete.KindColumn:
		return "c"
	}
	return "?"
}

// View renders the dropdown, windowed around the selection.
func (m Model) View() string {
	if m.loading {
		return m.styles.Box.Render(m.styles.Loading.Render("Loading schema..."))
	}
	if !m.visible || len(m.items) == 0 {
		return ""
	}

	start := 0
	if m.selected >= m.maxShow {
		start = m.selected - m.maxShow + 1
	}
	end := start + m.maxShow
	if end > len(m.items) {
		end = len(m.items)
	}

	var rows []string
	for i := start; i < end; i++ {
		c := m.items[i]
		label := c.Label
		if c.Detail != "" {
			label += " : " + c.Detail
		}

		line := " " + kindLabel(c.Kind) + "  " + label
		if i == m.selected {
			rows = append(rows, m.styles.Selected.Render(line))
		} else {
			rows = append(rows, m.styles.Item.Render(line))
		}
	}

	return m.styles.Box.Render(strings.Join(rows, "\n"))
}
