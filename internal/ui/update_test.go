// internal/ui/update_test.go
package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/querypad/internal/complete"
)

func editorModel(value string) Model {
	editor := textarea.New()
	editor.SetValue(value)
	return Model{editor: editor}
}

func TestApplyCandidateReplacesSpan(t *testing.T) {
	m := editorModel("SELECT o.cust FROM orders o")

	m = m.applyCandidate(complete.Candidate{
		InsertText: "customer_id",
		Replace:    complete.Span{Line: 0, Start: 9, End: 13},
	})

	assert.Equal(t, "SELECT o.customer_id FROM orders o", m.editor.Value())
}

func TestApplyCandidateEmptySpanInserts(t *testing.T) {
	m := editorModel("SELECT c. FROM customers c")

	m = m.applyCandidate(complete.Candidate{
		InsertText: "name",
		Replace:    complete.Span{Line: 0, Start: 9, End: 9},
	})

	assert.Equal(t, "SELECT c.name FROM customers c", m.editor.Value())
}

func TestApplyCandidateMultiline(t *testing.T) {
	m := editorModel("SELECT *\nFROM ord")

	m = m.applyCandidate(complete.Candidate{
		InsertText: "orders",
		Replace:    complete.Span{Line: 1, Start: 5, End: 8},
	})

	assert.Equal(t, "SELECT *\nFROM orders", m.editor.Value())
}

func TestApplyCandidateOutOfRangeIsNoOp(t *testing.T) {
	m := editorModel("SELECT 1")

	m = m.applyCandidate(complete.Candidate{
		InsertText: "x",
		Replace:    complete.Span{Line: 5, Start: 0, End: 0},
	})
	assert.Equal(t, "SELECT 1", m.editor.Value())

	m = m.applyCandidate(complete.Candidate{
		InsertText: "x",
		Replace:    complete.Span{Line: 0, Start: 4, End: 99},
	})
	assert.Equal(t, "SELECT 1", m.editor.Value())
}

func TestExitKeysAreConfigurable(t *testing.T) {
	m := readyModel(t)
	m.cfg.Keys.Exit = []string{"ctrl+q"}

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEscQuitsByDefault(t *testing.T) {
	m := readyModel(t)

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEscClosesPopupBeforeQuitting(t *testing.T) {
	m := readyModel(t)
	m.popup = m.popup.SetItems([]complete.Candidate{{Label: "SELECT", InsertText: "SELECT"}})
	require.True(t, m.popup.Visible())

	model, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, model.(Model).popup.Visible())
}

func TestEscClosesHistoryViewBeforeQuitting(t *testing.T) {
	m := readyModel(t)
	m.showingHistory = true

	model, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, model.(Model).showingHistory)
}

func TestCursorPositionOnSoftWrappedLine(t *testing.T) {
	editor := textarea.New()
	editor.SetWidth(10)
	value := "SELECT customer_id FROM orders"
	editor.SetValue(value)
	editor.CursorEnd()

	m := Model{editor: editor}
	pos := m.cursorPosition()

	assert.Equal(t, 0, pos.Line, "one logical line regardless of wrapping")
	assert.Equal(t, len(value), pos.Col, "column addresses the unwrapped line")
}

func TestMatchKey(t *testing.T) {
	bindings := []string{"ctrl+d", "f5"}

	assert.True(t, matchKey(bindings, "ctrl+d"))
	assert.True(t, matchKey(bindings, "f5"))
	assert.False(t, matchKey(bindings, "enter"))
	assert.False(t, matchKey(nil, "enter"))
}
