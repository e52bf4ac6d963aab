// internal/ui/model.go
package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/querypad/internal/complete"
	"github.com/nhath/querypad/internal/config"
	"github.com/nhath/querypad/internal/db"
	"github.com/nhath/querypad/internal/history"
	"github.com/nhath/querypad/internal/runner"
	"github.com/nhath/querypad/internal/ui/components/connselect"
	"github.com/nhath/querypad/internal/ui/components/suggestions"
)

// Model is the root Bubble Tea model
type Model struct {
	appState      AppState
	width, height int

	cfg    *config.Config
	conn   *config.Connection
	driver db.Driver
	store  *history.Store

	// Components
	selector connselect.Model
	editor   textarea.Model
	popup    suggestions.Model
	results  bbtable.Model
	result   *db.QueryResult

	// Completion
	assembler     *complete.Assembler
	snapshot      *complete.Snapshot
	schemaVersion int
	loadingSchema bool

	// History recall
	ring *history.Ring
	nav  *history.Navigator

	// Persisted history view (/history)
	histEntries    []history.Entry
	histTable      bbtable.Model
	showingHistory bool

	// Execution
	run       *runner.Runner
	lastQuery string

	// Status
	loading   bool
	errMsg    string
	statusMsg string

	debounceID int
}

// NewModel creates the root model. store may be nil when history
// persistence is unavailable; recall still works from the in-session ring.
func NewModel(cfg *config.Config, store *history.Store) Model {
	editor := textarea.New()
	editor.Placeholder = "Enter SQL (Ctrl+D to run, Ctrl+Space to complete)..."
	editor.Focus()
	editor.CharLimit = 5000
	editor.SetHeight(3)
	editor.SetWidth(80)
	editor.ShowLineNumbers = false
	editor.FocusedStyle.CursorLine = lipgloss.NewStyle()
	editor.BlurredStyle.CursorLine = lipgloss.NewStyle()

	ring := history.NewRing()

	var snippets, keywords []string
	if len(cfg.Completion.Snippets) > 0 {
		snippets = cfg.Completion.Snippets
	}
	if len(cfg.Completion.Keywords) > 0 {
		keywords = cfg.Completion.Keywords
	}

	return Model{
		appState:  StateSelecting,
		cfg:       cfg,
		store:     store,
		selector:  connselect.New(cfg.Connections),
		editor:    editor,
		popup:     suggestions.New(),
		assembler: complete.NewAssembler(snippets, keywords),
		ring:      ring,
		nav:       history.NewNavigator(ring),
	}
}

// Init implements tea.Model. When a default connection is configured the
// selector is skipped.
func (m Model) Init() tea.Cmd {
	if m.cfg.DefaultConnection != "" {
		if conn, err := m.cfg.GetConnection(m.cfg.DefaultConnection); err == nil {
			return func() tea.Msg {
				return connselect.SelectedMsg{Connection: *conn}
			}
		}
	}
	return textarea.Blink
}
