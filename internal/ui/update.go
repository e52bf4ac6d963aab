// internal/ui/update.go
package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/querypad/internal/complete"
	"github.com/nhath/querypad/internal/config"
	"github.com/nhath/querypad/internal/history"
	"github.com/nhath/querypad/internal/ui/components/connselect"
	"github.com/nhath/querypad/internal/ui/components/resultstable"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(msg.Width - 4)
		return m, nil

	case connselect.SelectedMsg:
		m.appState = StateConnecting
		m.conn = &msg.Connection
		m.statusMsg = "connecting to " + msg.Connection.Name + "..."
		return m, connectCmd(msg.Connection)

	case ConnectedMsg:
		if msg.Err != nil {
			m.appState = StateSelecting
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.appState = StateReady
		m.driver = msg.Driver
		m.errMsg = ""
		m.statusMsg = "connected"
		m.run = newRunner(m)
		m.loadingSchema = true
		m.popup = m.popup.SetLoading(true)
		m.schemaVersion++
		return m, loadSchemaCmd(m.driver, m.schemaVersion)

	case SchemaLoadedMsg:
		m.loadingSchema = false
		m.popup = m.popup.SetLoading(false)
		// Stale snapshots from an earlier connection are dropped.
		if msg.Snapshot != nil && msg.Snapshot.Version == m.schemaVersion {
			m.snapshot = msg.Snapshot
		}
		if msg.Err != nil {
			m.statusMsg = "schema load incomplete, completion may be partial"
		}
		return m, nil

	case QueryFinishedMsg:
		m.loading = false
		m.run.Reset()
		if msg.Err != nil {
			m.errMsg = m.run.ErrorMessage()
			if m.errMsg == "" {
				m.errMsg = msg.Err.Error()
			}
			return m, nil
		}
		m.errMsg = ""
		m.result = msg.Result
		m.lastQuery = msg.Query
		m.results = resultstable.FromQueryResult(msg.Result, m.cfg.PageSize)
		m.statusMsg = ""
		// Schema may have changed under a DDL or DML statement.
		if msg.Result != nil && !msg.Result.IsSelect {
			m.schemaVersion++
			return m, loadSchemaCmd(m.driver, m.schemaVersion)
		}
		return m, nil

	case DebounceMsg:
		if msg.ID != m.debounceID {
			return m, nil
		}
		if m.popup.Visible() {
			m = m.refreshSuggestions()
		}
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Text
		return m, nil

	case HistoryLoadedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.histEntries = msg.Entries
		m.showingHistory = true
		m.histTable = resultstable.FromHistory(msg.Entries, m.cfg.PageSize, msg.Total)
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.errMsg = "export failed: " + msg.Err.Error()
		} else {
			m.statusMsg = "exported to " + msg.Path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey is the single keyboard dispatcher. The popup, history recall and
// the editor share keys, so precedence is decided here in one place.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// esc dismisses whatever is open before it can mean exit.
	if m.appState == StateReady && key == "esc" {
		if m.popup.Visible() {
			m.popup = m.popup.Hide()
			return m, nil
		}
		if m.showingHistory {
			m.showingHistory = false
			return m, nil
		}
	}

	if matchKey(m.cfg.Keys.Exit, key) {
		return m, tea.Quit
	}

	if m.appState != StateReady {
		var cmd tea.Cmd
		m.selector, cmd = m.selector.Update(msg)
		return m, cmd
	}

	switch {
	case m.popup.Visible() && (key == "enter" || key == "tab"):
		if c, ok := m.popup.Selected(); ok {
			m = m.applyCandidate(c)
		}
		m.popup = m.popup.Hide()
		return m, nil

	case matchKey(m.cfg.Keys.Execute, key):
		return m.handleExecute()

	case matchKey(m.cfg.Keys.Autocomplete, key):
		m = m.refreshSuggestions()
		return m, nil

	case matchKey(m.cfg.Keys.HistoryOlder, key):
		if res := m.nav.Handle(history.KeyOlder, m.editor.Value(), m.popup.Visible()); res.Handled {
			m = m.setBuffer(res.Buffer)
			return m, nil
		}
		if m.popup.Visible() {
			m.popup = m.popup.MoveUp()
			return m, nil
		}
		return m.forwardToEditor(msg)

	case matchKey(m.cfg.Keys.HistoryNewer, key):
		if res := m.nav.Handle(history.KeyNewer, m.editor.Value(), m.popup.Visible()); res.Handled {
			m = m.setBuffer(res.Buffer)
			return m, nil
		}
		if m.popup.Visible() {
			m.popup = m.popup.MoveDown()
			return m, nil
		}
		return m.forwardToEditor(msg)

	case matchKey(m.cfg.Keys.NextPage, key):
		switch {
		case m.showingHistory:
			m.histTable = m.histTable.PageDown()
		case m.result != nil:
			m.results = m.results.PageDown()
		}
		return m, nil

	case matchKey(m.cfg.Keys.PrevPage, key):
		switch {
		case m.showingHistory:
			m.histTable = m.histTable.PageUp()
		case m.result != nil:
			m.results = m.results.PageUp()
		}
		return m, nil
	}

	return m.forwardToEditor(msg)
}

// forwardToEditor passes a key to the textarea and debounces a suggestion
// refresh so the popup refilters as the user types.
func (m Model) forwardToEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if m.popup.Visible() {
		m.debounceID++
		return m, tea.Batch(cmd, debounceCmd(m.debounceID))
	}
	return m, cmd
}

func (m Model) handleExecute() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	query := strings.TrimSpace(m.editor.Value())
	if query == "" {
		return m, nil
	}

	if strings.HasPrefix(query, "/") {
		return m.handleSlashCommand(query)
	}

	m.loading = true
	m.errMsg = ""
	m.statusMsg = "running..."
	m.popup = m.popup.Hide()
	m.showingHistory = false
	return m, m.executeQueryCmd(query)
}

// handleSlashCommand dispatches /commands and config-defined aliases.
func (m Model) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := strings.TrimPrefix(parts[0], "/")
	args := parts[1:]

	switch cmd {
	case "exit", "quit":
		return m, tea.Quit

	case "connect":
		if len(args) == 0 {
			m.errMsg = "usage: /connect <name> | /connect add <name> <dsn>"
			return m, nil
		}
		if args[0] == "add" {
			if len(args) != 3 {
				m.errMsg = "usage: /connect add <name> <dsn>"
				return m, nil
			}
			conn, err := config.ParseDSN(args[1], args[2])
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			if err := m.cfg.AddConnection(conn); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m = m.setBuffer("")
			return m, statusCmd("connection %q saved", conn.Name)
		}
		conn, err := m.cfg.GetConnection(args[0])
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if m.driver != nil {
			m.driver.Close()
		}
		m = m.setBuffer("")
		m.snapshot = nil
		m.appState = StateConnecting
		m.conn = conn
		return m, connectCmd(*conn)

	case "export":
		if len(args) < 2 {
			m.errMsg = "usage: /export <csv|json> <path>"
			return m, nil
		}
		m = m.setBuffer("")
		return m, m.exportResultCmd(args[0], args[1])

	case "refresh":
		m.loadingSchema = true
		m.schemaVersion++
		return m, loadSchemaCmd(m.driver, m.schemaVersion)

	case "history":
		return m.handleHistoryCommand(args)
	}

	// Config aliases expand to the SQL they stand for.
	if sql, ok := m.cfg.Commands[cmd]; ok {
		m = m.setBuffer(sql)
		return m.handleExecute()
	}

	m.errMsg = "unknown command: /" + cmd
	return m, nil
}

// handleHistoryCommand serves the /history view over the persisted store:
// no arguments lists recent entries, "use <n>" recalls a listed entry into
// the buffer, "rm <n>" deletes one, anything else is a search term.
func (m Model) handleHistoryCommand(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m = m.setBuffer("")
		return m, m.loadHistoryCmd("")
	}

	switch args[0] {
	case "use":
		entry, ok := m.listedEntry(args)
		if !ok {
			m.errMsg = "usage: /history use <#> (run /history first)"
			return m, nil
		}
		m.showingHistory = false
		m = m.setBuffer(entry.Query)
		return m, nil

	case "rm":
		entry, ok := m.listedEntry(args)
		if !ok {
			m.errMsg = "usage: /history rm <#> (run /history first)"
			return m, nil
		}
		if m.store == nil {
			m.errMsg = "history persistence is disabled"
			return m, nil
		}
		if err := m.store.Delete(entry.ID); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m = m.setBuffer("")
		return m, m.loadHistoryCmd("")
	}

	m = m.setBuffer("")
	return m, m.loadHistoryCmd(strings.Join(args, " "))
}

// listedEntry resolves a 1-based row number from the last /history listing.
func (m Model) listedEntry(args []string) (history.Entry, bool) {
	if len(args) != 2 {
		return history.Entry{}, false
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 || n > len(m.histEntries) {
		return history.Entry{}, false
	}
	return m.histEntries[n-1], true
}

// refreshSuggestions assembles candidates at the current cursor and filters
// them by the partial word, showing the popup.
func (m Model) refreshSuggestions() Model {
	value := m.editor.Value()
	pos := m.cursorPosition()

	cands := m.assembler.Assemble(value, pos, m.snapshot)
	word := complete.ResolveContext(value, pos).Word
	m.popup = m.popup.SetItems(complete.Filter(cands, word))
	return m
}

// cursorPosition returns the cursor's logical line and column. LineInfo
// reports offsets within the current soft-wrapped segment, so the segment's
// start column is added back to address the unwrapped line.
func (m Model) cursorPosition() complete.Position {
	info := m.editor.LineInfo()
	return complete.Position{
		Line: m.editor.Line(),
		Col:  info.StartColumn + info.ColumnOffset,
	}
}

// applyCandidate replaces the candidate's span with its insert text and
// places the cursor after it.
func (m Model) applyCandidate(c complete.Candidate) Model {
	lines := strings.Split(m.editor.Value(), "\n")
	row := c.Replace.Line
	if row < 0 || row >= len(lines) {
		return m
	}
	line := lines[row]

	start, end := c.Replace.Start, c.Replace.End
	if start < 0 || end > len(line) || start > end {
		return m
	}

	lines[row] = line[:start] + c.InsertText + line[end:]
	m.editor.SetValue(strings.Join(lines, "\n"))

	// textarea addresses the cursor by linear index over the full buffer.
	cursorIdx := start + len(c.InsertText)
	for i := 0; i < row; i++ {
		cursorIdx += len(lines[i]) + 1
	}
	m.editor.SetCursor(cursorIdx)
	return m
}

func (m Model) setBuffer(s string) Model {
	m.editor.SetValue(s)
	m.editor.SetCursor(len(s))
	return m
}

func matchKey(bindings []string, key string) bool {
	for _, b := range bindings {
		if b == key {
			return true
		}
	}
	return false
}
