// internal/ui/commands.go
package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/querypad/internal/complete"
	"github.com/nhath/querypad/internal/config"
	"github.com/nhath/querypad/internal/db"
	"github.com/nhath/querypad/internal/history"
	"github.com/nhath/querypad/internal/runner"
)

const queryTimeout = 30 * time.Second

// driverExecutor adapts a db.Driver to the runner's Executor contract. The
// connectionID is validated upstream; here it only tags history entries.
type driverExecutor struct {
	driver db.Driver
}

func (e *driverExecutor) Execute(ctx context.Context, connectionID, sql string) (*db.QueryResult, error) {
	return e.driver.Execute(ctx, sql)
}

// newRunner builds the execution coordinator for the active connection.
func newRunner(m Model) *runner.Runner {
	return runner.New(&driverExecutor{driver: m.driver}, m.ring)
}

// connectCmd opens the database connection for a profile.
func connectCmd(conn config.Connection) tea.Cmd {
	return func() tea.Msg {
		driver, err := db.NewDriver(db.DriverType(conn.Type))
		if err != nil {
			return ConnectedMsg{Connection: conn, Err: err}
		}

		params := db.ConnectParams{
			Host:     conn.Host,
			Port:     conn.Port,
			User:     conn.User,
			Password: conn.Password,
			Database: conn.Database,
		}
		if conn.SSHHost != "" {
			params.SSHConfig = &db.SSHConfig{
				Host:     conn.SSHHost,
				Port:     conn.SSHPort,
				User:     conn.SSHUser,
				Password: conn.SSHPassword,
				KeyPath:  conn.SSHKeyPath,
			}
		}

		if err := driver.Connect(params); err != nil {
			return ConnectedMsg{Connection: conn, Err: err}
		}
		return ConnectedMsg{Connection: conn, Driver: driver}
	}
}

// loadSchemaCmd snapshots table and column metadata for completion. A partial
// snapshot on error is still delivered so completion degrades instead of
// disappearing.
func loadSchemaCmd(driver db.Driver, version int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		snap, err := complete.LoadSnapshot(ctx, driver, version)
		return SchemaLoadedMsg{Snapshot: snap, Err: err}
	}
}

// executeQueryCmd runs the buffer through the runner and records the outcome
// in the history store.
func (m Model) executeQueryCmd(query string) tea.Cmd {
	run := m.run
	store := m.store
	connName := ""
	if m.conn != nil {
		connName = m.conn.Name
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		start := time.Now()
		result, err := run.Run(ctx, connName, query)

		if store != nil {
			entry := &history.Entry{
				Connection: connName,
				Query:      strings.TrimSpace(query),
				ExecutedAt: time.Now(),
				DurationMs: time.Since(start).Milliseconds(),
				Status:     "success",
			}
			if err != nil {
				entry.Status = "error"
				entry.ErrorMsg = err.Error()
			} else if result != nil {
				entry.RowCount = result.RowCount
				entry.DurationMs = result.ExecTime.Milliseconds()
			}
			if err := store.Add(entry); err != nil {
				log.Printf("history: recording entry: %v", err)
			}
		}

		return QueryFinishedMsg{Query: query, Result: result, Err: err}
	}
}

const historyPageLimit = 20

// loadHistoryCmd fetches recent persisted entries for the active
// connection, optionally filtered by a search term.
func (m Model) loadHistoryCmd(term string) tea.Cmd {
	store := m.store
	connName := ""
	if m.conn != nil {
		connName = m.conn.Name
	}

	return func() tea.Msg {
		if store == nil {
			return HistoryLoadedMsg{Err: errors.New("history persistence is disabled")}
		}

		var (
			entries []history.Entry
			err     error
		)
		if term == "" {
			entries, err = store.List(connName, historyPageLimit, 0)
		} else {
			entries, err = store.Search(connName, term, historyPageLimit)
		}
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}

		total, err := store.Count(connName)
		if err != nil {
			total = len(entries)
		}
		return HistoryLoadedMsg{Entries: entries, Total: total}
	}
}

// debounceCmd schedules a deferred suggestion refresh. The ID lets the
// update loop drop ticks that a newer keystroke superseded.
func debounceCmd(id int) tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}

// statusCmd emits a transient status-bar message.
func statusCmd(format string, args ...interface{}) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: fmt.Sprintf(format, args...)}
	}
}
