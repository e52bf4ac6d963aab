// internal/ui/messages.go
package ui

import (
	"github.com/nhath/querypad/internal/complete"
	"github.com/nhath/querypad/internal/config"
	"github.com/nhath/querypad/internal/db"
	"github.com/nhath/querypad/internal/history"
)

// ConnectedMsg is sent when a connection attempt settles.
type ConnectedMsg struct {
	Connection config.Connection
	Driver     db.Driver
	Err        error
}

// SchemaLoadedMsg carries a fresh schema snapshot for completion.
type SchemaLoadedMsg struct {
	Snapshot *complete.Snapshot
	Err      error
}

// QueryFinishedMsg is sent when query execution completes.
type QueryFinishedMsg struct {
	Query  string
	Result *db.QueryResult
	Err    error
}

// DebounceMsg triggers a deferred suggestion refresh; stale IDs are
// ignored.
type DebounceMsg struct {
	ID int
}

// StatusMsg carries a transient status-bar message.
type StatusMsg struct {
	Text string
}

// HistoryLoadedMsg carries persisted history entries for the /history view.
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Total   int
	Err     error
}
