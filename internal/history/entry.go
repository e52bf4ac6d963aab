// internal/history/entry.go
package history

import (
	"strings"
	"time"
)

// Entry is one executed query persisted across sessions. The in-memory
// Ring drives keyboard recall; persisted entries back the /history listing
// and record what ran against which connection.
type Entry struct {
	ID         int64
	Connection string
	Query      string
	ExecutedAt time.Time
	DurationMs int64
	RowCount   int
	Status     string // "success" or "error"
	ErrorMsg   string
}

// QueryPreview returns the query collapsed to one line and truncated to
// maxLen for list rendering.
func (e *Entry) QueryPreview(maxLen int) string {
	q := strings.Join(strings.Fields(e.Query), " ")
	if len(q) > maxLen {
		return q[:maxLen-3] + "..."
	}
	return q
}
