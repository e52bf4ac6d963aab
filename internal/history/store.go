// internal/history/store.go
package history

import (
	"database/sql"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// Store persists executed queries in a SQLite database under the XDG data
// directory.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the history database.
func NewStore() (*Store, error) {
	dbPath, err := xdg.DataFile("querypad/history.db")
	if err != nil {
		return nil, err
	}
	return openStore("file:" + dbPath)
}

// NewMemoryStore opens an in-memory history database, used by tests.
func NewMemoryStore() (*Store, error) {
	return openStore(":memory:")
}

func openStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			connection TEXT NOT NULL,
			query TEXT NOT NULL,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			duration_ms INTEGER NOT NULL,
			row_count INTEGER NOT NULL,
			status TEXT NOT NULL,
			error_msg TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_history_connection ON history(connection);
		CREATE INDEX IF NOT EXISTS idx_history_executed_at ON history(executed_at);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db}
	// Best effort; a failed cleanup never blocks startup.
	_ = store.cleanup()
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts an execution record and fills in its assigned ID.
func (s *Store) Add(entry *Entry) error {
	res, err := s.db.Exec(`
		INSERT INTO history (connection, query, executed_at, duration_ms, row_count, status, error_msg)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.Connection, entry.Query, entry.ExecutedAt,
		entry.DurationMs, entry.RowCount, entry.Status, entry.ErrorMsg)
	if err != nil {
		return err
	}

	entry.ID, err = res.LastInsertId()
	return err
}

// List returns the newest entries for a connection, most recent first.
func (s *Store) List(connection string, limit, offset int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, connection, query, executed_at, duration_ms, row_count, status, error_msg
		FROM history
		WHERE connection = ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, connection, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search finds entries whose query contains substr.
func (s *Store) Search(connection, substr string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, connection, query, executed_at, duration_ms, row_count, status, error_msg
		FROM history
		WHERE connection = ? AND query LIKE ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ?
	`, connection, "%"+substr+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Count returns how many entries a connection has.
func (s *Store) Count(connection string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM history WHERE connection = ?`, connection).Scan(&count)
	return count, err
}

// Delete removes one entry.
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM history WHERE id = ?", id)
	return err
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var errMsg sql.NullString
		if err := rows.Scan(&e.ID, &e.Connection, &e.Query, &e.ExecutedAt,
			&e.DurationMs, &e.RowCount, &e.Status, &errMsg); err != nil {
			return nil, err
		}
		e.ErrorMsg = errMsg.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// cleanup drops entries older than 90 days.
func (s *Store) cleanup() error {
	_, err := s.db.Exec(`DELETE FROM history WHERE executed_at < datetime('now', '-90 days')`)
	return err
}
