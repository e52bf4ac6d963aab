// internal/complete/schema.go
package complete

import (
	"context"
	"fmt"
	"log"

	"github.com/nhath/querypad/internal/db"
)

// Snapshot is a read-only view of the connected database's schema, taken
// when a connection is opened or refreshed. Completion always works off an
// explicitly passed snapshot so it stays a pure function of its inputs;
// stale reads during a refresh are tolerated.
type Snapshot struct {
	Version int
	Tables  []string
	Columns map[string][]db.Column
}

// MetadataLoader is the external collaborator that supplies table and
// column metadata. db.Driver satisfies it.
type MetadataLoader interface {
	GetTables(ctx context.Context) ([]string, error)
	GetColumns(ctx context.Context, tableName string) ([]db.Column, error)
}

// MetadataLoadError wraps a table list or column load failure. It is logged
// and completion degrades to the static floor; editing is never blocked.
type MetadataLoadError struct {
	Underlying error
}

func (e *MetadataLoadError) Error() string {
	return fmt.Sprintf("metadata load failed: %v", e.Underlying)
}

func (e *MetadataLoadError) Unwrap() error { return e.Underlying }

// LoadSnapshot builds a schema snapshot from the loader. A table whose
// columns cannot be loaded is kept with an empty column list; a failed
// table listing returns an empty snapshot and the wrapped error.
func LoadSnapshot(ctx context.Context, loader MetadataLoader, version int) (*Snapshot, error) {
	snap := &Snapshot{
		Version: version,
		Columns: make(map[string][]db.Column),
	}

	tables, err := loader.GetTables(ctx)
	if err != nil {
		lerr := &MetadataLoadError{Underlying: err}
		log.Printf("schema: %v", lerr)
		return snap, lerr
	}

	snap.Tables = tables
	for _, table := range tables {
		cols, err := loader.GetColumns(ctx, table)
		if err != nil {
			log.Printf("schema: columns for %q: %v", table, err)
			continue
		}
		snap.Columns[table] = cols
	}

	return snap, nil
}

// ColumnsFor returns the column list for a table, nil when unknown.
func (s *Snapshot) ColumnsFor(table string) []db.Column {
	if s == nil {
		return nil
	}
	return s.Columns[table]
}
