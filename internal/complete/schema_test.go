// internal/complete/schema_test.go
package complete

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/querypad/internal/db"
)

type fakeLoader struct {
	tables    []string
	tablesErr error
	columns   map[string][]db.Column
	colErrs   map[string]error
}

func (f *fakeLoader) GetTables(ctx context.Context) ([]string, error) {
	return f.tables, f.tablesErr
}

func (f *fakeLoader) GetColumns(ctx context.Context, table string) ([]db.Column, error) {
	if err, ok := f.colErrs[table]; ok {
		return nil, err
	}
	return f.columns[table], nil
}

func TestLoadSnapshot(t *testing.T) {
	loader := &fakeLoader{
		tables: []string{"orders", "customers"},
		columns: map[string][]db.Column{
			"orders":    {{Name: "id"}},
			"customers": {{Name: "id"}, {Name: "name"}},
		},
	}

	snap, err := LoadSnapshot(context.Background(), loader, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Version)
	assert.Equal(t, []string{"orders", "customers"}, snap.Tables)
	assert.Len(t, snap.ColumnsFor("customers"), 2)
}

func TestLoadSnapshotTableListFailure(t *testing.T) {
	cause := errors.New("connection reset")
	loader := &fakeLoader{tablesErr: cause}

	snap, err := LoadSnapshot(context.Background(), loader, 1)

	require.Error(t, err)
	var lerr *MetadataLoadError
	require.ErrorAs(t, err, &lerr)
	assert.ErrorIs(t, err, cause)

	// The snapshot is still usable, just empty.
	require.NotNil(t, snap)
	assert.Empty(t, snap.Tables)
}

func TestLoadSnapshotPartialColumnFailure(t *testing.T) {
	loader := &fakeLoader{
		tables:  []string{"orders", "broken"},
		columns: map[string][]db.Column{"orders": {{Name: "id"}}},
		colErrs: map[string]error{"broken": errors.New("permission denied")},
	}

	snap, err := LoadSnapshot(context.Background(), loader, 1)

	require.NoError(t, err, "a single table's column failure must not fail the load")
	assert.Equal(t, []string{"orders", "broken"}, snap.Tables)
	assert.Len(t, snap.ColumnsFor("orders"), 1)
	assert.Empty(t, snap.ColumnsFor("broken"))
}

func TestColumnsForNilSnapshot(t *testing.T) {
	var snap *Snapshot
	assert.Nil(t, snap.ColumnsFor("orders"))
}
