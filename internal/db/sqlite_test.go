// internal/db/sqlite_test.go
package db

import (
	"context"
	"testing"
)

func openTestDriver(t *testing.T) *SQLiteDriver {
	t.Helper()

	d := &SQLiteDriver{}
	if err := d.Connect(ConnectParams{Database: ":memory:"}); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	ctx := context.Background()
	if _, err := d.Execute(ctx, `CREATE TABLE orders (id INTEGER PRIMARY KEY, customer_id INTEGER NOT NULL, total REAL)`); err != nil {
		t.Fatalf("create table failed: %v", err)
	}
	return d
}

func TestSQLiteExecuteSelect(t *testing.T) {
	d := openTestDriver(t)
	ctx := context.Background()

	if _, err := d.Execute(ctx, `INSERT INTO orders (customer_id, total) VALUES (1, 9.5), (2, 20)`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	res, err := d.Execute(ctx, "SELECT id, customer_id FROM orders ORDER BY id")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if !res.IsSelect {
		t.Error("expected IsSelect for a SELECT statement")
	}
	if res.RowCount != 2 {
		t.Errorf("expected 2 rows, got %d", res.RowCount)
	}
	if len(res.Columns) != 2 || res.Columns[0] != "id" {
		t.Errorf("unexpected columns: %v", res.Columns)
	}
}

func TestSQLiteExecuteDML(t *testing.T) {
	d := openTestDriver(t)
	ctx := context.Background()

	res, err := d.Execute(ctx, `INSERT INTO orders (customer_id, total) VALUES (7, 1.0)`)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if res.IsSelect {
		t.Error("INSERT should not be reported as a select")
	}
	if res.AffectedRows != 1 {
		t.Errorf("expected 1 affected row, got %d", res.AffectedRows)
	}
}

func TestSQLiteMetadata(t *testing.T) {
	d := openTestDriver(t)
	ctx := context.Background()

	tables, err := d.GetTables(ctx)
	if err != nil {
		t.Fatalf("GetTables failed: %v", err)
	}
	if len(tables) != 1 || tables[0] != "orders" {
		t.Errorf("unexpected tables: %v", tables)
	}

	cols, err := d.GetColumns(ctx, "orders")
	if err != nil {
		t.Fatalf("GetColumns failed: %v", err)
	}
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	if cols[0].Name != "id" || cols[0].Key != "PRI" {
		t.Errorf("expected id to be the primary key, got %+v", cols[0])
	}
	if cols[1].Nullable {
		t.Error("customer_id should be NOT NULL")
	}
}

func TestSQLiteQueryError(t *testing.T) {
	d := openTestDriver(t)

	_, err := d.Execute(context.Background(), "SELECT * FROM missing_table")
	if err == nil {
		t.Fatal("expected an error for a missing table")
	}
}
