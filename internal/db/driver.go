// internal/db/driver.go
package db

import (
	"context"
	"fmt"
	"time"
)

// DriverType represents supported database types
type DriverType string

const (
	Postgres DriverType = "postgres"
	MySQL    DriverType = "mysql"
	SQLite   DriverType = "sqlite"
)

// Column represents table column metadata
type Column struct {
	Name     string
	Type     string
	Nullable bool
	Default  string
	Key      string // PRI, UNI, FK
}

// ConnectParams holds database connection details
type ConnectParams struct {
	Host      string
	Port      int
	User      string
	Password  string
	Database  string
	SSHConfig *SSHConfig // Optional SSH tunnel config
}

// Driver defines the interface for database operations. GetTables and
// GetColumns are the metadata collaborators the completion engine snapshots;
// Execute is the query-execution collaborator behind the runner.
type Driver interface {
	Connect(params ConnectParams) error
	Close() error
	Execute(ctx context.Context, query string) (*QueryResult, error)
	Ping(ctx context.Context) error
	Type() DriverType
	GetTables(ctx context.Context) ([]string, error)
	GetColumns(ctx context.Context, tableName string) ([]Column, error)
}

// QueryResult contains one execution's results. A new result replaces the
// previous one wholesale; it is never mutated in place.
type QueryResult struct {
	Columns      []string
	Rows         [][]string
	ExecTime     time.Duration
	RowCount     int
	IsSelect     bool
	AffectedRows int64
}

// NewDriver creates a new driver instance by type
func NewDriver(driverType DriverType) (Driver, error) {
	switch driverType {
	case Postgres:
		return &PostgresDriver{}, nil
	case MySQL:
		return &MySQLDriver{}, nil
	case SQLite:
		return &SQLiteDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
}
