// internal/db/postgres.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/lib/pq"
)

// PostgresDriver implements Driver for PostgreSQL
type PostgresDriver struct {
	db     *sql.DB
	tunnel *SSHTunnel
}

// Connect establishes connection to PostgreSQL
func (d *PostgresDriver) Connect(params ConnectParams) error {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(params.User, params.Password),
		Host:     fmt.Sprintf("%s:%d", params.Host, params.Port),
		Path:     "/" + params.Database,
		RawQuery: "sslmode=prefer",
	}

	connector, err := pq.NewConnector(u.String())
	if err != nil {
		return WrapConnectionError(err)
	}

	// Route through the SSH tunnel when configured; the tunnel endpoint
	// resolves the database host, not the local machine.
	if params.SSHConfig != nil && params.SSHConfig.Host != "" {
		tunnel, err := NewSSHTunnel(params.SSHConfig)
		if err != nil {
			return WrapConnectionError(fmt.Errorf("ssh tunnel: %w", err))
		}
		d.tunnel = tunnel
		connector.Dialer(tunnel)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		if d.tunnel != nil {
			d.tunnel.Close()
		}
		return WrapConnectionError(err)
	}

	d.db = db
	return nil
}

// Close closes the database connection and SSH tunnel
func (d *PostgresDriver) Close() error {
	var dbErr error
	if d.db != nil {
		dbErr = d.db.Close()
	}
	if d.tunnel != nil {
		if err := d.tunnel.Close(); err != nil {
			if dbErr != nil {
				return fmt.Errorf("db close err: %v, tunnel close err: %w", dbErr, err)
			}
			return err
		}
	}
	return dbErr
}

// Execute runs a query and returns results
func (d *PostgresDriver) Execute(ctx context.Context, query string) (*QueryResult, error) {
	return executeQuery(ctx, d.db, query)
}

// Ping checks if database is reachable
func (d *PostgresDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *PostgresDriver) Type() DriverType {
	return Postgres
}

// GetTables returns schema-qualified tables and views outside the system
// schemas.
func (d *PostgresDriver) GetTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT n.nspname || '.' || c.relname
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE n.nspname NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		AND c.relkind IN ('r', 'v', 'm', 'f', 'p')
		ORDER BY 1`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, WrapQueryError(err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// GetColumns returns column metadata for a schema-qualified table name.
func (d *PostgresDriver) GetColumns(ctx context.Context, tableName string) ([]Column, error) {
	query := `
		SELECT
			a.attname AS column_name,
			format_type(a.atttypid, a.atttypmod) AS data_type,
			NOT a.attnotnull AS nullable,
			COALESCE(pg_get_expr(d.adbin, d.adrelid), '') AS default_value,
			COALESCE(
				(SELECT 'PRI' FROM pg_index i WHERE i.indrelid = a.attrelid AND a.attnum = ANY(i.indkey::int2[]) AND i.indisprimary LIMIT 1),
				(SELECT 'UNI' FROM pg_index i WHERE i.indrelid = a.attrelid AND a.attnum = ANY(i.indkey::int2[]) AND i.indisunique AND NOT i.indisprimary LIMIT 1),
				(SELECT 'FK' FROM pg_constraint c WHERE c.conrelid = a.attrelid AND a.attnum = ANY(c.conkey::int2[]) AND c.contype = 'f' LIMIT 1),
				''
			) AS key_type
		FROM pg_attribute a
		LEFT JOIN pg_attrdef d ON a.attrelid = d.adrelid AND a.attnum = d.adnum
		JOIN pg_class cl ON a.attrelid = cl.oid
		JOIN pg_namespace n ON cl.relnamespace = n.oid
		WHERE n.nspname || '.' || cl.relname = $1 AND a.attnum > 0 AND NOT a.attisdropped
		ORDER BY a.attnum`

	rows, err := d.db.QueryContext(ctx, query, tableName)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Name, &col.Type, &col.Nullable, &col.Default, &col.Key); err != nil {
			return nil, WrapQueryError(err)
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}
