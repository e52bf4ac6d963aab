// internal/config/connections.go
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GetConnection retrieves a connection by name
func (c *Config) GetConnection(name string) (*Connection, error) {
	for i := range c.Connections {
		if c.Connections[i].Name == name {
			return &c.Connections[i], nil
		}
	}
	return nil, fmt.Errorf("connection not found: %s", name)
}

// AddConnection adds a new connection to the config
func (c *Config) AddConnection(conn Connection) error {
	for _, existing := range c.Connections {
		if existing.Name == conn.Name {
			return fmt.Errorf("connection already exists: %s", conn.Name)
		}
	}
	c.Connections = append(c.Connections, conn)
	return c.Save()
}

// DeleteConnection removes a connection from the config
func (c *Config) DeleteConnection(name string) error {
	for i := range c.Connections {
		if c.Connections[i].Name == name {
			c.Connections = append(c.Connections[:i], c.Connections[i+1:]...)
			return c.Save()
		}
	}
	return fmt.Errorf("connection not found: %s", name)
}

// ListConnections returns all connection names
func (c *Config) ListConnections() []string {
	names := make([]string, len(c.Connections))
	for i, conn := range c.Connections {
		names[i] = conn.Name
	}
	return names
}

// ParseDSN parses a connection string into a Connection
func ParseDSN(name, dsn string) (Connection, error) {
	conn := Connection{Name: name}

	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		u, err := url.Parse(dsn)
		if err != nil {
			return conn, err
		}
		conn.Type = "postgres"
		conn.Host = u.Hostname()
		if port := u.Port(); port == "" {
			conn.Port = 5432
		} else {
			conn.Port, _ = strconv.Atoi(port)
		}
		conn.User = u.User.Username()
		conn.Password, _ = u.User.Password()
		conn.Database = strings.TrimPrefix(u.Path, "/")

	case strings.HasPrefix(dsn, "mysql://"):
		u, err := url.Parse(dsn)
		if err != nil {
			return conn, err
		}
		conn.Type = "mysql"
		conn.Host = u.Hostname()
		if port := u.Port(); port == "" {
			conn.Port = 3306
		} else {
			conn.Port, _ = strconv.Atoi(port)
		}
		conn.User = u.User.Username()
		conn.Password, _ = u.User.Password()
		conn.Database = strings.TrimPrefix(u.Path, "/")

	case strings.HasPrefix(dsn, "sqlite://") || strings.HasPrefix(dsn, "file:"):
		conn.Type = "sqlite"
		path := strings.TrimPrefix(dsn, "sqlite://")
		conn.Database = strings.TrimPrefix(path, "file:")

	default:
		// No scheme: assume a SQLite file path.
		conn.Type = "sqlite"
		conn.Database = dsn
	}

	return conn, nil
}
