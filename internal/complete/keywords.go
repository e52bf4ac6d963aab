// internal/complete/keywords.go
package complete

// DefaultKeywords is the built-in static candidate floor. It is a single
// flat list on purpose; dialect-specific keyword sets are a configuration
// concern, not a parsing one.
var DefaultKeywords = []string{
	"SELECT", "INSERT", "UPDATE", "DELETE", "FROM", "WHERE", "JOIN",
	"LEFT", "RIGHT", "INNER", "OUTER", "ON", "AS", "AND", "OR", "NOT",
	"IN", "LIKE", "IS", "NULL", "GROUP BY", "ORDER BY", "HAVING",
	"LIMIT", "OFFSET", "DISTINCT", "UNION", "VALUES", "SET", "INTO",
	"COUNT", "SUM", "AVG", "MIN", "MAX",
}

// DefaultSnippets are whole-statement starters offered ahead of plain
// keywords.
var DefaultSnippets = []string{
	"SELECT * FROM ",
	"SELECT COUNT(*) FROM ",
	"INSERT INTO ",
	"UPDATE ",
	"DELETE FROM ",
}
