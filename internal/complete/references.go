// internal/complete/references.go
package complete

import (
	"regexp"
	"strings"
)

// TableRef is one table mentioned in a FROM or JOIN clause, together with
// the alias it is reachable under. Alias equals Table when the query binds
// no explicit alias.
type TableRef struct {
	Table string
	Alias string
}

var (
	// clausePattern finds the head of a table reference: FROM or JOIN
	// followed by a simple or schema-qualified identifier.
	clausePattern = regexp.MustCompile(`(?i)\b(?:from|join)\s+([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)*)`)

	// aliasPattern matches an optional trailing alias, anchored right after
	// the table identifier: whitespace, optional AS, then an identifier.
	aliasPattern = regexp.MustCompile(`(?i)^\s+(?:as\s+)?([a-zA-Z_][a-zA-Z0-9_]*)`)
)

// aliasStopWords are keywords that can directly follow a table reference and
// must never be mistaken for an implicit alias.
var aliasStopWords = map[string]bool{
	"on":    true,
	"where": true,
	"inner": true,
	"left":  true,
	"right": true,
	"join":  true,
}

// ExtractReferences scans raw, possibly invalid SQL and returns every table
// reference it can find, in source order. It never fails; text with no
// recognizable references yields an empty slice.
func ExtractReferences(sql string) []TableRef {
	var refs []TableRef

	pos := 0
	for pos < len(sql) {
		loc := clausePattern.FindStringSubmatchIndex(sql[pos:])
		if loc == nil {
			break
		}

		matchEnd := pos + loc[1]
		table := sql[pos+loc[2] : pos+loc[3]]

		// A '(' right after the identifier means a table-valued function
		// call, not a table reference.
		if matchEnd < len(sql) && sql[matchEnd] == '(' {
			pos = matchEnd
			continue
		}

		ref := TableRef{Table: table, Alias: table}

		// Look for an alias directly after the table name. Keywords like
		// WHERE or JOIN are left unconsumed so the scan picks them up on
		// the next iteration.
		if m := aliasPattern.FindStringSubmatch(sql[matchEnd:]); m != nil {
			if !aliasStopWords[strings.ToLower(m[1])] {
				ref.Alias = m[1]
				matchEnd += len(m[0])
			}
		}

		refs = append(refs, ref)
		pos = matchEnd
	}

	return refs
}

// AliasMap folds references into an alias -> table lookup. When two
// references share an alias the later one wins.
func AliasMap(refs []TableRef) map[string]string {
	m := make(map[string]string, len(refs))
	for _, r := range refs {
		m[r.Alias] = r.Table
	}
	return m
}
