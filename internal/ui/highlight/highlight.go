// Package highlight renders SQL with ANSI colors via chroma.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var (
	lexer     = chroma.Coalesce(lexers.Get("sql"))
	formatter = formatters.Get("terminal256")
	style     = styles.Get("nord")
)

// SQL returns sql with terminal color codes applied. On any tokenization
// or formatting problem the input is returned unchanged; highlighting is
// cosmetic and must never break rendering.
func SQL(sql string) string {
	if lexer == nil || formatter == nil || style == nil {
		return sql
	}

	it, err := lexer.Tokenise(nil, sql)
	if err != nil {
		return sql
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, style, it); err != nil {
		return sql
	}

	// chroma appends a trailing reset newline we don't want inside a
	// single-line render.
	return strings.TrimSuffix(sb.String(), "\n")
}
