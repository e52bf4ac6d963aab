// internal/complete/context.go
package complete

import (
	"strings"
	"unicode"
)

// Position is a cursor location inside the buffer: 0-based line, byte
// column within that line.
type Position struct {
	Line int
	Col  int
}

// Span is the range of text a completion should replace. It never crosses
// a line boundary; Start and End are byte columns on Line.
type Span struct {
	Line  int
	Start int
	End   int
}

// Context describes what the user is typing at the cursor.
type Context struct {
	// Preceding is the last whitespace-delimited token before the cursor
	// on the current line; empty when the prefix is blank or ends in
	// whitespace.
	Preceding string
	// Qualifier is the identifier before the last '.' in Preceding, used
	// for alias resolution. Empty when Preceding has no dot.
	Qualifier string
	// Word is the partial identifier under or directly before the cursor.
	Word string
	// Replace is the span Word occupies; accepting a candidate replaces
	// this span instead of inserting next to it.
	Replace Span
}

// ResolveContext classifies the completion context at pos. Only the current
// line is inspected; identifiers spanning lines are not supported.
func ResolveContext(sql string, pos Position) Context {
	lines := strings.Split(sql, "\n")
	if pos.Line < 0 || pos.Line >= len(lines) {
		return Context{Replace: Span{Line: pos.Line}}
	}

	line := lines[pos.Line]
	col := pos.Col
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}

	prefix := line[:col]

	ctx := Context{}
	if fields := strings.Fields(prefix); len(fields) > 0 && !endsInSpace(prefix) {
		ctx.Preceding = fields[len(fields)-1]
	}

	if dot := strings.LastIndexByte(ctx.Preceding, '.'); dot >= 0 {
		qualifier := ctx.Preceding[:dot]
		// Only the identifier directly before the dot matters, so a
		// chain like schema.table. resolves against "table".
		if inner := strings.LastIndexByte(qualifier, '.'); inner >= 0 {
			qualifier = qualifier[inner+1:]
		}
		ctx.Qualifier = qualifier
	}

	start, end := wordBounds(line, col)
	ctx.Word = line[start:end]
	ctx.Replace = Span{Line: pos.Line, Start: start, End: end}

	return ctx
}

// wordBounds expands from col to the word under the cursor. Word characters
// are letters, digits and underscore.
func wordBounds(line string, col int) (int, int) {
	start := col
	for start > 0 && isWordChar(rune(line[start-1])) {
		start--
	}
	end := col
	for end < len(line) && isWordChar(rune(line[end])) {
		end++
	}
	return start, end
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func endsInSpace(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsSpace(rune(s[len(s)-1]))
}
