// internal/complete/assemble.go
package complete

import "strings"

// Kind classifies a completion candidate for popup rendering.
type Kind int

const (
	KindSnippet Kind = iota
	KindKeyword
	KindTable
	KindColumn
)

// Candidate is one suggested insertion at the cursor. Order within a
// response is significant: it is the popup ranking.
type Candidate struct {
	Label      string
	Kind       Kind
	InsertText string
	Replace    Span
	Detail     string // column type, table name of a column, etc.
}

// Assembler combines the reference extractor, the context resolver and a
// schema snapshot into ranked candidate lists.
type Assembler struct {
	snippets []string
	keywords []string
}

// NewAssembler builds an assembler with the given static floor. Nil slices
// fall back to the defaults.
func NewAssembler(snippets, keywords []string) *Assembler {
	if snippets == nil {
		snippets = DefaultSnippets
	}
	if keywords == nil {
		keywords = DefaultKeywords
	}
	return &Assembler{snippets: snippets, keywords: keywords}
}

// Assemble produces the candidate list for the buffer text and cursor
// position against a schema snapshot. It is a pure function of its
// arguments: references are re-extracted from the full text on every call,
// no state is carried between keystrokes.
func (a *Assembler) Assemble(sql string, pos Position, snap *Snapshot) []Candidate {
	ctx := ResolveContext(sql, pos)
	aliases := AliasMap(ExtractReferences(sql))

	var out []Candidate

	// Static floor first so it wins de-duplication against schema-derived
	// candidates with the same text.
	for _, s := range a.snippets {
		out = append(out, Candidate{
			Label:      s,
			Kind:       KindSnippet,
			InsertText: s,
			Replace:    ctx.Replace,
		})
	}
	for _, kw := range a.keywords {
		out = append(out, Candidate{
			Label:      kw,
			Kind:       KindKeyword,
			InsertText: kw,
			Replace:    ctx.Replace,
		})
	}

	switch {
	case ctx.Qualifier != "":
		// Alias lookup is exact and case-sensitive. An unresolved
		// qualifier adds nothing beyond the floor.
		if table, ok := aliases[ctx.Qualifier]; ok {
			for _, col := range snap.ColumnsFor(table) {
				out = append(out, Candidate{
					Label:      col.Name,
					Kind:       KindColumn,
					InsertText: col.Name,
					Replace:    ctx.Replace,
					Detail:     col.Type,
				})
			}
		}

	case snap != nil:
		for _, table := range snap.Tables {
			out = append(out, Candidate{
				Label:      table,
				Kind:       KindTable,
				InsertText: table,
				Replace:    ctx.Replace,
			})
		}
	}

	return dedupe(out)
}

// Filter keeps candidates whose label matches prefix, case-insensitively.
// An empty prefix keeps everything.
func Filter(cands []Candidate, prefix string) []Candidate {
	if prefix == "" {
		return cands
	}
	upper := strings.ToUpper(prefix)
	var out []Candidate
	for _, c := range cands {
		if strings.HasPrefix(strings.ToUpper(c.Label), upper) {
			out = append(out, c)
		}
	}
	return out
}

// dedupe drops candidates whose InsertText was already seen, keeping the
// first occurrence and its metadata.
func dedupe(cands []Candidate) []Candidate {
	seen := make(map[string]bool, len(cands))
	out := cands[:0]
	for _, c := range cands {
		if seen[c.InsertText] {
			continue
		}
		seen[c.InsertText] = true
		out = append(out, c)
	}
	return out
}
