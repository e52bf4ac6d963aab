// internal/complete/assemble_test.go
package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/querypad/internal/db"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Version: 1,
		Tables:  []string{"customers", "orders"},
		Columns: map[string][]db.Column{
			"customers": {
				{Name: "id", Type: "integer", Key: "PRI"},
				{Name: "name", Type: "text"},
			},
			"orders": {
				{Name: "id", Type: "integer", Key: "PRI"},
				{Name: "customer_id", Type: "integer"},
			},
		},
	}
}

func labels(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Label
	}
	return out
}

func ofKind(cands []Candidate, kind Kind) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func TestAssembleQualifiedColumns(t *testing.T) {
	a := NewAssembler(nil, nil)
	sql := "SELECT c. FROM customers c"

	cands := a.Assemble(sql, Position{Line: 0, Col: 9}, testSnapshot())

	cols := ofKind(cands, KindColumn)
	require.Len(t, cols, 2)
	assert.Equal(t, []string{"id", "name"}, labels(cols))
	assert.Equal(t, "integer", cols[0].Detail)
}

func TestAssembleStaticFloorAlwaysPresent(t *testing.T) {
	a := NewAssembler(nil, nil)

	// Qualified context still carries the full floor.
	cands := a.Assemble("SELECT c. FROM customers c", Position{Line: 0, Col: 9}, testSnapshot())
	assert.NotEmpty(t, ofKind(cands, KindSnippet))
	assert.NotEmpty(t, ofKind(cands, KindKeyword))

	// So does an empty buffer with no snapshot at all.
	cands = a.Assemble("", Position{Line: 0, Col: 0}, nil)
	assert.Len(t, ofKind(cands, KindSnippet), len(DefaultSnippets))
	assert.Empty(t, ofKind(cands, KindTable))
	assert.Empty(t, ofKind(cands, KindColumn))
}

func TestAssembleUnresolvedQualifierIsFloorOnly(t *testing.T) {
	a := NewAssembler(nil, nil)

	cands := a.Assemble("SELECT z. FROM customers c", Position{Line: 0, Col: 9}, testSnapshot())

	assert.Empty(t, ofKind(cands, KindColumn))
	assert.Empty(t, ofKind(cands, KindTable))
	assert.NotEmpty(t, ofKind(cands, KindKeyword))
}

func TestAssembleAliasMatchIsCaseSensitive(t *testing.T) {
	a := NewAssembler(nil, nil)

	cands := a.Assemble("SELECT C. FROM customers c", Position{Line: 0, Col: 9}, testSnapshot())

	assert.Empty(t, ofKind(cands, KindColumn), "alias lookup must not fold case")
}

func TestAssembleUnqualifiedOffersTables(t *testing.T) {
	a := NewAssembler(nil, nil)

	cands := a.Assemble("SELECT * FROM ", Position{Line: 0, Col: 14}, testSnapshot())

	tables := ofKind(cands, KindTable)
	require.Len(t, tables, 2)
	assert.Equal(t, []string{"customers", "orders"}, labels(tables))
}

func TestAssembleDedupKeepsFirstOccurrence(t *testing.T) {
	a := NewAssembler(nil, []string{"SELECT", "id"})

	cands := a.Assemble("SELECT c. FROM customers c", Position{Line: 0, Col: 9}, testSnapshot())

	var idCands []Candidate
	for _, c := range cands {
		if c.InsertText == "id" {
			idCands = append(idCands, c)
		}
	}
	require.Len(t, idCands, 1)
	// The keyword floor entry was seen first and keeps its metadata.
	assert.Equal(t, KindKeyword, idCands[0].Kind)
	assert.Equal(t, "", idCands[0].Detail)
}

func TestAssembleCandidatesCarryReplaceSpan(t *testing.T) {
	a := NewAssembler(nil, nil)
	sql := "SELECT o.cust FROM orders o"

	cands := a.Assemble(sql, Position{Line: 0, Col: 13}, testSnapshot())

	require.NotEmpty(t, cands)
	for _, c := range cands {
		assert.Equal(t, Span{Line: 0, Start: 9, End: 13}, c.Replace)
	}
}

func TestFilterCaseInsensitivePrefix(t *testing.T) {
	cands := []Candidate{
		{Label: "SELECT"},
		{Label: "customers"},
		{Label: "customer_id"},
	}

	got := Filter(cands, "CUST")
	assert.Equal(t, []string{"customers", "customer_id"}, labels(got))

	assert.Len(t, Filter(cands, ""), 3)
	assert.Empty(t, Filter(cands, "zzz"))
}
