// internal/complete/references_test.go
package complete

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReferencesImplicitAndExplicitAlias(t *testing.T) {
	sql := "SELECT * FROM orders o JOIN customers AS c ON o.customer_id = c.id"

	refs := ExtractReferences(sql)
	require.Len(t, refs, 2)
	assert.Equal(t, TableRef{Table: "orders", Alias: "o"}, refs[0])
	assert.Equal(t, TableRef{Table: "customers", Alias: "c"}, refs[1])
}

func TestExtractReferencesNoAlias(t *testing.T) {
	refs := ExtractReferences("SELECT id FROM orders WHERE id = 1")

	require.Len(t, refs, 1)
	assert.Equal(t, "orders", refs[0].Table)
	assert.Equal(t, "orders", refs[0].Alias, "alias defaults to the table name")
}

func TestExtractReferencesKeywordNotAlias(t *testing.T) {
	for _, kw := range []string{"ON", "WHERE", "INNER", "LEFT", "RIGHT", "JOIN"} {
		refs := ExtractReferences("SELECT * FROM orders " + kw + " x")
		require.NotEmpty(t, refs, kw)
		assert.Equal(t, "orders", refs[0].Alias, "%s must not be captured as an alias", kw)
	}
}

func TestExtractReferencesJoinChain(t *testing.T) {
	sql := "SELECT * FROM a JOIN b ON a.x = b.x JOIN c ON b.y = c.y"

	refs := ExtractReferences(sql)
	require.Len(t, refs, 3)
	assert.Equal(t, "a", refs[0].Table)
	assert.Equal(t, "b", refs[1].Table)
	assert.Equal(t, "c", refs[2].Table)
}

func TestExtractReferencesSchemaQualified(t *testing.T) {
	refs := ExtractReferences("SELECT * FROM sales.orders o")

	require.Len(t, refs, 1)
	assert.Equal(t, "sales.orders", refs[0].Table)
	assert.Equal(t, "o", refs[0].Alias)
}

func TestExtractReferencesTableValuedFunctionSkipped(t *testing.T) {
	refs := ExtractReferences("SELECT * FROM generate_series(1, 10) g JOIN orders o ON true")

	require.Len(t, refs, 1)
	assert.Equal(t, "orders", refs[0].Table)
}

func TestExtractReferencesMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"FROM",
		"from from from",
		"SELECT * FROM ",
		"JOIN JOIN JOIN",
		strings.Repeat("from x ", 500),
		"SEL FR?! \x00 join\tt1",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ExtractReferences(in) }, "input %q", in)
	}
}

func TestExtractReferencesCaseInsensitiveKeywords(t *testing.T) {
	refs := ExtractReferences("select * FROM Orders o join Customers C on true")

	require.Len(t, refs, 2)
	assert.Equal(t, TableRef{Table: "Orders", Alias: "o"}, refs[0])
	assert.Equal(t, TableRef{Table: "Customers", Alias: "C"}, refs[1])
}

func TestAliasMapLaterWins(t *testing.T) {
	m := AliasMap([]TableRef{
		{Table: "orders", Alias: "x"},
		{Table: "customers", Alias: "x"},
	})

	assert.Equal(t, "customers", m["x"])
}

func TestAliasMapEmpty(t *testing.T) {
	m := AliasMap(nil)
	assert.Empty(t, m)
}
