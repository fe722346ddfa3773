package duel

import (
	"testing"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"4821 - MARIA OLIVEIRA - VENDEDOR", "MARIA OLIVEIRA"},
		{"4821 - Maria Oliveira - VENDEDOR", "MARIA OLIVEIRA"},
		{"João Silva", "JOÃO SILVA"},
		{"  ana costa  ", "ANA COSTA"},
		{"12 - PEDRO", "PEDRO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractName(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"2345,10", 2345.10},
		{"1.234,56", 1234.56},
		{"1500.5", 1500.5},
		{"900", 900},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseValue(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParseRowsWindow(t *testing.T) {
	rows := make([][]string, 15)
	rows[0] = row("HEADER - IGNORED", "999")        // header row, outside window
	rows[1] = row("1 - MARIA OLIVEIRA - V", "2345,10") // sheet row 2
	rows[10] = row("2 - PEDRO SANTOS - V", "100")      // sheet row 11, last in window
	rows[11] = row("3 - FORA DA JANELA - V", "500")    // sheet row 12, ignored
	rows[13] = row("4 - TAMBEM FORA - V", "500")

	table := ParseRows(rows)

	require.Equal(t, 2, table.Len())
	v, ok := table.Lookup("MARIA OLIVEIRA")
	require.True(t, ok)
	assert.Equal(t, 2345.10, v)
	v, ok = table.Lookup("PEDRO SANTOS")
	require.True(t, ok)
	assert.Equal(t, 100.0, v)
	_, ok = table.Lookup("FORA DA JANELA")
	assert.False(t, ok)
	_, ok = table.Lookup("HEADER")
	assert.False(t, ok)
}

func TestParseRowsSkipsEmptyNames(t *testing.T) {
	rows := [][]string{
		nil,
		row("", "100"),
		{"a", "b"}, // no name column at all
		row("1 - ANA - V", "50"),
	}

	table := ParseRows(rows)
	assert.Equal(t, 1, table.Len())
}

func TestParseRowsMissingValueColumn(t *testing.T) {
	rows := [][]string{
		nil,
		{"", "", "", "1 - ANA - V"}, // name present, row too short for a value
	}

	table := ParseRows(rows)
	v, ok := table.Lookup("ANA")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestImportTableLastWriteWins(t *testing.T) {
	rows := [][]string{
		nil,
		row("1 - MARIA OLIVEIRA - V", "100"),
		row("2 - MARIA OLIVEIRA - V", "200"),
	}

	table := ParseRows(rows)
	require.Equal(t, 1, table.Len())
	v, _ := table.Lookup("MARIA OLIVEIRA")
	assert.Equal(t, 200.0, v)
}

func TestLookupExactBeatsFuzzy(t *testing.T) {
	table := NewImportTable()
	// A fuzzy-compatible row comes first in iteration order
	table.Set("JOÃO SILVEIRA", 111)
	table.Set("JOÃO SILVA", 999)

	v, ok := table.Lookup("joão silva")
	require.True(t, ok)
	assert.Equal(t, 999.0, v, "exact match must not be overridden by an earlier fuzzy candidate")
}

func TestLookupFuzzyFirstMatchWins(t *testing.T) {
	table := NewImportTable()
	table.Set("CARLOS PEREIRA", 100)
	table.Set("CARLOS SOUZA", 200)

	// No exact entry for "CARLOS": the first row sharing a long token wins
	v, ok := table.Lookup("CARLOS")
	require.True(t, ok)
	assert.Equal(t, 100.0, v)
}

func TestLookupIgnoresShortTokens(t *testing.T) {
	table := NewImportTable()
	table.Set("MARIA DA CONCEIÇÃO", 500)

	// "DE"/"DA" style connectives must never trigger a match on their own
	_, ok := table.Lookup("JOSE DA CRUZ")
	assert.False(t, ok)
}

func TestLookupFuzzySubstringBothDirections(t *testing.T) {
	table := NewImportTable()
	table.Set("FERNANDA OLIVEIRA", 300)

	// Member token contained in import token
	v, ok := table.Lookup("FERNANDA")
	require.True(t, ok)
	assert.Equal(t, 300.0, v)

	// Import token contained in member token
	table2 := NewImportTable()
	table2.Set("NANDA", 42)
	v, ok = table2.Lookup("FERNANDA LIMA")
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestReconcileUpdatesOnlyMatchedValues(t *testing.T) {
	table := NewImportTable()
	table.Set("MARIA OLIVEIRA", 2345.10)

	roster := []models.Member{
		{Name: "Maria Oliveira", Value: 10},
		{Name: "Sem Correspondencia", Value: 77},
	}

	updated, matched := Reconcile(roster, table)

	assert.Equal(t, 1, matched)
	assert.Equal(t, 2345.10, updated[0].Value)
	assert.Equal(t, 77.0, updated[1].Value, "unmatched member keeps its prior value")
}

func TestReconcilePreservesMembershipAndOrder(t *testing.T) {
	table := NewImportTable()
	table.Set("BIA", 500)

	roster := []models.Member{
		{Name: "Ana", Value: 1},
		{Name: "Bia", Value: 2},
		{Name: "Caio", Value: 3},
	}

	updated, _ := Reconcile(roster, table)

	require.Len(t, updated, 3)
	assert.Equal(t, "Ana", updated[0].Name)
	assert.Equal(t, "Bia", updated[1].Name)
	assert.Equal(t, "Caio", updated[2].Name)

	// Input roster is untouched
	assert.Equal(t, 2.0, roster[1].Value)
}

func TestReconcileEmptyTableIsNoOp(t *testing.T) {
	roster := []models.Member{
		{Name: "Ana", Value: 1000},
		{Name: "Bia", Value: 0},
	}

	updated, matched := Reconcile(roster, NewImportTable())

	assert.Equal(t, 0, matched)
	assert.Equal(t, roster, updated)
}

func row(name, value string) []string {
	r := make([]string, valueColumn+1)
	r[nameColumn] = name
	r[valueColumn] = value
	return r
}
