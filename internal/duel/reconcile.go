package duel

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gazinassis/opshub-backend/internal/models"
)

// The CCG export carries salespeople in sheet rows 2-11 (1-based), names in
// column D and accumulated sale values in column AX. Rows outside that window
// are ignored.
const (
	importFirstRow = 1  // 0-based index of the first data row
	importLastRow  = 10 // 0-based index of the last data row
	nameColumn     = 3
	valueColumn    = 49
)

// minTokenLen is the shortest word considered by the fuzzy matcher. Shorter
// words ("DE", "DA") are connectives and must never trigger a match.
const minTokenLen = 3

// ImportTable is the extracted-name to value lookup built from one import.
// Iteration follows row order so that the fuzzy fallback is deterministic:
// the first matching row wins, as in the reference behaviour.
type ImportTable struct {
	names  []string
	values map[string]float64
}

// NewImportTable creates an empty ImportTable
func NewImportTable() *ImportTable {
	return &ImportTable{values: make(map[string]float64)}
}

// Set records a value for an extracted name. A repeated name overwrites the
// earlier value but keeps its original position (last write wins).
func (t *ImportTable) Set(name string, value float64) {
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = value
}

// Len returns the number of distinct extracted names
func (t *ImportTable) Len() int {
	return len(t.names)
}

// Lookup finds the value for a member name, trying an exact match first and
// falling back to fuzzy word matching.
func (t *ImportTable) Lookup(memberName string) (float64, bool) {
	name := strings.ToUpper(strings.TrimSpace(memberName))
	if v, ok := t.values[name]; ok {
		return v, true
	}
	memberTokens := tokenize(name)
	for _, candidate := range t.names {
		if tokensMatch(memberTokens, tokenize(candidate)) {
			return t.values[candidate], true
		}
	}
	return 0, false
}

// ExtractName derives the canonical salesperson name from a raw cell such as
// "4821 - MARIA OLIVEIRA - VENDEDOR". Cells without the " - " separator are
// used whole. The result is trimmed and upper-cased.
func ExtractName(raw string) string {
	full := strings.TrimSpace(raw)
	parts := strings.Split(full, " - ")
	if len(parts) > 1 {
		return strings.ToUpper(strings.TrimSpace(parts[1]))
	}
	return strings.ToUpper(full)
}

// ParseValue parses a sale value written with Brazilian number conventions:
// "." groups thousands and "," separates decimals ("1.234,56"). Plain
// dot-decimal input is accepted as well. Unparseable input yields 0.
func ParseValue(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseRows builds an ImportTable from the raw sheet rows, reading only the
// fixed import window. Rows with an empty name cell are skipped.
func ParseRows(rows [][]string) *ImportTable {
	table := NewImportTable()
	for i := importFirstRow; i <= importLastRow && i < len(rows); i++ {
		row := rows[i]
		if len(row) <= nameColumn || strings.TrimSpace(row[nameColumn]) == "" {
			continue
		}
		name := ExtractName(row[nameColumn])
		var value float64
		if len(row) > valueColumn {
			value = ParseValue(row[valueColumn])
		}
		table.Set(name, value)
	}
	return table
}

// Reconcile merges imported values into a roster. Membership and order never
// change; only the value of matched members is overwritten. It returns the
// updated roster and the number of members that matched an import row.
func Reconcile(roster []models.Member, table *ImportTable) ([]models.Member, int) {
	updated := make([]models.Member, len(roster))
	matched := 0
	for i, member := range roster {
		updated[i] = member
		if v, ok := table.Lookup(member.Name); ok {
			updated[i].Value = v
			matched++
		}
	}
	return updated, matched
}

func tokenize(name string) []string {
	var tokens []string
	for _, word := range strings.Fields(name) {
		if utf8.RuneCountInString(word) >= minTokenLen {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func tokensMatch(a, b []string) bool {
	for _, ta := range a {
		for _, tb := range b {
			if strings.Contains(ta, tb) || strings.Contains(tb, ta) {
				return true
			}
		}
	}
	return false
}
