// Package corpus reads tabular bibliographic exports into an in-memory,
// row-oriented table and derives the per-record columns a screening run
// needs: a stable identifier and a concatenated search text.
package corpus

import "fmt"

// Table is an ordered, row-oriented view of a spreadsheet or delimited file.
// Every row has exactly len(Columns) cells; rows shorter than the header are
// padded with empty strings and cells beyond it are dropped.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int // column name -> first position
}

// NewTable builds a Table from a header and data rows, normalizing row
// widths. When the header repeats a name, lookups resolve to the first
// occurrence.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		Columns: columns,
		Rows:    make([][]string, len(rows)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
	for i, row := range rows {
		normalized := make([]string, len(columns))
		copy(normalized, row)
		t.Rows[i] = normalized
	}
	return t
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Column returns the named column's values, one per row.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values, true
}

// SetColumn assigns values to the named column, replacing it if present and
// appending it otherwise. values must hold one cell per row.
func (t *Table) SetColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q: %d values for %d rows", name, len(values), len(t.Rows))
	}
	if i, ok := t.index[name]; ok {
		for r := range t.Rows {
			t.Rows[r][i] = values[r]
		}
		return nil
	}
	t.index[name] = len(t.Columns)
	t.Columns = append(t.Columns, name)
	for r := range t.Rows {
		t.Rows[r] = append(t.Rows[r], values[r])
	}
	return nil
}
