package corpus

import (
	"fmt"
	"strings"
)

// ColumnError reports configured text columns that are absent from the
// corpus. All missing names are collected before the error is returned.
type ColumnError struct {
	Missing []string
	Found   []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("input is missing expected columns: [%s]; found columns: [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// BuildSearchText space-joins the named columns' values per row, in column
// order, producing one search string per record. Cells the input file left
// empty contribute an empty string. Returns a *ColumnError naming every
// absent column before any per-record work happens.
func BuildSearchText(t *Table, cols []string) ([]string, error) {
	var missing []string
	indices := make([]int, 0, len(cols))
	for _, c := range cols {
		i, ok := t.ColumnIndex(c)
		if !ok {
			missing = append(missing, c)
			continue
		}
		indices = append(indices, i)
	}
	if len(missing) > 0 {
		found := make([]string, len(t.Columns))
		copy(found, t.Columns)
		return nil, &ColumnError{Missing: missing, Found: found}
	}

	texts := make([]string, len(t.Rows))
	parts := make([]string, len(indices))
	for r, row := range t.Rows {
		for j, i := range indices {
			parts[j] = row[i]
		}
		texts[r] = strings.Join(parts, " ")
	}
	return texts, nil
}
