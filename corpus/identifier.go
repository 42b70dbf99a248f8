package corpus

import "strconv"

// IdentifierColumn is the column synthesized when no known identifier
// column exists in the corpus.
const IdentifierColumn = "paper_id"

// identifierCandidates is the priority order for per-record identifiers in
// Web of Science exports.
var identifierCandidates = []string{"UT (Unique WOS ID)", "UT", "Accession Number", "DOI"}

// ResolveIdentifier picks a stable per-record identifier column. The first
// candidate present in the table wins; when none is, a paper_id column of
// zero-based row positions is added and its name returned.
func ResolveIdentifier(t *Table) string {
	for _, c := range identifierCandidates {
		if _, ok := t.ColumnIndex(c); ok {
			return c
		}
	}

	ids := make([]string, len(t.Rows))
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}
	t.SetColumn(IdentifierColumn, ids)
	return IdentifierColumn
}
