package screen

import (
	"sort"

	"github.com/sarbeswar1986/themescreen/schema"
)

// CountRow is the per-sub-theme summary: how many records matched and how
// many keywords defined the sub-theme.
type CountRow struct {
	ThemeID       string
	ThemeName     string
	SubthemeID    string
	SubthemeName  string
	PaperCount    int
	KeywordsCount int
}

// HitRow records one (record, sub-theme) match.
type HitRow struct {
	PaperID      string
	ThemeID      string
	ThemeName    string
	SubthemeID   string
	SubthemeName string
}

// Result holds the three derived tables of a screening pass.
//
// Counts is sorted by (theme_id, subtheme_id); Hits keeps schema iteration
// order, record order within each sub-theme. Flags is row-major: one row per
// record in corpus order, one column per sub-theme in schema order, labeled
// by FlagColumns.
type Result struct {
	Counts      []CountRow
	Hits        []HitRow
	PaperIDs    []string
	FlagColumns []string
	Flags       [][]bool
}

// FlagColumn names a sub-theme's boolean column in the wide flags table.
func FlagColumn(st schema.Subtheme) string {
	return st.ID + "__" + st.Name
}

// Screen compiles one matcher per sub-theme and tests every record's search
// text against each, folding the booleans into the three result tables.
// Every sub-theme produces a CountRow and a flag column even when nothing
// matches it.
func Screen(s *schema.Schema, paperIDs, texts []string) *Result {
	nsub := s.NumSubthemes()

	res := &Result{
		Counts:      make([]CountRow, 0, nsub),
		PaperIDs:    paperIDs,
		FlagColumns: make([]string, 0, nsub),
		Flags:       make([][]bool, len(texts)),
	}
	for i := range res.Flags {
		res.Flags[i] = make([]bool, 0, nsub)
	}

	for _, th := range s.Themes {
		for _, st := range th.Subthemes {
			m := NewMatcher(st.Keywords)

			count := 0
			for i, text := range texts {
				matched := m.Match(text)
				res.Flags[i] = append(res.Flags[i], matched)
				if !matched {
					continue
				}
				count++
				res.Hits = append(res.Hits, HitRow{
					PaperID:      paperIDs[i],
					ThemeID:      th.ID,
					ThemeName:    th.Name,
					SubthemeID:   st.ID,
					SubthemeName: st.Name,
				})
			}

			res.Counts = append(res.Counts, CountRow{
				ThemeID:       th.ID,
				ThemeName:     th.Name,
				SubthemeID:    st.ID,
				SubthemeName:  st.Name,
				PaperCount:    count,
				KeywordsCount: len(st.Keywords),
			})
			res.FlagColumns = append(res.FlagColumns, FlagColumn(st))
		}
	}

	// The count table alone is re-sorted; hits and flags keep their
	// iteration order.
	sort.SliceStable(res.Counts, func(i, j int) bool {
		if res.Counts[i].ThemeID != res.Counts[j].ThemeID {
			return res.Counts[i].ThemeID < res.Counts[j].ThemeID
		}
		return res.Counts[i].SubthemeID < res.Counts[j].SubthemeID
	})

	return res
}
