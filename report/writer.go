// Package report serializes screening results to CSV files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sarbeswar1986/themescreen/screen"
)

// Output file names, written under the run's output directory.
const (
	CountsFile = "subtheme_counts.csv"
	HitsFile   = "subtheme_hits_long.csv"
	FlagsFile  = "paper_level_flags_wide.csv"
)

// Write serializes the three result tables under outdir, creating it if
// absent. Every file gets a header row even when it has no data rows.
// Returns the written paths in counts, hits, flags order.
func Write(outdir string, res *screen.Result) ([]string, error) {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := []string{
		filepath.Join(outdir, CountsFile),
		filepath.Join(outdir, HitsFile),
		filepath.Join(outdir, FlagsFile),
	}

	if err := writeFile(paths[0], countRecords(res.Counts)); err != nil {
		return nil, err
	}
	if err := writeFile(paths[1], hitRecords(res.Hits)); err != nil {
		return nil, err
	}
	if err := writeFile(paths[2], flagRecords(res)); err != nil {
		return nil, err
	}
	return paths, nil
}

func countRecords(counts []screen.CountRow) [][]string {
	records := make([][]string, 0, len(counts)+1)
	records = append(records, []string{"theme_id", "theme_name", "subtheme_id", "subtheme_name", "paper_count", "keywords_count"})
	for _, c := range counts {
		records = append(records, []string{
			c.ThemeID, c.ThemeName, c.SubthemeID, c.SubthemeName,
			strconv.Itoa(c.PaperCount), strconv.Itoa(c.KeywordsCount),
		})
	}
	return records
}

func hitRecords(hits []screen.HitRow) [][]string {
	records := make([][]string, 0, len(hits)+1)
	records = append(records, []string{"paper_id", "theme_id", "theme_name", "subtheme_id", "subtheme_name"})
	for _, h := range hits {
		records = append(records, []string{h.PaperID, h.ThemeID, h.ThemeName, h.SubthemeID, h.SubthemeName})
	}
	return records
}

func flagRecords(res *screen.Result) [][]string {
	header := make([]string, 0, len(res.FlagColumns)+1)
	header = append(header, "paper_id")
	header = append(header, res.FlagColumns...)

	records := make([][]string, 0, len(res.Flags)+1)
	records = append(records, header)
	for i, row := range res.Flags {
		record := make([]string, 0, len(row)+1)
		record = append(record, res.PaperIDs[i])
		for _, matched := range row {
			record = append(record, strconv.FormatBool(matched))
		}
		records = append(records, record)
	}
	return records
}

func writeFile(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
