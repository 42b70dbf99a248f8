package corpus

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CSVReader reads comma- or tab-separated corpus exports. The delimiter
// follows the file extension.
type CSVReader struct{}

func (r *CSVReader) SupportedFormats() []string { return []string{"csv", "tsv"} }

func (r *CSVReader) Read(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // ragged rows are normalized by NewTable
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		cr.Comma = '\t'
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", filepath.Base(path))
	}

	return NewTable(records[0], records[1:]), nil
}
