package corpus

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads the first sheet of an Excel workbook. The first row is
// the header; every following row is one record.
type XLSXReader struct{}

func (r *XLSXReader) SupportedFormats() []string { return []string{"xlsx", "xls"} }

func (r *XLSXReader) Read(ctx context.Context, path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	return NewTable(rows[0], rows[1:]), nil
}
