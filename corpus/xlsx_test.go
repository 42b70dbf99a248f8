package corpus

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates an .xlsx file with the given rows on the default sheet.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("building cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("setting row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "corpus.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}

func TestXLSXReader(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"UT (Unique WOS ID)", "Article Title", "Publication Year"},
		{"WOS:000001", "Urban sensing", 2021},
		{"WOS:000002", "Soil chemistry", 2019},
	})

	tbl, err := (&XLSXReader{}).Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	wantCols := []string{"UT (Unique WOS ID)", "Article Title", "Publication Year"}
	if !reflect.DeepEqual(tbl.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", tbl.Columns, wantCols)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0][0] != "WOS:000001" {
		t.Errorf("Rows[0][0] = %q, want %q", tbl.Rows[0][0], "WOS:000001")
	}
	// Numeric cells come back as their string representation.
	if tbl.Rows[0][2] != "2021" {
		t.Errorf("Rows[0][2] = %q, want %q", tbl.Rows[0][2], "2021")
	}
}

func TestXLSXReaderPadsTrailingCells(t *testing.T) {
	// Sheet reads drop trailing empty cells per row; the table pads them back.
	path := writeWorkbook(t, [][]interface{}{
		{"Article Title", "Abstract", "Author Keywords"},
		{"Short row"},
	})

	tbl, err := (&XLSXReader{}).Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := []string{"Short row", "", ""}
	if !reflect.DeepEqual(tbl.Rows[0], want) {
		t.Errorf("Rows[0] = %v, want %v", tbl.Rows[0], want)
	}
}

func TestXLSXReaderFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	row := []interface{}{"DOI"}
	if err := f.SetSheetRow("Sheet1", "A1", &row); err != nil {
		t.Fatalf("setting header: %v", err)
	}
	if _, err := f.NewSheet("Extra"); err != nil {
		t.Fatalf("adding sheet: %v", err)
	}
	extra := []interface{}{"Ignored", "Columns"}
	if err := f.SetSheetRow("Extra", "A1", &extra); err != nil {
		t.Fatalf("setting extra sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "multi.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}

	tbl, err := (&XLSXReader{}).Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !reflect.DeepEqual(tbl.Columns, []string{"DOI"}) {
		t.Errorf("Columns = %v, want [DOI] from the first sheet", tbl.Columns)
	}
}

func TestXLSXReaderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.xlsx")
	if _, err := (&XLSXReader{}).Read(context.Background(), path); err == nil {
		t.Fatal("expected error for missing file")
	}
}
