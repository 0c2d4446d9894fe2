// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/docshift/pkg/types"
)

// writeWorkbook builds a fixture workbook with excelize and returns its path.
func writeWorkbook(t *testing.T, dir string, fill func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	fill(f)

	path := filepath.Join(dir, "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSheets_ValuesAndOrder(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Name")
		f.SetCellValue("Sheet1", "B1", "Count")
		f.SetCellValue("Sheet1", "A2", "widgets")
		f.SetCellValue("Sheet1", "B2", 42)
		f.SetCellValue("Sheet1", "A3", "enabled")
		f.SetCellValue("Sheet1", "B3", true)

		f.NewSheet("Totals")
		f.SetCellValue("Totals", "A1", "sum")
		f.SetCellValue("Totals", "B1", 3.5)
	})

	var log bytes.Buffer
	sheets, err := Sheets(path, &log)
	if err != nil {
		t.Fatalf("Sheets() error: %v", err)
	}

	if len(sheets) != 2 {
		t.Fatalf("sheets = %d, want 2", len(sheets))
	}
	if sheets[0].Name != "Sheet1" || sheets[1].Name != "Totals" {
		t.Errorf("sheet order = [%s %s], want workbook order", sheets[0].Name, sheets[1].Name)
	}

	first := sheets[0]
	if len(first.Rows) != 3 {
		t.Fatalf("Sheet1 rows = %d, want 3", len(first.Rows))
	}
	if first.Rows[0][0] != "Name" || first.Rows[0][1] != "Count" {
		t.Errorf("header row = %v", first.Rows[0])
	}
	if first.Rows[1][1] != "42" {
		t.Errorf("numeric cell = %q, want %q", first.Rows[1][1], "42")
	}
	if got := strings.ToUpper(first.Rows[2][1]); got != "TRUE" {
		t.Errorf("boolean cell = %q, want TRUE (any case)", first.Rows[2][1])
	}
}

func TestSheets_DropsEmptyRowsAndSheets(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), func(f *excelize.File) {
		// Row 2 left entirely empty; row 3 has data.
		f.SetCellValue("Sheet1", "A1", "top")
		f.SetCellValue("Sheet1", "A3", "bottom")

		// A sheet with no occupied cells must not appear in the result.
		f.NewSheet("Blank")
	})

	var log bytes.Buffer
	sheets, err := Sheets(path, &log)
	if err != nil {
		t.Fatalf("Sheets() error: %v", err)
	}

	if len(sheets) != 1 {
		t.Fatalf("sheets = %d, want 1 (empty sheet dropped)", len(sheets))
	}
	for _, row := range sheets[0].Rows {
		if types.Row(row).Empty() {
			t.Errorf("empty row survived extraction: %v", sheets[0].Rows)
		}
	}
	if !strings.Contains(log.String(), `warning: sheet "Blank" is empty`) {
		t.Errorf("log %q should warn about the empty sheet", log.String())
	}
}

func TestSheets_AllEmptyWorkbook(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), func(f *excelize.File) {})

	var log bytes.Buffer
	sheets, err := Sheets(path, &log)
	if err != nil {
		t.Fatalf("Sheets() error: %v", err)
	}
	if len(sheets) != 0 {
		t.Errorf("sheets = %d, want 0", len(sheets))
	}
	if !strings.Contains(log.String(), "warning: no data extracted") {
		t.Errorf("log %q should warn about no data", log.String())
	}
}

func TestSheets_MissingFile(t *testing.T) {
	_, err := Sheets(filepath.Join(t.TempDir(), "absent.xlsx"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !types.IsKind(err, types.KindIO) {
		t.Errorf("kind = %q, want %q", types.KindOf(err), types.KindIO)
	}
}

func TestSheets_MalformedContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Sheets(path, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for malformed container")
	}
	if !types.IsKind(err, types.KindFormat) {
		t.Errorf("kind = %q, want %q", types.KindOf(err), types.KindFormat)
	}
}
