// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/docshift/pkg/types"
)

// Sheets extracts every worksheet from a workbook, in the workbook's
// native sheet order. Cell values arrive already stringified (numbers,
// dates and booleans coerce to their display text; missing cells to "").
// Rows whose cells are all empty are dropped; a sheet is included only
// if at least one row survives. A sheet that fails to read is skipped
// with a warning rather than failing the whole workbook.
func Sheets(path string, w io.Writer) ([]types.Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, types.NewConvertError(types.KindIO, path, fmt.Errorf("opening workbook: %w", err))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, types.NewConvertError(types.KindFormat, path, fmt.Errorf("parsing workbook container: %w", err))
	}
	defer f.Close()

	var sheets []types.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			fmt.Fprintf(w, "warning: skipping sheet %q: %v\n", name, err)
			continue
		}

		sheet := types.Sheet{Name: name}
		for _, cells := range rows {
			row := types.Row(cells)
			if row.Empty() {
				continue
			}
			sheet.Rows = append(sheet.Rows, row)
		}

		if sheet.Empty() {
			fmt.Fprintf(w, "warning: sheet %q is empty\n", name)
			continue
		}
		sheets = append(sheets, sheet)
	}

	fmt.Fprintf(w, "extracted: %s (%d sheets)\n", path, len(sheets))
	if len(sheets) == 0 {
		fmt.Fprintf(w, "warning: no data extracted from %s\n", path)
	}

	return sheets, nil
}
