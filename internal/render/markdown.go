// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes the content model into the output formats.
// The Markdown renderer emits pipe tables and paragraph blocks; the PDF
// renderer drives go-pdf/fpdf with an embedded or built-in font family.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docshift/pkg/types"
)

// emptySheetMarker is emitted in place of a table for a sheet without rows.
const emptySheetMarker = "*(Empty sheet)*"

// Markdown renders the content model into Markdown files.
type Markdown struct{}

// RenderDocument writes Word-document content to <outDir>/<stem>.md and
// returns the output path.
func (Markdown) RenderDocument(content *types.DocumentContent, inputPath, outDir string) (string, error) {
	return writeMarkdown(DocumentMarkdown(content, stem(inputPath)), inputPath, outDir)
}

// RenderSheets writes spreadsheet content to <outDir>/<stem>.md and
// returns the output path.
func (Markdown) RenderSheets(sheets []types.Sheet, inputPath, outDir string) (string, error) {
	return writeMarkdown(SheetsMarkdown(sheets, stem(inputPath)), inputPath, outDir)
}

// DocumentMarkdown serializes Word-document content: a title heading,
// one block per paragraph, then each table as a pipe table.
func DocumentMarkdown(content *types.DocumentContent, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	for _, p := range content.Paragraphs {
		b.WriteString(p)
		b.WriteString("\n\n")
	}

	for _, t := range content.Tables {
		writePipeTable(&b, t.Rows)
	}

	return b.String()
}

// SheetsMarkdown serializes spreadsheet content: a title heading, then
// per sheet a "## Sheet:" heading and its pipe table (or the empty-sheet
// marker), with a horizontal rule between sheets but not after the last.
func SheetsMarkdown(sheets []types.Sheet, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	for i, sheet := range sheets {
		fmt.Fprintf(&b, "## Sheet: %s\n\n", sheet.Name)

		if sheet.Empty() {
			b.WriteString(emptySheetMarker + "\n\n")
		} else {
			writePipeTable(&b, sheet.Rows)
		}

		if i < len(sheets)-1 {
			b.WriteString("---\n\n")
		}
	}

	return b.String()
}

// writePipeTable emits rows as a Markdown pipe table: the first row as
// the header, a separator with one "---" cell per header column, then
// the data rows. Pipe characters are escaped in every row, header
// included, so cell text can never shift columns.
func writePipeTable(b *strings.Builder, rows []types.Row) {
	if len(rows) == 0 {
		return
	}

	header := rows[0]
	writeTableRow(b, header)

	b.WriteString("|")
	for range header {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows[1:] {
		writeTableRow(b, row)
	}
	b.WriteString("\n")
}

func writeTableRow(b *strings.Builder, row types.Row) {
	b.WriteString("|")
	for _, cell := range row {
		fmt.Fprintf(b, " %s |", escapeCell(cell))
	}
	b.WriteString("\n")
}

// escapeCell protects pipe characters inside cell text.
func escapeCell(cell string) string {
	return strings.ReplaceAll(cell, "|", `\|`)
}

// writeMarkdown writes content to <outDir>/<stem>.md, truncating any
// existing file at that path.
func writeMarkdown(content, inputPath, outDir string) (string, error) {
	outPath := filepath.Join(outDir, stem(inputPath)+".md")
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", types.NewConvertError(types.KindRender, inputPath, fmt.Errorf("writing markdown: %w", err))
	}
	return outPath, nil
}

// stem returns the base name of path with its extension stripped.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
