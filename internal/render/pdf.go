// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/docshift/pkg/types"
)

const (
	// pageMargin is the fixed margin on all page edges, in millimeters.
	pageMargin = 20.0

	bodyFontSize    = 11.0
	headingFontSize = 13.0
	lineHeight      = 5.5
	tableRowHeight  = 7.0
)

// PDF renders the content model into paginated PDF files. The font
// family is resolved once at construction; a failed load degrades to the
// built-in core font rather than failing renders.
type PDF struct {
	fonts FontFamily
}

// NewPDF creates a PDF renderer whose fonts are loaded from fontsDir.
// Font degrades are logged to w.
func NewPDF(fontsDir string, w io.Writer) *PDF {
	return &PDF{fonts: LoadFontFamily(fontsDir, w)}
}

// RenderDocument writes Word-document content to <outDir>/<stem>.pdf:
// one block per paragraph, then each table with equal column widths.
// The header row is not visually distinguished in the PDF path.
func (p *PDF) RenderDocument(content *types.DocumentContent, inputPath, outDir string) (string, error) {
	doc := p.newDoc(stem(inputPath))

	for _, para := range content.Paragraphs {
		doc.MultiCell(0, lineHeight, para, "", "L", false)
		doc.Ln(lineHeight)
	}

	for _, t := range content.Tables {
		p.drawTable(doc, t.Rows)
		doc.Ln(lineHeight)
	}

	return p.write(doc, inputPath, outDir)
}

// RenderSheets writes spreadsheet content to <outDir>/<stem>.pdf: per
// sheet a bold "Sheet:" heading and its table (or an empty-sheet
// placeholder), with a page break between sheets but not after the last.
func (p *PDF) RenderSheets(sheets []types.Sheet, inputPath, outDir string) (string, error) {
	doc := p.newDoc(stem(inputPath))

	for i, sheet := range sheets {
		doc.SetFont(p.fonts.Name, "B", headingFontSize)
		doc.MultiCell(0, lineHeight, "Sheet: "+sheet.Name, "", "L", false)
		doc.Ln(lineHeight)
		doc.SetFont(p.fonts.Name, "", bodyFontSize)

		if sheet.Empty() {
			doc.MultiCell(0, lineHeight, "(Empty sheet)", "", "L", false)
		} else {
			p.drawTable(doc, sheet.Rows)
		}

		if i < len(sheets)-1 {
			doc.AddPage()
		}
	}

	return p.write(doc, inputPath, outDir)
}

// newDoc creates an A4 portrait document with the fixed margin, the
// resolved font family, and the title set from the input stem.
func (p *PDF) newDoc(title string) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	p.fonts.Install(doc)
	doc.AddPage()
	doc.SetFont(p.fonts.Name, "", bodyFontSize)
	return doc
}

// drawTable renders rows as a bordered grid. The column count is taken
// from the first row and every column gets an equal share of the usable
// page width; rows are emitted in original order. A table whose first
// row has no cells is skipped: there is no column count to divide by.
func (p *PDF) drawTable(doc *fpdf.Fpdf, rows []types.Row) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(rows[0]))

	for _, row := range rows {
		for _, cell := range row {
			doc.CellFormat(colWidth, tableRowHeight, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(tableRowHeight)
	}
}

// write flushes the document to <outDir>/<stem>.pdf. Any fpdf error,
// including the file write, surfaces as a render error so the caller can
// fall back to Markdown.
func (p *PDF) write(doc *fpdf.Fpdf, inputPath, outDir string) (string, error) {
	outPath := filepath.Join(outDir, stem(inputPath)+".pdf")
	if err := doc.OutputFileAndClose(outPath); err != nil {
		return "", types.NewConvertError(types.KindRender, inputPath, fmt.Errorf("writing pdf: %w", err))
	}
	return outPath, nil
}
