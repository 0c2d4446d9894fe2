// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads source documents into the neutral content model.
// The Word adapter walks the go-docx node tree; the spreadsheet adapter
// reads workbook sheets through excelize. Both are thin: all layout
// decisions belong to the renderers.
package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/pdiddy/docshift/pkg/types"
)

// Docx extracts paragraphs and tables from a Word document. Paragraph
// text is the concatenation of its run texts in document order; a
// paragraph survives only if its trimmed text is non-empty. A table row
// survives if it has at least one cell, a table if it has at least one
// surviving row. Node kinds the walker does not recognize are skipped
// silently.
func Docx(path string, w io.Writer) (*types.DocumentContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewConvertError(types.KindIO, path, fmt.Errorf("opening document: %w", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, types.NewConvertError(types.KindIO, path, fmt.Errorf("reading document: %w", err))
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, types.NewConvertError(types.KindFormat, path, fmt.Errorf("parsing docx container: %w", err))
	}

	content := &types.DocumentContent{}
	for _, item := range doc.Document.Body.Items {
		switch node := item.(type) {
		case *docx.Paragraph:
			content.AddParagraph(paragraphText(node))
		case *docx.Table:
			content.AddTable(tableData(node))
		default:
			// Section properties, bookmarks and other kinds carry no
			// plain-text content.
		}
	}

	fmt.Fprintf(w, "extracted: %s (%d paragraphs, %d tables)\n",
		path, len(content.Paragraphs), len(content.Tables))
	if content.IsEmpty() {
		fmt.Fprintf(w, "warning: no content extracted from %s\n", path)
	}

	return content, nil
}

// paragraphText concatenates the text of every run in the paragraph, in
// document order.
func paragraphText(p *docx.Paragraph) string {
	var b strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if text, ok := rc.(*docx.Text); ok {
				b.WriteString(text.Text)
			}
		}
	}
	return b.String()
}

// tableData flattens a table node into rows of cell text. Cell text is
// the concatenation of the cell's paragraph texts: a cell contains
// paragraph containers one level down, and the walk recurses exactly
// that one level.
func tableData(t *docx.Table) types.Table {
	var out types.Table
	for _, row := range t.TableRows {
		if row == nil {
			continue
		}
		var cells types.Row
		for _, cell := range row.TableCells {
			if cell == nil {
				continue
			}
			var text strings.Builder
			for _, p := range cell.Paragraphs {
				if p != nil {
					text.WriteString(paragraphText(p))
				}
			}
			cells = append(cells, text.String())
		}
		if len(cells) > 0 {
			out.Rows = append(out.Rows, cells)
		}
	}
	return out
}
