// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Row is one ordered row of cell text. Cells may be empty; rows in the
// same table need not have equal length.
type Row []string

// Empty reports whether every cell in the row is empty.
func (r Row) Empty() bool {
	for _, cell := range r {
		if cell != "" {
			return false
		}
	}
	return true
}

// Table is an ordered sequence of rows extracted from a document.
// Renderers treat the first row as the header when the table is non-empty.
type Table struct {
	Rows []Row `json:"rows" yaml:"rows"`
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// DocumentContent is the neutral representation of a word-processing
// document: ordered paragraphs and ordered tables, plain text only.
// It is built once per source file by an extraction adapter and consumed
// by a single renderer call; it is never cached or shared.
type DocumentContent struct {
	// Paragraphs holds the document's paragraph text in document order.
	// Every entry has non-empty trimmed text.
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`

	// Tables holds the document's tables in document order. Every entry
	// has at least one row.
	Tables []Table `json:"tables" yaml:"tables"`
}

// AddParagraph appends text as a paragraph if its trimmed form is
// non-empty. It reports whether the paragraph was retained. The original
// (untrimmed) text is what gets stored.
func (c *DocumentContent) AddParagraph(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	c.Paragraphs = append(c.Paragraphs, text)
	return true
}

// AddTable appends t if it has at least one row and reports whether the
// table was retained.
func (c *DocumentContent) AddTable(t Table) bool {
	if t.Empty() {
		return false
	}
	c.Tables = append(c.Tables, t)
	return true
}

// IsEmpty reports whether the document yielded no paragraphs and no tables.
func (c *DocumentContent) IsEmpty() bool {
	return len(c.Paragraphs) == 0 && len(c.Tables) == 0
}

// Sheet is one worksheet from a spreadsheet: its name and the rows that
// survived extraction (rows whose cells are all empty are dropped).
type Sheet struct {
	// Name is the worksheet name in the workbook.
	Name string `json:"name" yaml:"name"`

	// Rows holds the surviving rows in original order.
	Rows []Row `json:"rows" yaml:"rows"`
}

// Empty reports whether the sheet has no surviving rows.
func (s Sheet) Empty() bool {
	return len(s.Rows) == 0
}
