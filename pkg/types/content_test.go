// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"
)

func TestAddParagraph(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain text", "Hello world", true},
		{"leading whitespace kept", "  indented", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c DocumentContent
			if got := c.AddParagraph(tt.text); got != tt.want {
				t.Errorf("AddParagraph(%q) = %v, want %v", tt.text, got, tt.want)
			}
			wantLen := 0
			if tt.want {
				wantLen = 1
			}
			if len(c.Paragraphs) != wantLen {
				t.Errorf("len(Paragraphs) = %d, want %d", len(c.Paragraphs), wantLen)
			}
		})
	}
}

func TestAddParagraph_PreservesOrderAndText(t *testing.T) {
	var c DocumentContent
	c.AddParagraph("first")
	c.AddParagraph("")
	c.AddParagraph("second")

	if len(c.Paragraphs) != 2 {
		t.Fatalf("len(Paragraphs) = %d, want 2", len(c.Paragraphs))
	}
	if c.Paragraphs[0] != "first" || c.Paragraphs[1] != "second" {
		t.Errorf("paragraphs out of order: %v", c.Paragraphs)
	}
}

func TestAddTable(t *testing.T) {
	var c DocumentContent

	if c.AddTable(Table{}) {
		t.Error("empty table should be dropped")
	}
	if !c.AddTable(Table{Rows: []Row{{"a", "b"}}}) {
		t.Error("non-empty table should be retained")
	}
	if len(c.Tables) != 1 {
		t.Errorf("len(Tables) = %d, want 1", len(c.Tables))
	}
}

func TestRowEmpty(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want bool
	}{
		{"nil row", nil, true},
		{"all empty cells", Row{"", "", ""}, true},
		{"one filled cell", Row{"", "x", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRaggedTablePreserved(t *testing.T) {
	tbl := Table{Rows: []Row{{"a", "b", "c"}, {"d"}, {"e", "f"}}}
	var c DocumentContent
	c.AddTable(tbl)

	got := c.Tables[0]
	if len(got.Rows[0]) != 3 || len(got.Rows[1]) != 1 || len(got.Rows[2]) != 2 {
		t.Errorf("ragged rows not preserved as-is: %v", got.Rows)
	}
}

func TestConvertError(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewConvertError(KindRender, "report.docx", cause)

	if !IsKind(err, KindRender) {
		t.Error("IsKind(KindRender) = false")
	}
	if IsKind(err, KindIO) {
		t.Error("IsKind(KindIO) = true for render error")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("KindOf(plain error) should be empty")
	}

	// A wrapped ConvertError still classifies.
	wrapped := NewConvertError(KindFormat, "bad.xlsx", errors.New("truncated zip"))
	if KindOf(wrapped) != KindFormat {
		t.Errorf("KindOf = %q, want %q", KindOf(wrapped), KindFormat)
	}
}
