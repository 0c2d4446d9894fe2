// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/docshift/pkg/types"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

// writeDocx assembles a minimal OOXML package around the given
// word/document.xml body markup.
func writeDocx(t *testing.T, dir, name, bodyXML string) string {
	t.Helper()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		bodyXML + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name, body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", docRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(part.body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func para(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}

func cell(text string) string {
	return `<w:tc>` + para(text) + `</w:tc>`
}

func TestDocx_ParagraphsAndTables(t *testing.T) {
	bodyXML := `<w:p><w:r><w:t xml:space="preserve">Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>` +
		para("   ") +
		para("Second paragraph") +
		`<w:tbl><w:tr>` + cell("h1") + cell("h2") + `</w:tr><w:tr>` + cell("a") + cell("b") + `</w:tr></w:tbl>`

	path := writeDocx(t, t.TempDir(), "sample.docx", bodyXML)

	var log bytes.Buffer
	content, err := Docx(path, &log)
	if err != nil {
		t.Fatalf("Docx() error: %v", err)
	}

	want := []string{"Hello world", "Second paragraph"}
	if len(content.Paragraphs) != len(want) {
		t.Fatalf("paragraphs = %v, want %v", content.Paragraphs, want)
	}
	for i, p := range want {
		if content.Paragraphs[i] != p {
			t.Errorf("paragraph[%d] = %q, want %q", i, content.Paragraphs[i], p)
		}
	}

	if len(content.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(content.Tables))
	}
	tbl := content.Tables[0]
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	if tbl.Rows[0][0] != "h1" || tbl.Rows[0][1] != "h2" {
		t.Errorf("header row = %v", tbl.Rows[0])
	}
	if tbl.Rows[1][0] != "a" || tbl.Rows[1][1] != "b" {
		t.Errorf("data row = %v", tbl.Rows[1])
	}

	if !strings.Contains(log.String(), "extracted:") {
		t.Errorf("log %q should contain extraction status", log.String())
	}
}

func TestDocx_EmptyDocumentWarns(t *testing.T) {
	path := writeDocx(t, t.TempDir(), "empty.docx", para("  "))

	var log bytes.Buffer
	content, err := Docx(path, &log)
	if err != nil {
		t.Fatalf("Docx() error: %v", err)
	}
	if !content.IsEmpty() {
		t.Errorf("content should be empty, got %+v", content)
	}
	if !strings.Contains(log.String(), "warning: no content extracted") {
		t.Errorf("log %q should warn about empty content", log.String())
	}
}

func TestDocx_MissingFile(t *testing.T) {
	_, err := Docx(filepath.Join(t.TempDir(), "absent.docx"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !types.IsKind(err, types.KindIO) {
		t.Errorf("kind = %q, want %q", types.KindOf(err), types.KindIO)
	}
}

func TestDocx_MalformedContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Docx(path, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for malformed container")
	}
	if !types.IsKind(err, types.KindFormat) {
		t.Errorf("kind = %q, want %q", types.KindOf(err), types.KindFormat)
	}
}
