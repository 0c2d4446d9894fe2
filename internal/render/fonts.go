// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// fontName is the embedded font family loaded from the fonts directory.
const fontName = "Roboto"

// builtinFont is the fpdf core font used when the embedded family cannot
// be loaded. Core fonts need no font files, so the fallback cannot fail.
const builtinFont = "Helvetica"

// faceFiles maps fpdf style strings to the font file for each face.
var faceFiles = map[string]string{
	"":   fontName + "-Regular.ttf",
	"B":  fontName + "-Bold.ttf",
	"I":  fontName + "-Italic.ttf",
	"BI": fontName + "-BoldItalic.ttf",
}

// FontFamily is the resolved font for PDF output: either the four
// embedded faces or the built-in core font. It is always usable; the
// loading policy degrades instead of failing.
type FontFamily struct {
	// Name is the family name to select with SetFont.
	Name string

	// faces holds the TTF bytes per style; empty when Builtin.
	faces map[string][]byte

	// Builtin marks the core-font fallback.
	Builtin bool
}

// LoadFontFamily loads the regular, bold, italic and bold-italic faces
// from dir. Any failure (missing directory, unreadable file, bytes fpdf
// cannot decode) degrades to the built-in core font; the degrade is
// written to w and never surfaces as an error.
func LoadFontFamily(dir string, w io.Writer) FontFamily {
	faces, err := readFaces(dir)
	if err != nil {
		fmt.Fprintf(w, "warning: using built-in PDF font: %v\n", err)
		return FontFamily{Name: builtinFont, Builtin: true}
	}

	family := FontFamily{Name: fontName, faces: faces}

	// Decode into a scratch document so a corrupt TTF degrades here
	// instead of failing every later render.
	scratch := fpdf.New("P", "mm", "A4", "")
	family.Install(scratch)
	if scratch.Err() {
		fmt.Fprintf(w, "warning: using built-in PDF font: %v\n", scratch.Error())
		return FontFamily{Name: builtinFont, Builtin: true}
	}

	return family
}

// readFaces reads all four face files from dir.
func readFaces(dir string) (map[string][]byte, error) {
	faces := make(map[string][]byte, len(faceFiles))
	for style, file := range faceFiles {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("reading font face %s: %w", file, err)
		}
		faces[style] = data
	}
	return faces, nil
}

// Install registers the family's faces with doc. Core-font fallbacks
// need no registration.
func (f FontFamily) Install(doc *fpdf.Fpdf) {
	if f.Builtin {
		return
	}
	for style, data := range f.faces {
		doc.AddUTF8FontFromBytes(f.Name, style, data)
	}
}
