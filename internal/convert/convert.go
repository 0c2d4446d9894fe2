// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates document conversion: it selects the
// extraction adapter and renderer by file extension, applies the
// PDF-failure Markdown fallback, and drives single-file, batch and watch
// modes. All progress and warnings go to an injected writer; the package
// reads no ambient state.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/docshift/internal/extract"
	"github.com/pdiddy/docshift/internal/render"
	"github.com/pdiddy/docshift/pkg/types"
)

// DocumentRenderer serializes the content model into one output format.
// Both the Markdown and PDF renderers implement it, and tests substitute
// failing fakes to exercise the fallback policy.
type DocumentRenderer interface {
	RenderDocument(content *types.DocumentContent, inputPath, outDir string) (string, error)
	RenderSheets(sheets []types.Sheet, inputPath, outDir string) (string, error)
}

// Recorder persists conversion records. The manifest store implements
// it; a nil Recorder disables recording.
type Recorder interface {
	Record(rec types.ConversionRecord) error
}

// Pipeline converts documents one at a time: each file is fully
// extracted and rendered before the next begins, and every conversion
// allocates its own content model.
type Pipeline struct {
	cfg      types.ConvertConfig
	log      io.Writer
	pdf      DocumentRenderer
	markdown DocumentRenderer
	recorder Recorder

	extractDocx   func(path string, w io.Writer) (*types.DocumentContent, error)
	extractSheets func(path string, w io.Writer) ([]types.Sheet, error)
}

// NewPipeline creates a Pipeline with the real extraction adapters and
// renderers. rec may be nil. Progress lines are written to w.
func NewPipeline(cfg types.ConvertConfig, rec Recorder, w io.Writer) *Pipeline {
	return &Pipeline{
		cfg:           cfg,
		log:           w,
		pdf:           render.NewPDF(cfg.FontsDir, w),
		markdown:      render.Markdown{},
		recorder:      rec,
		extractDocx:   extract.Docx,
		extractSheets: extract.Sheets,
	}
}

// ToPDF converts the file at inputPath into a PDF in outDir. When the
// PDF renderer fails, the same extracted content is retried through the
// Markdown renderer and the Markdown path is returned instead; only a
// Markdown failure after that propagates. An unsupported extension
// fails immediately with nothing extracted.
func (p *Pipeline) ToPDF(inputPath, outDir string) (string, error) {
	outPath, fallback, err := p.renderAs(inputPath, outDir, types.TargetPDF)
	p.record(inputPath, outPath, types.TargetPDF, fallback, err)
	return outPath, err
}

// ToMarkdown converts the file at inputPath into Markdown in outDir.
func (p *Pipeline) ToMarkdown(inputPath, outDir string) (string, error) {
	outPath, _, err := p.renderAs(inputPath, outDir, types.TargetMarkdown)
	p.record(inputPath, outPath, types.TargetMarkdown, false, err)
	return outPath, err
}

// renderAs dispatches on the input extension, extracts, and renders to
// the requested target. The returned fallback flag reports whether a
// PDF request was satisfied by the Markdown renderer.
func (p *Pipeline) renderAs(inputPath, outDir string, target types.Target) (string, bool, error) {
	ext := normalizedExt(inputPath)
	fmt.Fprintf(p.log, "converting: %s\n", filepath.Base(inputPath))

	var renderDoc func(DocumentRenderer) (string, error)
	switch ext {
	case "docx":
		if p.cfg.Verbose {
			fmt.Fprintf(p.log, "detected Word document: %s\n", inputPath)
		}
		content, err := p.extractDocx(inputPath, p.log)
		if err != nil {
			return "", false, err
		}
		renderDoc = func(r DocumentRenderer) (string, error) {
			return r.RenderDocument(content, inputPath, outDir)
		}
	case "xlsx", "xls":
		if p.cfg.Verbose {
			fmt.Fprintf(p.log, "detected spreadsheet: %s\n", inputPath)
		}
		sheets, err := p.extractSheets(inputPath, p.log)
		if err != nil {
			return "", false, err
		}
		renderDoc = func(r DocumentRenderer) (string, error) {
			return r.RenderSheets(sheets, inputPath, outDir)
		}
	default:
		return "", false, types.NewConvertError(types.KindUnsupported, inputPath,
			fmt.Errorf("unsupported file format %q", ext))
	}

	if target == types.TargetMarkdown {
		out, err := renderDoc(p.markdown)
		return out, false, err
	}

	out, err := renderDoc(p.pdf)
	if err != nil {
		fmt.Fprintf(p.log, "warning: PDF render failed for %s (%v); falling back to Markdown\n",
			filepath.Base(inputPath), err)
		out, err = renderDoc(p.markdown)
		return out, err == nil, err
	}
	return out, false, nil
}

// record writes the conversion outcome to the manifest, if one is
// configured. Recording problems are warnings, never failures.
func (p *Pipeline) record(input, output string, target types.Target, fallback bool, convErr error) {
	if p.recorder == nil {
		return
	}
	status := types.ConversionDone
	if convErr != nil {
		status = types.ConversionFailed
	}
	rec := types.ConversionRecord{
		Input:       input,
		Output:      output,
		Target:      target,
		Status:      status,
		Fallback:    fallback,
		ConvertedAt: time.Now().UTC(),
	}
	if err := p.recorder.Record(rec); err != nil {
		fmt.Fprintf(p.log, "warning: could not record conversion of %s: %v\n", input, err)
	}
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int

	// Outputs lists the paths of successfully produced files, in
	// conversion order.
	Outputs []string
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Batch converts every supported document under inDir into outDir,
// creating outDir if needed. The walk is recursive and follows symbolic
// links. A per-file failure is logged and skipped; only structural
// problems (unreadable input tree, uncreatable output directory) fail
// the batch itself.
func (p *Pipeline) Batch(inDir, outDir string, target types.Target) (BatchResult, error) {
	fmt.Fprintf(p.log, "batch: converting %s -> %s (%s)\n", inDir, outDir, target)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, types.NewConvertError(types.KindIO, outDir,
			fmt.Errorf("creating output directory: %w", err))
	}

	var result BatchResult
	err := walkFollowingLinks(inDir, p.log, func(path string) {
		if !p.matches(path) {
			return
		}

		var out string
		var err error
		switch target {
		case types.TargetMarkdown:
			out, err = p.ToMarkdown(path, outDir)
		default:
			out, err = p.ToPDF(path, outDir)
		}
		if err != nil {
			fmt.Fprintf(p.log, "failed: %s (%v)\n", path, err)
			result.Failed++
			return
		}
		result.Converted++
		result.Outputs = append(result.Outputs, out)
	})
	if err != nil {
		return result, types.NewConvertError(types.KindIO, inDir, fmt.Errorf("walking input directory: %w", err))
	}

	fmt.Fprintf(p.log, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}

// matches reports whether path has a supported extension, narrowed to
// the configured single-extension filter when one is set.
func (p *Pipeline) matches(path string) bool {
	ext := normalizedExt(path)
	switch ext {
	case "docx", "xlsx", "xls":
	default:
		return false
	}
	if filter := strings.ToLower(strings.TrimPrefix(p.cfg.TypeFilter, ".")); filter != "" && ext != filter {
		return false
	}
	return true
}

// normalizedExt returns the lowercase extension of path without the dot.
func normalizedExt(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
