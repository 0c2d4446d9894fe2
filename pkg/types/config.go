// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the conversion pipeline.
type ConvertConfig struct {
	// OutputDir is the directory where converted files are written.
	// Created recursively if missing.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// FontsDir is the directory holding the embedded PDF font faces
	// (Regular/Bold/Italic/BoldItalic TTFs). When the faces cannot be
	// loaded the PDF renderer degrades to its built-in core font.
	FontsDir string `json:"fonts_dir,omitempty" yaml:"fonts_dir,omitempty"`

	// TypeFilter optionally narrows batch and watch conversion to a
	// single extension ("docx", "xlsx", or "xls"). Empty means all
	// supported types.
	TypeFilter string `json:"type_filter,omitempty" yaml:"type_filter,omitempty"`

	// ManifestPath is the optional SQLite conversion ledger. Empty
	// disables recording.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`

	// Verbose enables per-step detail lines in the progress log.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// WatchConfig holds settings for watch mode.
type WatchConfig struct {
	ConvertConfig `yaml:",inline"`

	// InputDir is the directory watched (recursively) for new or
	// modified documents.
	InputDir string `json:"input_dir" yaml:"input_dir"`
}

// Target identifies the requested output format of a conversion.
type Target string

const (
	// TargetPDF renders to PDF, with Markdown as the fallback outcome
	// when the PDF renderer fails.
	TargetPDF Target = "pdf"

	// TargetMarkdown renders to Markdown directly.
	TargetMarkdown Target = "markdown"
)
