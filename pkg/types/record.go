// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of a single file conversion.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// ConversionRecord is one entry in the conversion manifest: a single
// input file and the output it produced (or failed to produce).
type ConversionRecord struct {
	// Input is the source document path.
	Input string `json:"input" yaml:"input"`

	// Output is the produced file path; empty when the conversion failed.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Target is the requested output format.
	Target Target `json:"target" yaml:"target"`

	// Status records whether the conversion succeeded.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Fallback is true when a PDF request was satisfied by the Markdown
	// renderer after a PDF failure.
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`

	// ConvertedAt is when the conversion finished.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
