// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies conversion failures. The orchestrator dispatches on
// the kind: render failures trigger the Markdown fallback, unsupported
// formats abort immediately, and everything else aborts the single file.
type ErrorKind string

const (
	// KindIO covers file and directory access failures.
	KindIO ErrorKind = "io"

	// KindFormat covers source containers that are malformed beyond recovery.
	KindFormat ErrorKind = "format"

	// KindUnsupported covers files whose extension is not a convertible type.
	KindUnsupported ErrorKind = "unsupported"

	// KindRender covers renderer-side failures such as a PDF write error.
	KindRender ErrorKind = "render"
)

// ConvertError is a classified conversion failure tied to one input file.
type ConvertError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError wraps err with a kind and the offending path.
func NewConvertError(kind ErrorKind, path string, err error) error {
	return &ConvertError{Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind of err if it is (or wraps) a ConvertError, or
// the empty string otherwise.
func KindOf(err error) ErrorKind {
	var ce *ConvertError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
