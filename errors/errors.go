// Package errors provides error handling for protogen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the fatal failure classes of the translator
//
// Usage:
//
//	// Wrap with context
//	if err := emit(def); err != nil {
//	    return errors.Wrapf(err, "definition %s", def.Title)
//	}
//
//	// Check errors
//	if errors.IsUnsupportedShape(err) {
//	    // the input schema declares a shape the translator cannot express
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the translator's fatal failure classes.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnsupportedShape indicates a property description that matches none
	// of the recognized shape classifications, or a definition whose kind is
	// neither a string enum nor an object
	ErrUnsupportedShape = New("unsupported shape")

	// ErrTitleMismatch indicates a $ref pointer whose target title does not
	// equal the title stored in the referenced definition
	ErrTitleMismatch = New("reference title mismatch")

	// ErrDuplicateTitle indicates two definitions in the input schema share
	// the same title
	ErrDuplicateTitle = New("duplicate definition title")
)

// IsUnsupportedShape checks if an error is or wraps ErrUnsupportedShape
func IsUnsupportedShape(err error) bool {
	return err != nil && Is(err, ErrUnsupportedShape)
}

// IsTitleMismatch checks if an error is or wraps ErrTitleMismatch
func IsTitleMismatch(err error) bool {
	return err != nil && Is(err, ErrTitleMismatch)
}

// IsDuplicateTitle checks if an error is or wraps ErrDuplicateTitle
func IsDuplicateTitle(err error) bool {
	return err != nil && Is(err, ErrDuplicateTitle)
}

// NewUnsupportedShape creates an unsupported-shape error carrying the
// offending raw description for diagnosis
func NewUnsupportedShape(format string, args ...interface{}) error {
	return Wrap(ErrUnsupportedShape, Newf(format, args...).Error())
}

// NewTitleMismatch creates a reference-title-mismatch error naming both titles
func NewTitleMismatch(format string, args ...interface{}) error {
	return Wrap(ErrTitleMismatch, Newf(format, args...).Error())
}
