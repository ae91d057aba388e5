// Package errors provides error handling for bindgen.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and user-facing hints.
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := parse(path); err != nil {
//	    return errors.Wrapf(err, "failed to parse %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run doxygen first to produce the XML export")
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
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for fatal input conditions. Wrap these with errors.Wrap()
// to add context while preserving the type for errors.Is() checks.
var (
	// ErrMissingInput indicates a required documentation-export file is
	// missing or unreadable.
	ErrMissingInput = New("input file missing")

	// ErrBadInput indicates a documentation-export file could not be parsed.
	ErrBadInput = New("input file unparseable")

	// ErrNoVersionMetadata indicates the source-library revision could not
	// be determined.
	ErrNoVersionMetadata = New("version metadata unavailable")

	// ErrMissingOutputDir indicates a target output directory does not exist.
	ErrMissingOutputDir = New("output directory missing")
)
