package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrMissingColumn means a canonical column required by the requested
	// computation was never resolved from the raw file. It is always
	// surfaced to the user with the column name, never swallowed.
	ErrMissingColumn = errors.New("required column missing")

	// ErrInsufficientData means a ratio or gap metric had fewer non-null
	// observations than it needs. Rendered as a notice, never as a zero.
	ErrInsufficientData = errors.New("not enough data")

	// ErrUploadRequired means a page needs a file that has not been
	// uploaded yet (e.g. the contracts file for the analyst page).
	ErrUploadRequired = errors.New("upload required")

	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyTable        = errors.New("file has no data rows")
)

// NewMissingColumnError names the canonical column that never resolved
func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, column)
}

// NewUploadRequiredError names the missing upload
func NewUploadRequiredError(what string) error {
	return fmt.Errorf("%w: %s", ErrUploadRequired, what)
}

// IsMissingColumn reports whether err is a missing-required-column error
func IsMissingColumn(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

// IsInsufficientData reports whether err is an insufficient-data error
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

// IsUserFacing reports whether err should be rendered inline on the page
// rather than treated as an internal failure.
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrUploadRequired) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrEmptyTable)
}
