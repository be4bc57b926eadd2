package beacon

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrParse indicates the content is not a well-formed BEACON file.
	ErrParse = errors.New("beacon parse error")

	// ErrFileNotFound indicates the requested file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileUnreadable indicates the file exists but could not be read.
	ErrFileUnreadable = errors.New("file not readable")

	// ErrValidationFailed indicates validation finished with at least one error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrSourceUnavailable indicates the input could not be loaded (download failure, bad path).
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError is a fatal parse failure. Parsing stops at the first one and
// no partial result is returned.
type ParseError struct {
	Line    int    // 1-based line number
	Message string // Primary error message
	Text    string // Offending line, if worth echoing
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s on line %d", e.Message, e.Line)
	if e.Text != "" {
		msg += ": " + e.Text
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitInvalid (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrParse):
		return ExitInvalid
	case errors.Is(err, ErrFileNotFound),
		errors.Is(err, ErrFileUnreadable),
		errors.Is(err, ErrSourceUnavailable),
		errors.Is(err, ErrInvalidConfig):
		return ExitSourceError
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, pattern := range []string{
		"unknown flag", "unknown shorthand flag", "unknown command",
		"accepts ", "requires at least", "invalid argument", "missing required argument",
		"none of the others can be",
	} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitInvalid
}
