package models

import (
	"errors"
	"fmt"
	"strings"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

// ArgumentError reports invalid command-line usage. It is raised before any
// filesystem access.
type ArgumentError struct {
	Flag    string // Offending flag, empty when the error concerns several flags
	Message string
}

// NewArgumentError creates an ArgumentError for the given flag.
func NewArgumentError(flag, msg string) *ArgumentError {
	return &ArgumentError{Flag: flag, Message: msg}
}

// Error implements the error interface for ArgumentError.
func (e *ArgumentError) Error() string {
	if e.Flag == "" {
		return "invalid arguments: " + e.Message
	}
	return fmt.Sprintf("invalid argument --%s: %s", e.Flag, e.Message)
}

// IOError reports a filesystem failure on a specific path.
type IOError struct {
	Op   string // "stat", "read", "walk"
	Path string
	Err  error
}

// NewIOError creates an IOError wrapping err.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// Error implements the error interface for IOError.
func (e *IOError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s", e.Op, e.Path))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *IOError) Unwrap() error {
	return e.Err
}

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface for PatternError.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return ExitUsageError
	}

	var patErr *PatternError
	if errors.As(err, &patErr) {
		return ExitUsageError
	}

	return ExitFailure
}
