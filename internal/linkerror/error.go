// Package linkerror provides a single error wrapper type and sentinel errors for linkman.
package linkerror

import "errors"

// Sentinel errors for link operations.
var (
	ErrSourceMissing         = errors.New("Source does not exist")
	ErrLinkExists            = errors.New("Link destination already exists")
	ErrInsufficientPrivilege = errors.New("Administrator privileges are required to create links")
	ErrNotLink               = errors.New("Path is not a symbolic link or junction")
	ErrNoLinksFound          = errors.New("No links found")
	ErrPartialDelete         = errors.New("Some links could not be deleted")
)

// Error wraps a sentinel error with optional context for display.
// This is the only custom error type in the codebase.
type Error struct {
	Err        error  // Underlying sentinel error
	Path       string // Optional path for display
	Suggestion string // Optional suggestion for user
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithPath creates an Error with path context.
func WithPath(err error, path string) *Error {
	return &Error{Err: err, Path: path}
}

// WithPathAndSuggestion creates an Error with both.
func WithPathAndSuggestion(err error, path, suggestion string) *Error {
	return &Error{Err: err, Path: path, Suggestion: suggestion}
}
