package errors

import (
	"fmt"
	"strings"

	"github.com/weft-lang/weft/internal/token"
)

// RewriteError represents an error raised by a rewrite pass, with enough
// context to point at the offending markup. Start and End carry the full
// anchoring positions, byte offsets included; Line, Column, and EndColumn
// are the display-ready coordinates derived from them.
type RewriteError struct {
	Code        ErrorCode
	Message     string
	Filename    string
	Start       token.Position
	End         token.Position
	Line        int
	Column      int
	EndColumn   int
	SourceLine  string
	Suggestions []Suggestion
	Note        string
}

// Error implements the error interface.
func (e *RewriteError) Error() string {
	var b strings.Builder
	b.WriteString("rewrite error: ")
	b.WriteString(e.Message)
	if e.Filename != "" || e.Line > 0 {
		b.WriteString("\n\nlocation: ")
		if e.Filename != "" {
			b.WriteString(e.Filename)
			b.WriteString(":")
		}
		fmt.Fprintf(&b, "%d:%d", e.Line, e.Column)
	}
	return b.String()
}

// FriendlyErrorMessage returns a human-friendly error message.
func (e *RewriteError) FriendlyErrorMessage() string {
	formatted := e.ToFormatted()
	formatter := NewFormatter(false)
	return formatter.Format(formatted)
}

// ToFormatted converts to the FormattedError type for display.
func (e *RewriteError) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:      e.Code,
		Kind:      "error",
		Message:   e.Message,
		Filename:  e.Filename,
		Line:      e.Line,
		Column:    e.Column,
		EndColumn: e.EndColumn,
		Note:      e.Note,
	}

	if e.SourceLine != "" {
		fe.SourceLines = []SourceLineEntry{
			{Number: e.Line, Text: e.SourceLine, IsMain: true},
		}
	}

	if len(e.Suggestions) > 0 {
		fe.Hint = FormatSuggestions(e.Suggestions)
	}

	return fe
}

// RewriteErrors holds multiple rewrite errors.
type RewriteErrors struct {
	Errors []*RewriteError
}

// Error implements the error interface.
func (e *RewriteErrors) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

// FriendlyErrorMessage returns a human-friendly error message for all errors.
func (e *RewriteErrors) FriendlyErrorMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}

	var formatted []*FormattedError
	for _, err := range e.Errors {
		formatted = append(formatted, err.ToFormatted())
	}

	formatter := NewFormatter(false)
	return formatter.FormatMultiple(formatted)
}

// Add adds a rewrite error to the collection.
func (e *RewriteErrors) Add(err *RewriteError) {
	e.Errors = append(e.Errors, err)
}

// Count returns the number of errors.
func (e *RewriteErrors) Count() int {
	return len(e.Errors)
}

// HasErrors returns true if there are any errors.
func (e *RewriteErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// ToError returns the errors as a single error, or nil if empty.
func (e *RewriteErrors) ToError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	if len(e.Errors) == 1 {
		return e.Errors[0]
	}
	return e
}

// Unwrap returns the underlying errors for use with errors.Is/As.
func (e *RewriteErrors) Unwrap() []error {
	result := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		result[i] = err
	}
	return result
}
