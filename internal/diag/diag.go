// Package diag provides the diagnostic error type shared by the parser
// and evaluator.
package diag

import (
	"fmt"

	"calc/internal/source"
)

// Error is a diagnostic with a resolved source span. Every diagnostic is
// fatal to the evaluation that produced it; there is no severity level and
// no recovery. The span is resolved to line/column at construction time,
// so callers never need the source position index.
type Error struct {
	Span    source.SourceSpan
	Message string
}

// New creates an error located at the given span.
func New(span source.SourceSpan, message string) *Error {
	return &Error{Span: span, Message: message}
}

// Error renders the diagnostic as "line:col-line:col: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}
