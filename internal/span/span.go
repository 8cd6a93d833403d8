// Package span provides the raw byte-offset span type shared by the
// scanner, parser, and AST.
package span

import "fmt"

// Span represents a byte range [Start, End) in the input text. It carries
// no line information; resolving to line/column happens through
// source.Map, and only when a diagnostic is built.
type Span struct {
	Start int
	End   int
}

// New creates a span from start to end. Panics if end < start: spans are
// produced left-to-right during scanning, so a reversed span is a
// programming error, not a user input error.
func New(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("invalid span: start %d > end %d", start, end))
	}
	return Span{Start: start, End: end}
}

// Cover returns the smallest span containing both a and b.
func Cover(a, b Span) Span {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Span{Start: start, End: end}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
