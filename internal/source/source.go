// Package source maps byte offsets to human-facing line/column positions.
//
// The scanner records the offset of every line start into a Map while it
// consumes the input; spans stay as cheap byte-offset pairs until an error
// is reported, at which point Map resolves them to positions.
package source

import (
	"fmt"

	"calc/internal/span"
)

// Pos is a position in the input text. Offset is 0-based, Line and Column
// are 1-based. Line and column are derived presentation data; equality and
// ordering are defined by the offset alone.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// Before reports whether p precedes q in the input.
func (p Pos) Before(q Pos) bool {
	return p.Offset < q.Offset
}

// Eq reports whether p and q denote the same offset.
func (p Pos) Eq(q Pos) bool {
	return p.Offset == q.Offset
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceSpan is a resolved span: start position inclusive, end position
// exclusive. When start and end are equal the span is empty.
type SourceSpan struct {
	Start Pos
	End   Pos
}

// NewSourceSpan creates a resolved span. Panics if end precedes start.
func NewSourceSpan(start, end Pos) SourceSpan {
	if end.Before(start) {
		panic(fmt.Sprintf("invalid source span: end %s before start %s", end, start))
	}
	return SourceSpan{Start: start, End: end}
}

func (s SourceSpan) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Map is the source position index: an ordered list of line-start offsets,
// appended by the scanner and queried when diagnostics are built. It is
// scoped to a single evaluation and is not safe for concurrent use.
type Map struct {
	lineStarts []int
}

// NewMap creates an index containing line 1. There is always at least one
// line starting at offset 0, even for empty input.
func NewMap() *Map {
	return &Map{lineStarts: []int{0}}
}

// AddLineStart records offset as the start of a new line. Offsets must be
// recorded in strictly increasing order; the scanner guarantees this by
// recording them as it advances left-to-right.
func (m *Map) AddLineStart(offset int) {
	if last := m.lineStarts[len(m.lineStarts)-1]; last >= offset {
		panic(fmt.Sprintf("line start %d not after previous %d", offset, last))
	}
	m.lineStarts = append(m.lineStarts, offset)
}

// Resolve returns the position for a byte offset. The line is the greatest
// recorded line start not exceeding the offset; it always exists because
// line 1 starts at offset 0.
func (m *Map) Resolve(offset int) Pos {
	// Binary search tracking base and window size instead of lower/upper
	// bounds, looking for the greatest line start <= offset.
	base, size := 0, len(m.lineStarts)
	index := 0

	for size > 0 {
		half := size / 2
		mid := base + half

		if m.lineStarts[mid] <= offset {
			index = mid
			base = mid + 1
		}
		size = size - half - 1
	}

	return Pos{
		Offset: offset,
		Line:   index + 1,
		Column: offset - m.lineStarts[index] + 1,
	}
}

// ResolveSpan resolves both ends of a byte-offset span.
func (m *Map) ResolveSpan(s span.Span) SourceSpan {
	return NewSourceSpan(m.Resolve(s.Start), m.Resolve(s.End))
}
