// Package token defines the token types produced by the scanner.
package token

import (
	"fmt"

	"calc/internal/span"
)

// Kind represents the type of a token.
type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF

	// Literals
	INT // integer literals: 123

	// Operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// Delimiters
	LPAREN // (
	RPAREN // )
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	INT: "INT",

	PLUS:  "+",
	MINUS: "-",
	STAR:  "*",
	SLASH: "/",

	LPAREN: "(",
	RPAREN: ")",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperator returns true if the kind is one of the four binary operators.
func (k Kind) IsOperator() bool {
	return k >= PLUS && k <= SLASH
}

// Token represents a lexical token with its kind, source text, and span.
// Value is meaningful only for INT tokens; the scanner accumulates it with
// wrapping 32-bit arithmetic, so overlong digit runs wrap rather than error.
type Token struct {
	Kind   Kind
	Value  int32
	Lexeme string
	Span   span.Span
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	if t.Kind == INT {
		return fmt.Sprintf("%s %d %s", t.Kind, t.Value, t.Span)
	}
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span)
}
