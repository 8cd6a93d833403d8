// Package scanner implements lexical analysis for arithmetic expressions.
//
// Unlike a tokenize-everything lexer, the scanner produces one token per
// Scan call; the parser pulls tokens on demand. While consuming input the
// scanner registers every newline with the shared source.Map, so that byte
// offsets can later be resolved to line/column positions.
package scanner

import (
	"unicode/utf8"

	"calc/internal/source"
	"calc/internal/span"
	"calc/internal/token"
)

// Scanner tokenizes an expression one token at a time.
type Scanner struct {
	source string
	lines  *source.Map

	pos   int // current read position in source
	start int // start offset of the token being scanned
}

// New creates a scanner over src. Newline offsets are recorded into lines
// as they are consumed; the map must be the one used to resolve the spans
// of the tokens this scanner produces.
func New(src string, lines *source.Map) *Scanner {
	return &Scanner{source: src, lines: lines}
}

// Scan consumes and returns the next token. At end of input it returns an
// EOF token with an empty span at the current offset; it never blocks or
// buffers lookahead.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespace()
	s.start = s.pos

	if s.pos >= len(s.source) {
		return token.Token{Kind: token.EOF, Span: s.span()}
	}

	ch := s.source[s.pos]
	switch {
	case ch == '+':
		return s.single(token.PLUS)
	case ch == '-':
		return s.single(token.MINUS)
	case ch == '*':
		return s.single(token.STAR)
	case ch == '/':
		return s.single(token.SLASH)
	case ch == '(':
		return s.single(token.LPAREN)
	case ch == ')':
		return s.single(token.RPAREN)
	case isDigit(ch):
		return s.scanInt()
	default:
		return s.scanIllegal()
	}
}

// skipWhitespace skips spaces, tabs, carriage returns, and newlines. Each
// consumed newline registers the offset of the following character as a
// new line start.
func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.source) {
		switch s.source[s.pos] {
		case ' ', '\t', '\r':
			s.pos++
		case '\n':
			s.pos++
			s.lines.AddLineStart(s.pos)
		default:
			return
		}
	}
}

// single consumes one character and returns a token of the given kind.
func (s *Scanner) single(kind token.Kind) token.Token {
	s.pos++
	return token.Token{Kind: kind, Lexeme: s.lexeme(), Span: s.span()}
}

// scanInt consumes a maximal run of ASCII digits. The value accumulates
// with wrapping 32-bit arithmetic at every step, so overlong digit runs
// wrap around instead of erroring.
func (s *Scanner) scanInt() token.Token {
	var value int32
	for s.pos < len(s.source) && isDigit(s.source[s.pos]) {
		value = value*10 + int32(s.source[s.pos]-'0')
		s.pos++
	}
	return token.Token{Kind: token.INT, Value: value, Lexeme: s.lexeme(), Span: s.span()}
}

// scanIllegal consumes exactly one rune and returns an ILLEGAL token
// covering it.
func (s *Scanner) scanIllegal() token.Token {
	_, size := utf8.DecodeRuneInString(s.source[s.pos:])
	s.pos += size
	return token.Token{Kind: token.ILLEGAL, Lexeme: s.lexeme(), Span: s.span()}
}

func (s *Scanner) lexeme() string {
	return s.source[s.start:s.pos]
}

func (s *Scanner) span() span.Span {
	return span.New(s.start, s.pos)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
