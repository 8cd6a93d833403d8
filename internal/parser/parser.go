// Package parser implements syntax analysis for arithmetic expressions.
//
// The grammar is standard precedence, left-associative:
//
//	Expr   := Term (("+"|"-") Term)*
//	Term   := Factor (("*"|"/") Factor)*
//	Factor := INT | "(" Expr ")"
//
// One token of lookahead suffices; the parser keeps a single buffered
// current token and pulls the next from the scanner as it advances.
package parser

import (
	"calc/internal/ast"
	"calc/internal/diag"
	"calc/internal/scanner"
	"calc/internal/source"
	"calc/internal/span"
	"calc/internal/token"
)

// Parser builds an AST from the scanner's token stream. It fails fast: the
// first syntax error aborts the parse.
type Parser struct {
	scanner *scanner.Scanner
	lines   *source.Map
	cur     token.Token
}

// New creates a parser pulling tokens from sc. The lines map must be the
// one the scanner records into; it is consulted only when an error's span
// is resolved.
func New(sc *scanner.Scanner, lines *source.Map) *Parser {
	return &Parser{scanner: sc, lines: lines}
}

// Parse parses a complete expression and requires the input to end there.
func (p *Parser) Parse() (ast.Expr, error) {
	p.advance() // prime the lookahead

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.EOF {
		return nil, p.errorAt(p.cur.Span, "expected end of input")
	}
	return expr, nil
}

// parseExpr parses Term (("+"|"-") Term)*, folding left.
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == token.PLUS || p.cur.Kind == token.MINUS {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = p.binary(op, left, right)
	}
	return left, nil
}

// parseTerm parses Factor (("*"|"/") Factor)*, folding left.
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == token.STAR || p.cur.Kind == token.SLASH {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = p.binary(op, left, right)
	}
	return left, nil
}

// parseFactor parses an integer literal or a parenthesized expression.
func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.cur.Kind {
	case token.INT:
		tok := p.advance()
		return ast.Int(tok.Span, tok.Value), nil

	case token.LPAREN:
		lparen := p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != token.RPAREN {
			return nil, p.errorAt(p.cur.Span, "expected `)`")
		}
		rparen := p.advance()
		// The group's span covers both parentheses.
		return ast.Group(span.Cover(lparen.Span, rparen.Span), inner), nil

	default:
		return nil, p.errorAt(p.cur.Span, "expected integer literal or `(`")
	}
}

// binary combines two operands into a node spanning both.
func (p *Parser) binary(op token.Token, left, right ast.Expr) ast.Expr {
	s := span.Cover(left.GetSpan(), right.GetSpan())
	return ast.Binary(s, ast.BinaryOpFromToken(op.Kind), left, right)
}

// advance consumes the current token and pulls the next from the scanner.
func (p *Parser) advance() token.Token {
	tok := p.cur
	p.cur = p.scanner.Scan()
	return tok
}

// errorAt builds a diagnostic, resolving the span to line/column only now.
func (p *Parser) errorAt(s span.Span, message string) error {
	return diag.New(p.lines.ResolveSpan(s), message)
}
