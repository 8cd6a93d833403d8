// Package ast defines the abstract syntax tree for arithmetic expressions.
//
// The node set is closed: an expression is an integer literal, a
// parenthesized group, or a binary operation. Consumers dispatch with a
// type switch rather than virtual methods.
package ast

import (
	"fmt"

	"calc/internal/span"
	"calc/internal/token"
)

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	exprNode()
	GetSpan() span.Span
}

// ExprBase provides the common Span field for all expression nodes. A
// node's span covers its full source text; for groups that includes the
// enclosing parentheses.
type ExprBase struct {
	Span span.Span
}

func (b ExprBase) exprNode()          {}
func (b ExprBase) GetSpan() span.Span { return b.Span }

// IntExpr is an integer literal.
type IntExpr struct {
	ExprBase
	Value int32
}

// GroupExpr is a parenthesized expression. Grouping carries no semantic
// effect beyond the tree shape it produced; the evaluator passes through.
type GroupExpr struct {
	ExprBase
	Inner Expr
}

// BinaryExpr is a binary operation: left op right.
type BinaryExpr struct {
	ExprBase
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Int creates an integer literal node.
func Int(s span.Span, value int32) *IntExpr {
	return &IntExpr{ExprBase: ExprBase{Span: s}, Value: value}
}

// Group creates a grouping node covering the opening through closing
// parenthesis.
func Group(s span.Span, inner Expr) *GroupExpr {
	return &GroupExpr{ExprBase: ExprBase{Span: s}, Inner: inner}
}

// Binary creates a binary operation node covering both operands.
func Binary(s span.Span, op BinaryOp, left, right Expr) *BinaryExpr {
	return &BinaryExpr{ExprBase: ExprBase{Span: s}, Op: op, Left: left, Right: right}
}

// BinaryOp identifies one of the four arithmetic operators.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// BinaryOpFromToken maps an operator token kind to its BinaryOp. Panics on
// non-operator kinds; the parser only calls this after matching one.
func BinaryOpFromToken(kind token.Kind) BinaryOp {
	switch kind {
	case token.PLUS:
		return Add
	case token.MINUS:
		return Sub
	case token.STAR:
		return Mul
	case token.SLASH:
		return Div
	default:
		panic(fmt.Sprintf("not a binary operator: %s", kind))
	}
}
