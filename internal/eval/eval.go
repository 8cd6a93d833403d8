// Package eval implements the tree-walking evaluator.
package eval

import (
	"fmt"
	"math"

	"calc/internal/ast"
	"calc/internal/diag"
	"calc/internal/source"
)

// Evaluator computes the 32-bit result of an expression tree. All four
// operators use two's-complement wraparound semantics; the only runtime
// failure is division by zero.
type Evaluator struct {
	lines *source.Map
}

// New creates an evaluator. The lines map must be the one recorded while
// the expression was scanned; it is consulted only to locate errors.
func New(lines *source.Map) *Evaluator {
	return &Evaluator{lines: lines}
}

// Eval walks the expression and returns its value. Operands evaluate left
// before right, unconditionally.
func (e *Evaluator) Eval(expr ast.Expr) (int32, error) {
	switch n := expr.(type) {
	case *ast.IntExpr:
		return n.Value, nil

	case *ast.GroupExpr:
		return e.Eval(n.Inner)

	case *ast.BinaryExpr:
		left, err := e.Eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.Eval(n.Right)
		if err != nil {
			return 0, err
		}

		switch n.Op {
		case ast.Add:
			return left + right, nil
		case ast.Sub:
			return left - right, nil
		case ast.Mul:
			return left * right, nil
		case ast.Div:
			if right == 0 {
				// Located at the whole binary expression, not just the
				// zero operand.
				return 0, diag.New(e.lines.ResolveSpan(n.Span), "division by zero")
			}
			if left == math.MinInt32 && right == -1 {
				// The one representable division overflow wraps; Go's
				// divide instruction would panic here.
				return math.MinInt32, nil
			}
			return left / right, nil
		}
	}

	panic(fmt.Sprintf("unknown expression node: %T", expr))
}
