// Package calc evaluates arithmetic expressions.
//
// Expressions consist of integer literals combined with the +, -, *, and /
// binary operators (usual precedence and left-associativity) and grouped
// with parentheses. Elements may be separated by whitespace. Arithmetic is
// wrapping 32-bit signed; division by zero is an error.
//
// # Usage
//
//	value, err := calc.Eval("(1 + 2) * 3")
//	// value == 9
//
//	_, err = calc.Eval("(1 + 2")
//	// err.Error() == "1:7-1:7: expected `)`"
//
//	_, err = calc.Eval("1 / 0")
//	// err.Error() == "1:1-1:6: division by zero"
//
// Errors carry the line:column span of the offending source text; the
// concrete type is *calc.Error.
package calc

import (
	"calc/internal/diag"
	"calc/internal/eval"
	"calc/internal/parser"
	"calc/internal/scanner"
	"calc/internal/source"
)

// Error is the diagnostic returned for malformed or failing expressions.
// It renders as "line:col-line:col: message".
type Error = diag.Error

// Eval evaluates an expression and returns its 32-bit result.
//
// The pipeline runs scanner, parser, and evaluator to completion within
// this call; nothing persists across calls. The first error aborts the
// evaluation and is returned as a *Error.
func Eval(input string) (int32, error) {
	lines := source.NewMap()
	sc := scanner.New(input, lines)

	expr, err := parser.New(sc, lines).Parse()
	if err != nil {
		return 0, err
	}
	return eval.New(lines).Eval(expr)
}
