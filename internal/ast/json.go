package ast

import "calc/internal/span"

// NodeToMap converts an AST node to a map suitable for JSON serialization.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(node Expr) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *IntExpr:
		return m("IntExpr", n.Span, "value", n.Value)
	case *GroupExpr:
		return m("GroupExpr", n.Span, "inner", NodeToMap(n.Inner))
	case *BinaryExpr:
		return m("BinaryExpr", n.Span,
			"op", n.Op.String(),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	default:
		return m("Unknown", node.GetSpan())
	}
}

// m builds a node map with kind, span, and alternating key/value pairs.
func m(kind string, s span.Span, kv ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": map[string]int{"start": s.Start, "end": s.End},
	}
	for i := 0; i+1 < len(kv); i += 2 {
		result[kv[i].(string)] = kv[i+1]
	}
	return result
}
