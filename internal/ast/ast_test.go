package ast

import (
	"testing"

	"calc/internal/span"
	"calc/internal/token"
)

func TestBinaryOpFromToken(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want BinaryOp
	}{
		{token.PLUS, Add},
		{token.MINUS, Sub},
		{token.STAR, Mul},
		{token.SLASH, Div},
	}
	for _, tt := range tests {
		if got := BinaryOpFromToken(tt.kind); got != tt.want {
			t.Errorf("BinaryOpFromToken(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestBinaryOpFromTokenPanicsOnNonOperator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-operator kind")
		}
	}()
	BinaryOpFromToken(token.INT)
}

func TestGetSpan(t *testing.T) {
	expr := Binary(span.New(0, 5), Add,
		Int(span.New(0, 1), 1),
		Int(span.New(4, 5), 2))

	if got := expr.GetSpan(); got != span.New(0, 5) {
		t.Errorf("GetSpan() = %v, want 0..5", got)
	}
	if got := expr.Left.GetSpan(); got != span.New(0, 1) {
		t.Errorf("left GetSpan() = %v, want 0..1", got)
	}
}

func TestNodeToMap(t *testing.T) {
	expr := Binary(span.New(0, 5), Mul,
		Int(span.New(0, 1), 2),
		Int(span.New(4, 5), 3))

	m := NodeToMap(expr)
	if m["kind"] != "BinaryExpr" {
		t.Errorf("kind = %v, want BinaryExpr", m["kind"])
	}
	if m["op"] != "*" {
		t.Errorf("op = %v, want *", m["op"])
	}

	left, ok := m["left"].(map[string]interface{})
	if !ok {
		t.Fatalf("left is %T, want map", m["left"])
	}
	if left["kind"] != "IntExpr" || left["value"] != int32(2) {
		t.Errorf("left = %v, want IntExpr value 2", left)
	}

	if NodeToMap(nil) != nil {
		t.Error("NodeToMap(nil) should be nil")
	}
}
