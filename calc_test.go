package calc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalValidExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  int32
	}{
		{"1", 1},
		{"1 + 2", 3},
		{"(1 + 2) * 3", 9},
		{"2 + 3 * 4", 14},
		{"(1 + 2) * (3 + 4)", 21},
		{"10 - 2 - 3", 5},
		{"100 / 10 / 2", 5},
		{"((((7))))", 7},
		{"1+2*3-4/2", 5},
		{" \t 1 \n + \n 2 ", 3},
	}
	for _, tt := range tests {
		got, err := Eval(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestEvalWraparound(t *testing.T) {
	got, err := Eval("2147483647 + 1")
	require.NoError(t, err)
	assert.Equal(t, int32(-2147483648), got)

	// The literal 2147483648 wraps to -2147483648 during scanning, so
	// subtracting 1 wraps back around to the maximum.
	got, err = Eval("2147483648 - 1")
	require.NoError(t, err)
	assert.Equal(t, int32(2147483647), got)

	got, err = Eval("2147483648 / 1")
	require.NoError(t, err)
	assert.Equal(t, int32(-2147483648), got)
}

func TestEvalIntLiteralRoundTrip(t *testing.T) {
	values := []int32{0, 1, 9, 42, 1000000, 2147483647}
	for _, v := range values {
		got, err := Eval(fmt.Sprintf("%d", v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEvalParserErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1 + 2", "1:7-1:7: expected `)`"},
		{"", "1:1-1:1: expected integer literal or `(`"},
		{"1 + ", "1:5-1:5: expected integer literal or `(`"},
		{"%", "1:1-1:2: expected integer literal or `(`"},
		{"1 + 2)", "1:6-1:7: expected end of input"},
	}
	for _, tt := range tests {
		_, err := Eval(tt.input)
		require.Error(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, err.Error(), "input %q", tt.input)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := Eval("1 / 0")
	require.Error(t, err)

	// The span covers the whole binary expression, not just the zero.
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "division by zero", derr.Message)
	assert.Equal(t, "1:1-1:6", derr.Span.String())
}

func TestEvalErrorSpansOnLaterLines(t *testing.T) {
	_, err := Eval("1 +\n2 +\n3 / 0")
	require.Error(t, err)

	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "division by zero", derr.Message)
	assert.Equal(t, "3:1-3:6", derr.Span.String())
}

func TestEvalDeterministic(t *testing.T) {
	inputs := []string{"(1 + 2) * 3", "(1 + 2", "1 / 0", "2147483647 + 1"}
	for _, input := range inputs {
		v1, err1 := Eval(input)
		v2, err2 := Eval(input)

		assert.Equal(t, v1, v2, "input %q", input)
		if err1 == nil {
			assert.NoError(t, err2, "input %q", input)
		} else {
			require.Error(t, err2, "input %q", input)
			assert.Equal(t, err1.Error(), err2.Error(), "input %q", input)
		}
	}
}

func TestEvalErrorIsConcreteType(t *testing.T) {
	_, err := Eval("(1 + 2")
	require.Error(t, err)

	var derr *Error
	assert.True(t, errors.As(err, &derr))
}
