package length

import (
	"errors"
	"testing"
)

func TestEvalExpression(t *testing.T) {
	tests := []struct {
		input string
		want  string // RatString of the result
	}{
		{"2 + 3", "5"},
		{"10 - 3", "7"},
		{"4 * 5", "20"},
		{"10 / 4", "5/2"},
		{"3/4 + 1/16", "13/16"},
		{"1/2 - 1/3", "1/6"},
		{"(2 + 3) * 4", "20"},
		{"-5", "-5"},
		{"+5", "5"},
		{"-(1/2)", "-1/2"},
		{"--3", "3"},
		{"2 * 3 - 1", "5"},
		{"1 + 2 * 3", "7"},
		{"(1 + 3/8) * 2", "11/4"},
		// Decimal literals are exact, no binary float drift.
		{"0.1 + 0.2", "3/10"},
		{"1.375", "11/8"},
		{"0.1 * 10", "1"},
	}

	for _, tt := range tests {
		got, err := evalExpression(tt.input)
		if err != nil {
			t.Errorf("evalExpression(%q) error: %v", tt.input, err)
			continue
		}
		if got.RatString() != tt.want {
			t.Errorf("evalExpression(%q) = %q, want %q", tt.input, got.RatString(), tt.want)
		}
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	for _, input := range []string{"1/0", "1 / 0", "3/(2 - 2)", "1/(0.5 - 1/2)"} {
		_, err := evalExpression(input)
		var derr *DivisionByZeroError
		if !errors.As(err, &derr) {
			t.Errorf("evalExpression(%q) error = %v, want DivisionByZeroError", input, err)
		}
	}
}

func TestEvalSyntaxErrors(t *testing.T) {
	tests := []string{
		"1 +",
		"(1 + 2",
		")",
		"1 2",
		"*3",
		"1 + * 2",
		"()",
		"",
	}

	for _, input := range tests {
		_, err := evalExpression(input)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("evalExpression(%q) error = %v, want SyntaxError", input, err)
		}
	}
}
