package length

import (
	"errors"
	"testing"
)

func TestParseInchNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string // RatString
	}{
		{"1", "1"},
		{"1.375", "11/8"},
		{"0.1", "1/10"},
		{"7/16", "7/16"},
		{"7 / 16", "7/16"},
		{"1 3/8", "11/8"},
		{"2-1/4", "9/4"},
		{"2 1/ 4", "9/4"},
	}

	for _, tt := range tests {
		got, err := ParseInchNumber(tt.input)
		if err != nil {
			t.Errorf("ParseInchNumber(%q) error: %v", tt.input, err)
			continue
		}
		if got.RatString() != tt.want {
			t.Errorf("ParseInchNumber(%q) = %q, want %q", tt.input, got.RatString(), tt.want)
		}
	}
}

func TestParseInchNumberInvalid(t *testing.T) {
	tests := []string{
		"abc",
		"1+2",
		"(1)",
		"1.2.3",
		"3/8\"",
		"1 3 8",
		"",
	}

	for _, input := range tests {
		_, err := ParseInchNumber(input)
		var nerr *NumberFormatError
		if !errors.As(err, &nerr) {
			t.Errorf("ParseInchNumber(%q) error = %v, want NumberFormatError", input, err)
		}
	}
}

func TestParseInchNumberZeroDenominator(t *testing.T) {
	// Same policy as the expression path: /0 is a division by zero.
	for _, input := range []string{"1/0", "2 1/0"} {
		_, err := ParseInchNumber(input)
		var derr *DivisionByZeroError
		if !errors.As(err, &derr) {
			t.Errorf("ParseInchNumber(%q) error = %v, want DivisionByZeroError", input, err)
		}
	}
}
