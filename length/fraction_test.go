package length

import (
	"errors"
	"testing"
)

func TestFormatInchFraction(t *testing.T) {
	tests := []struct {
		inches float64
		denom  int
		want   string
	}{
		{1.375, 32, "1 3/8"},
		{0.0, 32, "0"},
		{0.4375, 32, "7/16"},
		{0.8125, 32, "13/16"},
		{2.03125, 32, "2 1/32"},
		{3.0, 32, "3"},
		{0.96875, 32, "31/32"},
		// Rounding carries into the whole part, never 16/16.
		{0.984375, 16, "1"},
		{0.96875, 16, "1"},
		// Half units round away from zero.
		{0.5, 3, "2/3"},
		{-1.375, 32, "-1 3/8"},
		{-0.4375, 32, "-7/16"},
		// Negative value that rounds to zero drops the sign.
		{-0.001, 32, "0"},
		{1.4, 32, "1 13/32"},
		{1.4, 8, "1 3/8"},
	}

	for _, tt := range tests {
		got, err := FormatInchFraction(tt.inches, tt.denom)
		if err != nil {
			t.Errorf("FormatInchFraction(%v, %d) error: %v", tt.inches, tt.denom, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatInchFraction(%v, %d) = %q, want %q", tt.inches, tt.denom, got, tt.want)
		}
	}
}

func TestInchFractionRepr(t *testing.T) {
	tests := []struct {
		inches float64
		denom  int
		want   FractionRepr
	}{
		{1.375, 32, FractionRepr{Neg: false, Whole: 1, Num: 3, Den: 8}},
		{-0.75, 4, FractionRepr{Neg: true, Whole: 0, Num: 3, Den: 4}},
		{2.0, 32, FractionRepr{Neg: false, Whole: 2, Num: 0, Den: 0}},
	}

	for _, tt := range tests {
		got, err := InchFraction(tt.inches, tt.denom)
		if err != nil {
			t.Errorf("InchFraction(%v, %d) error: %v", tt.inches, tt.denom, err)
			continue
		}
		if got != tt.want {
			t.Errorf("InchFraction(%v, %d) = %+v, want %+v", tt.inches, tt.denom, got, tt.want)
		}
	}
}

func TestInchFractionBadDenominator(t *testing.T) {
	for _, denom := range []int{0, -4} {
		_, err := FormatInchFraction(1.0, denom)
		var derr *DenominatorError
		if !errors.As(err, &derr) {
			t.Errorf("FormatInchFraction(1, %d) error = %v, want DenominatorError", denom, err)
		}
		if derr != nil && derr.Denom != denom {
			t.Errorf("DenominatorError.Denom = %d, want %d", derr.Denom, denom)
		}
	}
}

// Formatting at a resolution the value is exactly representable in,
// then re-parsing the rendered fraction, must reproduce the value.
func TestFormatParseRoundTrip(t *testing.T) {
	values := []string{"0", "3", "1/2", "13/16", "31/32", "11/8", "9/4", "5 7/32"}

	for _, want := range values {
		r, err := ParseInchNumber(want)
		if err != nil {
			t.Fatalf("ParseInchNumber(%q) error: %v", want, err)
		}
		f, _ := r.Float64()
		s, err := FormatInchFraction(f, 32)
		if err != nil {
			t.Fatalf("FormatInchFraction(%v) error: %v", f, err)
		}
		back, err := ParseInchNumber(s)
		if err != nil {
			t.Fatalf("ParseInchNumber(%q) error: %v", s, err)
		}
		if back.Cmp(r) != 0 {
			t.Errorf("round trip %q -> %q -> %q", want, s, back.RatString())
		}
	}
}
