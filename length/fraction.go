package length

import (
	"math"
	"math/big"
	"strconv"
)

// FractionRepr is a decimal inch value split into a sign, a whole
// part, and a reduced fraction at some resolution. Num/Den are in
// lowest terms with Num < Den, or both zero when there is no
// fractional part.
type FractionRepr struct {
	Neg   bool
	Whole uint64
	Num   uint64
	Den   uint64
}

// InchFraction splits a decimal inch value at the given denominator
// resolution. Rounding is half-away-from-zero; a carry that reaches
// the denominator increments the whole part.
func InchFraction(inches float64, denom int) (FractionRepr, error) {
	if denom <= 0 {
		return FractionRepr{}, &DenominatorError{Denom: denom}
	}

	f := FractionRepr{Neg: inches < 0}
	value := math.Abs(inches)
	whole := uint64(value)
	frac := value - float64(whole)

	units := int64(math.Round(frac * float64(denom)))
	if units == int64(denom) {
		whole++
		units = 0
	}
	f.Whole = whole

	if units != 0 {
		// big.Rat keeps the fraction in lowest terms.
		r := big.NewRat(units, int64(denom))
		f.Num = r.Num().Uint64()
		f.Den = r.Denom().Uint64()
	}
	return f, nil
}

// String renders the canonical form: "1 3/8", "31/32", "0", "-2 1/4".
// The sign prefix is omitted when the value rounded to zero.
func (f FractionRepr) String() string {
	sign := ""
	if f.Neg && (f.Whole != 0 || f.Num != 0) {
		sign = "-"
	}
	if f.Num == 0 {
		return sign + strconv.FormatUint(f.Whole, 10)
	}
	frac := strconv.FormatUint(f.Num, 10) + "/" + strconv.FormatUint(f.Den, 10)
	if f.Whole == 0 {
		return sign + frac
	}
	return sign + strconv.FormatUint(f.Whole, 10) + " " + frac
}

// FormatInchFraction renders a decimal inch value as a human-friendly
// fraction at the given denominator resolution.
func FormatInchFraction(inches float64, denom int) (string, error) {
	f, err := InchFraction(inches, denom)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}
