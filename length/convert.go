// Package length converts human-typed length specifications -- metric
// literals, decimal/fractional/mixed-number inches, or arithmetic
// expressions over fractional inches -- into millimeters, and renders
// decimal inches back as workshop fractions. All intermediate inch
// arithmetic is exact rational arithmetic.
package length

import "math/big"

// MillimetersPerInch is the fixed inch-to-millimeter factor.
const MillimetersPerInch = 25.4

// DefaultDenominator is the default fraction resolution (1/32 inch).
const DefaultDenominator = 32

// inchToMM is MillimetersPerInch as an exact rational.
var inchToMM = big.NewRat(127, 5)

// Result is the outcome of a conversion. Inches is nil for metric
// input; otherwise it holds the exact inch value.
type Result struct {
	Millimeters float64
	Inches      *big.Rat
}

// DecimalInches returns the inch value as a float64, deriving it from
// the millimeter value for metric input.
func (r Result) DecimalInches() float64 {
	if r.Inches != nil {
		f, _ := r.Inches.Float64()
		return f
	}
	return r.Millimeters / MillimetersPerInch
}

// Converter runs the conversion pipeline. The inch factor and the
// default fraction denominator are fixed at construction.
type Converter struct {
	factor *big.Rat
	denom  int
}

// Option configures a Converter.
type Option func(*Converter)

// Factor sets the inch-to-millimeter factor.
func Factor(r *big.Rat) Option {
	return func(c *Converter) {
		c.factor = new(big.Rat).Set(r)
	}
}

// Denominator sets the default fraction resolution for FormatFraction.
func Denominator(n int) Option {
	return func(c *Converter) {
		c.denom = n
	}
}

// New creates a Converter. With no options it uses the 25.4 mm/inch
// factor and a 1/32 inch fraction resolution.
func New(opts ...Option) *Converter {
	c := &Converter{factor: inchToMM, denom: DefaultDenominator}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert turns a length specification into millimeters. Inch and
// expression input also yields the exact inch value; metric input does
// not. A bare unit-less number is rejected rather than guessed at.
func (c *Converter) Convert(text string) (Result, error) {
	s := normalize(text)
	if s == "" {
		return Result{}, &EmptyInputError{}
	}

	var inches *big.Rat
	cl := classify(s)
	switch cl.class {
	case ClassMetric:
		// The regexp guarantees a plain decimal literal.
		value := new(big.Rat)
		value.SetString(cl.value)
		mm, _ := value.Mul(value, cl.unit.ToMM).Float64()
		return Result{Millimeters: mm}, nil

	case ClassInchLiteral:
		v, err := ParseInchNumber(cl.value)
		if err != nil {
			return Result{}, err
		}
		inches = v

	case ClassInchExpr, ClassBareExpr:
		v, err := evalExpression(rewriteMixedNumbers(cl.value))
		if err != nil {
			return Result{}, err
		}
		inches = v

	default:
		return Result{}, &UnrecognizedError{Input: s}
	}

	mm, _ := new(big.Rat).Mul(inches, c.factor).Float64()
	return Result{Millimeters: mm, Inches: inches}, nil
}

// FormatFraction renders a decimal inch value at the Converter's
// fraction resolution.
func (c *Converter) FormatFraction(inches float64) (string, error) {
	return FormatInchFraction(inches, c.denom)
}

var defaultConverter = New()

// Convert runs the pipeline with the default configuration.
func Convert(text string) (Result, error) {
	return defaultConverter.Convert(text)
}
