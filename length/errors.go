package length

import (
	"fmt"
	"strconv"
)

// ConvertError is implemented by every error produced from invalid
// input, so callers can distinguish input problems from programming
// errors.
type ConvertError interface {
	error
	convertError()
}

// EmptyInputError indicates the input was empty after trimming.
type EmptyInputError struct{}

func (*EmptyInputError) Error() string {
	return "empty input"
}

// UnrecognizedError indicates text matching none of the accepted
// shapes. A bare unit-less number is deliberately not guessed at.
type UnrecognizedError struct {
	// Input is the normalized text that could not be classified.
	Input string
}

func (err *UnrecognizedError) Error() string {
	return "unrecognized format " + strconv.Quote(err.Input) +
		`: add a unit like mm/cm/m or in/" (examples: 25mm, 2.5cm, 0.75m, 1", 1 3/8", 7/16in)`
}

// NumberFormatError indicates an inch literal that is not a plain
// decimal, a fraction, or a mixed number.
type NumberFormatError struct {
	// Text is the offending literal.
	Text string
}

func (err *NumberFormatError) Error() string {
	return "invalid inch number: " + strconv.Quote(err.Text)
}

// CharError indicates a character outside the arithmetic whitelist.
type CharError struct {
	// Char is the character that was rejected.
	Char rune
	// Pos is its byte offset in the expression.
	Pos int
}

func (err *CharError) Error() string {
	return fmt.Sprintf("invalid character %q in expression at offset %d", err.Char, err.Pos)
}

// SyntaxError indicates a malformed token or parenthesis structure.
type SyntaxError struct {
	Msg string
}

func (err *SyntaxError) Error() string {
	return "invalid expression: " + err.Msg
}

// DivisionByZeroError indicates a divisor that evaluates to zero.
type DivisionByZeroError struct{}

func (*DivisionByZeroError) Error() string {
	return "division by zero"
}

// DenominatorError indicates a non-positive fraction resolution.
type DenominatorError struct {
	Denom int
}

func (err *DenominatorError) Error() string {
	return fmt.Sprintf("fraction denominator must be positive, got %d", err.Denom)
}

func (*EmptyInputError) convertError()     {}
func (*UnrecognizedError) convertError()   {}
func (*NumberFormatError) convertError()   {}
func (*CharError) convertError()           {}
func (*SyntaxError) convertError()         {}
func (*DivisionByZeroError) convertError() {}
func (*DenominatorError) convertError()    {}

var (
	_ ConvertError = (*EmptyInputError)(nil)
	_ ConvertError = (*UnrecognizedError)(nil)
	_ ConvertError = (*NumberFormatError)(nil)
	_ ConvertError = (*CharError)(nil)
	_ ConvertError = (*SyntaxError)(nil)
	_ ConvertError = (*DivisionByZeroError)(nil)
	_ ConvertError = (*DenominatorError)(nil)
)
