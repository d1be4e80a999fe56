package length

import (
	"math/big"
	"regexp"
	"strings"
)

var (
	plainNumberRe  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	pureFractionRe = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)$`)
	mixedNumberRe  = regexp.MustCompile(`^(\d+) (\d+)\s*/\s*(\d+)$`)
)

// ParseInchNumber parses a single inch-number literal with no
// arithmetic: a plain decimal ("1.375"), a pure fraction ("7/16"), or
// a mixed number ("1 3/8", with "2-1/4" treated as "2 1/4"). The
// result is exact.
func ParseInchNumber(s string) (*big.Rat, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, "-", " ") // allow 2-1/4 style
	s = spaceRe.ReplaceAllString(s, " ")

	if plainNumberRe.MatchString(s) {
		r := new(big.Rat)
		if _, ok := r.SetString(s); !ok {
			return nil, &NumberFormatError{Text: s}
		}
		return r, nil
	}

	if m := pureFractionRe.FindStringSubmatch(s); m != nil {
		return fractionRat(m[1], m[2])
	}

	if m := mixedNumberRe.FindStringSubmatch(s); m != nil {
		whole := new(big.Rat)
		if _, ok := whole.SetString(m[1]); !ok {
			return nil, &NumberFormatError{Text: s}
		}
		frac, err := fractionRat(m[2], m[3])
		if err != nil {
			return nil, err
		}
		return whole.Add(whole, frac), nil
	}

	return nil, &NumberFormatError{Text: s}
}

// fractionRat builds num/denom from digit strings. A zero denominator
// is a division-by-zero error, the same policy as the expression path.
func fractionRat(num, denom string) (*big.Rat, error) {
	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, &NumberFormatError{Text: num + "/" + denom}
	}
	d, ok := new(big.Int).SetString(denom, 10)
	if !ok {
		return nil, &NumberFormatError{Text: num + "/" + denom}
	}
	if d.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}
	return new(big.Rat).SetFrac(n, d), nil
}
