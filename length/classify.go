package length

import (
	"regexp"
	"strings"
)

// Class identifies which grammar a normalized input matches.
type Class int

const (
	ClassUnrecognized Class = iota
	ClassMetric
	ClassInchLiteral
	ClassInchExpr
	ClassBareExpr
)

// classified is the outcome of classification: the class, the number
// or expression text with any unit marker stripped, and the metric
// unit when the class is ClassMetric.
type classified struct {
	class Class
	value string
	unit  *Unit
}

var (
	// Smart prime and curly-quote glyphs are synonyms for the inch marker.
	quoteReplacer = strings.NewReplacer("″", `"`, "”", `"`, "“", `"`)
	spaceRe       = regexp.MustCompile(`\s+`)

	metricRe = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*(mm|cm|m)$`)
	inchRe   = regexp.MustCompile(`^(.+?)\s*(in|"|inch|inches)$`)

	operatorRe    = regexp.MustCompile(`[+\-*/()]`)
	fractionRe    = regexp.MustCompile(`\d+\s*/\s*\d+`)
	spacedMixedRe = regexp.MustCompile(`\d+\s+\d+\s*/\s*\d+`)
	hyphenMixedRe = regexp.MustCompile(`\d+-\d+\s*/\s*\d+`)

	// Mixed numbers only rewrite where the whole part starts the text or
	// follows whitespace or '(' -- "7/16-1/4" stays a subtraction.
	rewriteHyphenRe = regexp.MustCompile(`(^|[\s(])(\d+)-(\d+)\s*/\s*(\d+)`)
	rewriteSpacedRe = regexp.MustCompile(`(^|[\s(])(\d+) (\d+)\s*/\s*(\d+)`)
)

// normalize trims the input, maps smart quote glyphs to the straight
// inch marker, collapses whitespace runs, and lowercases.
func normalize(text string) string {
	s := strings.TrimSpace(text)
	s = strings.ToLower(s)
	s = quoteReplacer.Replace(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// classify decides which of the accepted shapes the normalized text
// has, trying metric first, then a trailing inch marker, then a bare
// expression. A bare unit-less number stays unrecognized: guessing a
// unit in a workshop context is unacceptable.
func classify(s string) classified {
	if m := metricRe.FindStringSubmatch(s); m != nil {
		return classified{class: ClassMetric, value: m[1], unit: LookupUnit(m[2])}
	}

	if m := inchRe.FindStringSubmatch(s); m != nil {
		number := strings.TrimSpace(m[1])
		if number != "" {
			if isExpression(number) {
				return classified{class: ClassInchExpr, value: number}
			}
			return classified{class: ClassInchLiteral, value: number}
		}
	}

	if isExpression(s) {
		return classified{class: ClassBareExpr, value: s}
	}

	return classified{class: ClassUnrecognized, value: s}
}

// isExpression reports whether the text looks like arithmetic rather
// than a single plain number: an operator character, a fraction, or a
// mixed number in either spelling.
func isExpression(s string) bool {
	return operatorRe.MatchString(s) ||
		fractionRe.MatchString(s) ||
		spacedMixedRe.MatchString(s) ||
		hyphenMixedRe.MatchString(s)
}

// rewriteMixedNumbers rewrites mixed numbers into parenthesized sums:
// "2-1/4" and "2 1/4" both become "(2 + 1/4)". The hyphenated rule
// runs first; otherwise the spaced rule would split an
// already-rewritten hyphenated form.
func rewriteMixedNumbers(expr string) string {
	expr = rewriteHyphenRe.ReplaceAllString(expr, "${1}(${2} + ${3}/${4})")
	expr = rewriteSpacedRe.ReplaceAllString(expr, "${1}(${2} + ${3}/${4})")
	return expr
}
