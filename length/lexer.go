package length

import "unicode/utf8"

// Lex tokenizes a rewritten expression into a slice of tokens.
// Only digits, the four operators, parentheses, a decimal point inside
// a number, and whitespace are permitted; anything else fails with a
// CharError.
func Lex(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(input) {
		ch := input[i]

		// Skip whitespace
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			i++
			continue
		}

		switch ch {
		case '+':
			tokens = append(tokens, Token{Type: TOKEN_PLUS, Literal: "+", Pos: i})
			i++
		case '-':
			tokens = append(tokens, Token{Type: TOKEN_MINUS, Literal: "-", Pos: i})
			i++
		case '*':
			tokens = append(tokens, Token{Type: TOKEN_STAR, Literal: "*", Pos: i})
			i++
		case '/':
			tokens = append(tokens, Token{Type: TOKEN_SLASH, Literal: "/", Pos: i})
			i++
		case '(':
			tokens = append(tokens, Token{Type: TOKEN_LPAREN, Literal: "(", Pos: i})
			i++
		case ')':
			tokens = append(tokens, Token{Type: TOKEN_RPAREN, Literal: ")", Pos: i})
			i++
		case '.':
			// A decimal point is only valid inside a number literal.
			return nil, &SyntaxError{Msg: "unexpected '.'"}
		default:
			if isDigit(ch) {
				start := i
				for i < len(input) && isDigit(input[i]) {
					i++
				}
				if i < len(input) && input[i] == '.' {
					if i+1 >= len(input) || !isDigit(input[i+1]) {
						return nil, &SyntaxError{Msg: "expected digits after decimal point"}
					}
					i++
					for i < len(input) && isDigit(input[i]) {
						i++
					}
				}
				tokens = append(tokens, Token{Type: TOKEN_NUMBER, Literal: input[start:i], Pos: start})
			} else {
				r, _ := utf8.DecodeRuneInString(input[i:])
				return nil, &CharError{Char: r, Pos: i}
			}
		}
	}
	tokens = append(tokens, Token{Type: TOKEN_EOF, Literal: "", Pos: i})
	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
