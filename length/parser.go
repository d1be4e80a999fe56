package length

import (
	"math/big"
	"strconv"
)

// Parser holds the state for parsing a token stream.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse parses a token slice into an AST node.
func Parse(tokens []Token) (Node, error) {
	p := &Parser{tokens: tokens, pos: 0}

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// Make sure we consumed everything (except EOF)
	if p.peek().Type != TOKEN_EOF {
		return nil, &SyntaxError{Msg: "unexpected token " + strconv.Quote(p.peek().Literal)}
	}

	return node, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TOKEN_EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// parseExpression: term ( ("+" | "-") term )*
func (p *Parser) parseExpression() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_PLUS || p.peek().Type == TOKEN_MINUS {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op.Type, Left: left, Right: right}
	}

	return left, nil
}

// parseTerm: unary ( ("*" | "/") unary )*
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_STAR || p.peek().Type == TOKEN_SLASH {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op.Type, Left: left, Right: right}
	}

	return left, nil
}

// parseUnary: ("+" | "-") unary | primary
func (p *Parser) parseUnary() (Node, error) {
	if p.peek().Type == TOKEN_MINUS || p.peek().Type == TOKEN_PLUS {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op.Type, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary: number | "(" expression ")"
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.peek()

	switch tok.Type {
	case TOKEN_NUMBER:
		p.advance()
		// Build the rational from the literal text so decimals stay exact.
		r := new(big.Rat)
		if _, ok := r.SetString(tok.Literal); !ok {
			return nil, &SyntaxError{Msg: "invalid number " + strconv.Quote(tok.Literal)}
		}
		return &NumberLit{Value: r}, nil

	case TOKEN_LPAREN:
		p.advance() // consume '('
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TOKEN_RPAREN {
			return nil, &SyntaxError{Msg: "expected ')'"}
		}
		p.advance() // consume ')'
		return expr, nil

	case TOKEN_EOF:
		return nil, &SyntaxError{Msg: "unexpected end of expression"}

	default:
		return nil, &SyntaxError{Msg: "unexpected token " + strconv.Quote(tok.Literal)}
	}
}
