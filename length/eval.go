package length

import "math/big"

// Eval evaluates an AST node to an exact rational.
func Eval(node Node) (*big.Rat, error) {
	if node == nil {
		return nil, &SyntaxError{Msg: "empty expression"}
	}

	switch n := node.(type) {
	case *NumberLit:
		return new(big.Rat).Set(n.Value), nil

	case *UnaryExpr:
		operand, err := Eval(n.Operand)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case TOKEN_MINUS:
			return operand.Neg(operand), nil
		case TOKEN_PLUS:
			return operand, nil
		default:
			return nil, &SyntaxError{Msg: "unknown unary operator"}
		}

	case *BinaryExpr:
		left, err := Eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case TOKEN_PLUS:
			return left.Add(left, right), nil
		case TOKEN_MINUS:
			return left.Sub(left, right), nil
		case TOKEN_STAR:
			return left.Mul(left, right), nil
		case TOKEN_SLASH:
			if right.Sign() == 0 {
				return nil, &DivisionByZeroError{}
			}
			return left.Quo(left, right), nil
		default:
			return nil, &SyntaxError{Msg: "unknown operator"}
		}

	default:
		return nil, &SyntaxError{Msg: "unknown node type"}
	}
}

// evalExpression runs the whole chain on a rewritten expression:
// whitelist-checking lexer, parser, exact evaluation.
func evalExpression(expr string) (*big.Rat, error) {
	tokens, err := Lex(expr)
	if err != nil {
		return nil, err
	}
	node, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return Eval(node)
}
