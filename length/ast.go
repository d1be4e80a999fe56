package length

import "math/big"

// Node is the interface all AST nodes implement.
type Node interface {
	nodeTag()
}

// NumberLit represents a number literal (integer or decimal).
// The rational is built from the literal text, so decimals like 0.1
// stay exact.
type NumberLit struct {
	Value *big.Rat
}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	Op    TokenType // TOKEN_PLUS, TOKEN_MINUS, TOKEN_STAR, TOKEN_SLASH
	Left  Node
	Right Node
}

// UnaryExpr represents a unary sign operation.
type UnaryExpr struct {
	Op      TokenType // TOKEN_PLUS or TOKEN_MINUS
	Operand Node
}

func (*NumberLit) nodeTag()  {}
func (*BinaryExpr) nodeTag() {}
func (*UnaryExpr) nodeTag()  {}
