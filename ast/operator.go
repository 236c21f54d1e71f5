package ast

import (
	"errors"
	"fmt"

	"go.creack.net/calc/lexer"
)

var ErrInvalidOperator = errors.New("invalid operator")

// Operator is the closed set of operators that may appear in a tree.
type Operator int

const (
	opInvalid Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

var tokenOperators = map[lexer.TokenType]Operator{
	lexer.TokPlus:    OpAdd,
	lexer.TokMinus:   OpSub,
	lexer.TokTimes:   OpMul,
	lexer.TokDivides: OpDiv,
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Valid reports whether op is one of the known operators.
func (op Operator) Valid() bool {
	_, ok := operatorSymbols[op]
	return ok
}

// OperatorFor maps an operator token to its Operator.
func OperatorFor(tt lexer.TokenType) (Operator, bool) {
	op, ok := tokenOperators[tt]
	return op, ok
}
