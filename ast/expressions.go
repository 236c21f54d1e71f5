package ast

import (
	"fmt"
	"strconv"
)

// Expr is a node of an arithmetic expression tree. Nodes are never shared
// nor mutated once built.
type Expr interface {
	Dump() string
	expr()
}

type NumberExpr struct {
	Value uint64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string { return strconv.FormatUint(n.Value, 10) }

// PrefixExpr is a unary operation. Only OpSub is legal.
type PrefixExpr struct {
	Operator Operator
	Right    Expr
}

func (PrefixExpr) expr() {}

func (p PrefixExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", p.Operator, p.Right.Dump())
}

type InfixExpr struct {
	Left     Expr
	Operator Operator
	Right    Expr
}

func (InfixExpr) expr() {}

func (i InfixExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", i.Left.Dump(), i.Operator, i.Right.Dump())
}

// NewPrefixExpr builds a unary minus node.
func NewPrefixExpr(op Operator, right Expr) (*PrefixExpr, error) {
	if op != OpSub {
		return nil, fmt.Errorf("prefix %s: %w", op, ErrInvalidOperator)
	}
	if right == nil {
		return nil, fmt.Errorf("prefix %s: missing operand", op)
	}
	return &PrefixExpr{Operator: op, Right: right}, nil
}

// NewInfixExpr builds a binary node.
func NewInfixExpr(left Expr, op Operator, right Expr) (*InfixExpr, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("infix %s: %w", op, ErrInvalidOperator)
	}
	if left == nil || right == nil {
		return nil, fmt.Errorf("infix %s: missing operand", op)
	}
	return &InfixExpr{Left: left, Operator: op, Right: right}, nil
}
