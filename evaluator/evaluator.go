// Package evaluator reduces expression trees to a signed integer.
package evaluator

import (
	"errors"
	"fmt"
	"math"

	"github.com/JohnCGriffin/overflow"

	"go.creack.net/calc/ast"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrOverflow        = errors.New("integer overflow")
	ErrInvalidOperator = ast.ErrInvalidOperator
	ErrUnsupportedExpr = errors.New("unsupported expression")
)

// Evaluate computes the value of expr. The left operand is always evaluated
// before the right one. The tree is not modified.
func Evaluate(expr ast.Expr) (int64, error) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		if e == nil {
			return 0, fmt.Errorf("%w: nil %T", ErrUnsupportedExpr, e)
		}
		return evaluateNumber(*e)
	case ast.NumberExpr:
		return evaluateNumber(e)
	case *ast.PrefixExpr:
		if e == nil {
			return 0, fmt.Errorf("%w: nil %T", ErrUnsupportedExpr, e)
		}
		return evaluatePrefix(*e)
	case ast.PrefixExpr:
		return evaluatePrefix(e)
	case *ast.InfixExpr:
		if e == nil {
			return 0, fmt.Errorf("%w: nil %T", ErrUnsupportedExpr, e)
		}
		return evaluateInfix(*e)
	case ast.InfixExpr:
		return evaluateInfix(e)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedExpr, expr)
	}
}

func evaluateNumber(n ast.NumberExpr) (int64, error) {
	if n.Value > math.MaxInt64 {
		return 0, fmt.Errorf("evaluate %s: %w", n.Dump(), ErrOverflow)
	}
	return int64(n.Value), nil
}

func evaluatePrefix(p ast.PrefixExpr) (int64, error) {
	if p.Operator != ast.OpSub {
		return 0, fmt.Errorf("evaluate prefix %s: %w", p.Operator, ErrInvalidOperator)
	}

	// -9223372036854775808 is representable even though its operand is not.
	if n, ok := numberValue(p.Right); ok && n == math.MaxInt64+1 {
		return math.MinInt64, nil
	}

	right, err := Evaluate(p.Right)
	if err != nil {
		return 0, err
	}
	if right == math.MinInt64 {
		return 0, fmt.Errorf("evaluate %s: %w", p.Dump(), ErrOverflow)
	}
	return -right, nil
}

func evaluateInfix(i ast.InfixExpr) (int64, error) {
	if !i.Operator.Valid() {
		return 0, fmt.Errorf("evaluate infix %s: %w", i.Operator, ErrInvalidOperator)
	}

	left, err := Evaluate(i.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(i.Right)
	if err != nil {
		return 0, err
	}

	var (
		value int64
		ok    bool
	)
	switch i.Operator {
	case ast.OpAdd:
		value, ok = overflow.Add64(left, right)
	case ast.OpSub:
		value, ok = overflow.Sub64(left, right)
	case ast.OpMul:
		value, ok = overflow.Mul64(left, right)
	case ast.OpDiv:
		if right == 0 {
			return 0, fmt.Errorf("evaluate %s: %w", i.Dump(), ErrDivisionByZero)
		}
		// Truncates toward zero.
		value, ok = overflow.Div64(left, right)
	}
	if !ok {
		return 0, fmt.Errorf("evaluate %s: %w", i.Dump(), ErrOverflow)
	}
	return value, nil
}

func numberValue(expr ast.Expr) (uint64, bool) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		if e != nil {
			return e.Value, true
		}
	case ast.NumberExpr:
		return e.Value, true
	}
	return 0, false
}
