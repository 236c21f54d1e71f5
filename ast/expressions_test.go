package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func TestDump(t *testing.T) {
	one := &ast.NumberExpr{Value: 1}
	three := &ast.NumberExpr{Value: 3}

	quotient, err := ast.NewInfixExpr(three, ast.OpDiv, three)
	require.NoError(t, err)
	neg, err := ast.NewPrefixExpr(ast.OpSub, quotient)
	require.NoError(t, err)
	sum, err := ast.NewInfixExpr(one, ast.OpAdd, neg)
	require.NoError(t, err)

	assert.Equal(t, "1", one.Dump())
	assert.Equal(t, "(3 / 3)", quotient.Dump())
	assert.Equal(t, "(-(3 / 3))", neg.Dump())
	assert.Equal(t, "(1 + (-(3 / 3)))", sum.Dump())
}

func TestConstructorsRejectInvalidOperators(t *testing.T) {
	one := &ast.NumberExpr{Value: 1}

	for _, op := range []ast.Operator{ast.OpAdd, ast.OpMul, ast.OpDiv, ast.Operator(0), ast.Operator(42)} {
		_, err := ast.NewPrefixExpr(op, one)
		assert.ErrorIs(t, err, ast.ErrInvalidOperator, "prefix %s", op)
	}

	for _, op := range []ast.Operator{ast.Operator(0), ast.Operator(-1), ast.Operator(42)} {
		_, err := ast.NewInfixExpr(one, op, one)
		assert.ErrorIs(t, err, ast.ErrInvalidOperator, "infix %s", op)
	}

	_, err := ast.NewInfixExpr(nil, ast.OpAdd, one)
	assert.Error(t, err)
	_, err = ast.NewPrefixExpr(ast.OpSub, nil)
	assert.Error(t, err)
}

func TestOperatorFor(t *testing.T) {
	type testCase struct {
		tok lexer.TokenType
		op  ast.Operator
		ok  bool
	}
	tests := []testCase{
		{tok: lexer.TokPlus, op: ast.OpAdd, ok: true},
		{tok: lexer.TokMinus, op: ast.OpSub, ok: true},
		{tok: lexer.TokTimes, op: ast.OpMul, ok: true},
		{tok: lexer.TokDivides, op: ast.OpDiv, ok: true},
		{tok: lexer.TokNumber},
		{tok: lexer.TokParenLeft},
		{tok: lexer.TokParenRight},
		{tok: lexer.TokEOF},
	}
	for _, tc := range tests {
		op, ok := ast.OperatorFor(tc.tok)
		assert.Equal(t, tc.ok, ok, tc.tok.String())
		if tc.ok {
			assert.Equal(t, tc.op, op, tc.tok.String())
			assert.True(t, op.Valid())
		}
	}
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "+", ast.OpAdd.String())
	assert.Equal(t, "-", ast.OpSub.String())
	assert.Equal(t, "*", ast.OpMul.String())
	assert.Equal(t, "/", ast.OpDiv.String())
	assert.Equal(t, "Operator(9)", ast.Operator(9).String())
}
