package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/lexer"
)

func TestCursor(t *testing.T) {
	c := newCursor(lexer.New("1 + (2)"))

	assert.Equal(t, lexer.TokNumber, c.current().Type)
	assert.Equal(t, lexer.TokPlus, c.peek().Type)

	want := []lexer.TokenType{
		lexer.TokPlus,
		lexer.TokParenLeft,
		lexer.TokNumber,
		lexer.TokParenRight,
		lexer.TokEOF,
		lexer.TokEOF, // Sticky end of stream.
	}
	for i, tt := range want {
		tok := c.advance()
		assert.Equal(t, tt, tok.Type, "advance %d", i)
		assert.Equal(t, tok, c.current(), "advance %d", i)
	}
	assert.Equal(t, lexer.TokEOF, c.peek().Type)
	assert.NoError(t, c.lexErr())
}

func TestCursorLexError(t *testing.T) {
	c := newCursor(lexer.New("1 ?"))

	assert.Equal(t, lexer.TokNumber, c.current().Type)
	assert.Equal(t, lexer.TokError, c.peek().Type)

	err := c.lexErr()
	require.Error(t, err)
	var lexErr *lexer.Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '?', lexErr.Char())
	assert.Equal(t, 2, lexErr.Offset)

	// The error stays visible once the token moved out of the window.
	c.advance()
	c.advance()
	assert.Error(t, c.lexErr())
}

func TestBindingPowers(t *testing.T) {
	p := newParser(lexer.New(""))

	assert.Equal(t, bpSum, p.bindingPower(lexer.TokPlus))
	assert.Equal(t, bpSum, p.bindingPower(lexer.TokMinus))
	assert.Equal(t, bpProduct, p.bindingPower(lexer.TokTimes))
	assert.Equal(t, bpProduct, p.bindingPower(lexer.TokDivides))
	for _, tt := range []lexer.TokenType{lexer.TokNumber, lexer.TokParenLeft, lexer.TokParenRight, lexer.TokEOF, lexer.TokError} {
		assert.Equal(t, bpLowest, p.bindingPower(tt), tt.String())
	}
	assert.True(t, bpLowest < bpSum && bpSum < bpProduct && bpProduct < bpPrefix)
}

func TestDuplicateHandlerPanics(t *testing.T) {
	p := newParser(lexer.New(""))
	assert.Panics(t, func() { p.led(lexer.TokPlus, bpSum, parseBinaryExpr) })
	assert.Panics(t, func() { p.nud(lexer.TokNumber, parsePrimaryExpr) })
}
