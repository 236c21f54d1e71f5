package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type bindingPower int

const (
	bpLowest bindingPower = iota
	bpSum
	bpProduct
	bpPrefix
)

type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

// bindingPower returns the precedence of an infix token. Anything that is
// not an infix operator, end of input included, binds at bpLowest.
func (p *parser) bindingPower(kind lexer.TokenType) bindingPower {
	return p.bindingPowerLookupTable[kind]
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpSum, parseBinaryExpr)
	p.led(lexer.TokMinus, bpSum, parseBinaryExpr)
	p.led(lexer.TokTimes, bpProduct, parseBinaryExpr)
	p.led(lexer.TokDivides, bpProduct, parseBinaryExpr)

	// Literals, grouping & unary minus.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokMinus, parsePrefixExpr)
}
