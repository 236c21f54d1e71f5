package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// parseExpr parses the current token with its prefix rule, then keeps
// folding infix operators that bind strictly tighter than minBP. Equal
// binding powers stop the loop, so same-tier operators associate left.
func parseExpr(p *parser, minBP bindingPower) (ast.Expr, error) {
	nudFn, exists := p.nudLookupTable[p.tokens.current().Type]
	if !exists {
		return nil, p.unexpected(p.tokens.current())
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	for p.tokens.peek().Type != lexer.TokEOF && p.bindingPower(p.tokens.peek().Type) > minBP {
		p.tokens.advance()
		ledFn, exists := p.ledLookupTable[p.tokens.current().Type]
		if !exists {
			return left, nil
		}
		if left, err = ledFn(p, left); err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.tokens.current()
	if tok.Type != lexer.TokNumber {
		return nil, p.unexpected(tok)
	}
	return &ast.NumberExpr{Value: tok.Num}, nil
}

func parsePrefixExpr(p *parser) (ast.Expr, error) {
	op, ok := ast.OperatorFor(p.tokens.current().Type)
	if !ok {
		return nil, p.unexpected(p.tokens.current())
	}
	p.tokens.advance()

	right, err := parseExpr(p, bpPrefix)
	if err != nil {
		return nil, err
	}
	node, err := ast.NewPrefixExpr(op, right)
	if err != nil {
		return nil, p.errorAt(p.tokens.current(), err)
	}
	return node, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	p.tokens.advance() // Consume the '('.

	inner, err := parseExpr(p, bpLowest)
	if err != nil {
		return nil, err
	}

	if p.tokens.peek().Type != lexer.TokParenRight {
		return nil, p.errorAt(p.tokens.peek(), ErrMissingRParen)
	}
	p.tokens.advance() // Consume the ')'.

	return inner, nil
}

func parseBinaryExpr(p *parser, left ast.Expr) (ast.Expr, error) {
	tok := p.tokens.current()
	op, ok := ast.OperatorFor(tok.Type)
	if !ok {
		return nil, p.unexpected(tok)
	}
	bp := p.bindingPower(tok.Type)
	p.tokens.advance()

	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	node, err := ast.NewInfixExpr(left, op, right)
	if err != nil {
		return nil, p.errorAt(tok, err)
	}
	return node, nil
}
