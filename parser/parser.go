// Package parser builds expression trees from a token stream using
// precedence climbing.
package parser

import (
	"errors"
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMissingRParen   = errors.New("missing closing parenthesis")
	ErrTrailingTokens  = errors.New("unexpected trailing tokens")
)

// Error is a syntax error. Err is one of the package sentinel errors.
type Error struct {
	Offset int
	Token  lexer.Token
	Err    error
}

func (e *Error) Error() string {
	if e.Token.Type == lexer.TokEOF {
		return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%s near %q at offset %d", e.Err, e.Token.Value, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }

type parser struct {
	tokens *cursor

	allowTrailing bool

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

type Parser interface {
	// Parse consumes the token stream and returns the root of the tree.
	Parse() (ast.Expr, error)
}

// Option configures a Parser.
type Option func(*parser)

// WithTrailingTokens makes the parser ignore whatever follows a complete
// top-level expression instead of reporting ErrTrailingTokens.
func WithTrailingTokens() Option {
	return func(p *parser) {
		p.allowTrailing = true
	}
}

func newParser(src TokenSource, opts ...Option) *parser {
	p := &parser{
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.createTokenLookups()
	p.tokens = newCursor(src)
	return p
}

// New creates a Parser reading from src.
func New(src TokenSource, opts ...Option) Parser {
	return newParser(src, opts...)
}

// Parse parses input with a fresh lexer.
func Parse(input string, opts ...Option) (ast.Expr, error) {
	return New(lexer.New(input), opts...).Parse()
}

func (p *parser) Parse() (ast.Expr, error) {
	if p.tokens.current().Type == lexer.TokEOF {
		return nil, p.errorAt(p.tokens.current(), ErrEmptyInput)
	}

	expr, err := parseExpr(p, bpLowest)
	// A lexical error anywhere up to the failure point takes precedence.
	if lexErr := p.tokens.lexErr(); lexErr != nil {
		return nil, lexErr
	}
	if err != nil {
		return nil, err
	}

	if !p.allowTrailing && p.tokens.peek().Type != lexer.TokEOF {
		return nil, p.errorAt(p.tokens.peek(), ErrTrailingTokens)
	}

	return expr, nil
}

func (p *parser) errorAt(tok lexer.Token, err error) error {
	return &Error{
		Offset: tok.Pos(),
		Token:  tok,
		Err:    err,
	}
}

// unexpected reports a token no rule applies to.
func (p *parser) unexpected(tok lexer.Token) error {
	if tok.Type == lexer.TokEOF {
		return p.errorAt(tok, ErrUnexpectedEOF)
	}
	return p.errorAt(tok, ErrUnexpectedToken)
}
