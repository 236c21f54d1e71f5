package parser

import "go.creack.net/calc/lexer"

// TokenSource yields tokens one at a time. Once exhausted it must keep
// returning lexer.TokEOF. Err reports the cause of a lexer.TokError.
type TokenSource interface {
	NextToken() lexer.Token
	Err() error
}

// cursor holds the current token and one token of lookahead, both pulled
// eagerly from the source. The end of the stream is the lexer.TokEOF token.
type cursor struct {
	src TokenSource

	cur  lexer.Token
	next lexer.Token

	errTok *lexer.Token // First TokError pulled from src.
}

func newCursor(src TokenSource) *cursor {
	c := &cursor{src: src}
	c.cur = c.pull()
	c.next = c.pull()
	return c
}

func (c *cursor) pull() lexer.Token {
	tok := c.src.NextToken()
	if tok.Type == lexer.TokError && c.errTok == nil {
		c.errTok = &tok
	}
	return tok
}

// current returns the token being parsed.
func (c *cursor) current() lexer.Token { return c.cur }

// peek returns the lookahead token.
func (c *cursor) peek() lexer.Token { return c.next }

// advance shifts the lookahead into the current slot and pulls a fresh
// lookahead.
func (c *cursor) advance() lexer.Token {
	c.cur = c.next
	c.next = c.pull()
	return c.cur
}

// lexErr returns the lexical error seen so far, if any.
func (c *cursor) lexErr() error {
	if c.errTok == nil {
		return nil
	}
	if err := c.src.Err(); err != nil {
		return err
	}
	return &Error{Offset: c.errTok.Pos(), Token: *c.errTok, Err: ErrUnexpectedToken}
}
