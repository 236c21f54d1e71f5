// Package lexer provides a lazy lexical analyzer for integer arithmetic expressions.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const eof = -1

const digits = "0123456789"

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrNumberRange    = errors.New("number out of range")
)

// Error is a lexical failure: some input text matches no token rule.
type Error struct {
	Offset int    // Byte offset of Text in the input.
	Text   string // Offending character or literal.
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at offset %d", e.Err, e.Text, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }

// Char returns the offending character.
func (e *Error) Char() rune {
	r, _ := utf8.DecodeRuneInString(e.Text)
	return r
}

// Lexer produces tokens one at a time. It never backtracks past a token it
// already emitted and keeps no token buffer; use a fresh Lexer per input.
type Lexer struct {
	input string

	curToken Token

	pos   int // Current position in input.
	start int // Position of the start of the current token.
	width int // Width of the last rune read.

	err *Error
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
	}
}

// NextToken returns the next token. Once the input is exhausted, or after a
// TokError, it keeps returning TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "", pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the lexical error that produced a TokError token, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) acceptRunFunc(valid func(rune) bool) {
	for r := l.next(); r != eof && valid(r); r = l.next() {
	}
	l.backup()
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// fail records err for the text starting at the current token start, emits
// a TokError and drains the rest of the input.
func (l *Lexer) fail(err error, text string) stateFn {
	l.err = &Error{
		Offset: l.start,
		Text:   text,
		Err:    err,
	}
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		pos:   l.start,
	}
	l.pos = len(l.input)
	l.start = l.pos
	return nil
}

// panicIf panics with message when cond holds. Only for states the state
// machine cannot reach from any input.
func panicIf(cond bool, message string) {
	if cond {
		panic(message)
	}
}
