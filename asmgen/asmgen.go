// Package asmgen emits x86-64 accumulator assembly straight from a token
// stream. It understands a first number followed by any run of "+ n" or
// "- n" pairs; there is no precedence and no grouping.
package asmgen

import (
	"errors"
	"fmt"
	"strings"

	"go.creack.net/calc/lexer"
)

var (
	ErrExpectedNumber  = errors.New("expected number")
	ErrUnexpectedToken = errors.New("unexpected operator")
)

// TokenSource yields tokens one at a time, see lexer.Lexer.
type TokenSource interface {
	NextToken() lexer.Token
	Err() error
}

var mnemonics = map[lexer.TokenType]string{
	lexer.TokPlus:  "add",
	lexer.TokMinus: "sub",
}

// CodeGen accumulates assembly source text.
type CodeGen struct {
	src TokenSource
	out strings.Builder
}

func newCodeGen(src TokenSource) *CodeGen {
	return &CodeGen{src: src}
}

func (cg *CodeGen) line(format string, args ...any) {
	fmt.Fprintf(&cg.out, format, args...)
	cg.out.WriteByte('\n')
}

func (cg *CodeGen) instr(format string, args ...any) {
	cg.line("   "+format, args...)
}

// next returns the next token, turning a lexical failure into an error.
func (cg *CodeGen) next() (lexer.Token, error) {
	tok := cg.src.NextToken()
	if tok.Type == lexer.TokError {
		if err := cg.src.Err(); err != nil {
			return tok, err
		}
		return tok, fmt.Errorf("offset %d: %s", tok.Pos(), tok.Value)
	}
	return tok, nil
}

func (cg *CodeGen) expectNumber() (uint64, error) {
	tok, err := cg.next()
	if err != nil {
		return 0, err
	}
	if tok.Type != lexer.TokNumber {
		return 0, fmt.Errorf("offset %d: %w, got %s", tok.Pos(), ErrExpectedNumber, tok.Type)
	}
	return tok.Num, nil
}

func (cg *CodeGen) generate() (string, error) {
	cg.line(".intel_syntax noprefix")
	cg.line(".global main")
	cg.line("main:")

	first, err := cg.expectNumber()
	if err != nil {
		return "", err
	}
	cg.instr("mov rax, %d", first)

	for {
		tok, err := cg.next()
		if err != nil {
			return "", err
		}
		if tok.Type == lexer.TokEOF {
			break
		}
		if !tok.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
			return "", fmt.Errorf("offset %d: %w %s", tok.Pos(), ErrUnexpectedToken, tok.Type)
		}
		n, err := cg.expectNumber()
		if err != nil {
			return "", err
		}
		cg.instr("%s rax, %d", mnemonics[tok.Type], n)
	}

	cg.instr("ret")
	return cg.out.String(), nil
}

// GenerateTokens emits the program for the tokens read from src.
func GenerateTokens(src TokenSource) (string, error) {
	return newCodeGen(src).generate()
}

// Generate lexes input and emits the program.
func Generate(input string) (string, error) {
	return GenerateTokens(lexer.New(input))
}
