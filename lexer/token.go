package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokMinus
	TokTimes
	TokDivides

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:    "PLUS",
	TokMinus:   "MINUS",
	TokTimes:   "TIMES",
	TokDivides: "DIVIDES",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value string
	Num   uint64 // Only set for TokNumber.

	pos int // Byte offset of the first character.
}

// Pos returns the byte offset of the token in the input.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
	case TokNumber:
		return fmt.Sprintf("%s[%d]: %d", t.Type, t.pos, t.Num)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}
