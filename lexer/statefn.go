package lexer

import (
	"strconv"
	"unicode"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokTimes,
	'/': TokDivides,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case unicode.IsSpace(r):
		l.acceptRunFunc(unicode.IsSpace)
		l.ignore()
		return lexText
	case isDigit(r):
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.fail(ErrUnexpectedChar, string(r))
	}
}

// lexNumber consumes the longest run of digits as a single number.
func lexNumber(l *Lexer) stateFn {
	accepted := l.acceptRun(digits)
	panicIf(!accepted, "lexNumber: called without a leading digit")

	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseUint(tok.Value, 10, 64)
	if err != nil {
		l.start = tok.pos
		return l.fail(ErrNumberRange, tok.Value)
	}
	tok.Num = n
	return l.emitToken(tok)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
