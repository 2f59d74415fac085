package lexer

import (
	"polymath/internal/token"
)

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// scanNumber recognizes digits with an optional '.' and fraction digits
// ("1." is a number). A number never starts with '.': ".5" is Symbol(".")
// followed by Number("5").
func (lx *Lexer) scanNumber() (token.Token, bool) {
	if !isDec(lx.cursor.Peek()) {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.eatDigits()
	if lx.cursor.Eat('.') {
		lx.eatDigits()
	}
	return lx.emit(token.Number, start), true
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
