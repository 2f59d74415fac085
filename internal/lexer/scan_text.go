package lexer

import (
	"strings"

	"polymath/internal/token"
)

// scanText recognizes "..." with the span excluding both quotes. Without a
// closing quote nothing is consumed and the quote falls through to Symbol.
func (lx *Lexer) scanText() (token.Token, bool) {
	if lx.cursor.Peek() != '"' {
		return token.Token{}, false
	}
	rest := lx.cursor.Rest()
	// Byte offsets throughout: mixing char and byte indices misplaces the
	// closing quote after multibyte text.
	closing := strings.IndexByte(rest[1:], '"')
	if closing < 0 {
		return token.Token{}, false
	}
	lx.cursor.Bump() // открывающая кавычка
	start := lx.cursor.Mark()
	lx.cursor.BumpN(closing)
	tok := lx.emit(token.Text, start)
	lx.cursor.Bump() // закрывающая кавычка
	return tok, true
}
