package lexer

import (
	"polymath/internal/token"
)

// Lexer splits AsciiMath input into tokens. It never fails: anything no
// rule recognizes becomes a one-rune Symbol.
type Lexer struct {
	src    string
	cursor Cursor
	look   *token.Token // 1 элементный буфер для токена
}

func New(src string) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
	}
}

// Next returns the next token. ok is false once the input is exhausted.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.look != nil {
		tok = *lx.look
		lx.look = nil
		return tok, true
	}

	lx.skipSpaces()
	if lx.cursor.EOF() {
		return token.Token{}, false
	}

	switch ch := lx.cursor.Peek(); {
	case ch == '/':
		return lx.single(token.Division), true
	case ch == '_':
		return lx.single(token.Underscore), true
	case ch == '^':
		return lx.single(token.Hat), true
	}

	if tok, ok := lx.scanNumber(); ok {
		return tok, true
	}
	if tok, ok := lx.scanText(); ok {
		return tok, true
	}
	if tok, ok := lx.scanTables(); ok {
		return tok, true
	}
	return lx.scanSymbol(), true
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() (token.Token, bool) {
	t, ok := lx.Next()
	if ok {
		lx.look = &t
	}
	return t, ok
}

// Tokenize returns every token of src in order.
func Tokenize(src string) []token.Token {
	lx := New(src)
	toks := make([]token.Token, 0, len(src)/2+1)
	for {
		tok, ok := lx.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// skipSpaces drops ASCII spaces only; tabs and newlines are Symbols.
func (lx *Lexer) skipSpaces() {
	for lx.cursor.Eat(' ') {
	}
}

func (lx *Lexer) single(k token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(k, start)
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: sp.Slice(lx.src)}
}

func (lx *Lexer) scanTables() (token.Token, bool) {
	for _, t := range tables {
		p, ok := t.match(&lx.cursor)
		if !ok {
			continue
		}
		start := lx.cursor.Mark()
		lx.cursor.BumpN(len(p.text))
		return lx.emit(p.kind, start), true
	}
	return token.Token{}, false
}

func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpRune()
	return lx.emit(token.Symbol, start)
}
