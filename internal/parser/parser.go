package parser

import (
	"polymath/internal/cst"
	"polymath/internal/source"
	"polymath/internal/token"
)

// Parser — состояние парсера на одну формулу
type Parser struct {
	toks    []token.Token
	closers []int
	pos     int // следующий непрочитанный токен
	end     int // exclusive bound of the current window (group body or whole input)
}

// Parse builds the concrete syntax tree for toks. Empty input gives cst.Unit.
func Parse(toks []token.Token) cst.Expression {
	if len(toks) == 0 {
		return cst.Unit{}
	}
	p := Parser{
		toks:    toks,
		closers: matchBrackets(toks),
		end:     len(toks),
	}
	return p.parseExpression()
}

func (p *Parser) eos() bool {
	return p.pos >= p.end
}

func (p *Parser) peek() (token.Token, bool) {
	if p.eos() {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

// eat consumes the next token if it has kind k.
func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if tok, ok := p.peek(); ok && tok.Kind == k {
		p.pos++
		return tok, true
	}
	return token.Token{}, false
}

// parseExpression: E ::= I / E | I E | ε.
// A '/' binds the next intermediate to everything after it; lowering
// narrows the denominator back to one element.
func (p *Parser) parseExpression() cst.Expression {
	head := p.parseIntermediate()
	if bar, ok := p.eat(token.Division); ok {
		return &cst.Frac{Num: head, Bar: bar, Den: p.parseExpression()}
	}
	if p.eos() {
		return &cst.Seq{Head: head, Tail: cst.Unit{}}
	}
	return &cst.Seq{Head: head, Tail: p.parseExpression()}
}

// parseIntermediate: I ::= S _ S ^ S | S _ S | S ^ S | S.
func (p *Parser) parseIntermediate() cst.Intermediate {
	base := p.parseSimple()
	if subOp, ok := p.eat(token.Underscore); ok {
		sub := p.parseSimple()
		if supOp, ok := p.eat(token.Hat); ok {
			return &cst.SubSup{Base: base, SubOp: subOp, Sub: sub, SupOp: supOp, Sup: p.parseSimple()}
		}
		return &cst.Sub{Base: base, Op: subOp, Sub: sub}
	}
	if op, ok := p.eat(token.Hat); ok {
		return &cst.Sup{Base: base, Op: op, Sup: p.parseSimple()}
	}
	return base
}

// parseSimple: S ::= l E r | u S | b S S | v.
func (p *Parser) parseSimple() cst.Simple {
	if g, ok := p.parseGroup(); ok {
		return g
	}
	tok, ok := p.peek()
	if !ok {
		return &cst.Symbol{Tok: p.missing()}
	}
	p.pos++
	switch {
	case tok.Kind.IsUnary():
		return &cst.Unary{Op: tok, Arg: p.parseSimple()}
	case tok.Kind.IsBinary():
		left := p.parseSimple()
		right := p.parseSimple()
		return &cst.Binary{Op: tok, Left: left, Right: right}
	default:
		return &cst.Symbol{Tok: tok}
	}
}

// parseGroup parses "l E r" when the current token opens a group that is
// balanced inside the current window.
func (p *Parser) parseGroup() (*cst.Group, bool) {
	tok, ok := p.peek()
	if !ok || !tok.IsLeftBracket() {
		return nil, false
	}
	closer := p.closers[p.pos]
	if closer < 0 || closer >= p.end {
		return nil, false
	}

	open := p.advance()
	outer := p.end
	p.end = closer
	body := p.parseExpression()
	p.end = outer
	p.pos = closer

	return &cst.Group{Open: open, Body: body, Close: p.advance()}, true
}

// missing synthesizes the None operand: an empty span right after the last
// consumed token.
func (p *Parser) missing() token.Token {
	var off uint32
	if p.pos > 0 {
		off = p.toks[p.pos-1].Span.End
	}
	return token.Token{Kind: token.None, Span: source.Span{Start: off, End: off}}
}
