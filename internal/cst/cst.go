// Package cst holds the concrete syntax tree produced by the parser.
// It mirrors the AsciiMath grammar one to one:
//
//	E ::= I E | I / E | ε
//	I ::= S _ S | S ^ S | S _ S ^ S | S
//	S ::= v | l E r | u S | b S S
//
// Every Simple is also an Intermediate (the plain "I ::= S" production).
package cst

import (
	"polymath/internal/source"
	"polymath/internal/token"
)

// Expression is one of *Seq, *Frac or Unit.
type Expression interface {
	Span() source.Span
	isExpression()
}

// Intermediate is one of *Sub, *Sup, *SubSup or any Simple.
type Intermediate interface {
	Span() source.Span
	isIntermediate()
}

// Simple is one of *Symbol, *Group, *Unary or *Binary.
type Simple interface {
	Intermediate
	isSimple()
}

// Seq is "I E": an intermediate followed by the rest of the expression.
type Seq struct {
	Head Intermediate
	Tail Expression
}

// Frac is "I / E". The denominator is the whole remaining expression;
// lowering narrows it to the first element.
type Frac struct {
	Num Intermediate
	Bar token.Token
	Den Expression
}

// Unit is the empty expression.
type Unit struct{}

type Sub struct {
	Base Simple
	Op   token.Token
	Sub  Simple
}

type Sup struct {
	Base Simple
	Op   token.Token
	Sup  Simple
}

type SubSup struct {
	Base  Simple
	SubOp token.Token
	Sub   Simple
	SupOp token.Token
	Sup   Simple
}

// Symbol is a single token used as a value. Its token may be of any kind,
// including None for an operand missing at end of input.
type Symbol struct {
	Tok token.Token
}

// Group is a bracketed expression. Open and Close need not be the same
// bracket variant.
type Group struct {
	Open  token.Token
	Body  Expression
	Close token.Token
}

type Unary struct {
	Op  token.Token
	Arg Simple
}

type Binary struct {
	Op    token.Token
	Left  Simple
	Right Simple
}

func (*Seq) isExpression()  {}
func (*Frac) isExpression() {}
func (Unit) isExpression()  {}

func (*Sub) isIntermediate()    {}
func (*Sup) isIntermediate()    {}
func (*SubSup) isIntermediate() {}
func (*Symbol) isIntermediate() {}
func (*Group) isIntermediate()  {}
func (*Unary) isIntermediate()  {}
func (*Binary) isIntermediate() {}

func (*Symbol) isSimple() {}
func (*Group) isSimple()  {}
func (*Unary) isSimple()  {}
func (*Binary) isSimple() {}

func (n *Seq) Span() source.Span {
	if _, ok := n.Tail.(Unit); ok {
		return n.Head.Span()
	}
	return n.Head.Span().Cover(n.Tail.Span())
}

func (n *Frac) Span() source.Span {
	sp := n.Num.Span().Cover(n.Bar.Span)
	if _, ok := n.Den.(Unit); ok {
		return sp
	}
	return sp.Cover(n.Den.Span())
}

func (Unit) Span() source.Span { return source.Span{} }

func (n *Sub) Span() source.Span    { return n.Base.Span().Cover(n.Sub.Span()) }
func (n *Sup) Span() source.Span    { return n.Base.Span().Cover(n.Sup.Span()) }
func (n *SubSup) Span() source.Span { return n.Base.Span().Cover(n.Sup.Span()) }
func (n *Symbol) Span() source.Span { return n.Tok.Span }
func (n *Group) Span() source.Span  { return n.Open.Span.Cover(n.Close.Span) }
func (n *Unary) Span() source.Span  { return n.Op.Span.Cover(n.Arg.Span()) }
func (n *Binary) Span() source.Span { return n.Op.Span.Cover(n.Right.Span()) }
