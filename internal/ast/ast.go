package ast

import (
	"polymath/internal/token"
)

// Expr is one of *Frac, *Sub, *Pow, *SubPow, *Group, *Unary, *Binary,
// *Literal, *Table, Expressions or Unit.
type Expr interface {
	isExpr()
}

// Expressions is an ordered sequence rendered by concatenation.
type Expressions []Expr

type Frac struct {
	Num Expr
	Den Expr
}

type Sub struct {
	Base Expr
	Sub  Expr
}

type Pow struct {
	Base Expr
	Pow  Expr
}

type SubPow struct {
	Base Expr
	Sub  Expr
	Pow  Expr
}

// Group keeps its delimiter tokens; they need not be the same variant.
type Group struct {
	Open  token.Token
	Body  Expressions
	Close token.Token
}

type Unary struct {
	Op  token.Token
	Arg Expr
}

type Binary struct {
	Op    token.Token
	Left  Expr
	Right Expr
}

// Literal is a single token used as a value.
type Literal struct {
	Tok token.Token
}

// Table is a group recognized as a matrix. Separators holds column indices
// of the first row, before marker columns were removed, that carried a
// "|" marker.
type Table struct {
	Separators []int
	Open       token.Token
	Rows       []Row
	Close      token.Token
}

// Row is one table row; each column is a cell sequence.
type Row struct {
	Cols []Expressions
}

// Unit is the empty expression.
type Unit struct{}

func (*Frac) isExpr()       {}
func (*Sub) isExpr()        {}
func (*Pow) isExpr()        {}
func (*SubPow) isExpr()     {}
func (*Group) isExpr()      {}
func (*Unary) isExpr()      {}
func (*Binary) isExpr()     {}
func (*Literal) isExpr()    {}
func (*Table) isExpr()      {}
func (Expressions) isExpr() {}
func (Unit) isExpr()        {}

// Document is a whole lowered formula.
type Document struct {
	Body Expressions
}

// HasSeparator reports whether column index i is a separator column.
func (t *Table) HasSeparator(i int) bool {
	for _, s := range t.Separators {
		if s == i {
			return true
		}
	}
	return false
}

// IsLiteralKind reports whether e is a *Literal of kind k.
func IsLiteralKind(e Expr, k token.Kind) bool {
	lit, ok := e.(*Literal)
	return ok && lit.Tok.Kind == k
}
