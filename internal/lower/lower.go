// Package lower converts the concrete syntax tree into the AST.
//
// Sequences are flattened and a fraction's denominator, which the parser
// lets absorb the rest of the expression, is narrowed back to its first
// element; the remaining elements follow the fraction as siblings.
package lower

import (
	"polymath/internal/ast"
	"polymath/internal/cst"
)

// Lower converts a parsed formula.
func Lower(e cst.Expression) *ast.Document {
	return &ast.Document{Body: expression(e)}
}

func expression(e cst.Expression) ast.Expressions {
	var out ast.Expressions
	for {
		switch n := e.(type) {
		case *cst.Seq:
			out = append(out, intermediate(n.Head))
			e = n.Tail
			continue
		case *cst.Frac:
			rest := expression(n.Den)
			var den ast.Expr = ast.Unit{}
			if len(rest) > 0 {
				den = rest[0]
				rest = rest[1:]
			}
			out = append(out, &ast.Frac{Num: intermediate(n.Num), Den: den})
			return append(out, rest...)
		}
		return out
	}
}

func intermediate(i cst.Intermediate) ast.Expr {
	switch n := i.(type) {
	case *cst.Sub:
		return &ast.Sub{Base: simple(n.Base), Sub: simple(n.Sub)}
	case *cst.Sup:
		return &ast.Pow{Base: simple(n.Base), Pow: simple(n.Sup)}
	case *cst.SubSup:
		return &ast.SubPow{Base: simple(n.Base), Sub: simple(n.Sub), Pow: simple(n.Sup)}
	case cst.Simple:
		return simple(n)
	}
	return ast.Unit{}
}

func simple(s cst.Simple) ast.Expr {
	switch n := s.(type) {
	case *cst.Symbol:
		return &ast.Literal{Tok: n.Tok}
	case *cst.Group:
		return &ast.Group{Open: n.Open, Body: expression(n.Body), Close: n.Close}
	case *cst.Unary:
		return &ast.Unary{Op: n.Op, Arg: simple(n.Arg)}
	case *cst.Binary:
		return &ast.Binary{Op: n.Op, Left: simple(n.Left), Right: simple(n.Right)}
	}
	return ast.Unit{}
}
