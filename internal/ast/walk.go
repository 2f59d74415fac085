package ast

// Walk visits e and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case Expressions:
		for _, c := range n {
			Walk(c, fn)
		}
	case *Frac:
		Walk(n.Num, fn)
		Walk(n.Den, fn)
	case *Sub:
		Walk(n.Base, fn)
		Walk(n.Sub, fn)
	case *Pow:
		Walk(n.Base, fn)
		Walk(n.Pow, fn)
	case *SubPow:
		Walk(n.Base, fn)
		Walk(n.Sub, fn)
		Walk(n.Pow, fn)
	case *Group:
		for _, c := range n.Body {
			Walk(c, fn)
		}
	case *Unary:
		Walk(n.Arg, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Table:
		for _, r := range n.Rows {
			for _, col := range r.Cols {
				for _, c := range col {
					Walk(c, fn)
				}
			}
		}
	}
}

// Count returns the number of nodes under e, e included. Expressions
// containers are not counted.
func Count(e Expr) int {
	n := 0
	Walk(e, func(x Expr) bool {
		if _, ok := x.(Expressions); !ok {
			n++
		}
		return true
	})
	return n
}
