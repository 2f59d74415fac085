package transform

import (
	"polymath/internal/ast"
)

// Tables returns a copy of doc with every qualifying group replaced by a
// table. The input tree is not modified.
func Tables(doc *ast.Document) *ast.Document {
	return &ast.Document{Body: expressions(doc.Body)}
}

func expressions(es ast.Expressions) ast.Expressions {
	if es == nil {
		return nil
	}
	out := make(ast.Expressions, len(es))
	for i, e := range es {
		out[i] = expr(e)
	}
	return out
}

func expr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Group:
		g := &ast.Group{Open: n.Open, Body: expressions(n.Body), Close: n.Close}
		if t, ok := asTable(g); ok {
			return t
		}
		return g
	case *ast.Frac:
		return &ast.Frac{Num: expr(n.Num), Den: expr(n.Den)}
	case *ast.Sub:
		return &ast.Sub{Base: expr(n.Base), Sub: expr(n.Sub)}
	case *ast.Pow:
		return &ast.Pow{Base: expr(n.Base), Pow: expr(n.Pow)}
	case *ast.SubPow:
		return &ast.SubPow{Base: expr(n.Base), Sub: expr(n.Sub), Pow: expr(n.Pow)}
	case *ast.Unary:
		return &ast.Unary{Op: n.Op, Arg: expr(n.Arg)}
	case *ast.Binary:
		return &ast.Binary{Op: n.Op, Left: expr(n.Left), Right: expr(n.Right)}
	case ast.Expressions:
		return expressions(n)
	case *ast.Literal:
		cp := *n
		return &cp
	}
	return e
}

func isComma(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.Tok.IsComma()
}

func isPipe(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.Tok.IsPipe()
}

// asTable checks g's children (already transformed) for the matrix shape.
func asTable(g *ast.Group) (*ast.Table, bool) {
	rows := make([]*ast.Group, 0, len(g.Body)/2+1)
	for i, child := range g.Body {
		if i%2 == 1 {
			if !isComma(child) {
				return nil, false
			}
			continue
		}
		row, ok := child.(*ast.Group)
		if !ok {
			return nil, false
		}
		rows = append(rows, row)
	}

	commas := make([][]int, len(rows))
	for i, row := range rows {
		for j, c := range row.Body {
			if isComma(c) {
				commas[i] = append(commas[i], j)
			}
		}
		if len(commas[i]) != len(commas[0]) {
			return nil, false
		}
	}

	table := make([]ast.Row, len(rows))
	for i, row := range rows {
		table[i] = ast.Row{Cols: splitColumns(row.Body, commas[i])}
	}

	seps := separatorColumns(table)
	for i := range table {
		table[i].Cols = dropPipeColumns(table[i].Cols)
	}
	if len(table) > 1 {
		for len(table[0].Cols) < len(table[1].Cols) {
			table[0].Cols = append(table[0].Cols, ast.Expressions{})
		}
	}

	return &ast.Table{
		Separators: seps,
		Open:       g.Open,
		Rows:       table,
		Close:      g.Close,
	}, true
}

// splitColumns cuts body at the given comma indices; N commas give N+1 cells.
func splitColumns(body ast.Expressions, commas []int) []ast.Expressions {
	cols := make([]ast.Expressions, 0, len(commas)+1)
	start := 0
	for _, c := range commas {
		cols = append(cols, cellOf(body[start:c]))
		start = c + 1
	}
	return append(cols, cellOf(body[start:]))
}

func cellOf(es ast.Expressions) ast.Expressions {
	cell := make(ast.Expressions, len(es))
	copy(cell, es)
	return cell
}

// separatorColumns lists first-row columns holding a "|" marker.
func separatorColumns(rows []ast.Row) []int {
	if len(rows) == 0 {
		return nil
	}
	var seps []int
	for i, col := range rows[0].Cols {
		if hasPipe(col) {
			seps = append(seps, i)
		}
	}
	return seps
}

func hasPipe(col ast.Expressions) bool {
	for _, e := range col {
		if isPipe(e) {
			return true
		}
	}
	return false
}

func dropPipeColumns(cols []ast.Expressions) []ast.Expressions {
	kept := cols[:0]
	for _, col := range cols {
		if !hasPipe(col) {
			kept = append(kept, col)
		}
	}
	return kept
}
