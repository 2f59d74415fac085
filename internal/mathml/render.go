package mathml

import (
	"strconv"
	"strings"

	"polymath/internal/ast"
	"polymath/internal/token"
)

type renderer struct {
	b strings.Builder
}

// Render returns the markup for doc.
func Render(doc *ast.Document) string {
	r := &renderer{}
	r.b.WriteString(`<math display="block">`)
	r.exprs(doc.Body)
	r.b.WriteString(`</math>`)
	return r.b.String()
}

// Fragment renders a single node without the <math> wrapper.
func Fragment(e ast.Expr) string {
	r := &renderer{}
	r.expr(e)
	return r.b.String()
}

func (r *renderer) w(parts ...string) {
	for _, p := range parts {
		r.b.WriteString(p)
	}
}

func (r *renderer) exprs(es ast.Expressions) {
	for _, e := range es {
		r.expr(e)
	}
}

func (r *renderer) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Frac:
		r.w("<mfrac>")
		r.braceless(n.Num)
		r.braceless(n.Den)
		r.w("</mfrac>")
	case *ast.Sub:
		r.sub(n)
	case *ast.Pow:
		r.pow(n)
	case *ast.SubPow:
		r.subPow(n)
	case *ast.Group:
		r.w("<mrow>", leftDelim(n.Open))
		r.exprs(n.Body)
		r.w(rightDelim(n.Close), "</mrow>")
	case *ast.Unary:
		r.unary(n)
	case *ast.Binary:
		r.binary(n)
	case *ast.Literal:
		r.token(n.Tok)
	case *ast.Table:
		r.table(n)
	case ast.Expressions:
		r.exprs(n)
	case ast.Unit:
	}
}

// braceless renders a group as a bare <mrow> without its delimiters.
func (r *renderer) braceless(e ast.Expr) {
	if g, ok := e.(*ast.Group); ok {
		r.w("<mrow>")
		r.exprs(g.Body)
		r.w("</mrow>")
		return
	}
	r.expr(e)
}

// unwrapped renders a group's children only.
func (r *renderer) unwrapped(e ast.Expr) {
	if g, ok := e.(*ast.Group); ok {
		r.exprs(g.Body)
		return
	}
	r.expr(e)
}

// bigBase reports whether scripts on e go under and over it.
func bigBase(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.Tok.Kind.IsBigOperator()
}

func braceBase(e ast.Expr, k token.Kind) bool {
	u, ok := e.(*ast.Unary)
	return ok && u.Op.Kind == k
}

func (r *renderer) sub(n *ast.Sub) {
	switch {
	case bigBase(n.Base):
		r.w("<munder>")
		r.braceless(n.Base)
		r.braceless(n.Sub)
		r.w("</munder>")
	case braceBase(n.Base, token.UnaryUBrace):
		r.w("<munder><munder>")
		r.braceless(n.Base)
		r.w("</munder>")
		r.braceless(n.Sub)
		r.w("</munder>")
	default:
		r.w("<msub>")
		r.expr(n.Base)
		r.expr(n.Sub)
		r.w("</msub>")
	}
}

func (r *renderer) pow(n *ast.Pow) {
	switch {
	case bigBase(n.Base):
		r.w("<mover>")
		r.braceless(n.Base)
		r.braceless(n.Pow)
		r.w("</mover>")
	case braceBase(n.Base, token.UnaryOBrace):
		r.w("<mover><mover>")
		r.braceless(n.Base)
		r.w("</mover>")
		r.braceless(n.Pow)
		r.w("</mover>")
	default:
		r.w("<msup>")
		r.expr(n.Base)
		r.expr(n.Pow)
		r.w("</msup>")
	}
}

func (r *renderer) subPow(n *ast.SubPow) {
	inner := ""
	switch {
	case bigBase(n.Base):
	case braceBase(n.Base, token.UnaryUBrace):
		inner = "munder"
	case braceBase(n.Base, token.UnaryOBrace):
		inner = "mover"
	default:
		r.w("<msubsup>")
		r.expr(n.Base)
		r.expr(n.Sub)
		r.expr(n.Pow)
		r.w("</msubsup>")
		return
	}
	r.w("<munderover>")
	if inner != "" {
		r.w("<", inner, ">")
		r.braceless(n.Base)
		r.w("</", inner, ">")
	} else {
		r.braceless(n.Base)
	}
	r.braceless(n.Sub)
	r.braceless(n.Pow)
	r.w("</munderover>")
}

func (r *renderer) unary(n *ast.Unary) {
	if a, ok := accents[n.Op.Kind]; ok {
		tag := "mover"
		if a.under {
			tag = "munder"
		}
		r.w("<", tag, ">")
		r.braceless(n.Arg)
		r.w("<mo>", a.mark, "</mo></", tag, ">")
		return
	}
	if f, ok := fences[n.Op.Kind]; ok {
		r.w("<mo>", f[0], "</mo>")
		r.braceless(n.Arg)
		r.w("<mo>", f[1], "</mo>")
		return
	}
	switch n.Op.Kind {
	case token.UnaryCancel:
		r.w(`<menclose notation="updiagonalstrike">`)
		r.braceless(n.Arg)
		r.w("</menclose>")
	case token.UnarySqrt:
		r.w("<msqrt>")
		r.braceless(n.Arg)
		r.w("</msqrt>")
	case token.UnaryText:
		r.w("<mtext>")
		r.braceless(n.Arg)
		r.w("</mtext>")
	}
}

func (r *renderer) binary(n *ast.Binary) {
	var tag string
	switch n.Op.Kind {
	case token.BinaryRoot:
		tag = "mroot"
	case token.BinaryOverset:
		tag = "mover"
	case token.BinaryUnderset:
		tag = "munder"
	case token.BinaryColor:
		r.w(`<mstyle mathcolor="`, colorName(n.Left), `">`)
		r.unwrapped(n.Right)
		r.w("</mstyle>")
		return
	default:
		r.w(n.Op.Text)
		r.expr(n.Left)
		r.expr(n.Right)
		return
	}
	// operands swap: base first, then index/annotation
	r.w("<", tag, "><mrow>")
	r.unwrapped(n.Right)
	r.w("</mrow><mrow>")
	r.unwrapped(n.Left)
	r.w("</mrow></", tag, ">")
}

// colorName concatenates the token texts directly inside a group operand.
func colorName(e ast.Expr) string {
	g, ok := e.(*ast.Group)
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.Body {
		if lit, ok := c.(*ast.Literal); ok {
			sb.WriteString(lit.Tok.Text)
		}
	}
	return sb.String()
}

func (r *renderer) table(t *ast.Table) {
	r.w("<mrow>", leftDelim(t.Open), "<mtable ", columnLines(t), ">")
	for _, row := range t.Rows {
		r.w("<mtr>")
		for _, col := range row.Cols {
			r.w("<mtd>")
			r.exprs(col)
			r.w("</mtd>")
		}
		r.w("</mtr>")
	}
	r.w("</mtable>", rightDelim(t.Close), "</mrow>")
}

// columnLines describes the boundary before each first-row column after
// the first. A table without rows gets no attribute.
func columnLines(t *ast.Table) string {
	if len(t.Rows) == 0 {
		return ""
	}
	cols := len(t.Rows[0].Cols)
	lines := make([]string, 0, cols)
	for i := 1; i < cols; i++ {
		if t.HasSeparator(i) {
			lines = append(lines, "solid")
		} else {
			lines = append(lines, "none")
		}
	}
	return `columnlines="` + strings.Join(lines, " ") + `"`
}

func leftDelim(tok token.Token) string {
	if s, ok := leftDelims[tok.Kind]; ok {
		return s
	}
	return tok.Text
}

func rightDelim(tok token.Token) string {
	if s, ok := rightDelims[tok.Kind]; ok {
		return s
	}
	return tok.Text
}

func (r *renderer) token(tok token.Token) {
	if s, ok := fixed[tok.Kind]; ok {
		r.w(s)
		return
	}
	switch tok.Kind.Category() {
	case token.CatNone:
	case token.CatNumber:
		r.w("<mn>", tok.Text, "</mn>")
	case token.CatText:
		r.w("<mtext>", tok.Text, "</mtext>")
	case token.CatGreek:
		r.w("<mi>", glyphs[tok.Kind], "</mi>")
	case token.CatFunction:
		r.w("<mi>", functionNames[tok.Kind], "</mi>")
	case token.CatOperation, token.CatArrow, token.CatMisc, token.CatRelational, token.CatLogical:
		r.w("<mo>", glyphs[tok.Kind], "</mo>")
	default:
		r.w("<mi>", tok.Text, "</mi>")
	}
}

// Describe summarizes how k renders, for token dumps.
func Describe(k token.Kind) string {
	if s, ok := fixed[k]; ok {
		return "fragment " + strconv.Quote(s)
	}
	if s, ok := glyphs[k]; ok {
		return s
	}
	return ""
}
