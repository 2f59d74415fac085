package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"polymath/internal/ast"
	"polymath/internal/source"
	"polymath/internal/token"
)

// consumed widens a token span to the bytes the lexer ate for it. Only Text
// differs from its span, by the surrounding quotes.
func consumed(tok token.Token) source.Span {
	sp := tok.Span
	if tok.Kind == token.Text {
		sp.Start--
		sp.End++
	}
	return sp
}

// CheckTokenCoverage verifies that tokens partition src:
// 1) spans are in order, non-overlapping and inside src
// 2) every token's text is its span's slice of src
// 3) bytes outside all tokens are ASCII spaces
func CheckTokenCoverage(src string, toks []token.Token) error {
	n, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len src overflow: %w", err)
	}
	var prevEnd uint32
	for i, tok := range toks {
		if tok.Span.Start > tok.Span.End || tok.Span.End > n {
			return fmt.Errorf("token %d %v: span %v outside input of %d bytes", i, tok.Kind, tok.Span, n)
		}
		if tok.Kind == token.None {
			return fmt.Errorf("token %d: lexer emitted None", i)
		}
		if tok.Span.Empty() && tok.Kind != token.Text {
			return fmt.Errorf("token %d %v: empty span %v", i, tok.Kind, tok.Span)
		}
		if got := tok.Span.Slice(src); got != tok.Text {
			return fmt.Errorf("token %d %v: text %q, span covers %q", i, tok.Kind, tok.Text, got)
		}
		sp := consumed(tok)
		if sp.Start < prevEnd || sp.End > n {
			return fmt.Errorf("token %d %v: consumed %v overlaps previous end %d", i, tok.Kind, sp, prevEnd)
		}
		if err := onlySpaces(src, prevEnd, sp.Start); err != nil {
			return fmt.Errorf("before token %d: %w", i, err)
		}
		prevEnd = sp.End
	}
	if err := onlySpaces(src, prevEnd, n); err != nil {
		return fmt.Errorf("after last token: %w", err)
	}
	return nil
}

func onlySpaces(src string, from, to uint32) error {
	for i := from; i < to; i++ {
		if src[i] != ' ' {
			return fmt.Errorf("byte %d (%q) not covered by any token", i, src[i])
		}
	}
	return nil
}

// CheckTables verifies the shape of every table in doc:
// 1) no cell holds a "|" marker at its top level
// 2) separator indices are non-negative and strictly increasing
// 3) the first row is at least as wide as the second
func CheckTables(doc *ast.Document) error {
	var failure error
	ast.Walk(doc.Body, func(e ast.Expr) bool {
		t, ok := e.(*ast.Table)
		if !ok || failure != nil {
			return failure == nil
		}
		for i, s := range t.Separators {
			if s < 0 || (i > 0 && s <= t.Separators[i-1]) {
				failure = fmt.Errorf("table separators not increasing: %v", t.Separators)
				return false
			}
		}
		for r, row := range t.Rows {
			for c, col := range row.Cols {
				for _, cell := range col {
					if lit, ok := cell.(*ast.Literal); ok && lit.Tok.IsPipe() {
						failure = fmt.Errorf("table row %d col %d still holds a %q marker", r, c, "|")
						return false
					}
				}
			}
		}
		if len(t.Rows) > 1 && len(t.Rows[0].Cols) < len(t.Rows[1].Cols) {
			failure = fmt.Errorf("first row has %d columns, second %d", len(t.Rows[0].Cols), len(t.Rows[1].Cols))
			return false
		}
		return true
	})
	return failure
}

// CheckNoNil reports a nil child anywhere in doc.
func CheckNoNil(doc *ast.Document) error {
	var failure error
	ast.Walk(doc.Body, func(e ast.Expr) bool {
		if failure != nil {
			return false
		}
		switch n := e.(type) {
		case *ast.Frac:
			failure = nilChild("Frac", n.Num, n.Den)
		case *ast.Sub:
			failure = nilChild("Sub", n.Base, n.Sub)
		case *ast.Pow:
			failure = nilChild("Pow", n.Base, n.Pow)
		case *ast.SubPow:
			failure = nilChild("SubPow", n.Base, n.Sub, n.Pow)
		case *ast.Group:
			failure = nilChild("Group", n.Body...)
		case *ast.Unary:
			failure = nilChild("Unary", n.Arg)
		case *ast.Binary:
			failure = nilChild("Binary", n.Left, n.Right)
		case ast.Expressions:
			failure = nilChild("Expressions", n...)
		}
		return failure == nil
	})
	return failure
}

func nilChild(node string, children ...ast.Expr) error {
	for i, c := range children {
		if c == nil {
			return fmt.Errorf("%s child %d is nil", node, i)
		}
	}
	return nil
}
