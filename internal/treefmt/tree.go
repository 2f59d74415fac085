package treefmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"polymath/internal/ast"
	"polymath/internal/cst"
	"polymath/internal/source"
	"polymath/internal/token"
)

// Node is a printable tree shared by the CST and AST dumps.
type Node struct {
	Label    string       `json:"label"`
	Token    *TokenOutput `json:"token,omitempty"`
	Span     *source.Span `json:"span,omitempty"`
	Children []*Node      `json:"children,omitempty"`
}

func leaf(label string, tok token.Token) *Node {
	return &Node{
		Label: fmt.Sprintf("%s %s %s", label, tok.Kind, strconv.Quote(tok.Text)),
		Token: &TokenOutput{
			Kind:     tok.Kind.String(),
			Category: tok.Kind.Category().String(),
			Text:     tok.Text,
			Span:     tok.Span,
		},
	}
}

func withSpan(n *Node, sp source.Span) *Node {
	n.Span = &sp
	n.Label += " @" + sp.String()
	return n
}

// FromCST builds the tree for a parsed expression.
func FromCST(e cst.Expression) *Node {
	switch n := e.(type) {
	case *cst.Seq:
		return withSpan(&Node{Label: "Seq", Children: []*Node{cstIntermediate(n.Head), FromCST(n.Tail)}}, n.Span())
	case *cst.Frac:
		return withSpan(&Node{Label: "Frac", Children: []*Node{cstIntermediate(n.Num), FromCST(n.Den)}}, n.Span())
	default:
		return &Node{Label: "ε"}
	}
}

func cstIntermediate(i cst.Intermediate) *Node {
	switch n := i.(type) {
	case *cst.Sub:
		return withSpan(&Node{Label: "Sub", Children: []*Node{cstSimple(n.Base), cstSimple(n.Sub)}}, n.Span())
	case *cst.Sup:
		return withSpan(&Node{Label: "Sup", Children: []*Node{cstSimple(n.Base), cstSimple(n.Sup)}}, n.Span())
	case *cst.SubSup:
		return withSpan(&Node{Label: "SubSup", Children: []*Node{cstSimple(n.Base), cstSimple(n.Sub), cstSimple(n.Sup)}}, n.Span())
	case cst.Simple:
		return cstSimple(n)
	}
	return &Node{Label: "<nil>"}
}

func cstSimple(s cst.Simple) *Node {
	switch n := s.(type) {
	case *cst.Symbol:
		return withSpan(leaf("Symbol", n.Tok), n.Span())
	case *cst.Group:
		label := fmt.Sprintf("Group %s…%s", strconv.Quote(n.Open.Text), strconv.Quote(n.Close.Text))
		return withSpan(&Node{Label: label, Children: []*Node{FromCST(n.Body)}}, n.Span())
	case *cst.Unary:
		return withSpan(&Node{Label: "Unary " + n.Op.Kind.String(), Children: []*Node{cstSimple(n.Arg)}}, n.Span())
	case *cst.Binary:
		return withSpan(&Node{Label: "Binary " + n.Op.Kind.String(), Children: []*Node{cstSimple(n.Left), cstSimple(n.Right)}}, n.Span())
	}
	return &Node{Label: "<nil>"}
}

// FromDocument builds the tree for a lowered (optionally transformed) document.
func FromDocument(doc *ast.Document) *Node {
	return &Node{Label: "Document", Children: astChildren(doc.Body)}
}

func astChildren(es ast.Expressions) []*Node {
	out := make([]*Node, 0, len(es))
	for _, e := range es {
		out = append(out, FromAST(e))
	}
	return out
}

// FromAST builds the tree for a single node.
func FromAST(e ast.Expr) *Node {
	switch n := e.(type) {
	case *ast.Frac:
		return &Node{Label: "Frac", Children: []*Node{FromAST(n.Num), FromAST(n.Den)}}
	case *ast.Sub:
		return &Node{Label: "Sub", Children: []*Node{FromAST(n.Base), FromAST(n.Sub)}}
	case *ast.Pow:
		return &Node{Label: "Pow", Children: []*Node{FromAST(n.Base), FromAST(n.Pow)}}
	case *ast.SubPow:
		return &Node{Label: "SubPow", Children: []*Node{FromAST(n.Base), FromAST(n.Sub), FromAST(n.Pow)}}
	case *ast.Group:
		label := fmt.Sprintf("Group %s…%s", strconv.Quote(n.Open.Text), strconv.Quote(n.Close.Text))
		return &Node{Label: label, Children: astChildren(n.Body)}
	case *ast.Unary:
		return &Node{Label: "Unary " + n.Op.Kind.String(), Children: []*Node{FromAST(n.Arg)}}
	case *ast.Binary:
		return &Node{Label: "Binary " + n.Op.Kind.String(), Children: []*Node{FromAST(n.Left), FromAST(n.Right)}}
	case *ast.Literal:
		return withSpan(leaf("Literal", n.Tok), n.Tok.Span)
	case *ast.Table:
		label := fmt.Sprintf("Table %d×%d", len(n.Rows), tableCols(n))
		if len(n.Separators) > 0 {
			label += fmt.Sprintf(" separators=%v", n.Separators)
		}
		node := &Node{Label: label}
		for i, row := range n.Rows {
			rn := &Node{Label: fmt.Sprintf("Row[%d]", i)}
			for j, col := range row.Cols {
				rn.Children = append(rn.Children, &Node{Label: fmt.Sprintf("Col[%d]", j), Children: astChildren(col)})
			}
			node.Children = append(node.Children, rn)
		}
		return node
	case ast.Expressions:
		return &Node{Label: "Expressions", Children: astChildren(n)}
	default:
		return &Node{Label: "ε"}
	}
}

func tableCols(t *ast.Table) int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cols)
}

// WriteTree prints n with box-drawing guides.
func WriteTree(w io.Writer, n *Node) error {
	var sb strings.Builder
	sb.WriteString(n.Label)
	sb.WriteByte('\n')
	writeChildren(&sb, n.Children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, children []*Node, prefix string) {
	for i, c := range children {
		last := i == len(children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(c.Label)
		sb.WriteByte('\n')
		writeChildren(sb, c.Children, prefix+next)
	}
}

// String returns the WriteTree form.
func (n *Node) String() string {
	var sb strings.Builder
	_ = WriteTree(&sb, n) //nolint:errcheck
	return sb.String()
}

// WriteJSON writes n as indented JSON.
func WriteJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}
