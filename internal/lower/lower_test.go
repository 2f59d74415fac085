package lower_test

import (
	"fmt"
	"strings"
	"testing"

	"polymath/internal/ast"
	"polymath/internal/lexer"
	"polymath/internal/lower"
	"polymath/internal/parser"
	"polymath/internal/token"
)

func show(e ast.Expr) string {
	switch n := e.(type) {
	case ast.Expressions:
		parts := make([]string, len(n))
		for i, c := range n {
			parts[i] = show(c)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case ast.Unit:
		return "·"
	case *ast.Literal:
		if n.Tok.Kind == token.None {
			return "∅"
		}
		return n.Tok.Text
	case *ast.Frac:
		return fmt.Sprintf("frac(%s,%s)", show(n.Num), show(n.Den))
	case *ast.Sub:
		return fmt.Sprintf("sub(%s,%s)", show(n.Base), show(n.Sub))
	case *ast.Pow:
		return fmt.Sprintf("pow(%s,%s)", show(n.Base), show(n.Pow))
	case *ast.SubPow:
		return fmt.Sprintf("subpow(%s,%s,%s)", show(n.Base), show(n.Sub), show(n.Pow))
	case *ast.Group:
		return n.Open.Text + show(n.Body) + n.Close.Text
	case *ast.Unary:
		return fmt.Sprintf("%s(%s)", n.Op.Text, show(n.Arg))
	case *ast.Binary:
		return fmt.Sprintf("%s(%s,%s)", n.Op.Text, show(n.Left), show(n.Right))
	}
	return fmt.Sprintf("<%T>", e)
}

func lowerString(src string) string {
	return show(lower.Lower(parser.Parse(lexer.Tokenize(src))).Body)
}

func TestLower(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "[]"},
		{"a", "[a]"},
		{"a=2", "[a = 2]"},
		{"a/b", "[frac(a,b)]"},
		{"a/b c", "[frac(a,b) c]"},
		{"x a/b c d", "[x frac(a,b) c d]"},
		{"a/b/c", "[frac(a,frac(b,c))]"},
		{"a/", "[frac(a,∅)]"},
		{"(a+b)/6", "[frac(([a + b]),6)]"},
		{"x_i^2", "[subpow(x,i,2)]"},
		{"e^x y", "[pow(e,x) y]"},
		{"sqrt x", "[sqrt(x)]"},
		{"root(3)(x)", "[root(([3]),([x]))]"},
		{"()", "[([∅])]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := lowerString(tt.input); got != tt.want {
				t.Errorf("lower(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
