package mathml_test

import (
	"strings"
	"testing"

	"polymath/internal/ast"
	"polymath/internal/lexer"
	"polymath/internal/lower"
	"polymath/internal/mathml"
	"polymath/internal/parser"
	"polymath/internal/token"
	"polymath/internal/transform"
)

func render(src string) string {
	doc := transform.Tables(lower.Lower(parser.Parse(lexer.Tokenize(src))))
	out := mathml.Render(doc)
	out = strings.TrimPrefix(out, `<math display="block">`)
	return strings.TrimSuffix(out, `</math>`)
}

func TestRenderForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"hat", "hat x", "<mover><mi>x</mi><mo>^</mo></mover>"},
		{"bar_group", "bar(ab)", "<mover><mrow><mi>a</mi><mi>b</mi></mrow><mo>&#xAF;</mo></mover>"},
		{"ul", "ul x", "<munder><mi>x</mi><mo>&#x332;</mo></munder>"},
		{"abs", "abs x", "<mo>|</mo><mi>x</mi><mo>|</mo>"},
		{"floor", "floor x", "<mo>&#x230A;</mo><mi>x</mi><mo>&#x230B;</mo>"},
		{"norm", "norm x", "<mo>&#x2225;</mo><mi>x</mi><mo>&#x2225;</mo>"},
		{"cancel", "cancel x", `<menclose notation="updiagonalstrike"><mi>x</mi></menclose>`},
		{"sqrt", "sqrt 2", "<msqrt><mn>2</mn></msqrt>"},
		{"text", "text(ab)", "<mtext><mrow><mi>a</mi><mi>b</mi></mrow></mtext>"},
		{"overset", "overset(a)(b)", "<mover><mrow><mi>b</mi></mrow><mrow><mi>a</mi></mrow></mover>"},
		{"underset", "underset a b", "<munder><mrow><mi>b</mi></mrow><mrow><mi>a</mi></mrow></munder>"},
		{"color", "color(red)(x)", `<mstyle mathcolor="red"><mi>x</mi></mstyle>`},
		{"color_no_group", "color r x", `<mstyle mathcolor=""><mi>x</mi></mstyle>`},
		{"msub", "x_i", "<msub><mi>x</mi><mi>i</mi></msub>"},
		{"msub_group_keeps_brackets", "x_(i)", "<msub><mi>x</mi><mrow><mo>(</mo><mi>i</mi><mo>)</mo></mrow></msub>"},
		{"msup", "x^2", "<msup><mi>x</mi><mn>2</mn></msup>"},
		{"msubsup", "x_i^2", "<msubsup><mi>x</mi><mi>i</mi><mn>2</mn></msubsup>"},
		{"lim_under", "lim_(x->0)", "<munder><mo>lim</mo><mrow><mi>x</mi><mo>&#x2192;</mo><mn>0</mn></mrow></munder>"},
		{"prod_over", "prod^n", "<mover><mo>&#x220F;</mo><mi>n</mi></mover>"},
		{"bigcup_both", "bigcup_a^b", "<munderover><mo>&#x22C3;</mo><mi>a</mi><mi>b</mi></munderover>"},
		{"int_is_not_big", "int_a^b", "<msubsup><mo>&#x222B;</mo><mi>a</mi><mi>b</mi></msubsup>"},
		{"ubrace_subsup", "ubrace x_a^b", "<munderover><munder><munder><mi>x</mi><mo>&#x23DF;</mo></munder></munder><mi>a</mi><mi>b</mi></munderover>"},
		{"obrace_subsup", "obrace x_a^b", "<munderover><mover><mover><mi>x</mi><mo>&#x23DE;</mo></mover></mover><mi>a</mi><mi>b</mi></munderover>"},
		{"obrace_sub_is_plain", "obrace x_a", "<msub><mover><mi>x</mi><mo>&#x23DE;</mo></mover><mi>a</mi></msub>"},
		{"frac_empty_den", "a/", "<mfrac><mi>a</mi></mfrac>"},
		{"double_lt_is_relational", "<<a>>", "<mo>&lt;</mo><mo>&lt;</mo><mi>a</mi><mo>&gt;</mo><mo>&gt;</mo>"},
		{"langle", "langle a rangle", "<mrow><mo><</mo><mi>a</mi><mo>></mo></mrow>"},
		{"colon_brace", "{:a:}", "<mrow><mi>a</mi></mrow>"},
		{"greek", "alpha gamma", "<mi>&#x3B1;</mi><mi>&#x3B2;</mi>"},
		{"function", "sin x", "<mi>sin</mi><mi>x</mi>"},
		{"relational", "a le b", "<mi>a</mi><mo>&#x2264;</mo><mi>b</mi>"},
		{"mlt", "mlt", "<mi>m</mi><mo>&lt;</mo>"},
		{"logical_and", "and", `<mrow><mspace width="1ex" /><mtext>and</mtext><msapce with="1ex" /></mrow>`},
		{"double_pipes_quad", "|quad|", "<mrow><mo>|</mo><mo>&#xA0;&#xA0;</mo><mo>|</mo></mrow>"},
		{"backslash", `\\`, `<mo>\</mo>`},
		{"stray_structural", "/", "<mi>/</mi>"},
		{"sqrt_missing_operand", "sqrt", "<msqrt></msqrt>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.input); got != tt.want {
				t.Errorf("render(%q)\n got  %s\n want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlainBinaryFallback(t *testing.T) {
	op := token.Token{Kind: token.Symbol, Text: "op"}
	a := &ast.Literal{Tok: token.Token{Kind: token.Symbol, Text: "a"}}
	b := &ast.Literal{Tok: token.Token{Kind: token.Number, Text: "1"}}
	got := mathml.Fragment(&ast.Binary{Op: op, Left: a, Right: b})
	if got != "op<mi>a</mi><mn>1</mn>" {
		t.Fatalf("got %s", got)
	}
}

func TestTableWithoutRows(t *testing.T) {
	open := token.Token{Kind: token.LParen, Text: "("}
	closeTok := token.Token{Kind: token.RParen, Text: ")"}
	got := mathml.Fragment(&ast.Table{Open: open, Close: closeTok})
	if got != "<mrow><mo>(</mo><mtable ></mtable><mo>)</mo></mrow>" {
		t.Fatalf("got %s", got)
	}
}

func TestColumnLines(t *testing.T) {
	// separator indices refer to first-row columns before the markers are dropped
	got := render("[[1,|,2,|,3],[a,x,b,y,c]]")
	if !strings.Contains(got, `columnlines="solid none solid none"`) {
		t.Fatalf("unexpected columnlines in %s", got)
	}
}

func TestEverySymbolicKindRenders(t *testing.T) {
	for k := token.None; k <= token.BinaryColor; k++ {
		switch k.Category() {
		case token.CatGreek, token.CatOperation, token.CatMisc, token.CatRelational,
			token.CatArrow, token.CatLogical:
		default:
			continue
		}
		out := mathml.Fragment(&ast.Literal{Tok: token.Token{Kind: k, Text: "?"}})
		if out == "" || strings.Contains(out, "<mo></mo>") || strings.Contains(out, "<mi></mi>") {
			t.Errorf("%v renders as %q", k, out)
		}
	}
}
