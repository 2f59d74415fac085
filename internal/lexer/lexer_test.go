package lexer_test

import (
	"strings"
	"testing"

	"polymath/internal/lexer"
	"polymath/internal/token"
)

type want struct {
	kind token.Kind
	text string
}

func kindsAndTexts(toks []token.Token) []want {
	out := make([]want, 0, len(toks))
	for _, t := range toks {
		out = append(out, want{t.Kind, t.Text})
	}
	return out
}

func expectTokens(t *testing.T, input string, exp ...want) {
	t.Helper()
	got := kindsAndTexts(lexer.Tokenize(input))
	if len(got) != len(exp) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", input, len(got), got, len(exp), exp)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Errorf("%q: token %d = %v(%q), want %v(%q)", input, i, got[i].kind, got[i].text, exp[i].kind, exp[i].text)
		}
	}
}

func TestBasicSequence(t *testing.T) {
	expectTokens(t, "a=2",
		want{token.Symbol, "a"},
		want{token.RelEquals, "="},
		want{token.Number, "2"},
	)
	expectTokens(t, "sum_b^a",
		want{token.OpSum, "sum"},
		want{token.Underscore, "_"},
		want{token.Symbol, "b"},
		want{token.Hat, "^"},
		want{token.Symbol, "a"},
	)
}

func TestEmptyAndSpaces(t *testing.T) {
	if toks := lexer.Tokenize(""); len(toks) != 0 {
		t.Fatalf("empty input produced %v", toks)
	}
	if toks := lexer.Tokenize("    "); len(toks) != 0 {
		t.Fatalf("space-only input produced %v", toks)
	}
	toks := lexer.Tokenize("  a  ")
	if len(toks) != 1 || toks[0].Span.Start != 2 || toks[0].Span.End != 3 {
		t.Fatalf("unexpected tokens %v", toks)
	}
}

func TestTabsAndNewlinesAreSymbols(t *testing.T) {
	expectTokens(t, "a\tb\n",
		want{token.Symbol, "a"},
		want{token.Symbol, "\t"},
		want{token.Symbol, "b"},
		want{token.Symbol, "\n"},
	)
}

func TestStructuralBeatsTables(t *testing.T) {
	// '/' wins over "//" and "/_".
	expectTokens(t, "//",
		want{token.Division, "/"},
		want{token.Division, "/"},
	)
	expectTokens(t, "/_",
		want{token.Division, "/"},
		want{token.Underscore, "_"},
	)
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "1.5", want{token.Number, "1.5"})
	expectTokens(t, "1.x", want{token.Number, "1."}, want{token.Symbol, "x"})
	expectTokens(t, "23 4", want{token.Number, "23"}, want{token.Number, "4"})

	expectTokens(t, ".5", want{token.Symbol, "."}, want{token.Number, "5"})
	expectTokens(t, "x=.5",
		want{token.Symbol, "x"},
		want{token.RelEquals, "="},
		want{token.Symbol, "."},
		want{token.Number, "5"},
	)
	expectTokens(t, "...4.5",
		want{token.Symbol, "."},
		want{token.Symbol, "."},
		want{token.Symbol, "."},
		want{token.Number, "4.5"},
	)
	expectTokens(t, "..", want{token.Symbol, "."}, want{token.Symbol, "."})
}

func TestText(t *testing.T) {
	toks := lexer.Tokenize(`"b la  "`)
	if len(toks) != 1 || toks[0].Kind != token.Text || toks[0].Text != "b la  " {
		t.Fatalf("text literal: %v", toks)
	}
	if toks[0].Span.Start != 1 || toks[0].Span.End != 7 {
		t.Fatalf("text span = %v, want 1-7", toks[0].Span)
	}
	expectTokens(t, `"Ц" x`, want{token.Text, "Ц"}, want{token.Symbol, "x"})
	expectTokens(t, `""`, want{token.Text, ""})
	// multibyte text before the quotes must not shift the closing quote
	expectTokens(t, `ȳ"ab"`, want{token.Symbol, "ȳ"}, want{token.Text, "ab"})
	expectTokens(t, `ȳ""ab"`,
		want{token.Symbol, "ȳ"},
		want{token.Text, ""},
		want{token.Symbol, "a"},
		want{token.Symbol, "b"},
		want{token.Symbol, `"`},
	)
}

func TestUnterminatedQuoteFallsBack(t *testing.T) {
	expectTokens(t, `{Ц"2`,
		want{token.LBrace, "{"},
		want{token.Symbol, "Ц"},
		want{token.Symbol, `"`},
		want{token.Number, "2"},
	)
}

func TestUnicodeSymbols(t *testing.T) {
	expectTokens(t, "ȳ?", want{token.Symbol, "ȳ"}, want{token.Symbol, "?"})
	// invalid UTF-8 advances one byte at a time
	toks := lexer.Tokenize("\xffa")
	if len(toks) != 2 || toks[0].Text != "\xff" || toks[1].Text != "a" {
		t.Fatalf("invalid byte: %v", toks)
	}
}

// Table order is observable: earlier groups and earlier entries win.
func TestTableOrder(t *testing.T) {
	cases := []struct {
		input string
		exp   []want
	}{
		{"**", []want{{token.OpCDot, "*"}, {token.OpCDot, "*"}}},
		{"sinh", []want{{token.FuncSin, "sin"}, {token.Symbol, "h"}}},
		{"in", []want{{token.RelNotIn, "in"}}},
		{"int", []want{{token.MiscInt, "int"}}},
		{"ox", []want{{token.OpTimes, "ox"}}},
		{"vvv", []want{{token.OpVee, "vv"}, {token.Symbol, "v"}}},
		{"->", []want{{token.ArrowTo, "->"}}},
		{"+-", []want{{token.OpPlus, "+"}, {token.OpMinus, "-"}}},
		{"-<", []want{{token.OpMinus, "-"}, {token.RelLt, "<"}}},
		{"<<", []want{{token.RelLt, "<"}, {token.RelLt, "<"}}},
		{"langle", []want{{token.LAngle, "langle"}}},
		{"|->", []want{{token.ArrowMapsTo, "|->"}}},
		{"^^^", []want{{token.Hat, "^"}, {token.Hat, "^"}, {token.Hat, "^"}}},
		{"bigwedge", []want{{token.OpBigWedge, "bigwedge"}}},
		{"ddot", []want{{token.UnaryDDot, "ddot"}}},
		{"overline", []want{{token.UnaryBar, "overline"}}},
		{"root", []want{{token.BinaryRoot, "root"}}},
		{"gamma", []want{{token.GreekGamma, "gamma"}}},
		{"lim", []want{{token.MiscLim, "lim"}}},
		{"and", []want{{token.LogicAnd, "and"}}},
		{"{:", []want{{token.LColonBrace, "{:"}}},
		{":}", []want{{token.RColonBrace, ":}"}}},
		{"-:", []want{{token.OpDiv, "-:"}}},
		{`\\`, []want{{token.OpBackslash, `\\`}}},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			expectTokens(t, c.input, c.exp...)
		})
	}
}

// Spans are ordered and disjoint, and every byte outside them is a space
// or a text quote.
func TestSpanPartition(t *testing.T) {
	inputs := []string{
		"sum_(i=1)^n i^3=((n(n+1))/2)^2",
		`[[1, |, 2], [a, b, c]] "x y" .5`,
		"obrace(ubrace(t)_(a))^ba",
		"\t\n  ȳ?{]!(",
	}
	for _, in := range inputs {
		toks := lexer.Tokenize(in)
		covered := make([]bool, len(in))
		prevEnd := uint32(0)
		for _, tok := range toks {
			if tok.Span.Start < prevEnd {
				t.Fatalf("%q: overlapping span %v", in, tok.Span)
			}
			if tok.Span.Slice(in) != tok.Text {
				t.Fatalf("%q: text %q does not match span %v", in, tok.Text, tok.Span)
			}
			for i := tok.Span.Start; i < tok.Span.End; i++ {
				covered[i] = true
			}
			prevEnd = tok.Span.End
		}
		for i, ok := range covered {
			if !ok && !strings.ContainsRune(` "`, rune(in[i])) {
				t.Errorf("%q: byte %d (%q) not covered", in, i, in[i])
			}
		}
	}
}

func TestPeek(t *testing.T) {
	lx := lexer.New("a b")
	p, ok := lx.Peek()
	if !ok || p.Text != "a" {
		t.Fatalf("peek = %v", p)
	}
	n, _ := lx.Next()
	if n != p {
		t.Fatalf("next after peek = %v, want %v", n, p)
	}
	n, _ = lx.Next()
	if n.Text != "b" {
		t.Fatalf("second token = %v", n)
	}
	if _, ok := lx.Next(); ok {
		t.Fatalf("expected end of input")
	}
}
