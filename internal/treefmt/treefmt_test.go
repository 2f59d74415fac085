package treefmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"polymath/internal/lexer"
	"polymath/internal/lower"
	"polymath/internal/parser"
	"polymath/internal/source"
	"polymath/internal/transform"
)

func TestFormatTokensPretty(t *testing.T) {
	src := "alpha+1"
	toks := lexer.Tokenize(src)
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, source.NewText(src), TokenOptions{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	checks := []struct {
		line int
		want []string
	}{
		{0, []string{"  1: Alpha", `"alpha"`, "1:1-1:6", "Greek", "→ &#x3B1;"}},
		{1, []string{"  2: Plus", `"+"`, "1:6-1:7", "Operation", "→ +"}},
		{2, []string{"  3: Number", `"1"`, "1:7-1:8", "Number"}},
	}
	for _, c := range checks {
		for _, w := range c.want {
			if !strings.Contains(lines[c.line], w) {
				t.Errorf("line %d = %q, missing %q", c.line, lines[c.line], w)
			}
		}
	}
}

func TestPrettyAlignsWideText(t *testing.T) {
	src := `"日本" x`
	toks := lexer.Tokenize(src)
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, source.NewText(src), TokenOptions{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	// both span columns start at the same display column
	col := func(s string) int { return 5 + strings.Index(s[5:], "1:") }
	a := lines[0][:col(lines[0])]
	b := lines[1][:col(lines[1])]
	if w1, w2 := displayWidth(a), displayWidth(b); w1 != w2 {
		t.Errorf("misaligned: %q (%d) vs %q (%d)", a, w1, b, w2)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, lexer.Tokenize("x ll")); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d tokens", len(out))
	}
	if out[1].Kind != "Mlt" || out[1].Category != "Relational" || out[1].Span.Start != 2 || out[1].Span.End != 4 {
		t.Errorf("token 1 = %+v", out[1])
	}
	if !strings.HasPrefix(out[1].Renders, "fragment ") {
		t.Errorf("renders = %q", out[1].Renders)
	}
}

func TestTokensLine(t *testing.T) {
	got := TokensLine(lexer.Tokenize(`a_"b c"`))
	want := "Symbol(a) Underscore(_) Text(b c)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCSTTree(t *testing.T) {
	got := FromCST(parser.Parse(lexer.Tokenize("a/b"))).String()
	want := strings.Join([]string{
		"Frac @0-3",
		`├─ Symbol Symbol "a" @0-1`,
		"└─ Seq @2-3",
		`   ├─ Symbol Symbol "b" @2-3`,
		"   └─ ε",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestASTTreeWithTable(t *testing.T) {
	doc := transform.Tables(lower.Lower(parser.Parse(lexer.Tokenize("[[1,2],[3,4]]"))))
	got := FromDocument(doc).String()
	for _, want := range []string{"Document\n", "└─ Table 2×2\n", "Row[0]", "Col[1]", `Literal Number "4" @10-11`} {
		if !strings.Contains(got, want) {
			t.Errorf("tree lacks %q:\n%s", want, got)
		}
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, FromDocument(doc)); err != nil {
		t.Fatal(err)
	}
	var n Node
	if err := json.Unmarshal(buf.Bytes(), &n); err != nil {
		t.Fatal(err)
	}
	if n.Label != "Document" || len(n.Children) != 1 || len(n.Children[0].Children) != 2 {
		t.Errorf("json tree = %+v", n)
	}
}

func TestEmptyTrees(t *testing.T) {
	if got := FromCST(parser.Parse(nil)).String(); got != "ε\n" {
		t.Errorf("cst = %q", got)
	}
	if got := FromDocument(lower.Lower(parser.Parse(nil))).String(); got != "Document\n" {
		t.Errorf("ast = %q", got)
	}
}

func displayWidth(s string) int { return runewidth.StringWidth(s) }
