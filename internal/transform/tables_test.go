package transform_test

import (
	"testing"

	"polymath/internal/ast"
	"polymath/internal/lexer"
	"polymath/internal/lower"
	"polymath/internal/parser"
	"polymath/internal/transform"
)

func build(src string) *ast.Document {
	return lower.Lower(parser.Parse(lexer.Tokenize(src)))
}

func tableOf(t *testing.T, src string) *ast.Table {
	t.Helper()
	doc := transform.Tables(build(src))
	if len(doc.Body) != 1 {
		t.Fatalf("%q: expected one top-level node, got %d", src, len(doc.Body))
	}
	tbl, ok := doc.Body[0].(*ast.Table)
	if !ok {
		t.Fatalf("%q: expected *ast.Table, got %T", src, doc.Body[0])
	}
	return tbl
}

func shape(tbl *ast.Table) []int {
	out := make([]int, len(tbl.Rows))
	for i, r := range tbl.Rows {
		out[i] = len(r.Cols)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTableShapes(t *testing.T) {
	tests := []struct {
		input string
		shape []int
		seps  []int
	}{
		{"[[1,2], [2, 23]]", []int{2, 2}, nil},
		{"[[1],[sum_1^2a]]", []int{1, 1}, nil},
		{"[[1, |, 2], [a, b, c]]", []int{3, 3}, []int{1}},
		{"{:[log_2 16 = 4,], [(2*5-3)/6, ]}", []int{2, 2}, nil},
		{"((a))", []int{1}, nil},
		{"(a,b)", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if tt.shape == nil {
				doc := transform.Tables(build(tt.input))
				if _, ok := doc.Body[0].(*ast.Group); !ok {
					t.Fatalf("expected plain group, got %T", doc.Body[0])
				}
				return
			}
			tbl := tableOf(t, tt.input)
			if got := shape(tbl); !equalInts(got, tt.shape) {
				t.Errorf("shape = %v, want %v", got, tt.shape)
			}
			if !equalInts(tbl.Separators, tt.seps) {
				t.Errorf("separators = %v, want %v", tbl.Separators, tt.seps)
			}
		})
	}
}

func TestPreconditionsFallBack(t *testing.T) {
	inputs := []string{
		"[[1,2],[3]]",     // unequal comma counts
		"[[1,2],x]",       // non-group row
		"[[1,2];[3,4]]",   // separator is not a comma
		`[[1,2]"," [3,4]]`, // text comma is not a separator
	}
	for _, in := range inputs {
		doc := transform.Tables(build(in))
		ast.Walk(doc.Body, func(e ast.Expr) bool {
			if _, ok := e.(*ast.Table); ok {
				t.Errorf("%q: unexpected table", in)
			}
			return true
		})
	}
}

func TestNestedTables(t *testing.T) {
	doc := transform.Tables(build("[[ [(1,2),(3,4)] ,0],[0,0]]"))
	tables := 0
	ast.Walk(doc.Body, func(e ast.Expr) bool {
		if _, ok := e.(*ast.Table); ok {
			tables++
		}
		return true
	})
	if tables != 2 {
		t.Fatalf("expected outer and inner table, found %d", tables)
	}
}

func TestInputUnchanged(t *testing.T) {
	doc := build("[[1,2],[3,4]]")
	_ = transform.Tables(doc)
	if _, ok := doc.Body[0].(*ast.Group); !ok {
		t.Fatalf("input tree was modified: %T", doc.Body[0])
	}
}

func TestPipeRemovedFromEveryRow(t *testing.T) {
	tbl := tableOf(t, "[[1,2],[|,3]]")
	if got := shape(tbl); !equalInts(got, []int{2, 1}) {
		t.Fatalf("shape = %v, want [2 1]", got)
	}
	if len(tbl.Separators) != 0 {
		t.Fatalf("separators come from the first row only, got %v", tbl.Separators)
	}
}
