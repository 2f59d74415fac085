package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", Span{Start: 2, End: 4}, Span{Start: 6, End: 9}, Span{Start: 2, End: 9}},
		{"nested", Span{Start: 0, End: 10}, Span{Start: 3, End: 4}, Span{Start: 0, End: 10}},
		{"reversed", Span{Start: 6, End: 9}, Span{Start: 2, End: 4}, Span{Start: 2, End: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpanSlice(t *testing.T) {
	src := "sum_b^a"
	if got := SpanOf(0, 3).Slice(src); got != "sum" {
		t.Errorf("Slice() = %q, want %q", got, "sum")
	}
	if got := SpanOf(5, 99).Slice(src); got != "" {
		t.Errorf("out of range Slice() = %q, want empty", got)
	}
	if !SpanOf(4, 4).Empty() {
		t.Error("expected empty span")
	}
}

func TestTextResolve(t *testing.T) {
	text := NewText("ab\ncd\n\nx")
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 4, Col: 1}},
	}
	for _, tt := range tests {
		start, _ := text.Resolve(Span{Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %v, want %v", tt.off, start, tt.want)
		}
	}
}
