package parser

import (
	"testing"

	"polymath/internal/lexer"
)

func TestMatchBrackets(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"(a)", []int{2, -1, -1}},
		{"(]", []int{1, -1}},
		{"((a)", []int{-1, 3, -1, -1}},
		{")(", []int{-1, -1}},
		{"{:(a):}", []int{4, 3, -1, -1, -1}},
	}
	for _, tt := range tests {
		got := matchBrackets(lexer.Tokenize(tt.input))
		if len(got) != len(tt.want) {
			t.Fatalf("%q: got %v, want %v", tt.input, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: closers = %v, want %v", tt.input, got, tt.want)
				break
			}
		}
	}
}
