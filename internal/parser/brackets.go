package parser

import "polymath/internal/token"

// matchBrackets returns, for every left bracket index, the index of the
// right bracket that balances it, or -1. Other indices hold -1 as well.
//
// Stack matching is equivalent to scanning forward from each opener with a
// depth counter, without the quadratic cost on deeply nested input.
func matchBrackets(toks []token.Token) []int {
	closers := make([]int, len(toks))
	stack := make([]int, 0, 8)
	for i, tok := range toks {
		closers[i] = -1
		switch {
		case tok.IsLeftBracket():
			stack = append(stack, i)
		case tok.IsRightBracket():
			if n := len(stack); n > 0 {
				closers[stack[n-1]] = i
				stack = stack[:n-1]
			}
		}
	}
	return closers
}
