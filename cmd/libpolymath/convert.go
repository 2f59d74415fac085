package main

import (
	"unicode/utf8"

	"polymath"
)

// convertBytes is the Go side of polymath_to_math_ml. It reports false and
// an empty string for input that is not valid UTF-8.
func convertBytes(src []byte) (string, bool) {
	if !utf8.Valid(src) {
		return "", false
	}
	return polymath.ToMathML(string(src)), true
}

func main() {}
