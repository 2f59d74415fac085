// Package fuzztests holds fuzz harnesses for the conversion pipeline. They
// check that conversion terminates on arbitrary input and is deterministic,
// and that the tokens partition the input.
//
// Seeds come from testdata/*.am (one expression per line) plus a fixed set
// of degenerate inputs: unmatched brackets, stray quotes, control bytes.
package fuzztests
