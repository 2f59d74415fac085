// Package token defines the closed set of AsciiMath token kinds.
// Invariants:
//   - Token.Text is a slice of the original input (no copies).
//   - Token.Span matches Text exactly, except Text tokens (quotes excluded).
//   - Every Kind belongs to exactly one Category; categories occupy
//     contiguous ranges of the Kind space.
//   - The None kind never comes out of the lexer. The parser synthesizes it
//     for an operand missing at end of input.
package token
