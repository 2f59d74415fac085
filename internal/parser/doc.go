// Package parser turns a token slice into a concrete syntax tree with a
// predictive, backtracking-free recursive descent.
//
// Parsing is total: every token sequence yields a tree. Tokens that fit no
// production (stray right brackets, a '/' with nothing before it) become
// Symbols, and a missing operand at the end of input or of a group becomes
// a Symbol holding a None token with an empty span.
//
// Groups close at the first right bracket that balances the opener,
// counting any left bracket as +1 and any right bracket as -1 regardless of
// variant, so "(a]" is a group. An opener with no balancing closer is a
// plain Symbol.
package parser
