// Package treefmt prints the intermediate stages of a conversion: the token
// stream, the concrete syntax tree and the lowered tree. Every dump comes in
// a pretty form for terminals and a JSON form for tooling.
package treefmt
