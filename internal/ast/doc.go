// Package ast defines the abstract syntax tree the renderer consumes.
//
// Lowering flattens the right-nested CST sequences into Expressions and
// corrects the fraction denominator; the table transform then replaces
// qualifying groups with *Table. Trees are owned: no node is shared between
// two parents.
package ast
