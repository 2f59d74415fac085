// Package transform rewrites lowered trees before rendering.
//
// Tables recognizes matrices: a group whose children alternate between
// groups and bare commas, "[(a,b),(c,d)]", becomes an *ast.Table with one
// row per inner group and one column per comma-separated cell. Anything
// that does not fit the shape is left as a group.
package transform
