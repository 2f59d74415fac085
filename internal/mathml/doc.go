// Package mathml renders a transformed AST as presentation MathML.
//
// Output is a single <math display="block"> element. Rendering is total and
// deterministic; character data from the input is emitted as written, so
// the renderer never escapes anything itself.
package mathml
