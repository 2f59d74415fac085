// Package polymath converts AsciiMath notation to presentation MathML.
//
//	polymath.ToMathML("sum_(i=1)^n i")
//	// <math display="block"><munderover><mo>&#x2211;</mo>...</math>
//
// Conversion is total: every input yields markup, and identical input
// yields identical output. Unrecognized text degrades to plain identifiers
// instead of failing. Conversions share no state and may run concurrently.
package polymath

import (
	"context"

	"polymath/internal/driver"
)

// Options tune Convert.
type Options = driver.Options

// Result exposes every stage of a conversion.
type Result = driver.Result

// ToMathML converts src and returns a <math display="block"> element.
func ToMathML(src string) string {
	return driver.Convert(context.Background(), src, Options{}).MathML
}

// Convert runs the pipeline with options and keeps the intermediate
// tokens and trees. A tracer attached to ctx receives stage events.
func Convert(ctx context.Context, src string, opts Options) *Result {
	return driver.Convert(ctx, src, opts)
}
