package driver

import (
	"context"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"polymath/internal/ast"
	"polymath/internal/cst"
	"polymath/internal/lexer"
	"polymath/internal/lower"
	"polymath/internal/mathml"
	"polymath/internal/observ"
	"polymath/internal/parser"
	"polymath/internal/token"
	"polymath/internal/trace"
	"polymath/internal/transform"
	"polymath/internal/treefmt"
)

// Options tune a single conversion.
type Options struct {
	// Normalize applies Unicode NFC to the input before tokenizing, so
	// composed and decomposed spellings produce the same tokens.
	Normalize bool
}

// Result holds every stage output of one conversion.
type Result struct {
	Source      string // input after optional normalization; spans index into it
	Tokens      []token.Token
	CST         cst.Expression
	AST         *ast.Document // lowered, before table recognition
	Transformed *ast.Document
	MathML      string
	Timings     observ.Report
}

// Convert runs the whole pipeline on src. It never fails; ctx only carries
// the tracer and the parent span.
func Convert(ctx context.Context, src string, opts Options) *Result {
	tr := trace.FromContext(ctx)
	root := trace.Begin(tr, trace.ScopeDriver, "convert", trace.ParentSpan(ctx))
	timer := observ.NewTimer()

	if opts.Normalize {
		src = norm.NFC.String(src)
	}
	res := &Result{Source: src}
	root.WithCount("bytes", len(src))

	run := func(stage Stage, fn func(sp *trace.Span) string) {
		idx := timer.Begin(string(stage))
		sp := trace.Begin(tr, trace.ScopeStage, string(stage), root.ID())
		note := fn(sp)
		sp.End("")
		timer.End(idx, note)
	}

	run(StageTokenize, func(sp *trace.Span) string {
		res.Tokens = lexer.Tokenize(src)
		sp.WithCount("tokens", len(res.Tokens))
		trace.Point(tr, trace.ScopeDump, "tokens", sp.ID(), func() string {
			return treefmt.TokensLine(res.Tokens)
		})
		return "tokens=" + strconv.Itoa(len(res.Tokens))
	})

	run(StageParse, func(sp *trace.Span) string {
		res.CST = parser.Parse(res.Tokens)
		trace.Point(tr, trace.ScopeDump, "cst", sp.ID(), func() string {
			return treefmt.FromCST(res.CST).String()
		})
		return ""
	})

	run(StageLower, func(sp *trace.Span) string {
		res.AST = lower.Lower(res.CST)
		n := ast.Count(res.AST.Body)
		sp.WithCount("nodes", n)
		trace.Point(tr, trace.ScopeDump, "ast", sp.ID(), func() string {
			return treefmt.FromDocument(res.AST).String()
		})
		return "nodes=" + strconv.Itoa(n)
	})

	run(StageTransform, func(sp *trace.Span) string {
		res.Transformed = transform.Tables(res.AST)
		tables := countTables(res.Transformed)
		sp.WithCount("tables", tables)
		trace.Point(tr, trace.ScopeDump, "ast", sp.ID(), func() string {
			return treefmt.FromDocument(res.Transformed).String()
		})
		return "tables=" + strconv.Itoa(tables)
	})

	run(StageRender, func(sp *trace.Span) string {
		res.MathML = mathml.Render(res.Transformed)
		sp.WithCount("bytes", len(res.MathML))
		return "bytes=" + strconv.Itoa(len(res.MathML))
	})

	res.Timings = timer.Report()
	root.End("")
	return res
}

func countTables(doc *ast.Document) int {
	n := 0
	ast.Walk(doc.Body, func(e ast.Expr) bool {
		if _, ok := e.(*ast.Table); ok {
			n++
		}
		return true
	})
	return n
}
