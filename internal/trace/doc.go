// Package trace records what the conversion pipeline did and how long it took.
//
// A Tracer travels in the context. The driver opens one span per conversion
// and one span per stage:
//
//	ctx = trace.WithTracer(ctx, tr)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "parse", parent)
//	defer sp.End("")
//
// At LevelDebug every stage also emits a point event carrying its dump
// (token list, CST, AST), so a whole conversion can be replayed from the log.
//
// Storage is either a stream (text or NDJSON written as events arrive), an
// in-memory ring, or both.
package trace
