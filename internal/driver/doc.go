// Package driver runs the conversion pipeline with tracing and timings, and
// converts many inputs in parallel with an optional on-disk result cache.
//
// The stages are tokenize, parse, lower, transform and render. Convert keeps
// every intermediate result so callers can print any of them.
package driver
