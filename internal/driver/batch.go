package driver

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"polymath/internal/observ"
	"polymath/internal/trace"
)

// BatchOptions configure ConvertFiles.
type BatchOptions struct {
	Options
	Jobs     int        // worker limit; <= 0 means GOMAXPROCS
	Cache    *DiskCache // nil disables caching
	Progress ProgressSink
}

// LineResult is one converted expression.
type LineResult struct {
	Line   int // 1-based line number in the file
	Source string
	MathML string
	Cached bool
}

// FileResult holds the outcome for one input file. Err is set when the file
// could not be read; the other files are still converted.
type FileResult struct {
	Path    string
	Lines   []LineResult
	Err     error
	Timings observ.Report
}

// Expressions splits file content into one expression per non-empty line.
// A trailing CR is dropped so CRLF files behave like LF files.
func Expressions(content string) []LineResult {
	var out []LineResult
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.Trim(text, " ") == "" {
			continue
		}
		out = append(out, LineResult{Line: line, Source: text})
	}
	return out
}

// ConvertFiles converts every file in paths concurrently. Results keep the
// order of paths. The returned error is non-nil only when ctx is cancelled.
func ConvertFiles(ctx context.Context, paths []string, opts BatchOptions) ([]FileResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tr := trace.FromContext(ctx)
	sp := trace.Begin(tr, trace.ScopeDriver, "batch", trace.ParentSpan(ctx))
	sp.WithCount("files", len(paths)).WithCount("jobs", jobs)
	ctx = trace.WithParent(ctx, sp.ID())

	for _, p := range paths {
		emit(opts.Progress, Event{File: p, Status: StatusQueued})
	}

	results := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = convertFile(gctx, path, opts)
			return nil
		})
	}
	err := g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	sp.WithCount("failed", failed)
	elapsed := sp.End("")
	status := StatusDone
	if err != nil {
		status = StatusError
	}
	emit(opts.Progress, Event{Status: status, Err: err, Elapsed: elapsed})
	return results, err
}

func convertFile(ctx context.Context, path string, opts BatchOptions) FileResult {
	tr := trace.FromContext(ctx)
	sp := trace.Begin(tr, trace.ScopeItem, "file:"+path, trace.ParentSpan(ctx))
	ctx = trace.WithParent(ctx, sp.ID())
	started := time.Now()
	res := FileResult{Path: path}

	emit(opts.Progress, Event{File: path, Status: StatusWorking})

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", path, err)
		sp.End(res.Err.Error())
		emit(opts.Progress, Event{File: path, Status: StatusError, Err: res.Err, Elapsed: time.Since(started)})
		return res
	}

	res.Lines = Expressions(string(data))
	cached := 0
	for i := range res.Lines {
		if ctx.Err() != nil {
			break
		}
		hit, timings := convertLine(ctx, &res.Lines[i], opts)
		if hit {
			cached++
		}
		res.Timings = res.Timings.Merge(timings)
		emit(opts.Progress, Event{File: path, Status: StatusWorking, Lines: i + 1, Cached: cached})
	}

	sp.WithCount("lines", len(res.Lines)).WithCount("cached", cached).End("")
	emit(opts.Progress, Event{File: path, Status: StatusDone, Lines: len(res.Lines), Cached: cached, Elapsed: time.Since(started)})
	return res
}

// convertLine fills ln.MathML and reports whether the cache served it.
func convertLine(ctx context.Context, ln *LineResult, opts BatchOptions) (bool, observ.Report) {
	tr := trace.FromContext(ctx)
	key := CacheKey(ln.Source, opts.Options)

	if opts.Cache != nil {
		entry, ok, err := opts.Cache.Get(key, ln.Source)
		if err != nil {
			trace.Point(tr, trace.ScopeItem, "cache-read-failed", trace.ParentSpan(ctx), err.Error)
		}
		if ok {
			ln.MathML = entry.MathML
			ln.Cached = true
			return true, observ.Report{}
		}
	}

	res := Convert(ctx, ln.Source, opts.Options)
	ln.MathML = res.MathML

	if opts.Cache != nil {
		err := opts.Cache.Put(key, &CacheEntry{Source: ln.Source, MathML: res.MathML, Created: time.Now()})
		if err != nil {
			trace.Point(tr, trace.ScopeItem, "cache-write-failed", trace.ParentSpan(ctx), func() string {
				return "line " + strconv.Itoa(ln.Line) + ": " + err.Error()
			})
		}
	}
	return false, res.Timings
}
