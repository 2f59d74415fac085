package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"polymath/internal/config"
	"polymath/internal/driver"
	"polymath/internal/observ"
	"polymath/internal/prof"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] <file>...",
		Short: "Convert every expression in one or more files",
		Long: `Batch reads files with one AsciiMath expression per line and converts
them in parallel. Blank lines are skipped. Results are cached on disk.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}
	cmd.Flags().IntP("jobs", "j", 0, "max parallel files (0 = config or GOMAXPROCS)")
	cmd.Flags().Bool("no-cache", false, "disable the result cache")
	cmd.Flags().String("cache-dir", "", "cache directory (default $XDG_CACHE_HOME/polymath)")
	cmd.Flags().Bool("clear-cache", false, "remove cached results before converting")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("cpu-profile", "", "write a CPU profile to file")
	cmd.Flags().String("mem-profile", "", "write a heap profile to file")
	cmd.Flags().String("runtime-trace", "", "write a Go runtime trace to file")
	return cmd
}

type batchFlags struct {
	jobs       int
	noCache    bool
	cacheDir   string
	clearCache bool
	format     string
	ui         uiMode
	profile    prof.Options
}

func readBatchFlags(cmd *cobra.Command) (batchFlags, error) {
	var bf batchFlags
	var err error
	if bf.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return bf, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if bf.jobs < 0 {
		return bf, fmt.Errorf("--jobs must not be negative")
	}
	if bf.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return bf, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if bf.cacheDir, err = cmd.Flags().GetString("cache-dir"); err != nil {
		return bf, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if bf.clearCache, err = cmd.Flags().GetBool("clear-cache"); err != nil {
		return bf, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if bf.format, err = cmd.Flags().GetString("format"); err != nil {
		return bf, fmt.Errorf("failed to get format flag: %w", err)
	}
	if bf.format != "text" && bf.format != "json" {
		return bf, fmt.Errorf("unknown format: %s", bf.format)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return bf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if bf.ui, err = readUIMode(uiFlag); err != nil {
		return bf, err
	}
	if bf.profile.CPU, err = cmd.Flags().GetString("cpu-profile"); err != nil {
		return bf, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if bf.profile.Mem, err = cmd.Flags().GetString("mem-profile"); err != nil {
		return bf, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if bf.profile.Trace, err = cmd.Flags().GetString("runtime-trace"); err != nil {
		return bf, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return bf, nil
}

// batchOptions merges flags over the [batch] config section.
func batchOptions(cmd *cobra.Command, cfg *config.Config, bf batchFlags) (driver.BatchOptions, error) {
	opts := driver.BatchOptions{
		Options: convertOptions(cmd, cfg),
		Jobs:    bf.jobs,
	}
	if opts.Jobs == 0 {
		opts.Jobs = cfg.Batch.Jobs
	}
	useCache := !bf.noCache && cfg.Batch.CacheEnabled()
	// --clear-cache is honoured even when the cache is not used for this run.
	if !useCache && !bf.clearCache {
		return opts, nil
	}
	dir := bf.cacheDir
	if dir == "" {
		dir = cfg.Batch.CacheDir
	}
	cache, err := driver.OpenDiskCache(dir, "polymath")
	if err != nil {
		return opts, err
	}
	if bf.clearCache {
		if err := cache.Clear(); err != nil {
			return opts, fmt.Errorf("clear cache: %w", err)
		}
	}
	if useCache {
		opts.Cache = cache
	}
	return opts, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	bf, err := readBatchFlags(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts, err := batchOptions(cmd, cfg, bf)
	if err != nil {
		return err
	}

	if bf.profile.Enabled() {
		session, err := prof.Start(bf.profile)
		if err != nil {
			return err
		}
		defer func() {
			if err := session.Stop(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
			}
		}()
	}

	var results []driver.FileResult
	if shouldUseTUI(bf.ui, isTerminal(os.Stderr)) {
		results, err = runBatchWithUI(cmd.Context(), "polymath batch", args, opts)
	} else {
		results, err = driver.ConvertFiles(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if bf.format == "json" {
		err = writeBatchJSON(out, results)
	} else {
		err = writeBatchText(out, results)
	}
	if err != nil {
		return err
	}

	if showTimings(cmd) {
		var total observ.Report
		for _, fr := range results {
			total = total.Merge(fr.Timings)
		}
		fmt.Fprint(cmd.ErrOrStderr(), total.String())
	}

	failed := 0
	for _, fr := range results {
		if fr.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", fr.Err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
	}
	return nil
}

func writeBatchText(w io.Writer, results []driver.FileResult) error {
	for _, fr := range results {
		for _, ln := range fr.Lines {
			if _, err := fmt.Fprintf(w, "%s:%d\t%s\n", fr.Path, ln.Line, ln.MathML); err != nil {
				return err
			}
		}
	}
	return nil
}

type batchLineJSON struct {
	Line   int    `json:"line"`
	Source string `json:"source"`
	MathML string `json:"mathml"`
	Cached bool   `json:"cached,omitempty"`
}

type batchFileJSON struct {
	Path  string          `json:"path"`
	Lines []batchLineJSON `json:"lines"`
	Error string          `json:"error,omitempty"`
}

func writeBatchJSON(w io.Writer, results []driver.FileResult) error {
	payload := make([]batchFileJSON, 0, len(results))
	for _, fr := range results {
		item := batchFileJSON{Path: fr.Path, Lines: make([]batchLineJSON, 0, len(fr.Lines))}
		if fr.Err != nil {
			item.Error = fr.Err.Error()
		}
		for _, ln := range fr.Lines {
			item.Lines = append(item.Lines, batchLineJSON{
				Line:   ln.Line,
				Source: ln.Source,
				MathML: ln.MathML,
				Cached: ln.Cached,
			})
		}
		payload = append(payload, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(payload)
}
