package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"polymath"
	"polymath/internal/config"
)

// execute runs the CLI with a config file that disables the cache so the
// user's environment does not leak into results.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "polymath.toml")
	if err := os.WriteFile(cfgPath, []byte("[batch]\ncache = false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"POLYMATH_BROWSER", "POLYMATH_JOBS", "POLYMATH_TRACE_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--color", "off", "--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, _, err := execute(t, "", "convert", "sum_(i=1)^n i")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := polymath.ToMathML("sum_(i=1)^n i") + "\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestConvertReadsStdin(t *testing.T) {
	out, _, err := execute(t, "a/b\n", "convert", "-")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := polymath.ToMathML("a/b") + "\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestConvertTimings(t *testing.T) {
	_, errOut, err := execute(t, "", "--timings", "convert", "x")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, stage := range []string{"tokenize", "parse", "lower", "transform", "render", "total"} {
		if !strings.Contains(errOut, stage) {
			t.Errorf("timings missing %q:\n%s", stage, errOut)
		}
	}
}

func TestTokenizeCommand(t *testing.T) {
	out, _, err := execute(t, "", "tokenize", "--format", "json", "x^2")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var toks []map[string]any
	if err := json.Unmarshal([]byte(out), &toks); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(toks) != 3 {
		t.Errorf("got %d tokens, want 3", len(toks))
	}

	if _, _, err := execute(t, "", "tokenize", "--format", "xml", "x"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseCommand(t *testing.T) {
	out, _, err := execute(t, "", "parse", "--stage", "ast", "[[a,b],[c,d]]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasPrefix(out, "Document") || !strings.Contains(out, "Table 2×2") {
		t.Errorf("unexpected tree:\n%s", out)
	}

	out, _, err = execute(t, "", "parse", "--stage", "lower", "[[a,b],[c,d]]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Contains(out, "Table") {
		t.Errorf("lowered tree should not contain a table:\n%s", out)
	}

	if _, _, err := execute(t, "", "parse", "--stage", "render", "x"); err == nil {
		t.Error("expected error for stage without a tree")
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.am")
	if err := os.WriteFile(path, []byte("a\n\nb/c\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "", "batch", "--ui", "off", path)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	want := path + ":1\t" + polymath.ToMathML("a") + "\n" +
		path + ":3\t" + polymath.ToMathML("b/c") + "\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}

	_, errOut, err := execute(t, "", "batch", "--ui", "off", filepath.Join(dir, "missing.am"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(errOut, "missing.am") {
		t.Errorf("stderr should name the file: %q", errOut)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version", "--format", "json", "--full")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("json: %v", err)
	}
	if payload.Tool != "polymath" || payload.Version == "" || payload.GitCommit == "" {
		t.Errorf("unexpected payload %+v", payload)
	}
}

func TestReadColorMode(t *testing.T) {
	cases := []struct {
		in   string
		tty  bool
		want bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"ON", false, true},
		{"off", true, false},
	}
	for _, tc := range cases {
		got, err := readColorMode(tc.in, tc.tty)
		if err != nil || got != tc.want {
			t.Errorf("readColorMode(%q, %v) = %v, %v", tc.in, tc.tty, got, err)
		}
	}
	if _, err := readColorMode("always", true); err == nil {
		t.Error("expected error")
	}
}

func TestReadUIMode(t *testing.T) {
	mode, err := readUIMode(" Auto ")
	if err != nil || mode != uiModeAuto {
		t.Fatalf("readUIMode = %q, %v", mode, err)
	}
	if !shouldUseTUI(uiModeAuto, true) || shouldUseTUI(uiModeAuto, false) {
		t.Error("auto should follow the terminal")
	}
	if !shouldUseTUI(uiModeOn, false) || shouldUseTUI(uiModeOff, true) {
		t.Error("explicit modes should win")
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("expected error")
	}
}

func TestReadSource(t *testing.T) {
	got, err := readSource("x+1", strings.NewReader("ignored"))
	if err != nil || got != "x+1" {
		t.Errorf("literal: %q, %v", got, err)
	}
	got, err = readSource("-", strings.NewReader("a b \r\n"))
	if err != nil || got != "a b " {
		t.Errorf("stdin: %q, %v", got, err)
	}
}

func TestBatchWritesHeapProfile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.am")
	if err := os.WriteFile(in, []byte("x^2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	memPath := filepath.Join(dir, "mem.pprof")
	if _, _, err := execute(t, "", "batch", "--ui", "off", "--mem-profile", memPath, in); err != nil {
		t.Fatalf("batch: %v", err)
	}
	if info, err := os.Stat(memPath); err != nil || info.Size() == 0 {
		t.Errorf("heap profile not written: %v", err)
	}
}

func TestBatchClearCacheWithNoCache(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.am")
	if err := os.WriteFile(in, []byte("a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cacheDir := filepath.Join(dir, "cache")
	stale := filepath.Join(cacheDir, "v1", "ab", "stale.mp")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "batch", "--ui", "off", "--no-cache", "--clear-cache", "--cache-dir", cacheDir, in)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale entry survived --clear-cache: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "v1")); !os.IsNotExist(err) {
		t.Errorf("--no-cache run should not write entries: %v", err)
	}
}

func TestPageLinger(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		cfg     string
		want    time.Duration
		wantErr bool
	}{
		{"kept by default", nil, "", 0, false},
		{"config delay", nil, "45s", 45 * time.Second, false},
		{"flag wins", []string{"--remove-after", "1m"}, "45s", time.Minute, false},
		{"flag zero keeps", []string{"--remove-after", "0"}, "45s", 0, false},
		{"negative flag", []string{"--remove-after", "-1s"}, "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newConvertCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			cfg := &config.Config{Preview: config.Preview{RemoveAfter: tt.cfg}}
			got, err := pageLinger(cmd, cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("linger = %v, want %v", got, tt.want)
			}
		})
	}
}
