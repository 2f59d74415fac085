// Package preview writes rendered markup into a standalone HTML page and
// opens it in a browser.
package preview

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options control where the page goes and how it is opened.
type Options struct {
	Dir     string // directory for the page, os.TempDir() when empty
	Browser string // command line, platform default when empty
}

// Starter launches a command without waiting for it to exit.
type Starter func(ctx context.Context, name string, args ...string) error

// StartProcess is the default Starter.
func StartProcess(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Page wraps markup in a minimal HTML document.
func Page(markup string) string {
	return "<html><body>" + markup + "</body></html>"
}

// Write stores the page under a fresh name and returns its absolute path.
func Write(dir, markup string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve preview dir: %w", err)
	}
	p := filepath.Join(abs, "polymath-"+uuid.NewString()+".html")
	if err := os.WriteFile(p, []byte(Page(markup)), 0o644); err != nil {
		return "", fmt.Errorf("write preview: %w", err)
	}
	return p, nil
}

// FileURL returns the file:// URL for an absolute path.
func FileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		// windows drive paths
		u.Path = "/" + u.Path
	}
	return u.String()
}

// Command returns the program and arguments that open target on goos.
// A configured browser may carry its own arguments ("firefox --new-window").
func Command(goos, browser, target string) (string, []string) {
	if fields := strings.Fields(browser); len(fields) > 0 {
		return fields[0], append(fields[1:], target)
	}
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Open writes the page and hands it to the browser. The page path is
// returned even when launching fails so the caller can report it.
func Open(ctx context.Context, markup string, opts Options, start Starter) (string, error) {
	if start == nil {
		start = StartProcess
	}
	p, err := Write(opts.Dir, markup)
	if err != nil {
		return "", err
	}
	name, args := Command(runtime.GOOS, opts.Browser, FileURL(p))
	if err := start(ctx, name, args...); err != nil {
		return p, fmt.Errorf("launch %s: %w", name, err)
	}
	return p, nil
}

// Cleanup removes the page after linger, giving the browser time to read
// it. It returns early with ctx's error if ctx ends first.
func Cleanup(ctx context.Context, path string, linger time.Duration) error {
	if linger > 0 {
		t := time.NewTimer(linger)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
