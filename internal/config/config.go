// Package config loads polymath.toml or polymath.yaml. Absence of a config
// file is not an error; the zero-value defaults apply.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Candidate file names, in lookup order within each directory.
var FileNames = []string{"polymath.toml", "polymath.yaml", "polymath.yml"}

type Config struct {
	Preview Preview `toml:"preview" yaml:"preview"`
	Batch   Batch   `toml:"batch" yaml:"batch"`
	Input   Input   `toml:"input" yaml:"input"`
	Trace   Trace   `toml:"trace" yaml:"trace"`

	// Path of the file the config was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type Preview struct {
	Browser string `toml:"browser" yaml:"browser"` // empty = platform default
	// RemoveAfter deletes the generated page after a delay ("30s"); empty
	// or "0" keeps it.
	RemoveAfter string `toml:"remove_after" yaml:"remove_after"`
}

// Linger parses RemoveAfter. Zero means the page is kept.
func (p Preview) Linger() (time.Duration, error) {
	if strings.TrimSpace(p.RemoveAfter) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(p.RemoveAfter))
	if err != nil {
		return 0, fmt.Errorf("[preview].remove_after: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("[preview].remove_after must not be negative")
	}
	return d, nil
}

type Batch struct {
	Jobs     int    `toml:"jobs" yaml:"jobs"` // 0 = GOMAXPROCS
	Cache    *bool  `toml:"cache" yaml:"cache"`
	CacheDir string `toml:"cache_dir" yaml:"cache_dir"`
}

// CacheEnabled reports the cache setting, which defaults to on.
func (b Batch) CacheEnabled() bool {
	return b.Cache == nil || *b.Cache
}

type Input struct {
	Normalize bool `toml:"normalize" yaml:"normalize"`
}

type Trace struct {
	Level  string `toml:"level" yaml:"level"`
	Output string `toml:"output" yaml:"output"`
}

// Find walks up from startDir and returns the first config file found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path, or discovers a file from the working directory when
// path is empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		found, ok, err := Find(".")
		if err != nil {
			return nil, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		var err error
		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a single file; the format follows the extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undec := meta.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
		}
	}
	if cfg.Batch.Jobs < 0 {
		return nil, fmt.Errorf("%s: [batch].jobs must not be negative", path)
	}
	if _, err := cfg.Preview.Linger(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("POLYMATH_BROWSER"); ok {
		c.Preview.Browser = v
	}
	if v, ok := lookup("POLYMATH_JOBS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return fmt.Errorf("POLYMATH_JOBS: invalid value %q", v)
		}
		c.Batch.Jobs = n
	}
	if v, ok := lookup("POLYMATH_TRACE_LEVEL"); ok {
		c.Trace.Level = v
	}
	return nil
}
