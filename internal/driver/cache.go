package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when CacheEntry or the produced markup changes.
const cacheSchemaVersion uint16 = 1

// Digest identifies a cached conversion.
type Digest [sha256.Size]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// CacheKey hashes everything the markup depends on.
func CacheKey(src string, opts Options) Digest {
	h := sha256.New()
	fmt.Fprintf(h, "polymath/%d/nfc=%t\x00", cacheSchemaVersion, opts.Normalize)
	h.Write([]byte(src))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// CacheEntry is the msgpack payload stored per conversion.
type CacheEntry struct {
	Schema  uint16
	Source  string
	MathML  string
	Created time.Time
}

// DiskCache stores rendered markup by CacheKey. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache opens dir, or $XDG_CACHE_HOME/<app> (~/.cache/<app>) when
// dir is empty, creating it if needed.
func OpenDiskCache(dir, app string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := key.String()
	// two-level fan-out keeps directories small
	return filepath.Join(c.dir, "v1", hexKey[:2], hexKey+".mp")
}

// Put writes an entry atomically (temp file + rename).
func (c *DiskCache) Put(key Digest, entry *CacheEntry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp) //nolint:errcheck
		}
	}()

	entry.Schema = cacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close() //nolint:errcheck
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get looks up key. A missing, stale or undecodable entry is a miss;
// only I/O failures other than absence are returned as errors.
func (c *DiskCache) Get(key Digest, src string) (*CacheEntry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry CacheEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, false, nil
	}
	if entry.Schema != cacheSchemaVersion || entry.Source != src {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Clear removes every cached entry.
func (c *DiskCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "v1"))
}
