package builder

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	dualmap "github.com/flywave/go-dualmap"
	"github.com/flywave/go-dualmap/source"
)

type entry struct {
	uri     string
	fc      *dualmap.FeatureCollection
	fetched time.Time
}

func uriHash(uri string) uint32 {
	f := fnv.New32()
	f.Write([]byte(uri))
	return f.Sum32()
}

func isNewer(file string, timestamp time.Time) bool {
	info, err := os.Stat(file)
	if err != nil {
		return true
	}
	return info.ModTime().After(timestamp)
}

// isStale reports whether e must be fetched again. Local files are stale
// once modified, remote collections once older than ttl.
func (e *entry) isStale(ttl time.Duration, now time.Time) bool {
	if !source.IsRemote(e.uri) {
		return isNewer(e.uri, e.fetched)
	}
	return now.Sub(e.fetched) >= ttl
}

// Cache keeps fetched feature collections so that both canvases and
// repeated updates share one fetch. Concurrent misses for the same URI
// are collapsed into a single fetch.
type Cache struct {
	mu      sync.Mutex
	fetcher source.Fetcher
	ttl     time.Duration
	entries map[uint32]*entry
	group   singleflight.Group
	now     func() time.Time
}

func NewCache(f source.Fetcher, ttl time.Duration) *Cache {
	return &Cache{
		fetcher: f,
		ttl:     ttl,
		entries: make(map[uint32]*entry),
		now:     time.Now,
	}
}

type FilesMissingError struct {
	Files []string
}

func (e *FilesMissingError) Error() string {
	return fmt.Sprintf("missing files: %v", e.Files)
}

// Get returns the feature collection of uri, fetching it when absent or
// stale. Callers missing the same uri share one fetch, which runs without
// their cancellation; the source client's timeout bounds it.
func (c *Cache) Get(ctx context.Context, uri string) (*dualmap.FeatureCollection, error) {
	hash := uriHash(uri)
	c.mu.Lock()
	if e, ok := c.entries[hash]; ok && e.uri == uri && !e.isStale(c.ttl, c.now()) {
		c.mu.Unlock()
		return e.fc, nil
	}
	c.mu.Unlock()

	if !source.IsRemote(uri) {
		if _, err := os.Stat(uri); err != nil {
			return nil, &FilesMissingError{Files: []string{uri}}
		}
	}

	// The flight outlives any single caller: a caller whose ctx ends stops
	// waiting, the others keep their shared fetch.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(uri, func() (interface{}, error) {
		fetched := c.now()
		fc, err := c.fetcher.Fetch(flightCtx, uri)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[hash] = &entry{uri: uri, fc: fc, fetched: fetched}
		c.mu.Unlock()
		return fc, nil
	})

	select {
	case <-ctx.Done():
		return nil, eris.Wrapf(ctx.Err(), "builder: wait for %s", uri)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			zap.L().Debug("builder: shared feature fetch", zap.String("uri", uri))
		}
		return res.Val.(*dualmap.FeatureCollection), nil
	}
}

// ClearAll drops every cached collection.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for hash := range c.entries {
		delete(c.entries, hash)
	}
}
