package cache

import (
	"fmt"
	"slices"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
	"reset-bridger/internal/projection"
)

// DefaultSize is the number of results kept in memory by default.
const DefaultSize = 1024

// Stats counts cache lookups.
type Stats struct {
	Hits     int64
	DiskHits int64
	Misses   int64
}

// Cache is a two-level projection cache: an in-memory LRU in front of an
// optional DiskCache. It is safe for concurrent use.
type Cache struct {
	mem  *lru.Cache[Digest, *projection.Result]
	disk *DiskCache

	hits     atomic.Int64
	diskHits atomic.Int64
	misses   atomic.Int64
}

// New creates a cache holding up to size results in memory. disk may be nil.
func New(size int, disk *DiskCache) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}

	mem, err := lru.New[Digest, *projection.Result](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	return &Cache{mem: mem, disk: disk}, nil
}

// Get returns the cached result for key, linked to super. The returned
// result is a copy the caller may modify.
func (c *Cache) Get(key Digest, super *model.ClassInterface) (*projection.Result, bool, error) {
	if res, ok := c.mem.Get(key); ok {
		c.hits.Add(1)
		return relink(res, super), true, nil
	}

	p, ok, err := c.disk.Get(key)
	if err != nil || !ok {
		c.misses.Add(1)
		return nil, false, err
	}

	res, err := p.Restore(super)
	if err != nil {
		c.misses.Add(1)
		return nil, false, err
	}

	c.diskHits.Add(1)
	c.mem.Add(key, relink(res, super))

	return res, true, nil
}

// Put stores res under key in memory and, when configured, on disk.
func (c *Cache) Put(key Digest, res *projection.Result) error {
	c.mem.Add(key, relink(res, res.Class.Superclass))

	if err := c.disk.Put(key, NewPayload(res)); err != nil {
		return fmt.Errorf("cache: write %s: %w", key, err)
	}

	return nil
}

// Len returns the number of results held in memory.
func (c *Cache) Len() int {
	return c.mem.Len()
}

// Stats returns lookup counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:     c.hits.Load(),
		DiskHits: c.diskHits.Load(),
		Misses:   c.misses.Load(),
	}
}

func relink(res *projection.Result, super *model.ClassInterface) *projection.Result {
	class := res.Class.Clone()
	class.Superclass = super

	return &projection.Result{
		Class:       class,
		Diagnostics: diagnostic.Diagnostics{Items: slices.Clone(res.Diagnostics.Items)},
		Bindings:    slices.Clone(res.Bindings),
	}
}
