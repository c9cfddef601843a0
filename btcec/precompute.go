// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"sync"

	"github.com/decred/dcrd/lru"
)

const (
	// DefaultCacheTables is the default number of precomputed tables kept
	// by DefaultPrecomputes.
	DefaultCacheTables = 16
)

// PrecomputeCache is a side table of wNAF precomputations keyed by point
// identifier rather than by point, so that it never keeps a point alive.
// Each registered point has a window width; tables are built lazily on the
// first multiplication and retained for the most recently used points up to
// the configured limit.  Callers may drop entries explicitly with Evict and
// Clear.
//
// A PrecomputeCache is safe for concurrent use.
type PrecomputeCache struct {
	mtx     sync.Mutex
	windows map[uint64]int
	tables  map[uint64][]*Point
	recent  lru.Cache
	limit   int
}

// NewPrecomputeCache returns a cache retaining at most maxTables tables.
func NewPrecomputeCache(maxTables uint) *PrecomputeCache {
	if maxTables == 0 {
		maxTables = DefaultCacheTables
	}
	return &PrecomputeCache{
		windows: make(map[uint64]int),
		tables:  make(map[uint64][]*Point),
		recent:  lru.NewCache(maxTables),
		limit:   int(maxTables),
	}
}

// DefaultPrecomputes is the cache used by Point.Multiply and
// Point.MultiplyUnsafe.  The generator is registered with DefaultWindow.
var DefaultPrecomputes = func() *PrecomputeCache {
	c := NewPrecomputeCache(DefaultCacheTables)
	c.windows[generator.cacheID()] = DefaultWindow
	return c
}()

// cacheID returns the identifier of the point in precomputation caches,
// assigning one on first use.
func (p *Point) cacheID() uint64 {
	if id := p.id.Load(); id != 0 {
		return id
	}
	p.id.CompareAndSwap(0, nextPointID.Add(1))
	return p.id.Load()
}

// SetWindow registers the window width used for multiplications of p and
// discards any table built for a previous width.
func (c *PrecomputeCache) SetWindow(p *Point, w int) error {
	if err := validateWindow(w); err != nil {
		return err
	}

	id := p.cacheID()
	c.mtx.Lock()
	c.windows[id] = w
	delete(c.tables, id)
	c.recent.Delete(id)
	c.mtx.Unlock()

	log.Tracef("Registered window %d for point %d", w, id)
	return nil
}

// Window returns the registered window width of p, 1 when none is set.
func (c *PrecomputeCache) Window(p *Point) int {
	id := p.id.Load()
	if id == 0 {
		return 1
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	if w, ok := c.windows[id]; ok {
		return w
	}
	return 1
}

// HasCache returns whether p uses a window wider than 1.
func (c *PrecomputeCache) HasCache(p *Point) bool {
	return c.Window(p) != 1
}

// Evict forgets both the window registration and the table of p.
func (c *PrecomputeCache) Evict(p *Point) {
	id := p.id.Load()
	if id == 0 {
		return
	}

	c.mtx.Lock()
	delete(c.windows, id)
	delete(c.tables, id)
	c.recent.Delete(id)
	c.mtx.Unlock()
}

// Clear drops every built table.  Window registrations are kept so tables
// are rebuilt on demand.
func (c *PrecomputeCache) Clear() {
	c.mtx.Lock()
	for id := range c.tables {
		c.recent.Delete(id)
	}
	c.tables = make(map[uint64][]*Point)
	c.mtx.Unlock()
}

// Len returns the number of tables currently held.
func (c *PrecomputeCache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.tables)
}

// table returns the window width and the wNAF table for p.  Width 1 tables
// are cheap and never stored.  Tables are converted to affine form before
// they are stored so later additions see Z = 1.
func (c *PrecomputeCache) table(p *Point, bits int) (int, []*Point) {
	w := c.Window(p)
	if w == 1 {
		return w, precomputeWindow(p, w, bits)
	}

	id := p.cacheID()
	c.mtx.Lock()
	if t, ok := c.tables[id]; ok {
		c.recent.Add(id)
		c.mtx.Unlock()
		return w, t
	}
	c.mtx.Unlock()

	// Build outside of the lock.  Concurrent builders produce identical
	// tables and the first one stored wins.
	t := BatchNormalize(precomputeWindow(p, w, bits))

	c.mtx.Lock()
	defer c.mtx.Unlock()
	if existing, ok := c.tables[id]; ok {
		c.recent.Add(id)
		return w, existing
	}
	if cw, ok := c.windows[id]; !ok || cw != w {
		// The registration changed while building, so hand out the table
		// without retaining it.
		return w, t
	}
	c.tables[id] = t
	c.recent.Add(id)

	// The LRU set evicts the least recently used id once it is full.
	// Drop the table of the id it no longer holds.  Probing with Contains
	// refreshes the surviving ids, so the new id is touched again last.
	if len(c.tables) > c.limit {
		for tid := range c.tables {
			if tid != id && !c.recent.Contains(tid) {
				delete(c.tables, tid)
				log.Debugf("Evicted precomputed table for point %d",
					tid)
			}
		}
		c.recent.Add(id)
	}

	log.Debugf("Built %d-point wNAF table (w=%d) for point %d", len(t), w,
		id)
	return w, t
}

// Precompute registers p with window width w in DefaultPrecomputes.  Unless
// lazy is set the table is built immediately.  It returns p for chaining.
func (p *Point) Precompute(w int, lazy bool) (*Point, error) {
	if err := DefaultPrecomputes.SetWindow(p, w); err != nil {
		return nil, err
	}
	if !lazy {
		DefaultPrecomputes.table(p, secp256k1.endoBits)
	}
	return p, nil
}
