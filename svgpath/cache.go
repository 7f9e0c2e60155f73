package svgpath

import (
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/geom"
)

const (
	// shardCount must be a power of 2 for fast modulo via bitwise AND.
	shardCount = 8
	shardMask  = shardCount - 1

	// DefaultCacheCapacity is the total number of paths a Cache keeps when
	// no capacity is given.
	DefaultCacheCapacity = 256
)

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache memoizes Parse for repeated path data, such as icon sets drawn
// every frame. It is a sharded LRU: each shard has its own lock, so
// concurrent lookups of different strings rarely contend.
//
// Parsed paths are stored privately; Parse hands out clones, so callers
// may mutate what they get. Malformed data is never cached.
type Cache struct {
	shards   [shardCount]*cacheShard
	capacity int // per shard
	opts     []geom.PathOption

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheShard struct {
	mu      sync.Mutex
	entries map[string]*cacheNode
	lru     lruList
}

// NewCache creates a cache holding about capacity paths, each parsed with
// opts. If capacity <= 0, DefaultCacheCapacity is used.
func NewCache(capacity int, opts ...geom.PathOption) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Cache{
		capacity: max(1, (capacity+shardCount-1)/shardCount),
		opts:     opts,
	}
	for i := range c.shards {
		c.shards[i] = &cacheShard{entries: make(map[string]*cacheNode)}
	}
	return c
}

func (c *Cache) shard(d string) *cacheShard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(d)) // fnv.Write never returns an error
	return c.shards[h.Sum64()&shardMask]
}

// Parse returns the path for d, parsing it only on the first request.
// The parse runs under the shard lock so concurrent misses for the same
// string parse once.
func (c *Cache) Parse(d string) (*geom.Path, error) {
	s := c.shard(d)
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.entries[d]; ok {
		s.lru.moveToFront(n)
		c.hits.Add(1)
		return n.path.Clone(), nil
	}
	c.misses.Add(1)

	p, err := Parse(d, c.opts...)
	if err != nil {
		return nil, err
	}

	for s.lru.len >= c.capacity {
		oldest := s.lru.tail
		s.lru.remove(oldest)
		delete(s.entries, oldest.key)
		c.evictions.Add(1)
	}
	n := &cacheNode{key: d, path: p}
	s.lru.pushFront(n)
	s.entries[d] = n
	return p.Clone(), nil
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Clear drops every cached path. Counters are kept.
func (c *Cache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*cacheNode)
		s.lru = lruList{}
		s.mu.Unlock()
	}
}

// Stats returns the current counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// cacheNode is both the map value and the LRU list node.
type cacheNode struct {
	key        string
	path       *geom.Path
	prev, next *cacheNode
}

// lruList is a doubly-linked list, most recently used at the head.
type lruList struct {
	head, tail *cacheNode
	len        int
}

func (l *lruList) pushFront(n *cacheNode) {
	n.prev, n.next = nil, l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
}

func (l *lruList) remove(n *cacheNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}

func (l *lruList) moveToFront(n *cacheNode) {
	if n == l.head {
		return
	}
	l.remove(n)
	l.pushFront(n)
}
