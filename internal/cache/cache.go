package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the default maximum number of entries per shard.
	DefaultCapacity = 256

	shardMask = ShardCount - 1
)

// Hasher computes the hash used to pick a key's shard.
type Hasher[K any] func(K) uint64

// Cache is a thread-safe, sharded LRU cache.
type Cache[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*list.Element
	lru     *list.List // front is most recently used
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding up to capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int, hasher Hasher[K]) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*list.Element),
			lru:     list.New(),
		}
	}
	return c
}

func (c *Cache[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. create runs with the shard locked, so it is called at most
// once per missing key. A non-nil error from create is returned and
// nothing is cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		s.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*entry[K, V]).value, nil
	}
	c.misses.Add(1)

	value, err := create()
	if err != nil {
		return value, err
	}
	c.store(s, key, value)
	return value, nil
}

// store inserts a missing key. Caller must hold s.mu.
func (c *Cache[K, V]) store(s *shard[K, V], key K, value V) {
	for s.lru.Len() >= c.capacity {
		oldest := s.lru.Back()
		s.lru.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry[K, V]).key)
		c.evictions.Add(1)
	}
	s.entries[key] = s.lru.PushFront(&entry[K, V]{key: key, value: value})
}

// Len returns the number of entries across all shards.
func (c *Cache[K, V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*list.Element)
		s.lru.Init()
		s.mu.Unlock()
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns the current statistics.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
