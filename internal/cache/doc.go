// Package cache provides the sharded LRU cache used to memoize glyph
// metric lookups.
//
// Cache splits its keys over 16 shards, each guarded by its own mutex, so
// concurrent layout passes sharing one metrics provider rarely contend.
// Errors returned by a create function are never cached.
//
//	c := cache.New[glyphKey, metrics.CharInfo](256, hashGlyphKey)
//	ci, err := c.GetOrCreate(key, func() (metrics.CharInfo, error) { ... })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
