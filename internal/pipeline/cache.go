package pipeline

import (
	"encoding/binary"
	"hash/fnv"
	"sync"

	"github.com/jonathan/edu-recommender/internal/embedding"
	"github.com/jonathan/edu-recommender/internal/types"
)

// contentCache holds the catalogue embeddings between runs, keyed by a hash of
// the ordered item id tuple. Editing an item's text without changing the id
// set does not invalidate the cache; that staleness is accepted because the
// catalogue text rarely changes while a process is running. Concurrent writers
// race benignly: last writer wins and every stored value is equally valid.
type contentCache struct {
	mu      sync.Mutex
	valid   bool
	key     uint64
	vectors []embedding.Vector
}

// catalogKey hashes the ordered id tuple with FNV-1a.
func catalogKey(items []types.ContentItem) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, item := range items {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(item.ID)))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// get returns the cached vectors when the key matches the current catalogue.
func (c *contentCache) get(key uint64) ([]embedding.Vector, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.key == key {
		return c.vectors, true
	}
	return nil, false
}

func (c *contentCache) put(key uint64, vectors []embedding.Vector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = true
	c.key = key
	c.vectors = vectors
}
