package identrank

import "sync"

type queryKey struct {
	query         string
	filetype      string
	maxCandidates int
}

// queryCache memoizes completer answers per (query, filetype, cap). Any
// database mutation invalidates the whole cache; editors mutate rarely
// (on save) and query on every keystroke, so wholesale invalidation is the
// simple trade.
type queryCache struct {
	mutex   sync.Mutex
	entries map[queryKey][]string
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[queryKey][]string)}
}

// Find looks up a memoized answer.
func (c *queryCache) Find(key queryKey) ([]string, bool) {
	if len(key.query) == 0 {
		return nil, false
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	candidates, ok := c.entries[key]
	return candidates, ok
}

// Add memoizes an answer. Empty queries are not cached.
func (c *queryCache) Add(key queryKey, candidates []string) {
	if len(key.query) == 0 {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if len(c.entries) >= maxQueryCacheEntries {
		c.entries = make(map[queryKey][]string)
	}
	c.entries[key] = candidates
}

// Clear drops every memoized answer.
func (c *queryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[queryKey][]string)
}
