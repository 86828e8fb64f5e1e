package fenglish

import "sync"

// Cache stores word spellings in memory so repeated words in a batch are
// segmented once. It is safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	words map[string][]string
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		words: make(map[string][]string),
	}
}

// Add stores the spellings of word
func (c *Cache) Add(word string, spellings []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.words[word] = spellings
}

// Get retrieves the spellings of word. The returned slice must not be
// modified.
func (c *Cache) Get(word string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spellings, ok := c.words[word]
	return spellings, ok
}

// Len returns the number of cached words
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.words)
}
