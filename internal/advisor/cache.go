package advisor

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"
)

// cacheEntry is one cached suggestion.
type cacheEntry struct {
	Text      string
	ExpiresAt time.Time
}

// SuggestionCache provides in-memory caching of suggestion responses keyed
// by prompt. It exists so a dashboard that re-renders the same computed
// summary does not re-bill the upstream API on every refresh.
//
// The cache is opt-in (ENABLE_SUGGESTION_CACHE=true) and is automatically
// disabled when API_ENV=production.
type SuggestionCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
}

var globalCache *SuggestionCache
var cacheOnce sync.Once

// GetCache returns the global cache instance if caching is enabled,
// otherwise nil.
func GetCache() *SuggestionCache {
	if os.Getenv("ENABLE_SUGGESTION_CACHE") != "true" {
		return nil
	}
	if os.Getenv("API_ENV") == "production" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("SUGGESTION_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}

		globalCache = &SuggestionCache{
			store: make(map[string]*cacheEntry),
			ttl:   ttl,
		}

		go globalCache.cleanup()
	})

	return globalCache
}

// Get retrieves a cached suggestion if present and not expired.
func (c *SuggestionCache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return "", false
	}
	if time.Now().After(entry.ExpiresAt) {
		return "", false
	}
	return entry.Text, true
}

// Set stores a suggestion in the cache.
func (c *SuggestionCache) Set(key, text string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &cacheEntry{
		Text:      text,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries.
func (c *SuggestionCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry)
}

func (c *SuggestionCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// CacheKey creates a deterministic key from the model and prompt.
func CacheKey(model, prompt string) string {
	hash := sha256.Sum256([]byte(model + "\x00" + prompt))
	return hex.EncodeToString(hash[:])
}
