// Package cache holds recently rendered digests so identical
// concurrent commands collapse onto one upstream call's result.
package cache

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
)

type entry struct {
	text     string
	storedAt time.Time
}

type Cache struct {
	mu            sync.RWMutex
	entries       map[string]entry
	ttl           time.Duration
	cleanupTicker *time.Ticker
	stopChan      chan struct{}
}

// New builds a digest cache with the given TTL. A non-positive TTL
// disables caching: Get always misses and Set is a no-op.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries:  make(map[string]entry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	if ttl > 0 {
		c.cleanupTicker = time.NewTicker(ttl)
		go c.cleanup()
	}

	return c
}

// Key derives the cache key for a command: league, window and watch
// terms all change the rendered output, so all three participate.
func Key(cmd models.Command) string {
	terms := cmd.WatchTerms()
	sort.Strings(terms)
	return cmd.League + "|" + strconv.Itoa(cmd.LookbackDays) + "|" + strings.Join(terms, ",")
}

func (c *Cache) Get(key string) (string, bool) {
	if c.ttl <= 0 {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Since(e.storedAt) > c.ttl {
		return "", false
	}
	return e.text, true
}

func (c *Cache) Set(key, text string) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{text: text, storedAt: time.Now()}
}

func (c *Cache) cleanup() {
	for {
		select {
		case <-c.cleanupTicker.C:
			c.performCleanup()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Cache) performCleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-c.ttl)
	for key, e := range c.entries {
		if e.storedAt.Before(cutoff) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) Close() {
	if c.cleanupTicker != nil {
		c.cleanupTicker.Stop()
	}
	close(c.stopChan)
}

func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"entries": len(c.entries),
		"ttl":     c.ttl.String(),
	}
}
