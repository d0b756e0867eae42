package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry[T any] struct {
	Value     T
	ExpiresAt time.Time
}

// ResultCache keeps computed valuations in memory so they can be fetched
// again by ID (e.g. to download the table as CSV). Entries expire after ttl
// and nothing survives a restart.
type ResultCache[T any] struct {
	mu    sync.RWMutex
	store map[string]*entry[T]
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewResultCache creates a cache and starts its cleanup goroutine.
// Call Close to stop it.
func NewResultCache[T any](ttl time.Duration) *ResultCache[T] {
	c := newResultCache[T](ttl, time.Now)
	go c.cleanup(5 * time.Minute)
	return c
}

func newResultCache[T any](ttl time.Duration, now func() time.Time) *ResultCache[T] {
	return &ResultCache[T]{
		store: make(map[string]*entry[T]),
		ttl:   ttl,
		now:   now,
		stop:  make(chan struct{}),
	}
}

// Put stores v under a fresh ID and returns the ID.
func (c *ResultCache[T]) Put(v T) string {
	id := uuid.NewString()
	c.Set(id, v)
	return id
}

// Set stores v under id.
func (c *ResultCache[T]) Set(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &entry[T]{
		Value:     v,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Get returns the value for id if present and not expired.
func (c *ResultCache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	e, ok := c.store[id]
	if !ok {
		return zero, false
	}
	if c.now().After(e.ExpiresAt) {
		return zero, false
	}
	return e.Value, true
}

// Len reports the number of stored entries, expired ones included.
func (c *ResultCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (c *ResultCache[T]) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *ResultCache[T]) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *ResultCache[T]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.store {
		if now.After(e.ExpiresAt) {
			delete(c.store, key)
		}
	}
}
