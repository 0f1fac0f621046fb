package abicache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
)

// Option configures a Cache
type Option func(*Cache)

// WithTTL expires entries ttl after they were fetched.
// A zero ttl keeps entries forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

type entry struct {
	abi     json.RawMessage
	fetched time.Time
}

// Cache is an ABI provider which remembers what it
// fetched from source.
type Cache struct {
	source session.ABIProvider
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[antelope.Name]entry
}

// New returns a Cache in front of source
func New(source session.ABIProvider, opts ...Option) *Cache {
	c := &Cache{
		source:  source,
		now:     time.Now,
		entries: make(map[antelope.Name]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) lookup(account antelope.Name) (json.RawMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[account]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.fetched) >= c.ttl {
		return nil, false
	}
	return e.abi, true
}

// GetABI returns the cached ABI for account, fetching
// it from the source on a miss.
func (c *Cache) GetABI(ctx context.Context, account antelope.Name) (json.RawMessage, error) {
	if abi, ok := c.lookup(account); ok {
		log.Tracef("abi cache hit for %s", account)
		return abi, nil
	}

	if c.source == nil {
		return nil, errors.Wrapf(ErrABINotFound, "%s is not cached", account)
	}

	log.Debugf("abi cache miss for %s", account)
	abi, err := c.source.GetABI(ctx, account)
	if err != nil {
		return nil, err
	}

	c.Set(account, abi)
	return abi, nil
}

// Set stores abi for account
func (c *Cache) Set(account antelope.Name, abi json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[account] = entry{abi: abi, fetched: c.now()}
}

// Invalidate drops account from the cache
func (c *Cache) Invalidate(account antelope.Name) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, account)
}

// Len returns the number of entries, including
// expired ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
