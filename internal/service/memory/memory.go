package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/pkg/log"
)

const (
	// DefaultTTL is how long a conversation turn stays usable after its
	// last write.
	DefaultTTL = 10 * time.Minute

	defaultSweepInterval = time.Minute
)

type record struct {
	entry     core.Entry
	writtenAt time.Time
}

// Cache keeps the most recent question/answer pair per conversation key.
// Expired entries are dropped lazily on Get and by a background sweep.
type Cache struct {
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	mu      sync.Mutex
	entries map[core.ConversationKey]record
}

func NewCache() *Cache {
	return &Cache{
		ttl:           DefaultTTL,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
		entries:       make(map[core.ConversationKey]record),
	}
}

func (c *Cache) Get(key core.ConversationKey) (core.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.entries[key]
	if !ok {
		return core.Entry{}, false
	}
	if c.now().Sub(rec.writtenAt) >= c.ttl {
		delete(c.entries, key)
		return core.Entry{}, false
	}
	return rec.entry, true
}

// Put replaces the entry for key and resets its expiry. Last writer wins.
func (c *Cache) Put(key core.ConversationKey, question, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = record{
		entry:     core.Entry{Question: question, Answer: answer},
		writtenAt: c.now(),
	}
}

// Start runs the periodic sweep until the context is cancelled. Cache
// satisfies srv.Service so the sweeper shares the process lifecycle.
func (c *Cache) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Dur("ttl", c.ttl).Msg("starting conversation memory sweeper")

	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := c.sweep(); evicted > 0 {
				logger.Debug().Int("evicted", evicted).Msg("swept expired conversation entries")
			}
		}
	}
}

func (c *Cache) Shutdown(ctx context.Context) error {
	return nil
}

func (c *Cache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	cutoff := c.now()
	for key, rec := range c.entries {
		if cutoff.Sub(rec.writtenAt) >= c.ttl {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}
