package knowledge

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/pkg/log"
	"github.com/sandevgo/askbot/pkg/retry"
)

// Store holds the aggregated knowledge text. The blob is replaced wholesale
// on every reindex; readers never observe a partially built value.
type Store struct {
	fetchers []core.SourceFetcher
	retrier  *retry.Retrier

	mu   sync.RWMutex
	blob string
}

func NewStore(fetchers []core.SourceFetcher) *Store {
	return &Store{
		fetchers: fetchers,
		retrier: retry.NewRetrier(&retry.Config{
			MaxRetries:    2,
			BackoffFactor: 2,
			InitialDelay:  500 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			Jitter:        100 * time.Millisecond,
		}),
		blob: core.NotIndexedPlaceholder,
	}
}

// Current returns the latest complete blob. It never blocks on network I/O.
func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blob
}

// Reindex fetches every source concurrently and swaps in the concatenated
// result. A failing or unconfigured source contributes an empty section;
// only when all sources came back empty is the blob set to the failure
// sentinel and an error returned.
func (s *Store) Reindex(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	texts := make([]string, len(s.fetchers))
	var wg sync.WaitGroup

	for i, f := range s.fetchers {
		wg.Add(1)
		go func(i int, f core.SourceFetcher) {
			defer wg.Done()

			var text string
			err := s.retrier.Do(ctx, func() error {
				var fetchErr error
				text, fetchErr = f.Fetch(ctx)
				return fetchErr
			})
			if err != nil {
				logger.Error().Err(err).Str("source", f.Name()).Msg("source fetch failed")
				return
			}
			texts[i] = text
		}(i, f)
	}
	wg.Wait()

	allEmpty := true
	sections := make([]string, 0, len(s.fetchers))
	for i, f := range s.fetchers {
		if strings.TrimSpace(texts[i]) != "" {
			allEmpty = false
		}
		sections = append(sections, fmt.Sprintf("--- %s ---\n%s", f.Name(), texts[i]))
	}

	if allEmpty {
		s.swap(core.IndexFailedSentinel)
		return fmt.Errorf("reindex: no source returned any content")
	}

	blob := strings.Join(sections, "\n\n")
	s.swap(blob)
	logger.Info().Int("sources", len(s.fetchers)).Int("bytes", len(blob)).Msg("knowledge base reindexed")
	return nil
}

func (s *Store) swap(blob string) {
	s.mu.Lock()
	s.blob = blob
	s.mu.Unlock()
}
