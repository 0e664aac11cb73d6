package knowledge

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	name string
	text string
	err  error

	mu    sync.Mutex
	calls int
}

func (s *stubFetcher) Name() string { return s.name }

func (s *stubFetcher) Fetch(ctx context.Context) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.text, s.err
}

func TestStoreInitialPlaceholder(t *testing.T) {
	s := NewStore(nil)
	assert.Equal(t, core.NotIndexedPlaceholder, s.Current())
}

func TestReindexAllSourcesFail(t *testing.T) {
	s := NewStore([]core.SourceFetcher{
		&stubFetcher{name: "GOOGLE DOC", err: errors.New("boom")},
		&stubFetcher{name: "WIKI", err: errors.New("boom")},
		&stubFetcher{name: "WEB", err: errors.New("boom")},
	})

	err := s.Reindex(context.Background())
	require.Error(t, err)
	assert.Equal(t, core.IndexFailedSentinel, s.Current())
}

func TestReindexSingleSourceSucceeds(t *testing.T) {
	s := NewStore([]core.SourceFetcher{
		&stubFetcher{name: "GOOGLE DOC", err: errors.New("boom")},
		&stubFetcher{name: "WIKI", text: "wiki facts"},
		&stubFetcher{name: "WEB"},
	})

	err := s.Reindex(context.Background())
	require.NoError(t, err)

	blob := s.Current()
	assert.Contains(t, blob, "--- WIKI ---\nwiki facts")
	assert.Contains(t, blob, "--- GOOGLE DOC ---\n")
	assert.Contains(t, blob, "--- WEB ---\n")
}

func TestReindexJoinsSectionsWithBlankLines(t *testing.T) {
	s := NewStore([]core.SourceFetcher{
		&stubFetcher{name: "GOOGLE DOC", text: "doc text"},
		&stubFetcher{name: "WIKI", text: "wiki text"},
	})

	require.NoError(t, s.Reindex(context.Background()))
	assert.Equal(t, "--- GOOGLE DOC ---\ndoc text\n\n--- WIKI ---\nwiki text", s.Current())
}

func TestReindexUnconfiguredSourceIsNotAFailure(t *testing.T) {
	s := NewStore([]core.SourceFetcher{
		&stubFetcher{name: "GOOGLE DOC", text: ""},
		&stubFetcher{name: "WEB", text: "web text"},
	})

	require.NoError(t, s.Reindex(context.Background()))
	assert.True(t, strings.Contains(s.Current(), "web text"))
}

func TestReindexRetriesFailedFetch(t *testing.T) {
	failing := &stubFetcher{name: "WEB", err: errors.New("boom")}
	s := NewStore([]core.SourceFetcher{
		failing,
		&stubFetcher{name: "WIKI", text: "ok"},
	})

	require.NoError(t, s.Reindex(context.Background()))

	failing.mu.Lock()
	calls := failing.calls
	failing.mu.Unlock()
	assert.Equal(t, 3, calls, "expected initial attempt plus two retries")
}

func TestConcurrentReadersDuringReindex(t *testing.T) {
	s := NewStore([]core.SourceFetcher{
		&stubFetcher{name: "WEB", text: "stable"},
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				blob := s.Current()
				// Readers must always see a complete value.
				if blob != core.NotIndexedPlaceholder && !strings.Contains(blob, "stable") {
					t.Errorf("torn blob observed: %q", blob)
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Reindex(context.Background())
		}()
	}
	wg.Wait()
}
