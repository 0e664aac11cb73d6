package answer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/internal/providers/llm"
	"github.com/sandevgo/askbot/internal/service/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	// responses are returned in order; the last one repeats.
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	idx := s.calls - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func rateLimitErr() error {
	return &llm.APIError{Status: 429, Body: "too many requests"}
}

func serverErr() error {
	return &llm.APIError{Status: 500, Body: "upstream exploded"}
}

func newTestPipeline(primary, fallback core.TextProvider) (*Pipeline, *memory.Cache) {
	mem := memory.NewCache()
	return NewPipeline(primary, fallback, mem, 0, time.Second), mem
}

func TestAnswerHappyPath(t *testing.T) {
	primary := &stubProvider{responses: []string{
		"The refund window is 30 days.",
		`["What about exchanges?", "Who pays shipping?", "What about exchanges?"]`,
	}}
	fallback := &stubProvider{responses: []string{"unused"}}
	p, mem := newTestPipeline(primary, fallback)

	key := core.NewConversationKey(1, 2)
	res := p.Answer(context.Background(), key, "What is the refund window?", "Refunds accepted within 30 days.")

	assert.Equal(t, "The refund window is 30 days.", res.Text)
	assert.Equal(t, []string{"What about exchanges?", "Who pays shipping?"}, res.Suggestions)
	assert.Equal(t, 2, primary.calls, "answer call plus suggestion call")
	assert.Zero(t, fallback.calls)

	entry, ok := mem.Get(key)
	require.True(t, ok)
	assert.Equal(t, "What is the refund window?", entry.Question)
	assert.Equal(t, "The refund window is 30 days.", entry.Answer)
}

func TestAnswerRateLimitedFallsBackOnce(t *testing.T) {
	primary := &stubProvider{err: rateLimitErr()}
	fallback := &stubProvider{responses: []string{"Fallback answer."}}
	p, mem := newTestPipeline(primary, fallback)

	key := core.NewConversationKey(1, 2)
	res := p.Answer(context.Background(), key, "q", "blob")

	assert.Equal(t, "Fallback answer.", res.Text)
	assert.Equal(t, 1, fallback.calls, "fallback must be invoked exactly once")
	assert.Empty(t, res.Suggestions)

	entry, ok := mem.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Fallback answer.", entry.Answer)
}

func TestAnswerOtherFailureNeverFallsBack(t *testing.T) {
	primary := &stubProvider{err: serverErr()}
	fallback := &stubProvider{responses: []string{"should not be used"}}
	p, mem := newTestPipeline(primary, fallback)

	key := core.NewConversationKey(1, 2)
	res := p.Answer(context.Background(), key, "q", "blob")

	assert.Equal(t, core.ApologyPhrase, res.Text)
	assert.Empty(t, res.Suggestions)
	assert.Zero(t, fallback.calls)
	assert.Equal(t, 1, primary.calls, "no suggestion call after a failure")

	_, ok := mem.Get(key)
	assert.False(t, ok, "failure-path answers must not be committed to memory")
}

func TestAnswerRefusalSkipsSuggestionsButCommitsMemory(t *testing.T) {
	primary := &stubProvider{responses: []string{core.RefusalPhrase}}
	fallback := &stubProvider{}
	p, mem := newTestPipeline(primary, fallback)

	key := core.NewConversationKey(1, 2)
	res := p.Answer(context.Background(), key, "q", "blob")

	assert.Equal(t, core.RefusalPhrase, res.Text)
	assert.Empty(t, res.Suggestions)
	assert.Equal(t, 1, primary.calls)

	entry, ok := mem.Get(key)
	require.True(t, ok)
	assert.Equal(t, core.RefusalPhrase, entry.Answer)
}

func TestAnswerEmptyProviderTextBecomesApology(t *testing.T) {
	primary := &stubProvider{responses: []string{"   "}}
	fallback := &stubProvider{responses: []string{"unused"}}
	p, mem := newTestPipeline(primary, fallback)

	key := core.NewConversationKey(1, 2)
	res := p.Answer(context.Background(), key, "q", "blob")

	assert.Equal(t, core.ApologyPhrase, res.Text)
	assert.Empty(t, res.Suggestions)
	assert.Equal(t, 1, primary.calls, "no suggestion call for an empty answer")
	assert.Zero(t, fallback.calls)

	_, ok := mem.Get(key)
	assert.False(t, ok, "empty answers must not be committed to memory")
}

func TestAnswerSuggestionFailureDegradesToEmpty(t *testing.T) {
	// First call answers, second call (suggestions) fails.
	first := true
	primary := providerFunc(func(ctx context.Context, prompt string) (string, error) {
		if first {
			first = false
			return "A real answer.", nil
		}
		return "", serverErr()
	})
	p := NewPipeline(primary, &stubProvider{}, memory.NewCache(), 0, time.Second)

	res := p.Answer(context.Background(), core.NewConversationKey(1, 2), "q", "blob")
	assert.Equal(t, "A real answer.", res.Text)
	assert.Empty(t, res.Suggestions)
}

func TestAnswerSuggestionsNeverExceedThree(t *testing.T) {
	primary := &stubProvider{responses: []string{
		"answer",
		`["A?", "B?", "C?", "D?", "E?", "F?"]`,
	}}
	p, _ := newTestPipeline(primary, &stubProvider{})

	res := p.Answer(context.Background(), core.NewConversationKey(1, 2), "q", "blob")
	assert.Len(t, res.Suggestions, 3)
}

func TestAnswerPromptIncludesPreviousTurn(t *testing.T) {
	primary := &stubProvider{responses: []string{"answer", "[]"}}
	p, mem := newTestPipeline(primary, &stubProvider{})
	key := core.NewConversationKey(1, 2)
	mem.Put(key, "earlier question", "earlier answer")

	p.Answer(context.Background(), key, "why?", "blob")

	require.NotEmpty(t, primary.prompts)
	assert.Contains(t, primary.prompts[0], "Q: earlier question")
	assert.Contains(t, primary.prompts[0], "A: earlier answer")
}

func TestAnswerPromptMarksMissingPreviousTurn(t *testing.T) {
	primary := &stubProvider{responses: []string{"answer", "[]"}}
	p, _ := newTestPipeline(primary, &stubProvider{})

	p.Answer(context.Background(), core.NewConversationKey(1, 2), "why?", "blob")

	require.NotEmpty(t, primary.prompts)
	assert.Contains(t, primary.prompts[0], "None.")
}

func TestAnswerProceedsOnPlaceholderBlob(t *testing.T) {
	primary := &stubProvider{responses: []string{core.RefusalPhrase}}
	p, _ := newTestPipeline(primary, &stubProvider{})

	res := p.Answer(context.Background(), core.NewConversationKey(1, 2), "q", core.NotIndexedPlaceholder)

	assert.Equal(t, core.RefusalPhrase, res.Text)
	assert.True(t, strings.Contains(primary.prompts[0], core.NotIndexedPlaceholder))
}

type providerFunc func(ctx context.Context, prompt string) (string, error)

func (f providerFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
