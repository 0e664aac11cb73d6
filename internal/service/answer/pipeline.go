package answer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/internal/providers/llm"
	"github.com/sandevgo/askbot/pkg/log"
)

const defaultCallTimeout = 60 * time.Second

// Pipeline turns a user question into a grounded answer with follow-up
// suggestions. It owns the provider fallback decision and the conversation
// memory writes; the transport only renders what it returns.
type Pipeline struct {
	primary     core.TextProvider
	fallback    core.TextProvider
	memory      core.Memory
	tokenBudget int
	callTimeout time.Duration
}

func NewPipeline(primary, fallback core.TextProvider, memory core.Memory, tokenBudget int, callTimeout time.Duration) *Pipeline {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &Pipeline{
		primary:     primary,
		fallback:    fallback,
		memory:      memory,
		tokenBudget: tokenBudget,
		callTimeout: callTimeout,
	}
}

// Answer always produces a textual result: a grounded answer, the refusal
// phrase, or the apology. Only the apology path skips the memory write so a
// transient failure cannot poison the next turn's grounding.
func (p *Pipeline) Answer(ctx context.Context, key core.ConversationKey, question, knowledge string) core.AnswerResult {
	logger := log.FromCtx(ctx).With().Str("request_id", uuid.NewString()).Logger()

	previous, hasPrevious := p.memory.Get(key)
	clipped := clipToTokens(knowledge, p.tokenBudget)

	text, usedFallback, err := p.generate(ctx, buildAnswerPrompt(previous, hasPrevious, clipped, question))
	if err != nil {
		logger.Error().Err(err).Msg("answer generation failed")
		return core.AnswerResult{Text: core.ApologyPhrase}
	}

	answerText := strings.TrimSpace(text)
	if answerText == "" {
		// Some providers return a 200 with no text at all. The user still
		// gets a reply, and the empty turn is not remembered.
		logger.Warn().Msg("provider returned empty text")
		return core.AnswerResult{Text: core.ApologyPhrase}
	}

	// Suggestions are garnish: skipped when the primary is already rate
	// limited, and any failure here degrades to an empty list.
	var suggestions []string
	if answerText != core.RefusalPhrase && !usedFallback {
		raw, _, err := p.generate(ctx, buildSuggestionPrompt(clipped))
		if err != nil {
			logger.Warn().Err(err).Msg("suggestion generation failed, continuing without")
		} else {
			suggestions = ExtractSuggestions(raw)
		}
	}

	p.memory.Put(key, question, answerText)

	logger.Debug().Int("suggestions", len(suggestions)).Msg("answer produced")
	return core.AnswerResult{Text: answerText, Suggestions: suggestions}
}

// generate runs the two-tier provider strategy: try the primary, and on a
// rate-limit failure retry the identical prompt once on the fallback. Any
// other failure is returned as-is.
func (p *Pipeline) generate(ctx context.Context, prompt string) (text string, usedFallback bool, err error) {
	callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()

	text, err = p.primary.Generate(callCtx, prompt)
	if err == nil {
		return text, false, nil
	}
	if !llm.IsRateLimited(err) {
		return "", false, err
	}

	log.FromCtx(ctx).Warn().Err(err).Msg("primary provider rate limited, switching to fallback")

	fbCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	text, err = p.fallback.Generate(fbCtx, prompt)
	return text, true, err
}
