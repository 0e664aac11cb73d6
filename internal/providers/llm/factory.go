package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/pkg/log"
)

// NewProviders builds the primary and fallback text providers from config.
// Both ends of the pair are interchangeable; the pipeline only switches to
// the fallback after a rate-limit failure on the primary.
func NewProviders(
	ctx context.Context,
	appCfg *config.AppConfig,
	openaiCfg *config.OpenAIConfig,
	anthropicCfg *config.AnthropicConfig,
) (primary, fallback core.TextProvider, err error) {
	log.FromCtx(ctx).Info().
		Str("primary", appCfg.Provider).
		Str("fallback", appCfg.FallbackProvider).
		Msg("starting llm providers")

	primary, err = newProvider(appCfg.Provider, openaiCfg, anthropicCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("primary: %w", err)
	}
	fallback, err = newProvider(appCfg.FallbackProvider, openaiCfg, anthropicCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("fallback: %w", err)
	}
	return primary, fallback, nil
}

func newProvider(name string, openaiCfg *config.OpenAIConfig, anthropicCfg *config.AnthropicConfig) (core.TextProvider, error) {
	switch name {
	case "openai":
		return NewOpenAI(openaiCfg.APIKey, openaiCfg.Model), nil
	case "anthropic":
		return NewAnthropic(anthropicCfg.APIKey, anthropicCfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", name)
	}
}
