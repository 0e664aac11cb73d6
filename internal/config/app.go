package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/askbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"ASKBOT_RUNTIME_PATH" envDefault:".askbot"`

	// Primary and fallback LLM backends
	Provider         string `env:"LLM_PROVIDER" envDefault:"openai"`
	FallbackProvider string `env:"LLM_FALLBACK_PROVIDER" envDefault:"anthropic"`

	// Answer pipeline limits
	AnswerTimeoutSec   int `env:"ANSWER_TIMEOUT_SEC" envDefault:"60"`
	ContextTokenBudget int `env:"CONTEXT_TOKEN_BUDGET" envDefault:"12000"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "askbot.db")
}
