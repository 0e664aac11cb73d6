package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/internal/providers/llm"
	"github.com/sandevgo/askbot/internal/providers/sources"
	"github.com/sandevgo/askbot/internal/service/answer"
	"github.com/sandevgo/askbot/internal/service/command"
	"github.com/sandevgo/askbot/internal/service/knowledge"
	"github.com/sandevgo/askbot/internal/service/memory"
	"github.com/sandevgo/askbot/internal/storage/sqlite"
	"github.com/sandevgo/askbot/internal/transport/telegram"
	"github.com/sandevgo/askbot/pkg/log"
	"github.com/sandevgo/askbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	tgCfg := config.NewTelegramConfig(ctx)
	srcCfg := config.NewSourcesConfig(ctx)
	openaiCfg := config.NewOpenAIConfig(ctx)
	anthropicCfg := config.NewAnthropicConfig(ctx)

	// 2. Storage (usage counters)
	db, usageRepo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. LLM providers (primary + fallback)
	primary, fallback, err := llm.NewProviders(ctx, appCfg, openaiCfg, anthropicCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM providers")
	}

	// 4. Knowledge store, indexed once at startup
	store := knowledge.NewStore(sources.NewFetchers(srcCfg))
	go func() {
		if err := store.Reindex(ctx); err != nil {
			logger.Error().Err(err).Msg("initial indexing failed; answers will refuse until /reindex succeeds")
		}
	}()

	// 5. Conversation memory with its background sweeper
	mem := memory.NewCache()
	services = append(services, mem)

	// 6. Answer pipeline
	pipeline := answer.NewPipeline(
		primary,
		fallback,
		mem,
		appCfg.ContextTokenBudget,
		time.Duration(appCfg.AnswerTimeoutSec)*time.Second,
	)

	// 7. Slash commands
	router := command.NewRouter(store, usageRepo)

	// 8. Telegram transport
	bot, err := telegram.NewBot(ctx, tgCfg, pipeline, store, router, usageRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}
	services = append(services, bot)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.UsageRepository, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewUsageRepo(db), nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
