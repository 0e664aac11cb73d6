package core

import (
	"context"
	"time"
)

type UsageRepository interface {
	RecordQuestion(ctx context.Context, chatID int64) error
	Stats(ctx context.Context) ([]UsageStat, error)
}

type UsageStat struct {
	ChatID      int64     `json:"chat_id"`
	Questions   int64     `json:"questions"`
	LastAskedAt time.Time `json:"last_asked_at"`
}
