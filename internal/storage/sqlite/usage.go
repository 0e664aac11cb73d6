package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/askbot/internal/core"
)

type UsageRepo struct {
	db *sql.DB
}

func NewUsageRepo(db *sql.DB) *UsageRepo {
	return &UsageRepo{db: db}
}

func (r *UsageRepo) RecordQuestion(ctx context.Context, chatID int64) error {
	query := `INSERT INTO usage_counters (chat_id, questions, last_asked_at) VALUES (?, 1, ?)
		ON CONFLICT(chat_id) DO UPDATE SET questions = questions + 1, last_asked_at = excluded.last_asked_at`

	if _, err := r.db.ExecContext(ctx, query, chatID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record question: %w", err)
	}
	return nil
}

func (r *UsageRepo) Stats(ctx context.Context) ([]core.UsageStat, error) {
	query := `SELECT chat_id, questions, last_asked_at FROM usage_counters ORDER BY questions DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage counters: %w", err)
	}
	defer rows.Close()

	var stats []core.UsageStat
	for rows.Next() {
		var s core.UsageStat
		if err := rows.Scan(&s.ChatID, &s.Questions, &s.LastAskedAt); err != nil {
			return nil, fmt.Errorf("failed to scan usage counter: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
