package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/askbot/internal/core"
)

type StatsCommand struct {
	usage     core.UsageRepository
	formatter *ResponseFormatter
}

func NewStatsCommand(usage core.UsageRepository) *StatsCommand {
	return &StatsCommand{
		usage:     usage,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show how many questions have been answered"
}

func (c *StatsCommand) Execute(ctx context.Context, chatID int64, args []string) (string, error) {
	stats, err := c.usage.Stats(ctx)
	if err != nil {
		return "", fmt.Errorf("load usage stats: %w", err)
	}

	if len(stats) == 0 {
		return c.formatter.Info("No questions answered yet"), nil
	}

	var total int64
	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		total += s.Questions
		lines = append(lines, fmt.Sprintf("chat %d — %d questions, last %s", s.ChatID, s.Questions, s.LastAskedAt.Format("2006-01-02 15:04")))
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("%d questions answered", total)),
		c.formatter.List(lines),
	), nil
}
