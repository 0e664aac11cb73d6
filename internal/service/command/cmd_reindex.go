package command

import (
	"context"

	"github.com/sandevgo/askbot/internal/core"
)

type ReindexCommand struct {
	indexer   core.Indexer
	formatter *ResponseFormatter
}

func NewReindexCommand(indexer core.Indexer) *ReindexCommand {
	return &ReindexCommand{
		indexer:   indexer,
		formatter: NewResponseFormatter(),
	}
}

func (c *ReindexCommand) Name() string {
	return "reindex"
}

func (c *ReindexCommand) Description() string {
	return "Re-fetch all knowledge sources and rebuild the index"
}

func (c *ReindexCommand) Execute(ctx context.Context, chatID int64, args []string) (string, error) {
	if err := c.indexer.Reindex(ctx); err != nil {
		return c.formatter.Failure("Reindex failed: no source returned any content"), nil
	}
	return c.formatter.Success("Knowledge base reindexed"), nil
}
