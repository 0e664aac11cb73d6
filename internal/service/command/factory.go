package command

import (
	"github.com/sandevgo/askbot/internal/core"
)

func NewRouter(indexer core.Indexer, usage core.UsageRepository) *Router {
	router := New([]core.Command{
		NewReindexCommand(indexer),
		NewStatsCommand(usage),
	})
	router.commands["help"] = NewHelpCommand(router)
	return router
}
