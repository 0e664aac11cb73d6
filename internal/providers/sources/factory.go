package sources

import (
	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/core"
)

// NewFetchers returns every known source in a fixed order. Unconfigured
// sources stay in the list and contribute empty text, so the indexed blob
// always carries the same labeled sections.
func NewFetchers(cfg *config.SourcesConfig) []core.SourceFetcher {
	return []core.SourceFetcher{
		NewGoogleDoc(cfg.GoogleDocID),
		NewWiki(cfg.WikiAPIURL, cfg.WikiPage),
		NewWeb(cfg.WebURL),
	}
}
