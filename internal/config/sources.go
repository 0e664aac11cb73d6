package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/askbot/pkg/log"
)

// SourcesConfig lists the knowledge sources. Any of them may be left empty;
// an empty identifier means the source contributes no text.
type SourcesConfig struct {
	// Google Docs document id (the part between /d/ and /edit in the URL).
	GoogleDocID string `env:"KB_GDOC_ID"`

	// MediaWiki API endpoint and the page title to index.
	WikiAPIURL string `env:"KB_WIKI_API_URL"`
	WikiPage   string `env:"KB_WIKI_PAGE"`

	// Arbitrary web page fetched with a plain GET.
	WebURL string `env:"KB_WEB_URL"`
}

func NewSourcesConfig(ctx context.Context) *SourcesConfig {
	c := &SourcesConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Sources config")
	}
	return c
}
