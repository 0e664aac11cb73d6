package core

import "context"

// TextProvider generates grounded text from a provider-agnostic plain-text
// prompt. Implementations translate their own failure modes into errors that
// the llm package can classify (rate-limited vs everything else).
type TextProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SourceFetcher fetches the raw text of one knowledge source.
// An unconfigured source returns ("", nil), not an error.
type SourceFetcher interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}
