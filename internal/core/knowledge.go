package core

import "context"

// NotIndexedPlaceholder is the blob value before the first successful reindex.
const NotIndexedPlaceholder = "The knowledge base has not been indexed yet."

// IndexFailedSentinel replaces the blob when every source came back empty.
const IndexFailedSentinel = "Knowledge base indexing failed: no source returned any content."

// Indexer owns the aggregated knowledge text.
type Indexer interface {
	// Reindex rebuilds the blob from all configured sources. Partial source
	// failure is tolerated; it returns an error only when nothing was fetched.
	Reindex(ctx context.Context) error
	// Current returns the latest complete blob without blocking on I/O.
	Current() string
}
