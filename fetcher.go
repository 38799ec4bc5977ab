package hours

import "context"

// Fetcher retrieves the raw office page from a URL.
// Fetching is the only I/O the reader performs; it is injected so tests can
// substitute a fixed fixture for the network call.
type Fetcher interface {
	// Fetch retrieves the page at the URL and returns it as UTF-8 text.
	// The context controls timeout and cancellation. Transport failures
	// carry EUNAVAILABLE; undecodable payloads carry EDECODE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
