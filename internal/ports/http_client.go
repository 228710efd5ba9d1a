package ports

import "net/http"

// HTTPClient is the subset of *http.Client the page fetcher needs.
// Production wiring passes an *http.Client carrying the configured
// timeout; any implementation that can answer a request satisfies it.
type HTTPClient interface {
	// Do executes a single HTTP request.
	Do(req *http.Request) (*http.Response, error)
}
