package ports

import "context"

// PageFetcher retrieves the HTML body of a listing page.
// Implementations handle browser-profile headers and transient-error
// retries internally.
type PageFetcher interface {
	// FetchHTML returns the response body for url, or an error once
	// retries are exhausted or a non-retryable status is seen.
	FetchHTML(ctx context.Context, url string) (string, error)
}
