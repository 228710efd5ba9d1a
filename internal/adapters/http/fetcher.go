// Package http implements the PageFetcher port over net/http.
//
// Journal sites front their listing pages with anti-bot layers that
// intermittently answer 403 or 503 to non-browser clients. The fetcher
// sends a browser profile and retries exactly those statuses with
// exponential backoff; every other failure is surfaced immediately.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qbio/feedship/internal/ports"
)

// Browser profile sent with every request.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.5 Safari/605.1.15"

// Config tunes the fetcher's retry behavior.
type Config struct {
	// UserAgent overrides the default browser profile.
	UserAgent string

	// Attempts is the total number of tries per URL, including the first.
	Attempts int

	// BackoffInitial and BackoffMax bound the retry delays.
	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

// DefaultConfig returns a Config matching the production retry policy:
// five attempts, 1s..10s exponential backoff.
func DefaultConfig() Config {
	return Config{
		UserAgent:      defaultUserAgent,
		Attempts:       5,
		BackoffInitial: DefaultBackoffInitial,
		BackoffMax:     DefaultBackoffMax,
	}
}

// Fetcher implements ports.PageFetcher.
type Fetcher struct {
	client ports.HTTPClient
	logger ports.Logger
	cfg    Config

	// sleep is swapped in tests to avoid real delays.
	sleep func(time.Duration)
}

// NewFetcher creates a fetcher using the given HTTP client.
func NewFetcher(client ports.HTTPClient, logger ports.Logger, cfg Config) *Fetcher {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.BackoffInitial <= 0 {
		cfg.BackoffInitial = DefaultBackoffInitial
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = DefaultBackoffMax
	}
	return &Fetcher{client: client, logger: logger, cfg: cfg}
}

// transientStatus reports whether a status code should trigger a retry.
func transientStatus(code int) bool {
	return code == http.StatusForbidden || code == http.StatusServiceUnavailable
}

// FetchHTML retrieves the body of url, retrying transient statuses.
func (f *Fetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	bo := newBackoff(f.cfg.BackoffInitial, f.cfg.BackoffMax, f.sleep)

	var lastErr error
	for attempt := 1; attempt <= f.cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		body, retryable, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable || attempt == f.cfg.Attempts {
			break
		}

		f.logger.Warn("transient fetch error, retrying",
			ports.String("url", url),
			ports.Int("attempt", attempt),
			ports.Err(err),
		)
		bo.Sleep()
	}

	return "", lastErr
}

// fetchOnce performs a single request. The second return value reports
// whether the failure is worth retrying.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return "", transientStatus(resp.StatusCode),
			fmt.Errorf("fetch %s: server returned %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("read body: %w", err)
	}
	return string(body), false, nil
}
