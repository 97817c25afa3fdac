package newsbytes

import (
	"context"
	"time"
)

// Fetcher retrieves raw HTML from article URLs.
// Implementations must be safe for concurrent use by multiple in-flight
// fetches; the pipeline runs one Fetch per worker.
type Fetcher interface {
	// Fetch performs an HTTP GET for the URL and returns the response
	// body. The context controls cancellation across all attempts;
	// retry policy is the implementation's concern.
	//
	// Errors carry an application code describing the terminal cause:
	// EBLOCKED for bot-mitigation responses (401/403/429) and
	// EUNAVAILABLE for transient transport failures and 5xx.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying transport resources.
	Close() error
}

// DomainLimiter provides per-domain rate limiting so concurrent workers
// do not overwhelm a single target host.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Default fetch knobs, mirrored by FetchConfig zero-value handling.
const (
	DefaultMaxRetries   = 3
	DefaultFetchTimeout = 15 * time.Second
	DefaultBackoffBase  = 1 * time.Second
)

// FetchConfig holds the immutable retry/timeout knobs for a Fetcher.
// A constructed Fetcher never mutates its config.
type FetchConfig struct {
	// MaxRetries is the total number of attempts (not additional
	// retries). Defaults to DefaultMaxRetries.
	MaxRetries int

	// Timeout bounds each individual attempt. A timed-out attempt
	// counts against MaxRetries like any other failure.
	// Defaults to DefaultFetchTimeout.
	Timeout time.Duration

	// BackoffBase scales the exponential backoff between attempts:
	// before retrying after attempt n the fetcher sleeps
	// BackoffBase << n, so the 1s default yields 2s and 4s delays
	// across three attempts. Negative disables sleeping entirely,
	// which tests use; zero means DefaultBackoffBase.
	BackoffBase time.Duration
}

// WithDefaults returns the config with zero fields filled in.
func (c FetchConfig) WithDefaults() FetchConfig {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultFetchTimeout
	}
	if c.BackoffBase == 0 {
		c.BackoffBase = DefaultBackoffBase
	}
	return c
}
