// Package http provides an HTTP-based implementation of newsbytes.Fetcher
// with browser-like request headers and retrying exponential backoff.
package http

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/FenadoAI/newsbytes"
)

// browserHeaders is the fixed header set sent with every request.
// Overly minimal requests are a known cause of false failures on news
// sites, so the set mimics a modern desktop browser. Setting
// Accept-Encoding by hand disables the transport's transparent
// decompression, so only encodings decodeBody can reverse are
// advertised (no br).
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Accept-Encoding":           "gzip, deflate",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Cache-Control":             "max-age=0",
}

// Ensure Fetcher implements newsbytes.Fetcher at compile time.
var _ newsbytes.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves article HTML over plain HTTP with retry logic.
// It follows redirects and is safe for concurrent use.
type Fetcher struct {
	client *http.Client
	config newsbytes.FetchConfig
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithConfig sets the retry/timeout configuration.
func WithConfig(config newsbytes.FetchConfig) Option {
	return func(f *Fetcher) {
		f.config = config
	}
}

// WithLogger sets the logger for retry and classification warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.config = f.config.WithDefaults()

	// Per-attempt deadlines come from request contexts so that each
	// retry within one Fetch call gets the full timeout.
	f.client = &http.Client{}

	return f
}

// Fetch retrieves the HTML content from the given URL.
//
// It makes up to MaxRetries attempts, sleeping 2^attempt backoff units
// between attempts. 401/403/429 responses count as bot-mitigation blocks
// (EBLOCKED): logged as warnings and retried, since such blocks are
// sometimes transient. 5xx and transport errors are transient
// (EUNAVAILABLE) and retried. Other 4xx responses are terminal on the
// first attempt; the page will not appear by asking again.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= f.config.MaxRetries; attempt++ {
		if attempt > 1 {
			if err := f.backoff(ctx, attempt-1); err != nil {
				return "", err
			}
			f.logger.Info("retrying fetch", "url", url, "attempt", attempt)
		}

		html, retryable, err := f.attempt(ctx, url)
		if err == nil {
			return html, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !retryable {
			return "", err
		}

		if newsbytes.ErrorCode(err) == newsbytes.EBLOCKED {
			f.logger.Warn("access denied, site may be blocking automated access",
				"url", url, "attempt", attempt, "err", err)
		} else {
			f.logger.Warn("fetch attempt failed", "url", url, "attempt", attempt, "err", err)
		}
		lastErr = err
	}

	return "", lastErr
}

// attempt performs a single GET with the browser header set and a
// per-attempt timeout, classifying the outcome.
func (f *Fetcher) attempt(ctx context.Context, url string) (html string, retryable bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, newsbytes.Errorf(newsbytes.EINVALID, "invalid URL %q: %v", url, err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", true, newsbytes.Errorf(newsbytes.EUNAVAILABLE, "request failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := decodeBody(resp)
		if err != nil {
			return "", true, newsbytes.Errorf(newsbytes.EUNAVAILABLE, "reading body for %s: %v", url, err)
		}
		return string(body), false, nil

	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests:
		return "", true, newsbytes.Errorf(newsbytes.EBLOCKED, "HTTP %d for %s", resp.StatusCode, url)

	case resp.StatusCode >= 500:
		return "", true, newsbytes.Errorf(newsbytes.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)

	default:
		return "", false, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
}

// decodeBody reads the response body, reversing any content encoding we
// advertised in the request headers.
func decodeBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	}

	return io.ReadAll(reader)
}

// backoff sleeps for BackoffBase << attempt, honoring context
// cancellation. A negative BackoffBase disables sleeping, which tests
// rely on.
func (f *Fetcher) backoff(ctx context.Context, attempt int) error {
	if f.config.BackoffBase < 0 {
		return nil
	}
	delay := f.config.BackoffBase << uint(attempt)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// Close releases resources. The shared http.Client requires no explicit
// cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// BackoffDelays returns the sleep durations a Fetch call would use
// between attempts for the given config: 2^1, 2^2, ... times the base.
func BackoffDelays(config newsbytes.FetchConfig) []time.Duration {
	config = config.WithDefaults()
	if config.MaxRetries < 2 || config.BackoffBase < 0 {
		return nil
	}
	delays := make([]time.Duration, 0, config.MaxRetries-1)
	for attempt := 1; attempt < config.MaxRetries; attempt++ {
		delays = append(delays, config.BackoffBase<<uint(attempt))
	}
	return delays
}
