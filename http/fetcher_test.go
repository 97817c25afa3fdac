package http_test

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FenadoAI/newsbytes"
	nbhttp "github.com/FenadoAI/newsbytes/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noBackoff disables inter-attempt sleeps for tests.
var noBackoff = newsbytes.FetchConfig{BackoffBase: -1}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAccept, gotUpgrade string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept-Language")
			gotUpgrade = r.Header.Get("Upgrade-Insecure-Requests")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
		assert.Contains(t, gotUA, "Chrome")
		assert.Equal(t, "en-US,en;q=0.9", gotAccept)
		assert.Equal(t, "1", gotUpgrade)
	})

	t.Run("decodes gzip response bodies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Encoding", "gzip")
			gz := gzip.NewWriter(w)
			_, _ = gz.Write([]byte("<html>compressed</html>"))
			_ = gz.Close()
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html>compressed</html>", html)
	})

	t.Run("retries blocked status up to the retry budget", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(newsbytes.FetchConfig{
			MaxRetries:  3,
			BackoffBase: -1,
		}))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, newsbytes.EBLOCKED, newsbytes.ErrorCode(err))
		assert.Equal(t, int64(3), attempts.Load())
	})

	t.Run("retries rate-limited status as blocked", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, newsbytes.EBLOCKED, newsbytes.ErrorCode(err))
		assert.Equal(t, int64(newsbytes.DefaultMaxRetries), attempts.Load())
	})

	t.Run("recovers when a retry succeeds", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if attempts.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("finally"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "finally", html)
		assert.Equal(t, int64(3), attempts.Load())
	})

	t.Run("does not retry plain 404", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Equal(t, int64(1), attempts.Load())
	})

	t.Run("retries 5xx as transient", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, newsbytes.EUNAVAILABLE, newsbytes.ErrorCode(err))
		assert.Equal(t, int64(newsbytes.DefaultMaxRetries), attempts.Load())
	})

	t.Run("per-attempt timeout counts toward the retry budget", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("too late"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(newsbytes.FetchConfig{
			MaxRetries:  2,
			Timeout:     10 * time.Millisecond,
			BackoffBase: -1,
		}))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, newsbytes.EUNAVAILABLE, newsbytes.ErrorCode(err))
		assert.Equal(t, int64(2), attempts.Load())
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(newsbytes.FetchConfig{
			Timeout:     100 * time.Millisecond,
			BackoffBase: -1,
		}))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, newsbytes.EUNAVAILABLE, newsbytes.ErrorCode(err))
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("landed"))
		}))
		defer target.Close()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithConfig(noBackoff))
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "landed", html)
	})
}

func TestBackoffDelays(t *testing.T) {
	t.Parallel()

	t.Run("default config yields 2s and 4s", func(t *testing.T) {
		t.Parallel()

		delays := nbhttp.BackoffDelays(newsbytes.FetchConfig{})
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, delays)
	})

	t.Run("single attempt has no delays", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, nbhttp.BackoffDelays(newsbytes.FetchConfig{MaxRetries: 1, BackoffBase: time.Second}))
	})

	t.Run("disabled backoff has no delays", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, nbhttp.BackoffDelays(newsbytes.FetchConfig{MaxRetries: 3, BackoffBase: -1}))
	})
}

// Compile-time verification that Fetcher implements newsbytes.Fetcher
var _ newsbytes.Fetcher = (*nbhttp.Fetcher)(nil)
