package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FenadoAI/newsbytes"
	nbopenai "github.com/FenadoAI/newsbytes/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns completion content", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-model", req["model"])

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "SUMMARY: short\nCATEGORY: Sports"}},
				},
			})
		}))
		defer server.Close()

		g := nbopenai.NewGenerator(nbopenai.Config{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Model:   "test-model",
		})

		content, err := g.Generate(context.Background(), "summarize this")
		require.NoError(t, err)
		assert.Equal(t, "SUMMARY: short\nCATEGORY: Sports", content)
	})

	t.Run("empty choices is an internal error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		g := nbopenai.NewGenerator(nbopenai.Config{APIKey: "test-key", BaseURL: server.URL})

		_, err := g.Generate(context.Background(), "summarize this")
		require.Error(t, err)
		assert.Equal(t, newsbytes.EINTERNAL, newsbytes.ErrorCode(err))
	})

	t.Run("transport error propagates", func(t *testing.T) {
		t.Parallel()

		g := nbopenai.NewGenerator(nbopenai.Config{
			APIKey:  "test-key",
			BaseURL: "http://non-existent-host.invalid",
		})

		_, err := g.Generate(context.Background(), "summarize this")
		require.Error(t, err)
	})

	t.Run("empty prompt is rejected without a call", func(t *testing.T) {
		t.Parallel()

		g := nbopenai.NewGenerator(nbopenai.Config{APIKey: "test-key"})

		_, err := g.Generate(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, newsbytes.EINVALID, newsbytes.ErrorCode(err))
	})
}
