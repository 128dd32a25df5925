package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/idea-arena/internal/domain/service"
)

func TestChatGenerator_Complete(t *testing.T) {
	t.Run("sends both messages and json format", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req ChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "judge fairly", req.Messages[0].Content)
			assert.Equal(t, "user", req.Messages[1].Role)
			require.NotNil(t, req.ResponseFormat)
			assert.Equal(t, "json_object", req.ResponseFormat.Type)

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"winner\":\"user\"}\n"}}]}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		gen := NewChatGenerator(NewChatClient(server.URL, "sk-test", "gpt-4o", 5*time.Second, 0))
		content, err := gen.Complete(context.Background(), &service.CompletionRequest{
			System: "judge fairly",
			User:   "Prompt: x",
			JSON:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, `{"winner":"user"}`, content)
	})

	t.Run("empty completions", func(t *testing.T) {
		for _, body := range []string{
			`{"choices":[]}`,
			`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`,
		} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))

			gen := NewChatGenerator(NewChatClient(server.URL, "sk-test", "gpt-4o", 5*time.Second, 0))
			_, err := gen.Complete(context.Background(), &service.CompletionRequest{System: "s"})

			assert.ErrorIs(t, err, service.ErrEmptyCompletion)
			server.Close()
		}
	})

	t.Run("propagates client errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		gen := NewChatGenerator(NewChatClient(server.URL, "sk-test", "gpt-4o", 5*time.Second, 0))
		_, err := gen.Complete(context.Background(), &service.CompletionRequest{User: "u"})

		assert.ErrorIs(t, err, service.ErrRateLimited)
	})
}
