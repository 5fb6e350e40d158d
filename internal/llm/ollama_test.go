package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"home-energy-advisor/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClientConfig(baseURL string) config.OllamaConfig {
	return config.OllamaConfig{
		BaseURL:       baseURL,
		Model:         "llama3.2",
		Timeout:       200 * time.Millisecond,
		RetryAttempts: 3,
		RetryMinWait:  time.Millisecond,
		RetryMaxWait:  5 * time.Millisecond,
	}
}

func testRequest() CompletionRequest {
	return CompletionRequest{
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: "You are a consultant."},
			{Role: RoleUser, Content: "Advise."},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
		Format:      map[string]any{"type": "object"},
	}
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"content": `{"summary":"ok"}`},
		})
	}))
	defer srv.Close()

	client := NewClient(testClientConfig(srv.URL), zap.NewNop())
	text, err := client.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"ok"}`, text)

	assert.Equal(t, "llama3.2", captured.Model)
	assert.False(t, captured.Stream)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, RoleSystem, captured.Messages[0].Role)
	assert.Equal(t, RoleUser, captured.Messages[1].Role)
	assert.Equal(t, 0.7, captured.Options.Temperature)
	assert.Equal(t, 4000, captured.Options.NumPredict)
	assert.NotNil(t, captured.Format)
}

func TestCompleteReadsLegacyResponseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "legacy text"})
	}))
	defer srv.Close()

	client := NewClient(testClientConfig(srv.URL), zap.NewNop())
	text, err := client.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "legacy text", text)
}

func TestCompleteRetriesTimeoutsThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) <= 2 {
			time.Sleep(500 * time.Millisecond) // beyond the client's 200ms budget
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"content": "third time lucky"},
		})
	}))
	defer srv.Close()

	client := NewClient(testClientConfig(srv.URL), zap.NewNop())
	text, err := client.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", text)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestCompleteTimeoutAfterExhaustedRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(testClientConfig(srv.URL), zap.NewNop())
	_, err := client.Complete(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrBackendTimeout)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestCompleteRetriesUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := NewClient(testClientConfig(srv.URL), zap.NewNop())
	_, err := client.Complete(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrBackendUnreachable)
}

func TestCompleteDoesNotRetryHTTPErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"model missing", http.StatusNotFound, ErrBackendUnavailable},
		{"server error", http.StatusInternalServerError, ErrBackendUnavailable},
		{"bad request", http.StatusBadRequest, ErrBackendUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				attempts.Add(1)
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			client := NewClient(testClientConfig(srv.URL), zap.NewNop())
			_, err := client.Complete(context.Background(), testRequest())
			require.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, int32(1), attempts.Load(), "HTTP application errors must not be retried")
		})
	}
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(testClientConfig(srv.URL), zap.NewNop())
	assert.True(t, client.Healthy(context.Background()))
}

func TestHealthySwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	client := NewClient(testClientConfig(srv.URL), zap.NewNop())
	assert.False(t, client.Healthy(context.Background()))

	srv.Close()
	assert.False(t, client.Healthy(context.Background()))
}

func TestName(t *testing.T) {
	client := NewClient(testClientConfig("http://localhost:11434/"), zap.NewNop())
	assert.Equal(t, "ollama-llama3.2", client.Name())
}
