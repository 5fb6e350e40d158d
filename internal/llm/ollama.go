package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"home-energy-advisor/pkg/config"

	"go.uber.org/zap"
)

const healthProbeTimeout = 5 * time.Second

// Client talks to an Ollama chat endpoint. It holds no mutable state beyond
// configuration, so independent requests may run concurrently.
type Client struct {
	cfg        config.OllamaConfig
	baseURL    string
	httpClient *http.Client
	policy     RetryPolicy
	logger     *zap.Logger
}

func NewClient(cfg config.OllamaConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		policy: RetryPolicy{
			MaxAttempts: cfg.RetryAttempts,
			MinWait:     cfg.RetryMinWait,
			MaxWait:     cfg.RetryMaxWait,
		},
		logger: logger,
	}
}

// Name identifies the backend in generated advice.
func (c *Client) Name() string {
	return "ollama-" + c.cfg.Model
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
	Format   any           `json:"format,omitempty"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	// Legacy single-prompt endpoints put the completion here instead.
	Response string `json:"response"`
}

// Complete sends the message sequence to the backend and returns the raw
// completion text. Network timeouts and unreachable transports are retried
// with exponential backoff; HTTP application errors are not.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.cfg.Model,
		Messages: req.Messages,
		Stream:   false,
		Options: chatOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
		Format: req.Format,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrBackendUnreachable, err)
	}

	var completion string
	err = c.policy.Do(ctx, c.logger, isTransient, func() error {
		text, attemptErr := c.attempt(ctx, payload)
		if attemptErr != nil {
			return attemptErr
		}
		completion = text
		return nil
	})
	if err != nil {
		return "", err
	}
	return completion, nil
}

func (c *Client) attempt(ctx context.Context, payload []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrBackendUnreachable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeoutErr(err) {
			return "", markTransient(fmt.Errorf("%w: request to model %q exceeded %s",
				ErrBackendTimeout, c.cfg.Model, c.cfg.Timeout))
		}
		return "", markTransient(fmt.Errorf("%w: failed to connect to %s: %v",
			ErrBackendUnreachable, c.baseURL, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return "", fmt.Errorf("%w: model %q not found, pull it first",
				ErrBackendUnavailable, c.cfg.Model)
		case resp.StatusCode >= http.StatusInternalServerError:
			return "", fmt.Errorf("%w: backend error (status %d): %s",
				ErrBackendUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
		default:
			return "", fmt.Errorf("%w: backend API error (status %d): %s",
				ErrBackendUnreachable, resp.StatusCode, strings.TrimSpace(string(body)))
		}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: failed to decode backend response: %v", ErrBackendUnreachable, err)
	}
	if out.Message.Content != "" {
		return out.Message.Content, nil
	}
	return out.Response, nil
}

// Healthy probes GET /api/tags with a short budget. Any failure reads as
// "not available"; the probe never surfaces an error.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isTimeoutErr(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
