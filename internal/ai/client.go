// Package ai implements the client for the external text-generation API
// (an Anthropic-style messages endpoint). The rest of the application consumes
// it through the service.TextGenerator interface, so the vendor wire format
// is contained entirely in this package.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-opus-20240229"

const apiVersion = "2023-06-01"

// Client calls the messages API with retry/backoff on transient failures.
// It is safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
	model   string
}

// New constructs a Client. baseURL may be empty to use the vendor default;
// model may be empty to use DefaultModel. The API key is required.
func New(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("ai: api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		session: &http.Client{Timeout: 60 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}, nil
}

// messagesRequest is the wire format of POST /v1/messages.
type messagesRequest struct {
	Model       string                 `json:"model"`
	MaxTokens   int                    `json:"max_tokens"`
	Temperature float64                `json:"temperature"`
	System      string                 `json:"system,omitempty"`
	Messages    []domain.PromptMessage `json:"messages"`
}

// messagesResponse carries the part of the reply we consume: the generated
// text segments.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Generate sends the prompt upstream and returns the first generated text
// segment. It satisfies service.TextGenerator.
func (c *Client) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:       c.model,
		MaxTokens:   prompt.MaxTokens,
		Temperature: prompt.Temperature,
		System:      prompt.System,
		Messages:    prompt.Messages,
	})
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, bytes.NewReader(payload))
	})
	if err != nil {
		return "", fmt.Errorf("ai: messages call: %w", err)
	}
	defer resp.Body.Close()

	var out messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if len(out.Content) == 0 {
		return "", errors.New("ai: empty response content")
	}
	return out.Content[0].Text, nil
}

func (c *Client) newRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: string(b)}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429, 5xx responses)
// with exponential backoff while respecting context cancellation. Client
// errors other than 429 fail immediately.
func (c *Client) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 250 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := true
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusTooManyRequests,
				http.StatusInternalServerError,
				http.StatusBadGateway,
				http.StatusServiceUnavailable,
				http.StatusGatewayTimeout:
				retry = true
			default:
				retry = false
			}
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
