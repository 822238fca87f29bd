package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnauthorized marks responses rejected for a missing or expired token.
// Callers route it to the login flow instead of showing a raw API error.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a failed API call: either a non-2xx status or a response envelope
// with success=false. Message is the server-provided text when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// TokenFunc returns the current bearer token, or empty when unauthenticated.
type TokenFunc func() string

// Client issues requests against the remote dowry API. All persistence,
// image storage, and OCR live behind it; the client never retries.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
}

// New creates a client for the given base URL. token may be nil for a client
// that only calls unauthenticated endpoints.
func New(baseURL string, timeout time.Duration, token TokenFunc) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

// envelope is the common response wrapper used by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do sends a JSON request and decodes the enveloped response into out (when
// non-nil). Transport failures, non-2xx statuses and success=false envelopes
// all come back as errors; there is no distinction callers need to make
// beyond ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, envMessage(env))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response payload: %w", err)
		}
	}
	return nil
}

func envMessage(env envelope) string {
	if env.Message != "" {
		return env.Message
	}
	return "authentication required"
}
