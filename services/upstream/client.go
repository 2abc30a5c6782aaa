// Package upstream talks to the external registration API: event lookups
// with bounded retry and the final registration submission.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"podio/models"
	"podio/utils"

	"go.uber.org/zap"
)

const (
	maxRetries = 3
	retryDelay = 1 * time.Second
)

// Client is the thin HTTP client for the registration API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *zap.Logger
}

// NewClient builds a client against the given base URL. The token is sent
// as `Authorization: Token {token}` on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		token:      token,
		logger:     utils.GetLogger(),
	}
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	return req, nil
}

// FetchEvent retrieves an event record. A 404 is terminal; any other
// failure is retried up to maxRetries attempts with a linear delay, then
// reported as a generic fetch failure. Cancelling the context stops the
// retry loop immediately.
func (c *Client) FetchEvent(ctx context.Context, eventID int) (*models.Event, error) {
	url := fmt.Sprintf("%s/events/%d/", c.baseURL, eventID)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		event, retryable, err := c.fetchEventOnce(ctx, url)
		if err == nil {
			return event, nil
		}
		if !retryable {
			return nil, err
		}
		c.logger.Warn("event fetch failed",
			zap.Int("eventID", eventID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == maxRetries {
			return nil, ErrEventFetchFailed
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, ErrEventFetchFailed
}

func (c *Client) fetchEventOnce(ctx context.Context, url string) (*models.Event, bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, ErrEventNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, true, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var event models.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return nil, true, fmt.Errorf("failed to decode event: %w", err)
	}
	return &event, false, nil
}

// Register submits an assembled registration payload. Failures surface the
// server-supplied message when present, otherwise a generic fallback. The
// response body comes back opaque.
func (c *Client) Register(ctx context.Context, payload models.RegistrationRequest) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/register/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registration request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "Registration failed"
		var serverErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err == nil && serverErr.Message != "" {
			message = serverErr.Message
		}
		c.logger.Warn("registration rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: message}
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Success with an unreadable body is still a success.
		result = map[string]interface{}{}
	}
	return result, nil
}
