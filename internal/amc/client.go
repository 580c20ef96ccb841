package amc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

// APIError is a non-2xx response from the vendor API. Transport failures
// are returned as plain wrapped errors, so callers can tell the two kinds
// apart with errors.As.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amc api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

func NewClient(cfg utils.AMCConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 20 * time.Second},
		log:     log.With(zap.String("component", "amc_client")),
	}
}

// get issues an authenticated GET and decodes the body into out.
// The client never retries; retry policy belongs to callers.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-AMC-Vendor-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("amc request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read amc response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: vendorMessage(body)}
		c.log.Warn("AMC API error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode amc response: %w", err)
	}

	return nil
}

// vendorMessage pulls a human message out of an error body when one exists.
func vendorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "request failed"
}

// ValidateKey issues a minimal now-playing call and reports whether the
// configured vendor key is accepted. Used at startup and by GET /validate.
func (c *Client) ValidateKey(ctx context.Context) error {
	query := url.Values{}
	query.Set("page-size", "1")

	var envelope movieEnvelope
	if err := c.get(ctx, "/v2/movies/views/now-playing", query, &envelope); err != nil {
		return err
	}
	return nil
}
