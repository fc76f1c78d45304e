// Package transport sends requests to the MarzPay API. The resource
// APIs only see the Requester interface, so anything that can perform a
// round trip — including test stubs — can stand in for the real client.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Katznicho/marzpay-go/config"
	"github.com/Katznicho/marzpay-go/merror"
)

// Result is the decoded response document returned by the MarzPay API.
// The SDK passes it through without interpreting its contents.
type Result map[string]any

// Requester performs a single API round trip. Implementations own base
// URL, authentication, serialization and failure reporting.
type Requester interface {
	Request(ctx context.Context, method, path string, data map[string]any) (Result, error)
}

// Client is the HTTP Requester used against the live MarzPay API. It
// authenticates with Basic auth from the configured API user and key.
type Client struct {
	baseURL    string
	apiUser    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the HTTP transport from SDK configuration.
func NewClient(cfg config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiUser:    cfg.APIUser,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Request sends one request and decodes the JSON response. Non-2xx
// responses come back as *merror.APIError; transport-level failures are
// returned wrapped but otherwise unchanged.
func (c *Client) Request(ctx context.Context, method, path string, data map[string]any) (Result, error) {
	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.apiUser, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("api request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", time.Since(start).String(),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}

	if len(raw) == 0 {
		return Result{}, nil
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return result, nil
}

// decodeAPIError pulls code/message out of an error body when the
// service sent them; the status code alone is kept otherwise.
func decodeAPIError(status int, raw []byte) *merror.APIError {
	apiErr := &merror.APIError{Status: status}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}
