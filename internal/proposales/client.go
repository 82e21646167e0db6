// internal/proposales/client.go
package proposales

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"proposal-assistant/internal/common/config"
	apperrors "proposal-assistant/internal/common/errors"
	"proposal-assistant/internal/common/logger"
)

// Client talks to the remote Proposales REST API. It performs single-shot
// requests only: no retries, no caching.
type Client struct {
	resolved *config.Resolved
	client   *http.Client
	logger   logger.Logger
}

// NewClient builds a gateway client from resolved API configuration.
func NewClient(resolved *config.Resolved, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		resolved: resolved,
		client:   &http.Client{Timeout: timeout},
		logger: log.With(map[string]interface{}{
			"component": "proposales",
		}),
	}
}

// FetchJSON issues a GET against the remote API and decodes the JSON body.
func (c *Client) FetchJSON(ctx context.Context, path string) (interface{}, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// PostJSON issues a POST with a JSON body and decodes the JSON response.
func (c *Client) PostJSON(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (interface{}, error) {
	operation := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.NewTransportError(operation, err)
		}
		reader = bytes.NewBuffer(encoded)
	}

	url := strings.TrimRight(c.resolved.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apperrors.NewTransportError(operation, err)
	}
	for key, value := range c.resolved.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("remote API request failed", map[string]interface{}{
			"operation": operation,
			"error":     err.Error(),
		})
		return nil, apperrors.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyText, _ := io.ReadAll(resp.Body)
		statusText := http.StatusText(resp.StatusCode)
		c.logger.Error("remote API returned error status", map[string]interface{}{
			"operation":  operation,
			"statusCode": resp.StatusCode,
			"body":       string(bodyText),
		})
		return nil, apperrors.NewExternalAPIError(operation, resp.StatusCode, statusText, string(bodyText))
	}

	var decoded interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewTransportError(operation, fmt.Errorf("decode response: %w", err))
	}

	c.logger.Debug("remote API request completed", map[string]interface{}{
		"operation":  operation,
		"statusCode": resp.StatusCode,
	})

	return decoded, nil
}
