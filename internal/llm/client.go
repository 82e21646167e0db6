// internal/llm/client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"proposal-assistant/internal/common/config"
	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/common/metrics"
)

var (
	ErrCompletionFailed = errors.New("LLM_COMPLETION_FAILED")
	ErrEmptyCompletion  = errors.New("LLM_EMPTY_COMPLETION")
)

// Client calls an OpenAI-compatible chat completions endpoint. One request
// per call, no retry: callers decide what a failure means.
type Client struct {
	config config.OpenAIConfig
	client *http.Client
	logger logger.Logger
}

func NewClient(cfg config.OpenAIConfig, log logger.Logger) *Client {
	return &Client{
		config: cfg,
		// No client timeout, rely on the request context.
		client: &http.Client{},
		logger: log.With(map[string]interface{}{
			"component": "llm",
			"model":     cfg.Model,
		}),
	}
}

// Complete performs a single chat completion.
func (c *Client) Complete(ctx context.Context, request *Request) (*Completion, error) {
	maxTokens := request.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}
	temperature := request.Temperature
	if temperature == 0 {
		temperature = c.config.Temperature
	}

	body, err := json.Marshal(apiRequest{
		Model:       c.config.Model,
		Messages:    request.Messages,
		Tools:       request.Tools,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL+"/v1/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyText, _ := io.ReadAll(resp.Body)
		c.logger.Error("completion request failed", map[string]interface{}{
			"statusCode": resp.StatusCode,
			"body":       string(bodyText),
		})
		return nil, fmt.Errorf("%w: status %d", ErrCompletionFailed, resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrCompletionFailed, err)
	}

	if len(decoded.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	choice := decoded.Choices[0]
	completion := &Completion{
		Text:      choice.Message.Content,
		ToolCalls: choice.Message.ToolCalls,
		Usage:     decoded.Usage,
	}

	metrics.LLMTokensTotal.WithLabelValues("prompt").Add(float64(decoded.Usage.PromptTokens))
	metrics.LLMTokensTotal.WithLabelValues("completion").Add(float64(decoded.Usage.CompletionTokens))

	c.logger.Info("completion finished", map[string]interface{}{
		"finishReason":     choice.FinishReason,
		"promptTokens":     decoded.Usage.PromptTokens,
		"completionTokens": decoded.Usage.CompletionTokens,
		"toolCalls":        len(completion.ToolCalls),
	})

	return completion, nil
}
