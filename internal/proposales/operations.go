// internal/proposales/operations.go
package proposales

import (
	"context"
	"fmt"
)

// Typed operations over the remote API, one per assistant tool.

// GetProposal fetches a single proposal by its UUID.
func (c *Client) GetProposal(ctx context.Context, uuid string) (interface{}, error) {
	return c.FetchJSON(ctx, fmt.Sprintf("/v3/proposals/%s", uuid))
}

// ListContent fetches the content catalog (rooms, products, services).
func (c *Client) ListContent(ctx context.Context) (interface{}, error) {
	return c.FetchJSON(ctx, "/v3/content")
}

// ListCompanies fetches the companies visible to the configured API key.
func (c *Client) ListCompanies(ctx context.Context) (interface{}, error) {
	return c.FetchJSON(ctx, "/v3/companies")
}

// ListAttachments fetches the available attachments.
func (c *Client) ListAttachments(ctx context.Context) (interface{}, error) {
	return c.FetchJSON(ctx, "/v1/attachments")
}

// CreateProposal submits a generated proposal payload.
func (c *Client) CreateProposal(ctx context.Context, payload interface{}) (interface{}, error) {
	return c.PostJSON(ctx, "/v3/proposals", payload)
}
