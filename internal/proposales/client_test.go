// internal/proposales/client_test.go
package proposales

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposal-assistant/internal/common/config"
	apperrors "proposal-assistant/internal/common/errors"
	"proposal-assistant/internal/common/logger"
)

func testClient(t *testing.T, baseURL string) *Client {
	resolved := &config.Resolved{
		Headers: map[string]string{
			"Authorization": "Bearer test-key",
			"Content-Type":  "application/json",
			"X-Company-Id":  "42",
		},
		BaseURL: baseURL,
	}
	return NewClient(resolved, 5*time.Second, logger.NewTestLogger(t))
}

func TestClient_FetchJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v3/content", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "42", r.Header.Get("X-Company-Id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":1,"name":"Deluxe Room"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	resp, err := client.FetchJSON(context.Background(), "/v3/content")

	require.NoError(t, err)
	items := UnwrapList(resp)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Deluxe Room", item["name"])
}

func TestClient_FetchJSON_NonOKStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{name: "not found", statusCode: http.StatusNotFound, body: `{"error":"proposal not found"}`},
		{name: "unauthorized", statusCode: http.StatusUnauthorized, body: `{"error":"invalid api key"}`},
		{name: "server error", statusCode: http.StatusInternalServerError, body: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := testClient(t, server.URL)
			_, err := client.FetchJSON(context.Background(), "/v3/proposals/abc")

			require.Error(t, err)
			var apiErr *apperrors.ExternalAPIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, http.StatusText(tt.statusCode), apiErr.StatusText)
			assert.Equal(t, tt.body, apiErr.Body)
			// The message carries status code, status text and body.
			assert.Contains(t, err.Error(), http.StatusText(tt.statusCode))
			assert.Contains(t, err.Error(), tt.body)
		})
	}
}

func TestClient_FetchJSON_TransportFailure(t *testing.T) {
	// Point at a closed server to force a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient(t, server.URL)
	_, err := client.FetchJSON(context.Background(), "/v3/companies")

	require.Error(t, err)
	var transportErr *apperrors.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestClient_PostJSON_SendsBodyAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v3/proposals", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(7), body["company_id"])

		w.Write([]byte(`{"data":{"uuid":"p-123","url":"https://app.proposales.com/p/p-123"}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	resp, err := client.CreateProposal(context.Background(), map[string]interface{}{"company_id": 7})

	require.NoError(t, err)
	data := UnwrapData(resp).(map[string]interface{})
	assert.Equal(t, "p-123", data["uuid"])
}

func TestClient_TypedOperationPaths(t *testing.T) {
	tests := []struct {
		name string
		call func(ctx context.Context, c *Client) (interface{}, error)
		path string
	}{
		{
			name: "get proposal",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.GetProposal(ctx, "3f6fd92e-1a6f-4a3e-9a8e-04d0a2a7d9c1")
			},
			path: "/v3/proposals/3f6fd92e-1a6f-4a3e-9a8e-04d0a2a7d9c1",
		},
		{
			name: "list content",
			call: func(ctx context.Context, c *Client) (interface{}, error) { return c.ListContent(ctx) },
			path: "/v3/content",
		},
		{
			name: "list companies",
			call: func(ctx context.Context, c *Client) (interface{}, error) { return c.ListCompanies(ctx) },
			path: "/v3/companies",
		},
		{
			name: "list attachments",
			call: func(ctx context.Context, c *Client) (interface{}, error) { return c.ListAttachments(ctx) },
			path: "/v1/attachments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Write([]byte(`{"data":[]}`))
			}))
			defer server.Close()

			client := testClient(t, server.URL)
			_, err := tt.call(context.Background(), client)

			require.NoError(t, err)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestUnwrapData(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected interface{}
	}{
		{
			name:     "enveloped object",
			input:    map[string]interface{}{"data": map[string]interface{}{"id": 1.0}},
			expected: map[string]interface{}{"id": 1.0},
		},
		{
			name:     "bare object",
			input:    map[string]interface{}{"id": 1.0},
			expected: map[string]interface{}{"id": 1.0},
		},
		{
			name:     "bare array",
			input:    []interface{}{"a", "b"},
			expected: []interface{}{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnwrapData(tt.input))
		})
	}
}

func TestUnwrapList(t *testing.T) {
	enveloped := map[string]interface{}{"data": []interface{}{"x"}}
	assert.Equal(t, []interface{}{"x"}, UnwrapList(enveloped))
	assert.Equal(t, []interface{}{"y"}, UnwrapList([]interface{}{"y"}))
	assert.Empty(t, UnwrapList(map[string]interface{}{"id": 1}))
	assert.Empty(t, UnwrapList("not a list"))
}

func TestLocalizedString(t *testing.T) {
	assert.Equal(t, "Deluxe Room", LocalizedString("Deluxe Room"))
	assert.Equal(t, "Deluxe Room", LocalizedString(map[string]interface{}{
		"en": "Deluxe Room",
		"sv": "Deluxerum",
	}))
	assert.Equal(t, "Breakfast", LocalizedString(map[string]interface{}{
		"en-US": "Breakfast",
	}))
	assert.Equal(t, "Deluxerum", LocalizedString(map[string]interface{}{
		"sv": "Deluxerum",
	}))
	assert.Equal(t, "", LocalizedString(nil))
	assert.Equal(t, "", LocalizedString(42))
}
