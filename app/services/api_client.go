package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// apiClient is the shared HTTP plumbing for third-party JSON APIs.
type apiClient struct {
	name    string
	baseURL string
	client  *http.Client
	headers map[string]string
}

func newAPIClient(name, baseURL string, headers map[string]string) *apiClient {
	return &apiClient{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		headers: headers,
	}
}

func (c *apiClient) doRequest(ctx context.Context, method, query string, body []byte, contentType string) ([]byte, error) {
	fullURL := c.baseURL + query

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build request: %w", c.name, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response body: %w", c.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: returned status %d: %s", c.name, resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
