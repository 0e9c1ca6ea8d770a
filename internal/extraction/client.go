package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient implements Client against the extraction service's REST API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Submit(ctx context.Context, fileBytes []byte, modelID string) (string, error) {
	u := fmt.Sprintf("%s/v1/operations?model=%s", c.baseURL, url.QueryEscape(modelID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(fileBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("submit operation: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode submit response: %w", err)
	}
	if result.Data.ID == "" {
		return "", fmt.Errorf("submit response missing operation id")
	}
	return result.Data.ID, nil
}

func (c *HTTPClient) Poll(ctx context.Context, operationRef string) (*PollResult, error) {
	u := fmt.Sprintf("%s/v1/operations/%s", c.baseURL, url.PathEscape(operationRef))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("poll operation %s: status %d, body: %s", operationRef, resp.StatusCode, string(respBody))
	}

	var result struct {
		Data struct {
			Status string          `json:"status"`
			Fields json.RawMessage `json:"fields"`
			Error  string          `json:"error"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode poll response: %w", err)
	}

	switch OperationStatus(result.Data.Status) {
	case StatusRunning, StatusSucceeded, StatusFailed:
	default:
		return nil, fmt.Errorf("poll operation %s: unknown status %q", operationRef, result.Data.Status)
	}

	return &PollResult{
		Status: OperationStatus(result.Data.Status),
		Fields: result.Data.Fields,
		Error:  result.Data.Error,
	}, nil
}
