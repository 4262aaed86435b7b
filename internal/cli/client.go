package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/guavagrams/internal/api/request"
	"github.com/mcoot/guavagrams/internal/api/response"
)

// Client is an HTTP client for the API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewLocalClient creates a client that serves every request in process
func NewLocalClient(handler http.Handler) *Client {
	return &Client{
		baseURL: "http://local",
		httpClient: &http.Client{
			Transport: handlerTransport{handler: handler},
		},
	}
}

// APIError represents an error response from the API
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Word    string `json:"word,omitempty"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Do performs an HTTP request
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			errResp.Error.Status = resp.StatusCode
			return &errResp.Error
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPut, path, body, result)
}

// Validate adjudicates a board
func (c *Client) Validate(ctx context.Context, req request.ValidateBoardRequest) (response.Verdict, error) {
	var result response.Verdict
	err := c.Post(ctx, "/api/v1/boards/validate", req, &result)
	return result, err
}

// CreatePile generates a pile
func (c *Client) CreatePile(ctx context.Context, req request.CreatePileRequest) (response.Pile, error) {
	var result response.Pile
	err := c.Post(ctx, "/api/v1/piles", req, &result)
	return result, err
}

// Draw pulls letters from a distribution
func (c *Client) Draw(ctx context.Context, req request.DrawRequest) (response.Draw, error) {
	var result response.Draw
	err := c.Post(ctx, "/api/v1/draws", req, &result)
	return result, err
}

// Distribution describes a letter distribution
func (c *Client) Distribution(ctx context.Context, name, dictionary string) (response.Distribution, error) {
	path := "/api/v1/distributions/" + url.PathEscape(name)
	if dictionary != "" {
		path += "?dictionary=" + url.QueryEscape(dictionary)
	}
	var result response.Distribution
	err := c.Get(ctx, path, &result)
	return result, err
}

// Dictionaries lists loaded vocabularies
func (c *Client) Dictionaries(ctx context.Context) (response.DictionaryList, error) {
	var result response.DictionaryList
	err := c.Get(ctx, "/api/v1/dictionaries", &result)
	return result, err
}

// SaveDictionary uploads a vocabulary
func (c *Client) SaveDictionary(ctx context.Context, name string, words []string) (response.Dictionary, error) {
	var result response.Dictionary
	err := c.Put(ctx, "/api/v1/dictionaries/"+url.PathEscape(name), request.SaveDictionaryRequest{Words: words}, &result)
	return result, err
}

// DeleteDictionary removes a vocabulary from the server
func (c *Client) DeleteDictionary(ctx context.Context, name string) error {
	return c.Delete(ctx, "/api/v1/dictionaries/"+url.PathEscape(name))
}

// ScoreTable fetches the active letter values
func (c *Client) ScoreTable(ctx context.Context) (response.ScoreTable, error) {
	var result response.ScoreTable
	err := c.Get(ctx, "/api/v1/score-table", &result)
	return result, err
}

// Health checks the server
func (c *Client) Health(ctx context.Context) (HealthResult, error) {
	var result HealthResult
	err := c.Get(ctx, "/api/v1/health", &result)
	return result, err
}
