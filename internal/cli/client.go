package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/castlewars/internal/model"
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
			Timeout: 2 * time.Minute,
		},
	}
}

// APIError represents an error response from the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// CreateMatchRequest mirrors the API's request body for running a match
type CreateMatchRequest struct {
	Seed      *uint64  `json:"seed,omitempty"`
	Name      string   `json:"name,omitempty"`
	Opponents []string `json:"opponents,omitempty"`
	MaxTurns  int      `json:"max_turns,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Do performs an HTTP request
func (c *Client) Do(method, path string, body, result any) error {
	target := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, bodyReader)
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
			if errResp.Error.Code == "MATCH_NOT_FOUND" {
				return fmt.Errorf("%w: %s", model.ErrMatchNotFound, errResp.Error.String())
			}
			return fmt.Errorf("%s", errResp.Error.String())
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
func (c *Client) Get(path string, result any) error {
	return c.Do(http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(path string, body, result any) error {
	return c.Do(http.MethodPost, path, body, result)
}

// Delete performs a DELETE request
func (c *Client) Delete(path string) error {
	return c.Do(http.MethodDelete, path, nil, nil)
}

// CreateMatch runs a headless match on the server
func (c *Client) CreateMatch(req CreateMatchRequest) (*model.MatchSummary, error) {
	var summary model.MatchSummary
	if err := c.Post("/api/v1/matches", req, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetMatch fetches one recorded match
func (c *Client) GetMatch(id string) (*model.MatchSummary, error) {
	var summary model.MatchSummary
	if err := c.Get("/api/v1/matches/"+url.PathEscape(id), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListMatches fetches the most recent matches
func (c *Client) ListMatches(limit int) ([]*model.MatchSummary, error) {
	var result struct {
		Matches []*model.MatchSummary `json:"matches"`
	}
	if err := c.Get("/api/v1/matches?limit="+strconv.Itoa(limit), &result); err != nil {
		return nil, err
	}
	return result.Matches, nil
}

// DeleteMatch removes a recorded match
func (c *Client) DeleteMatch(id string) error {
	return c.Delete("/api/v1/matches/" + url.PathEscape(id))
}
