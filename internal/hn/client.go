// Package hn talks to the Hacker News search API.
package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"hackerstories/internal/domain"
)

// DefaultEndpoint is the search endpoint; the escaped query is appended to it
const DefaultEndpoint = "https://hn.algolia.com/api/v1/search?query="

// maxErrorBody caps how much of a failed response is kept for the error
const maxErrorBody = 512

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Target     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search request to %s failed with status %d", e.Target, e.StatusCode)
}

// Target builds the request address for a query
func Target(endpoint, query string) string {
	return endpoint + url.QueryEscape(query)
}

type hit struct {
	ObjectID    string `json:"objectID"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	NumComments *int   `json:"num_comments"`
	Points      *int   `json:"points"`
}

type searchResponse struct {
	Hits []hit `json:"hits"`
}

// Client issues search requests
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client. A nil httpClient uses a client with no
// timeout; hung requests are bounded only by the caller's context.
func NewClient(httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{httpClient: httpClient, logger: logger.Named("hn")}
}

// Search fetches target and decodes its hits
func (c *Client) Search(ctx context.Context, target string) ([]domain.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Target: target, Body: string(body)}
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if decoded.Hits == nil {
		return nil, fmt.Errorf("failed to decode search response: missing hits")
	}

	items := make([]domain.Item, 0, len(decoded.Hits))
	for _, h := range decoded.Hits {
		items = append(items, h.toItem())
	}
	c.logger.Debug("search completed", zap.String("target", target), zap.Int("hits", len(items)))
	return items, nil
}

func (h hit) toItem() domain.Item {
	item := domain.Item{
		ID:     h.ObjectID,
		URL:    h.URL,
		Title:  h.Title,
		Author: h.Author,
	}
	if h.NumComments != nil {
		item.CommentCount = *h.NumComments
	}
	if h.Points != nil {
		item.Score = *h.Points
	}
	return item
}
