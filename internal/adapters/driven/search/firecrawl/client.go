// Package firecrawl provides a search-scrape adapter using the Firecrawl API.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/deepqa-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchScraper = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.firecrawl.dev"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Firecrawl client.
type Config struct {
	// APIKey is the Firecrawl API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.firecrawl.dev).
	BaseURL string

	// Timeout is the request timeout (default: 120s). Search-and-scrape
	// fetches every result page, so it runs far longer than a plain search.
	Timeout time.Duration
}

// Client searches the web and scrapes results via Firecrawl.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// searchRequest is the Firecrawl /v1/search request format.
type searchRequest struct {
	Query         string        `json:"query"`
	Limit         int           `json:"limit"`
	ScrapeOptions scrapeOptions `json:"scrapeOptions"`
}

// scrapeOptions selects the scraped output format.
type scrapeOptions struct {
	Formats []string `json:"formats"`
}

// searchResponse is the Firecrawl /v1/search response format.
type searchResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		URL      string `json:"url"`
		Title    string `json:"title"`
		Markdown string `json:"markdown"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
}

// NewClient creates a new Firecrawl search-scrape client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("firecrawl: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

// Search requests up to limit markdown-scraped documents for the query.
// Service-reported failures and transport failures both return empty
// results and an error wrapping domain.ErrSearchFailed.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Document, []string, error) {
	reqBody := searchRequest{
		Query: query,
		Limit: limit,
		ScrapeOptions: scrapeOptions{
			Formats: []string{"markdown"},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: marshal request: %w", domain.ErrSearchFailed, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/search",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: create request: %w", domain.ErrSearchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: send request: %w", domain.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read response: %w", domain.ErrSearchFailed, err)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, nil, fmt.Errorf("%w: decode response: %w", domain.ErrSearchFailed, err)
	}

	if !searchResp.Success {
		message := searchResp.Error
		if message == "" {
			message = fmt.Sprintf("firecrawl status %d", resp.StatusCode)
		}
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrSearchFailed, message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: firecrawl status %d: %s",
			domain.ErrSearchFailed, resp.StatusCode, string(body))
	}

	docs := make([]domain.Document, 0, len(searchResp.Data))
	urls := make([]string, 0, len(searchResp.Data))
	for _, item := range searchResp.Data {
		docs = append(docs, domain.Document{
			Content:   item.Markdown,
			SourceURL: item.URL,
			Title:     item.Title,
		})
		urls = append(urls, item.URL)
	}

	logger.Debug("Firecrawl returned %d documents for %q", len(docs), query)
	return docs, urls, nil
}
