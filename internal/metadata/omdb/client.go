// Package omdb is a minimal OMDb API client covering title lookup and
// search.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinemood/cinemood/internal/config"
)

var (
	ErrAPIKeyMissing = errors.New("OMDb API key is not configured")
	ErrNotFound      = errors.New("not found on OMDb")
	ErrAPIError      = errors.New("OMDb API error")
)

// Client is an OMDb API client.
type Client struct {
	httpClient *http.Client
	config     config.OMDBConfig
	logger     zerolog.Logger
}

// NewClient creates a new OMDb client.
func NewClient(cfg config.OMDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "omdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "omdb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// GetByTitle fetches full metadata for one title. A title OMDb does not know
// is a normal outcome and returns ErrNotFound.
func (c *Client) GetByTitle(ctx context.Context, title string) (*Movie, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}
	if title == "" {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("t", title)

	var omdbResp Response
	if err := c.get(ctx, params, &omdbResp); err != nil {
		return nil, err
	}

	if omdbResp.Response == "False" {
		if omdbResp.Error == "Movie not found!" {
			return nil, ErrNotFound
		}
		c.logger.Warn().Str("error", omdbResp.Error).Str("title", title).Msg("OMDb API returned error")
		return nil, fmt.Errorf("%w: %s", ErrAPIError, omdbResp.Error)
	}

	return normalizeMovie(omdbResp), nil
}

// Search runs a title search. An empty result set returns ErrNotFound.
func (c *Client) Search(ctx context.Context, query string) ([]SearchEntry, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}
	if query == "" {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("s", query)

	var searchResp SearchResponse
	if err := c.get(ctx, params, &searchResp); err != nil {
		return nil, err
	}

	if searchResp.Response == "False" {
		if searchResp.Error == "Movie not found!" {
			return nil, ErrNotFound
		}
		c.logger.Warn().Str("error", searchResp.Error).Str("query", query).Msg("OMDb API returned error")
		return nil, fmt.Errorf("%w: %s", ErrAPIError, searchResp.Error)
	}

	return searchResp.Search, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s?%s", c.config.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
