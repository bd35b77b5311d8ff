// Package owners provides an HTTP client for the external owner directory.
package owners

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// Client fetches the owner list from a single URL.
type Client struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a client for url. An empty url yields a client whose every
// call fails with domain.ErrOwnersNotConfigured.
func New(url string, log zerolog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// ListOwners returns the owners as [{id, name}] in directory order.
func (c *Client) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	if c.url == "" {
		return nil, domain.ErrOwnersNotConfigured
	}

	owners, err := c.fetch(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("url", c.url).Msg("fetch owners")
		return nil, fmt.Errorf("%w: %v", domain.ErrOwnersUnavailable, err)
	}
	return owners, nil
}

func (c *Client) fetch(ctx context.Context) ([]domain.Owner, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var owners []domain.Owner
	if err := json.Unmarshal(body, &owners); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if owners == nil {
		owners = []domain.Owner{}
	}
	return owners, nil
}
