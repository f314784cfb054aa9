// Package cardapi is the client for the external card catalog API
package cardapi

//go:generate mockgen -destination=mock/mock_client.go -package=cardapimock github.com/planebound/planebound-api/internal/clients/cardapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/planebound/planebound-api/internal/errors"
	"github.com/planebound/planebound-api/internal/pkg/clock"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 15 * time.Minute

	// The public card API asks clients to stay under 10 requests per second
	requestsPerSecond = 10
)

// Client defines the interface for card catalog lookups
type Client interface {
	// SearchCards runs a full-text search against the card catalog
	SearchCards(ctx context.Context, query string) ([]*CardData, error)

	// GetRandomCard fetches one random card. Responses are never cached.
	GetRandomCard(ctx context.Context) (*CardData, error)

	// GetNamedCard fetches a card by exact name
	// Returns errors.NotFound when no card matches
	GetNamedCard(ctx context.Context, name string) (*CardData, error)
}

// Config contains configuration for the card API client
type Config struct {
	// BaseURL is the card API root, e.g. https://api.scryfall.com
	BaseURL string
	// HTTPTimeout bounds each request; defaults to 10s
	HTTPTimeout time.Duration
	// CacheTTL controls how long responses are reused; defaults to 15m
	CacheTTL time.Duration
	// Clock drives cache expiry; defaults to the real clock
	Clock clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return errors.InvalidArgument("base URL cannot be empty")
	}
	return nil
}

type cacheEntry struct {
	body    []byte
	expires time.Time
}

type client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	clock    clock.Clock
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// New creates a card API client with response caching and rate limiting
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &client{
		baseURL:  cfg.BaseURL,
		http:     &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		clock:    c,
		cacheTTL: ttl,
		cache:    make(map[string]cacheEntry),
	}, nil
}

func (c *client) SearchCards(ctx context.Context, query string) ([]*CardData, error) {
	if query == "" {
		return nil, errors.InvalidArgument("query cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/cards/search?q=%s", c.baseURL, url.QueryEscape(query))
	body, err := c.getCached(ctx, endpoint)
	if err != nil {
		if errors.IsNotFound(err) {
			// The API reports an empty result set as 404; treat it as no matches
			return nil, nil
		}
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to decode search response")
	}
	return result.Data, nil
}

func (c *client) GetRandomCard(ctx context.Context) (*CardData, error) {
	body, err := c.get(ctx, c.baseURL+"/cards/random")
	if err != nil {
		return nil, err
	}

	var card CardData
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, errors.Wrapf(err, "failed to decode card response")
	}
	return &card, nil
}

func (c *client) GetNamedCard(ctx context.Context, name string) (*CardData, error) {
	if name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/cards/named?exact=%s", c.baseURL, url.QueryEscape(name))
	body, err := c.getCached(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var card CardData
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, errors.Wrapf(err, "failed to decode card response")
	}
	return &card, nil
}

// getCached serves the response from cache when fresh, fetching and
// storing it otherwise
func (c *client) getCached(ctx context.Context, endpoint string) ([]byte, error) {
	now := c.clock.Now()

	c.mu.Lock()
	entry, ok := c.cache[endpoint]
	c.mu.Unlock()
	if ok && now.Before(entry.expires) {
		return entry.body, nil
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[endpoint] = cacheEntry{body: body, expires: now.Add(c.cacheTTL)}
	c.mu.Unlock()

	return body, nil
}

func (c *client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrapf(err, "rate limit wait interrupted")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "card API request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("card API returned 404 for %s", endpoint)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errors.ResourceExhausted("card API rate limit exceeded")
	case resp.StatusCode >= 400:
		return nil, errors.Internalf("card API returned status %d", resp.StatusCode)
	}

	return body, nil
}
