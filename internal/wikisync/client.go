// Package wikisync fetches third-party player data from the WikiSync API,
// with a time-bounded per-username cache.
package wikisync

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/isaachansen/osrs-companion/internal/base"
	"github.com/isaachansen/osrs-companion/internal/infra"
	"github.com/isaachansen/osrs-companion/internal/oserr"
	"github.com/isaachansen/osrs-companion/metrics"
)

// CacheTTL is how long a fetched player payload stays fresh
const CacheTTL = time.Hour

// Client provides cached access to the WikiSync player-data API
type Client struct {
	base   *base.Client
	apiURL string
	logger *slog.Logger
	cache  *infra.Cache
}

// NewClient creates a WikiSync client against the given API base URL
func NewClient(apiURL string, baseClient *base.Client, logger *slog.Logger) *Client {
	return &Client{
		base:   baseClient,
		apiURL: apiURL,
		logger: logger,
		cache:  infra.NewCache(infra.DefaultMaxCacheEntries),
	}
}

// Close releases the cache's background resources
func (c *Client) Close() {
	c.cache.Close()
}

// Fetch returns the WikiSync payload for a username. A fresh cache entry is
// returned with zero network cost unless forceRefresh is set. Upstream
// failures and empty payloads come back as displayable results with a
// message, never as errors.
func (c *Client) Fetch(ctx context.Context, username string, forceRefresh bool) (PlayerDataResult, error) {
	if err := ValidateUsername(username); err != nil {
		return PlayerDataResult{}, err
	}

	key := strings.ToLower(username)

	if !forceRefresh {
		if cached, storedAt, ok := c.cache.Get(key); ok {
			metrics.RecordCacheAccess("player_data", true)
			return PlayerDataResult{
				Username:  username,
				Found:     true,
				Cached:    true,
				FetchedAt: storedAt.UTC().Format(time.RFC3339),
				Data:      cached.(map[string]any),
			}, nil
		}
	}
	metrics.RecordCacheAccess("player_data", false)

	data, err := c.fetchRemote(ctx, username)
	if err != nil {
		// An empty object is a successful response meaning the player has
		// no WikiSync data. Distinct from a transport failure, and not
		// cached so a later sync shows up on the next call.
		if oserr.IsEmptyResult(err) {
			return PlayerDataResult{
				Username: username,
				Found:    false,
				Message:  "No WikiSync data found for " + username + ". The player may not have the WikiSync plugin enabled.",
			}, nil
		}
		c.logger.Warn("WikiSync fetch failed", "username", username, "error", err)
		return PlayerDataResult{
			Username: username,
			Found:    false,
			Message:  "Failed to fetch WikiSync data for " + username + ": " + err.Error(),
		}, nil
	}

	c.cache.Set(key, data, CacheTTL)
	metrics.SetCacheSize("player_data", c.cache.Size())

	return PlayerDataResult{
		Username:  username,
		Found:     true,
		Cached:    false,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}, nil
}

// fetchRemote performs the uncached API call. A successful response with an
// empty payload comes back as an EmptyResultError.
func (c *Client) fetchRemote(ctx context.Context, username string) (map[string]any, error) {
	var data map[string]any
	endpoint := c.apiURL + "/player/" + url.PathEscape(username) + "/STANDARD"
	if err := c.base.GetJSON(ctx, "wikisync", "player", endpoint, nil, &data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &oserr.EmptyResultError{Username: username}
	}
	return data, nil
}

// FetchMCP is the MCP wrapper for Fetch
func (c *Client) FetchMCP(ctx context.Context, args PlayerArgs) (PlayerDataResult, error) {
	return c.Fetch(ctx, args.Username, args.ForceRefresh)
}

// MaxUsernameLength is the OSRS display name limit
const MaxUsernameLength = 12

// ValidateUsername validates an OSRS username.
func ValidateUsername(username string) error {
	if username == "" {
		return oserr.NewValidationError("username", "", "username is required")
	}
	if len(username) > MaxUsernameLength {
		return oserr.NewValidationError("username", username, "username exceeds 12 characters")
	}
	return nil
}
