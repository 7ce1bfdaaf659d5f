// Package config loads server configuration from environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default endpoints for the three OSRS data sources
const (
	DefaultWikiAPIURL     = "https://oldschool.runescape.wiki/api.php"
	DefaultPricesAPIURL   = "https://prices.runescape.wiki/api/osrs"
	DefaultWikiSyncAPIURL = "https://sync.runescape.wiki/runelite"
)

// DefaultUserAgent identifies the client to the wiki APIs, which require
// a descriptive User-Agent for programmatic access.
const DefaultUserAgent = "osrs-companion-mcp/1.0 (https://github.com/isaachansen/osrs-companion)"

// Config holds connection settings for all data sources
type Config struct {
	// WikiAPIURL is the MediaWiki API endpoint of the OSRS wiki
	WikiAPIURL string

	// PricesAPIURL is the real-time Grand Exchange price API
	PricesAPIURL string

	// WikiSyncAPIURL is the WikiSync player-data API
	WikiSyncAPIURL string

	// SyncDir is the local directory the companion plugin writes player
	// sync documents into
	SyncDir string

	// UserAgent identifies the client to the upstream APIs
	UserAgent string

	// Timeout for API requests
	Timeout time.Duration

	// MetricsAddr is the optional Prometheus listen address (empty = disabled)
	MetricsAddr string
}

// Load reads configuration from environment variables, falling back to
// defaults. It never fails on a missing variable; every setting has a
// usable default.
func Load() *Config {
	cfg := &Config{
		WikiAPIURL:     envOrDefault("OSRS_WIKI_API_URL", DefaultWikiAPIURL),
		PricesAPIURL:   envOrDefault("OSRS_PRICES_API_URL", DefaultPricesAPIURL),
		WikiSyncAPIURL: envOrDefault("OSRS_WIKISYNC_API_URL", DefaultWikiSyncAPIURL),
		SyncDir:        os.Getenv("OSRS_SYNC_DIR"),
		UserAgent:      envOrDefault("OSRS_USER_AGENT", DefaultUserAgent),
		Timeout:        30 * time.Second,
		MetricsAddr:    os.Getenv("OSRS_METRICS_ADDR"),
	}

	if t := os.Getenv("OSRS_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if cfg.SyncDir == "" {
		cfg.SyncDir = defaultSyncDir()
	}

	return cfg
}

// defaultSyncDir is the fixed companion plugin write surface under the
// user's home directory.
func defaultSyncDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".runelite", "osrs-companion")
	}
	return filepath.Join(home, ".runelite", "osrs-companion")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
