package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.WikiAPIURL != DefaultWikiAPIURL {
		t.Errorf("WikiAPIURL = %q, want %q", cfg.WikiAPIURL, DefaultWikiAPIURL)
	}
	if cfg.PricesAPIURL != DefaultPricesAPIURL {
		t.Errorf("PricesAPIURL = %q, want %q", cfg.PricesAPIURL, DefaultPricesAPIURL)
	}
	if cfg.WikiSyncAPIURL != DefaultWikiSyncAPIURL {
		t.Errorf("WikiSyncAPIURL = %q, want %q", cfg.WikiSyncAPIURL, DefaultWikiSyncAPIURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", cfg.UserAgent)
	}
	if !strings.Contains(cfg.SyncDir, "osrs-companion") {
		t.Errorf("SyncDir = %q, want path containing osrs-companion", cfg.SyncDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OSRS_WIKI_API_URL", "http://localhost:8080/api.php")
	t.Setenv("OSRS_PRICES_API_URL", "http://localhost:8081")
	t.Setenv("OSRS_WIKISYNC_API_URL", "http://localhost:8082")
	t.Setenv("OSRS_SYNC_DIR", "/tmp/sync")
	t.Setenv("OSRS_USER_AGENT", "test-agent/0.1")
	t.Setenv("OSRS_TIMEOUT", "5s")
	t.Setenv("OSRS_METRICS_ADDR", ":9090")

	cfg := Load()

	if cfg.WikiAPIURL != "http://localhost:8080/api.php" {
		t.Errorf("WikiAPIURL = %q", cfg.WikiAPIURL)
	}
	if cfg.PricesAPIURL != "http://localhost:8081" {
		t.Errorf("PricesAPIURL = %q", cfg.PricesAPIURL)
	}
	if cfg.WikiSyncAPIURL != "http://localhost:8082" {
		t.Errorf("WikiSyncAPIURL = %q", cfg.WikiSyncAPIURL)
	}
	if cfg.SyncDir != "/tmp/sync" {
		t.Errorf("SyncDir = %q", cfg.SyncDir)
	}
	if cfg.UserAgent != "test-agent/0.1" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q, want :9090", cfg.MetricsAddr)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("OSRS_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s for invalid value", cfg.Timeout)
	}
}
