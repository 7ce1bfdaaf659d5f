// OSRS Companion MCP Server - a Model Context Protocol server exposing
// Old School RuneScape wiki content, Grand Exchange prices, and locally
// synced player data to AI assistants.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/isaachansen/osrs-companion/internal/base"
	"github.com/isaachansen/osrs-companion/internal/config"
	"github.com/isaachansen/osrs-companion/internal/ge"
	"github.com/isaachansen/osrs-companion/internal/player"
	"github.com/isaachansen/osrs-companion/internal/wiki"
	"github.com/isaachansen/osrs-companion/internal/wikisync"
	"github.com/isaachansen/osrs-companion/tools"
	"github.com/isaachansen/osrs-companion/tracing"
)

const (
	ServerName    = "osrs-companion-mcp"
	ServerVersion = "1.0.0"
)

const serverInstructions = `OSRS Companion MCP Server answers Old School RuneScape questions from three data sources.

Wiki (search, summary): general game knowledge - items, monsters, quests, mechanics.
Grand Exchange (price): live buy/sell prices for tradeable items.
Player data:
- get_my_* tools read the user's own locally synced characters (richest data: bank, inventory, equipment, stats, quests, diaries, combat achievements). Use list_synced_players to see who is available.
- player fetches another player's public WikiSync data.

Prefer get_my_* for the user's own character; fall back to player only when local sync data is absent.

Configure via environment variables:
- OSRS_WIKI_API_URL, OSRS_PRICES_API_URL, OSRS_WIKISYNC_API_URL: upstream endpoints
- OSRS_SYNC_DIR: local sync directory (default ~/.runelite/osrs-companion)
- OSRS_USER_AGENT: User-Agent sent to the wiki APIs
- OSRS_TIMEOUT: per-request timeout (default 30s)
- OSRS_METRICS_ADDR: optional Prometheus listen address, e.g. :9090`

func main() {
	// stdout carries the MCP protocol; all logging goes to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	baseClient := base.NewClient(
		base.WithLogger(logger),
		base.WithUserAgent(cfg.UserAgent),
		base.WithTimeout(cfg.Timeout),
	)

	wikiClient := wiki.NewClient(cfg.WikiAPIURL, baseClient, logger)
	geClient := ge.NewClient(cfg.PricesAPIURL, baseClient, logger)
	syncClient := wikisync.NewClient(cfg.WikiSyncAPIURL, baseClient, logger)
	defer syncClient.Close()
	store := player.NewStore(cfg.SyncDir, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	registry := tools.NewHandlerRegistry(wikiClient, geClient, syncClient, store, logger)
	registry.RegisterAll(server)

	logger.Info("Starting OSRS Companion MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"wiki_url", cfg.WikiAPIURL,
		"prices_url", cfg.PricesAPIURL,
		"sync_dir", cfg.SyncDir,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// serveMetrics exposes Prometheus metrics on addr. Failures are logged,
// never fatal; metrics are an optional surface.
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Serving Prometheus metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Metrics server stopped", "error", err)
	}
}
