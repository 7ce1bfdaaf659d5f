// Benchmark utility for the OSRS companion data sources. Exercises the
// live APIs, so run it sparingly and with a descriptive OSRS_USER_AGENT.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/isaachansen/osrs-companion/internal/base"
	"github.com/isaachansen/osrs-companion/internal/config"
	"github.com/isaachansen/osrs-companion/internal/ge"
	"github.com/isaachansen/osrs-companion/internal/player"
	"github.com/isaachansen/osrs-companion/internal/wiki"
)

// measureMappingCache times the item-mapping snapshot: a cold price lookup
// fetches the full mapping, a warm one resolves from memory.
func measureMappingCache() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	baseClient := base.NewClient(base.WithLogger(logger), base.WithUserAgent(cfg.UserAgent))
	client := ge.NewClient(cfg.PricesAPIURL, baseClient, logger)
	ctx := context.Background()

	fmt.Println("=== Item Mapping Cache Test ===")
	fmt.Println()

	start := time.Now()
	quote, err := client.PriceMCP(ctx, ge.PriceArgs{Item: "Cannonball"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First lookup (mapping fetch + price): %v\n", firstCall)

	start = time.Now()
	_, _ = client.PriceMCP(ctx, ge.PriceArgs{Item: "Abyssal whip"})
	secondCall := time.Since(start)
	fmt.Printf("   Second lookup (cached mapping):       %v\n", secondCall)
	fmt.Printf("   Speedup: %.0fx faster\n", float64(firstCall)/float64(secondCall))
	fmt.Printf("   Resolved: %s (id %d)\n", quote.Item, quote.ItemID)
	fmt.Println()
}

// measureWikiSearch is an uncached baseline against the wiki API.
func measureWikiSearch() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	baseClient := base.NewClient(base.WithLogger(logger), base.WithUserAgent(cfg.UserAgent))
	client := wiki.NewClient(cfg.WikiAPIURL, baseClient, logger)
	ctx := context.Background()

	fmt.Println("=== Wiki Search Baseline (no caching) ===")
	fmt.Println()

	start := time.Now()
	result, err := client.Search(ctx, wiki.SearchArgs{Query: "Zulrah", Limit: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Search time: %v (%d hits)\n", time.Since(start), result.TotalHits)
	fmt.Println()
}

// measureSyncStore times local sync document listing and loading.
func measureSyncStore() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store := player.NewStore(cfg.SyncDir, logger)

	fmt.Println("=== Local Sync Store Test ===")
	fmt.Println()

	start := time.Now()
	names, err := store.List()
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   List time: %v (%d players, dir %s)\n", time.Since(start), len(names), cfg.SyncDir)

	if len(names) == 0 {
		fmt.Println("   No synced players; skipping load timing")
		fmt.Println()
		return
	}

	start = time.Now()
	doc, err := store.Load(names[0])
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Load time: %v (%s, %d quests, %d bank items)\n",
		time.Since(start), doc.Player.Username, len(doc.Quests), doc.Bank.TotalItems)
	fmt.Println()
}

func main() {
	fmt.Println("OSRS Companion Performance Benchmark")
	fmt.Println("====================================")
	fmt.Println()

	measureMappingCache()
	measureWikiSearch()
	measureSyncStore()

	fmt.Println("Benchmark complete")
}
