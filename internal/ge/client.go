package ge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/isaachansen/osrs-companion/internal/base"
	"github.com/isaachansen/osrs-companion/internal/infra"
	"github.com/isaachansen/osrs-companion/internal/oserr"
	"github.com/isaachansen/osrs-companion/metrics"
)

// MappingTTL is how long a fetched item mapping snapshot stays valid.
// Expiry triggers a full wholesale re-fetch, never an incremental update.
const MappingTTL = time.Hour

// Client provides access to the real-time Grand Exchange price API
type Client struct {
	base    *base.Client
	apiURL  string
	logger  *slog.Logger
	mapping *infra.Snapshot[*ItemMapping]
}

// NewClient creates a Grand Exchange client against the given price API base URL
func NewClient(apiURL string, baseClient *base.Client, logger *slog.Logger) *Client {
	return &Client{
		base:    baseClient,
		apiURL:  apiURL,
		logger:  logger,
		mapping: infra.NewSnapshot[*ItemMapping](MappingTTL),
	}
}

// currentMapping returns the cached item mapping, fetching the full table
// when the snapshot is empty or expired. Concurrent callers during a refresh
// each fetch independently; the last write wins, which is harmless because
// every fetch produces an equivalent complete snapshot.
func (c *Client) currentMapping(ctx context.Context) (*ItemMapping, error) {
	if m, ok := c.mapping.Get(); ok {
		metrics.RecordCacheAccess("item_mapping", true)
		return m, nil
	}
	metrics.RecordCacheAccess("item_mapping", false)

	var list []MappingEntry
	if err := c.base.GetJSON(ctx, "prices", "mapping", c.apiURL+"/mapping", nil, &list); err != nil {
		return nil, fmt.Errorf("fetching item mapping: %w", err)
	}

	m := BuildMapping(list)
	c.mapping.Set(m)
	c.logger.Info("Item mapping refreshed", "items", m.Len())
	return m, nil
}

// ResolveItem maps a free-text item name to its canonical id and display name
func (c *Client) ResolveItem(ctx context.Context, name string) (ResolvedItem, error) {
	m, err := c.currentMapping(ctx)
	if err != nil {
		return ResolvedItem{}, err
	}

	id, canonical, ok := m.Resolve(name)
	if !ok {
		return ResolvedItem{}, oserr.NewNotFoundError("item", name)
	}
	return ResolvedItem{ID: id, Name: canonical}, nil
}

// LatestPrice fetches the latest quote for one item id. An id absent from
// the response, or present with neither side populated, is a not-found
// outcome ("no recent trade"), not a fault.
func (c *Client) LatestPrice(ctx context.Context, itemID int) (PriceQuote, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(itemID))

	var resp latestResponse
	if err := c.base.GetJSON(ctx, "prices", "latest", c.apiURL+"/latest", params, &resp); err != nil {
		return PriceQuote{}, err
	}

	quote, ok := resp.Data[strconv.Itoa(itemID)]
	if !ok || quote.Empty() {
		return PriceQuote{}, oserr.NewNotFoundError("price", strconv.Itoa(itemID))
	}
	return quote, nil
}

// PriceMCP resolves an item name and fetches its latest quote. Unresolvable
// names and quoteless items come back as displayable results, not errors.
func (c *Client) PriceMCP(ctx context.Context, args PriceArgs) (PriceResult, error) {
	if err := ValidateItemName(args.Item); err != nil {
		return PriceResult{}, err
	}

	item, err := c.ResolveItem(ctx, args.Item)
	if err != nil {
		var notFound *oserr.NotFoundError
		if errors.As(err, &notFound) {
			return PriceResult{
				Found:   false,
				Message: "No item found matching: " + args.Item,
			}, nil
		}
		return PriceResult{}, err
	}

	quote, err := c.LatestPrice(ctx, item.ID)
	if err != nil {
		var notFound *oserr.NotFoundError
		if errors.As(err, &notFound) {
			return PriceResult{
				Item:    item.Name,
				ItemID:  item.ID,
				Found:   false,
				Message: "No recent trade data for: " + item.Name,
			}, nil
		}
		return PriceResult{}, err
	}

	now := time.Now()
	result := PriceResult{
		Item:   item.Name,
		ItemID: item.ID,
		Found:  true,
	}
	if quote.High != nil {
		result.Buy = &PriceSide{Price: *quote.High, Age: quoteAge(quote.HighTime, now)}
	}
	if quote.Low != nil {
		result.Sell = &PriceSide{Price: *quote.Low, Age: quoteAge(quote.LowTime, now)}
	}
	return result, nil
}

// quoteAge formats the staleness of one quote side from its own timestamp
func quoteAge(unixTime *int64, now time.Time) string {
	if unixTime == nil {
		return ""
	}
	return FormatTimeAgo(time.Unix(*unixTime, 0), now)
}

// FormatTimeAgo buckets the elapsed time since t into a short display string.
func FormatTimeAgo(t time.Time, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
}

// ValidateItemName validates a free-text item name.
func ValidateItemName(name string) error {
	if name == "" {
		return oserr.NewValidationError("item", "", "item name is required")
	}
	if len(name) > 100 {
		return oserr.NewValidationError("item", name[:50]+"...", "item name is too long")
	}
	return nil
}
