package ge

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/isaachansen/osrs-companion/internal/base"
	"github.com/isaachansen/osrs-companion/internal/infra"
	"github.com/isaachansen/osrs-companion/internal/oserr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestServer serves /mapping and /latest, counting mapping fetches
func newTestServer(t *testing.T, latestBody string, mappingCalls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mapping":
			mappingCalls.Add(1)
			_, _ = w.Write([]byte(`[
				{"id": 2, "name": "Cannonball"},
				{"id": 4151, "name": "Abyssal whip"},
				{"id": 385, "name": "Shark"}
			]`))
		case "/latest":
			_, _ = w.Write([]byte(latestBody))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestResolveItem(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	item, err := client.ResolveItem(context.Background(), "abyssal whip")
	if err != nil {
		t.Fatalf("ResolveItem failed: %v", err)
	}
	if item.ID != 4151 || item.Name != "Abyssal whip" {
		t.Errorf("resolved = %+v", item)
	}
}

func TestResolveItem_NotFound(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	_, err := client.ResolveItem(context.Background(), "twisted bow")
	if !oserr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestMappingCache_SingleFetchWithinTTL(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())
	ctx := context.Background()

	if _, err := client.ResolveItem(ctx, "shark"); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	if _, err := client.ResolveItem(ctx, "cannonball"); err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if got := mappingCalls.Load(); got != 1 {
		t.Errorf("mapping fetched %d times within TTL, want 1", got)
	}
}

func TestMappingCache_RefetchAfterExpiry(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())
	ctx := context.Background()

	if _, err := client.ResolveItem(ctx, "shark"); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	// Force expiry by swapping in a short-lived snapshot holding the
	// same table.
	table, _ := client.mapping.Get()
	client.mapping = infra.NewSnapshot[*ItemMapping](time.Nanosecond)
	client.mapping.Set(table)
	time.Sleep(time.Millisecond)

	if _, err := client.ResolveItem(ctx, "shark"); err != nil {
		t.Fatalf("post-expiry resolve failed: %v", err)
	}

	if got := mappingCalls.Load(); got != 2 {
		t.Errorf("mapping fetched %d times across expiry, want 2", got)
	}
}

func TestLatestPrice(t *testing.T) {
	now := time.Now().Unix()
	body := fmt.Sprintf(`{"data":{"4151":{"high":1800000,"highTime":%d,"low":1790000,"lowTime":%d}}}`, now-30, now-90)

	var mappingCalls atomic.Int64
	server := newTestServer(t, body, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	quote, err := client.LatestPrice(context.Background(), 4151)
	if err != nil {
		t.Fatalf("LatestPrice failed: %v", err)
	}
	if quote.High == nil || *quote.High != 1800000 {
		t.Errorf("high = %v", quote.High)
	}
	if quote.Low == nil || *quote.Low != 1790000 {
		t.Errorf("low = %v", quote.Low)
	}
}

func TestLatestPrice_AbsentID(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	_, err := client.LatestPrice(context.Background(), 4151)
	if !oserr.IsNotFound(err) {
		t.Errorf("expected NotFoundError for absent id, got %v", err)
	}
}

func TestLatestPrice_BothSidesEmpty(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{"4151":{}}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	_, err := client.LatestPrice(context.Background(), 4151)
	if !oserr.IsNotFound(err) {
		t.Errorf("expected NotFoundError for empty quote, got %v", err)
	}
}

func TestPriceMCP_OnlyLowSide(t *testing.T) {
	now := time.Now().Unix()
	body := fmt.Sprintf(`{"data":{"385":{"low":800,"lowTime":%d}}}`, now-120)

	var mappingCalls atomic.Int64
	server := newTestServer(t, body, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	result, err := client.PriceMCP(context.Background(), PriceArgs{Item: "shark"})
	if err != nil {
		t.Fatalf("PriceMCP failed: %v", err)
	}

	if !result.Found {
		t.Fatal("expected Found=true")
	}
	if result.Buy != nil {
		t.Errorf("expected no buy side, got %+v", result.Buy)
	}
	if result.Sell == nil {
		t.Fatal("expected a sell side")
	}
	if result.Sell.Price != 800 {
		t.Errorf("sell price = %d, want 800", result.Sell.Price)
	}
	if result.Sell.Age != "2m ago" {
		t.Errorf("sell age = %q, want '2m ago'", result.Sell.Age)
	}
}

func TestPriceMCP_UnresolvedItem(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	result, err := client.PriceMCP(context.Background(), PriceArgs{Item: "twisted bow"})
	if err != nil {
		t.Fatalf("unresolved item should be a displayable result, got error: %v", err)
	}
	if result.Found {
		t.Error("expected Found=false")
	}
	if result.Message == "" {
		t.Error("expected a message")
	}
}

func TestPriceMCP_NoRecentTrades(t *testing.T) {
	var mappingCalls atomic.Int64
	server := newTestServer(t, `{"data":{}}`, &mappingCalls)
	defer server.Close()

	client := NewClient(server.URL, base.NewClient(), testLogger())

	result, err := client.PriceMCP(context.Background(), PriceArgs{Item: "cannonball"})
	if err != nil {
		t.Fatalf("quoteless item should be a displayable result, got error: %v", err)
	}
	if result.Found {
		t.Error("expected Found=false")
	}
	if result.Item != "Cannonball" {
		t.Errorf("item = %q, want resolved canonical name", result.Item)
	}
}

func TestPriceMCP_EmptyItem(t *testing.T) {
	client := NewClient("http://unused.invalid", base.NewClient(), testLogger())

	_, err := client.PriceMCP(context.Background(), PriceArgs{})
	if !oserr.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{10 * time.Second, "just now"},
		{59 * time.Second, "just now"},
		{60 * time.Second, "1m ago"},
		{45 * time.Minute, "45m ago"},
		{time.Hour, "1h ago"},
		{23 * time.Hour, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{72 * time.Hour, "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimeAgo(now.Add(-tt.elapsed), now); got != tt.want {
				t.Errorf("FormatTimeAgo(-%v) = %q, want %q", tt.elapsed, got, tt.want)
			}
		})
	}
}
