package wiki

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/isaachansen/osrs-companion/internal/base"
	"github.com/isaachansen/osrs-companion/internal/oserr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, base.NewClient(), testLogger())
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "query" || q.Get("list") != "search" {
			t.Errorf("unexpected params: %v", q)
		}
		if q.Get("srsearch") != "abyssal whip" {
			t.Errorf("srsearch = %q", q.Get("srsearch"))
		}
		_, _ = w.Write([]byte(`{
			"query": {
				"searchinfo": {"totalhits": 2},
				"search": [
					{"pageid": 11, "title": "Abyssal whip", "snippet": "The <span class=\"searchmatch\">abyssal whip</span> is a one-handed weapon", "size": 20000},
					{"pageid": 12, "title": "Abyssal tentacle", "snippet": "An upgraded whip", "size": 15000}
				]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Search(context.Background(), SearchArgs{Query: "abyssal whip"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if result.TotalHits != 2 {
		t.Errorf("TotalHits = %d, want 2", result.TotalHits)
	}
	if len(result.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(result.Results))
	}
	if result.Results[0].Title != "Abyssal whip" {
		t.Errorf("first title = %q", result.Results[0].Title)
	}
	if result.Results[0].Snippet != "The abyssal whip is a one-handed weapon" {
		t.Errorf("snippet not stripped of HTML: %q", result.Results[0].Snippet)
	}
}

func TestSearch_LimitClamped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("srlimit"); got != "50" {
			t.Errorf("srlimit = %q, want 50", got)
		}
		_, _ = w.Write([]byte(`{"query": {"searchinfo": {"totalhits": 0}, "search": []}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if _, err := client.Search(context.Background(), SearchArgs{Query: "dragon", Limit: 500}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	client := newTestClient("http://unused.invalid")

	_, err := client.Search(context.Background(), SearchArgs{})
	if err == nil {
		t.Fatal("expected validation error for empty query")
	}
	if !oserr.IsValidation(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestSearch_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Search(context.Background(), SearchArgs{Query: "whip"})
	if !oserr.IsRemoteAPI(err) {
		t.Errorf("expected RemoteAPIError, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("prop") != "extracts" || q.Get("titles") != "Abyssal whip" {
			t.Errorf("unexpected params: %v", q)
		}
		_, _ = w.Write([]byte(`{
			"query": {
				"pages": [
					{"pageid": 11, "title": "Abyssal whip", "extract": "The abyssal whip is a one-handed melee weapon.\n"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Summary(context.Background(), SummaryArgs{Title: "Abyssal whip"})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if !result.Found {
		t.Error("expected Found=true")
	}
	if result.Extract != "The abyssal whip is a one-handed melee weapon." {
		t.Errorf("extract = %q", result.Extract)
	}
	if result.PageID != 11 {
		t.Errorf("page_id = %d, want 11", result.PageID)
	}
}

func TestSummary_MissingPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"query": {
				"pages": [
					{"title": "No Such Page", "missing": true}
				]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Summary(context.Background(), SummaryArgs{Title: "No Such Page"})
	if err != nil {
		t.Fatalf("Summary should not error for a missing page: %v", err)
	}
	if result.Found {
		t.Error("expected Found=false for missing page")
	}
	if result.Message == "" {
		t.Error("expected a user-displayable message")
	}
}

func TestSummary_EmptyTitle(t *testing.T) {
	client := newTestClient("http://unused.invalid")

	_, err := client.Summary(context.Background(), SummaryArgs{})
	if !oserr.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<span class="searchmatch">whip</span>`, "whip"},
		{"plain text", "plain text"},
		{"a &amp; b", "a & b"},
		{"  <b>bold</b>  ", "bold"},
	}

	for _, tt := range tests {
		if got := stripHTMLTags(tt.in); got != tt.want {
			t.Errorf("stripHTMLTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		limit, def, max, want int
	}{
		{0, 10, 50, 10},
		{-5, 10, 50, 10},
		{25, 10, 50, 25},
		{100, 10, 50, 50},
	}

	for _, tt := range tests {
		if got := normalizeLimit(tt.limit, tt.def, tt.max); got != tt.want {
			t.Errorf("normalizeLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}
