package wiki

import (
	"context"
	"html"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/isaachansen/osrs-companion/internal/base"
	"github.com/isaachansen/osrs-companion/internal/oserr"
)

// htmlTagRegex strips HTML highlight markup from search snippets
var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// Client queries the OSRS wiki content API
type Client struct {
	base   *base.Client
	apiURL string
	logger *slog.Logger
}

// NewClient creates a wiki client against the given MediaWiki API endpoint
func NewClient(apiURL string, baseClient *base.Client, logger *slog.Logger) *Client {
	return &Client{
		base:   baseClient,
		apiURL: apiURL,
		logger: logger,
	}
}

// Search runs a full-text search across wiki pages
func (c *Client) Search(ctx context.Context, args SearchArgs) (SearchResult, error) {
	if err := ValidateQuery(args.Query); err != nil {
		return SearchResult{}, err
	}

	limit := normalizeLimit(args.Limit, DefaultSearchLimit, MaxSearchLimit)

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", args.Query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "snippet|size")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	var resp searchResponse
	if err := c.base.GetJSON(ctx, "wiki", "search", c.apiURL, params, &resp); err != nil {
		return SearchResult{}, err
	}

	results := make([]SearchHit, 0, len(resp.Query.Search))
	for _, sr := range resp.Query.Search {
		results = append(results, SearchHit{
			PageID:  sr.PageID,
			Title:   sr.Title,
			Snippet: stripHTMLTags(sr.Snippet),
			Size:    sr.Size,
		})
	}

	return SearchResult{
		Query:     args.Query,
		TotalHits: resp.Query.SearchInfo.TotalHits,
		Results:   results,
	}, nil
}

// Summary fetches the plain-text introduction of a wiki page. A page the
// wiki reports as missing is a normal not-found outcome, not a fault.
func (c *Client) Summary(ctx context.Context, args SummaryArgs) (SummaryResult, error) {
	if err := ValidateTitle(args.Title); err != nil {
		return SummaryResult{}, err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("titles", args.Title)
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	var resp extractResponse
	if err := c.base.GetJSON(ctx, "wiki", "summary", c.apiURL, params, &resp); err != nil {
		return SummaryResult{}, err
	}

	if len(resp.Query.Pages) == 0 {
		return SummaryResult{}, oserr.NewNotFoundError("page", args.Title)
	}

	page := resp.Query.Pages[0]
	if page.Missing || page.Extract == "" {
		return SummaryResult{
			Title:   args.Title,
			Found:   false,
			Message: "No wiki page found with title: " + args.Title,
		}, nil
	}

	return SummaryResult{
		Title:   page.Title,
		PageID:  page.PageID,
		Extract: strings.TrimSpace(page.Extract),
		Found:   true,
	}, nil
}

// stripHTMLTags removes HTML tags and decodes entities from a snippet
func stripHTMLTags(s string) string {
	s = html.UnescapeString(s)
	s = htmlTagRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// normalizeLimit ensures limit is within bounds
func normalizeLimit(limit, defaultVal, maxVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > maxVal {
		return maxVal
	}
	return limit
}
