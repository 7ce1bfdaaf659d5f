// Package wiki provides search and page-summary access to the Old School
// RuneScape wiki through its MediaWiki API.
package wiki

// Limits for search results
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// SearchArgs contains parameters for a wiki search
type SearchArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Search text, e.g. an item, monster, or quest name"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum results to return (default 10, max 50)"`
}

// SearchResult is the result of a wiki search
type SearchResult struct {
	Query     string      `json:"query"`
	TotalHits int         `json:"total_hits"`
	Results   []SearchHit `json:"results"`
}

// SearchHit is a single wiki search result
type SearchHit struct {
	PageID  int    `json:"page_id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Size    int    `json:"size,omitempty"`
}

// SummaryArgs contains parameters for a page summary lookup
type SummaryArgs struct {
	Title string `json:"title" jsonschema:"required" jsonschema_description:"Exact wiki page title, e.g. 'Abyssal whip'"`
}

// SummaryResult is the plain-text introduction of a wiki page
type SummaryResult struct {
	Title   string `json:"title"`
	PageID  int    `json:"page_id,omitempty"`
	Extract string `json:"extract,omitempty"`
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
}

// searchResponse mirrors the MediaWiki list=search response shape
type searchResponse struct {
	Query struct {
		SearchInfo struct {
			TotalHits int `json:"totalhits"`
		} `json:"searchinfo"`
		Search []struct {
			PageID  int    `json:"pageid"`
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Size    int    `json:"size"`
		} `json:"search"`
	} `json:"query"`
}

// extractResponse mirrors the MediaWiki prop=extracts response shape
// (formatversion=2 returns pages as a list)
type extractResponse struct {
	Query struct {
		Pages []struct {
			PageID  int    `json:"pageid"`
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}
