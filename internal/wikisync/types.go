package wikisync

// PlayerArgs contains parameters for the player tool
type PlayerArgs struct {
	Username     string `json:"username" jsonschema:"required" jsonschema_description:"OSRS player username"`
	ForceRefresh bool   `json:"force_refresh,omitempty" jsonschema_description:"Bypass the cache and fetch fresh data (default: false)"`
}

// PlayerDataResult is the outcome of a WikiSync player-data fetch. The
// payload shape is owned by the upstream service and passed through as-is.
type PlayerDataResult struct {
	Username  string         `json:"username"`
	Found     bool           `json:"found"`
	Cached    bool           `json:"cached,omitempty"`
	FetchedAt string         `json:"fetched_at,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Message   string         `json:"message,omitempty"`
}
