// Package ge provides Grand Exchange item resolution and latest-price lookups
// against the real-time prices API.
package ge

// ResolvedItem is the outcome of a name-to-id resolution
type ResolvedItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PriceQuote holds the latest buy/sell quotes for one item. Either side may
// be absent ("no recent trade"), and each side carries its own timestamp.
type PriceQuote struct {
	High     *int64 `json:"high,omitempty"`
	HighTime *int64 `json:"highTime,omitempty"`
	Low      *int64 `json:"low,omitempty"`
	LowTime  *int64 `json:"lowTime,omitempty"`
}

// Empty reports whether neither side of the quote is populated
func (q PriceQuote) Empty() bool {
	return q.High == nil && q.Low == nil
}

// PriceArgs contains parameters for the price tool
type PriceArgs struct {
	Item string `json:"item" jsonschema:"required" jsonschema_description:"Item name to look up, e.g. 'abyssal whip'"`
}

// PriceResult is the user-facing price lookup outcome
type PriceResult struct {
	Item    string     `json:"item,omitempty"`
	ItemID  int        `json:"item_id,omitempty"`
	Buy     *PriceSide `json:"buy,omitempty"`
	Sell    *PriceSide `json:"sell,omitempty"`
	Found   bool       `json:"found"`
	Message string     `json:"message,omitempty"`
}

// PriceSide is one side of a quote with its staleness
type PriceSide struct {
	Price int64  `json:"price"`
	Age   string `json:"age"`
}

// latestResponse mirrors the /latest endpoint shape:
// {"data": {"<id>": {"high":..., "highTime":..., "low":..., "lowTime":...}}}
type latestResponse struct {
	Data map[string]PriceQuote `json:"data"`
}
