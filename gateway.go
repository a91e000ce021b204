package famstock

// Gateways are the narrow contracts to the external market data and
// news sources. All of them are best effort: a failing upstream must
// degrade to a sentinel (absent price, zero dividend, empty news list)
// at the orchestration boundary, never abort the whole dashboard.

// MarketGateway fetches current prices and security metadata.
type MarketGateway interface {
	// Prices returns the current price per code. A code absent from the
	// result means its fetch failed; one bad ticker never fails the
	// others.
	Prices(codes []string) (map[string]float64, error)
	// CompanyName returns the display name for a code.
	CompanyName(code string) (string, error)
}

// DividendGateway fetches per-share dividend sums for a calendar year.
type DividendGateway interface {
	// Dividends returns the per-share dividend total of the given year
	// for every requested code. A code with no dividend history yields
	// 0.0, never absence.
	Dividends(codes []string, year int) (map[string]float64, error)
}

// NewsItem is one headline from the news feed.
type NewsItem struct {
	Title     string
	Link      string
	Published string
	Source    string
}

// NewsGateway fetches a short list of headlines for a query.
type NewsGateway interface {
	Headlines(query string) ([]NewsItem, error)
}
