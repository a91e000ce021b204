package famstock

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file accesses the Yahoo Finance chart API, the same source the
// usual yfinance tooling wraps. One endpoint serves both the latest
// quote and the dividend events:
//
//	https://query1.finance.yahoo.com/v8/finance/chart/2330.TW?range=1d&interval=1d
//	{
//	  "chart": {
//	    "result": [{
//	      "meta": { "regularMarketPrice": 620.0, "shortName": "TSMC", ... },
//	      "events": { "dividends": { "1718323200": {"amount": 13.5, "date": 1718323200} } }
//	    }]
//	  }
//	}
//
// The payload is loosely typed and moves around between API revisions,
// so values are plucked with jsonpath instead of a rigid struct.

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Freshness windows for the cached gateway clients.
const (
	quoteWindow    = 5 * time.Minute
	dividendWindow = time.Hour
)

// YahooGateway implements MarketGateway and DividendGateway against the
// Yahoo chart API, with one time-bounded response cache per concern.
type YahooGateway struct {
	BaseURL string
	Quotes  *http.Client
	Divs    *http.Client
}

var _ MarketGateway = (*YahooGateway)(nil)
var _ DividendGateway = (*YahooGateway)(nil)

func NewYahooGateway() *YahooGateway {
	return &YahooGateway{
		BaseURL: yahooChartURL,
		Quotes:  cachedClient(quoteWindow),
		Divs:    cachedClient(dividendWindow),
	}
}

// chart fetches and parses one chart API response.
func (y *YahooGateway) chart(client *http.Client, code, query string) (any, error) {
	addr := fmt.Sprintf("%s/%s?%s", y.BaseURL, url.PathEscape(code), query)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}

// Prices returns the current price per code. Codes whose fetch fails
// are simply absent from the result; their error is logged and never
// propagated, so one bad ticker cannot block the others.
func (y *YahooGateway) Prices(codes []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(codes))
	for _, code := range codes {
		price, err := y.price(code)
		if err != nil {
			log.Printf("warning: no price for %s: %v", code, err)
			continue
		}
		prices[code] = price
	}
	return prices, nil
}

func (y *YahooGateway) price(code string) (float64, error) {
	jobj, err := y.chart(y.Quotes, code, "range=1d&interval=1d")
	if err != nil {
		return 0, err
	}
	jval, err := jsonpath.Get("$.chart.result[0].meta.regularMarketPrice", jobj)
	if err != nil {
		return 0, fmt.Errorf("no market price in chart response: %w", err)
	}
	price, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("market price is %T, not a number", jval)
	}
	return price, nil
}

// CompanyName returns the short display name Yahoo knows for a code.
func (y *YahooGateway) CompanyName(code string) (string, error) {
	jobj, err := y.chart(y.Quotes, code, "range=1d&interval=1d")
	if err != nil {
		return "", err
	}
	jval, err := jsonpath.Get("$.chart.result[0].meta.shortName", jobj)
	if err != nil {
		return "", fmt.Errorf("no short name in chart response: %w", err)
	}
	name, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("short name is %T, not a string", jval)
	}
	return name, nil
}

// Dividends returns the per-share dividend sum of the given calendar
// year for every requested code. A code with no dividend history, or
// whose fetch fails, yields 0.0 rather than absence.
func (y *YahooGateway) Dividends(codes []string, year int) (map[string]float64, error) {
	dividends := make(map[string]float64, len(codes))
	for _, code := range codes {
		dividends[code] = 0.0
		jobj, err := y.chart(y.Divs, code, "range=5y&interval=1mo&events=div")
		if err != nil {
			log.Printf("warning: no dividend history for %s: %v", code, err)
			continue
		}
		jval, err := jsonpath.Get("$.chart.result[0].events.dividends", jobj)
		if err != nil {
			continue // the security never distributed anything
		}
		entries, ok := jval.(map[string]any)
		if !ok {
			continue
		}
		for _, entry := range entries {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			amount, aok := obj["amount"].(float64)
			ts, tok := obj["date"].(float64)
			if !aok || !tok {
				continue
			}
			if time.Unix(int64(ts), 0).UTC().Year() == year {
				dividends[code] += amount
			}
		}
	}
	return dividends, nil
}
