package famstock

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"famstock/date"
)

type fakeMarket struct {
	prices map[string]float64
	err    error
}

func (f fakeMarket) Prices(codes []string) (map[string]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]float64{}
	for _, c := range codes {
		if p, ok := f.prices[c]; ok {
			out[c] = p
		}
	}
	return out, nil
}

func (f fakeMarket) CompanyName(code string) (string, error) { return "", errors.New("not implemented") }

// fakeDividends serves a per-year dividend table.
type fakeDividends map[int]map[string]float64

func (f fakeDividends) Dividends(codes []string, year int) (map[string]float64, error) {
	out := map[string]float64{}
	for _, c := range codes {
		out[c] = f[year][c]
	}
	return out, nil
}

func testPortfolios() PortfolioSet {
	return PortfolioSet{
		"alice": {{Code: "2330.TW", Name: "台積電", Shares: 100, Cost: decimal.RequireFromString("500")}},
		"bob":   {{Code: "0050.TW", Name: "元大台灣50", Shares: 200, Cost: decimal.RequireFromString("120")}},
	}
}

func TestBuildDashboard(t *testing.T) {
	on := date.MustParse("2024-06-14")
	market := fakeMarket{prices: map[string]float64{"2330.TW": 620, "0050.TW": 150}}
	divs := fakeDividends{2024: {"2330.TW": 13.5, "0050.TW": 4}}

	d := BuildDashboard(testPortfolios(), market, divs, on)
	if d.Year != 2024 {
		t.Errorf("Year = %d, want 2024", d.Year)
	}
	// alice 62000 + bob 30000
	if !d.Family.MarketValue.Equal(decimal.RequireFromString("92000")) {
		t.Errorf("family MarketValue = %v, want 92000", d.Family.MarketValue)
	}

	s := d.Snapshot()
	if s["alice"] != 62000 || s["bob"] != 30000 || s[TotalKey] != 92000 {
		t.Errorf("Snapshot = %v", s)
	}
}

func TestBuildDashboardDividendYearFallback(t *testing.T) {
	on := date.MustParse("2024-01-05")
	market := fakeMarket{prices: map[string]float64{"2330.TW": 620, "0050.TW": 150}}
	divs := fakeDividends{2023: {"2330.TW": 11.25, "0050.TW": 4}} // nothing distributed in 2024 yet

	d := BuildDashboard(testPortfolios(), market, divs, on)
	if d.Year != 2023 {
		t.Errorf("Year = %d, want fallback to 2023", d.Year)
	}
	alice := d.Members[0]
	if !alice.Dividends.Equal(decimal.RequireFromString("1125")) {
		t.Errorf("alice dividends = %v, want 1125 from the previous year", alice.Dividends)
	}
}

func TestBuildDashboardMarketFailureDegradesToCost(t *testing.T) {
	on := date.MustParse("2024-06-14")
	market := fakeMarket{err: errors.New("feed down")}
	d := BuildDashboard(testPortfolios(), market, fakeDividends{}, on)

	for _, m := range d.Members {
		for _, p := range m.Positions {
			if p.Live {
				t.Errorf("%s should be valued at cost when the feed is down", p.Code)
			}
		}
	}
	if !d.Family.UnrealizedPL.IsZero() {
		t.Errorf("family P/L = %v, want 0 when everything is valued at cost", d.Family.UnrealizedPL)
	}
	// alice 50000 at cost + bob 24000 at cost
	if !d.Family.MarketValue.Equal(decimal.RequireFromString("74000")) {
		t.Errorf("family MarketValue = %v, want 74000", d.Family.MarketValue)
	}
}

func TestBuildDashboardEmptyPortfolios(t *testing.T) {
	on := date.MustParse("2024-06-14")
	d := BuildDashboard(PortfolioSet{}, fakeMarket{}, fakeDividends{}, on)
	if d.Year != 2024 {
		t.Errorf("Year = %d, no fallback without any code", d.Year)
	}
	s := d.Snapshot()
	if s[TotalKey] != 0 {
		t.Errorf("Snapshot total = %d, want 0", s[TotalKey])
	}
}
