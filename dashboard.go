package famstock

import (
	"log"

	"famstock/date"
)

// Dashboard is the fully valued view of the family's portfolios on a
// given day. It is derived, never persisted; only its Snapshot is.
type Dashboard struct {
	On      date.Date
	Year    int
	Members []MemberValuation
	Family  FamilyAggregate
}

// BuildDashboard gathers prices and dividends for every code in the
// portfolio set and values everything as of the given day. Gateway
// failures degrade: a dead market feed values all positions at cost, a
// dividend year with nothing distributed yet falls back to the previous
// year so the column is not uniformly zero in January.
func BuildDashboard(ps PortfolioSet, market MarketGateway, divs DividendGateway, on date.Date) *Dashboard {
	codes := ps.Codes()

	prices, err := market.Prices(codes)
	if err != nil {
		log.Printf("warning: market data unavailable, valuing at cost: %v", err)
		prices = map[string]float64{}
	}

	year := on.Year()
	dividends := fetchDividends(divs, codes, year)
	if sum(dividends) == 0 && len(codes) > 0 {
		year--
		log.Printf("no dividends distributed yet this year, using %d", year)
		dividends = fetchDividends(divs, codes, year)
	}

	members, family := Valuate(ps, prices, dividends)
	return &Dashboard{On: on, Year: year, Members: members, Family: family}
}

func fetchDividends(divs DividendGateway, codes []string, year int) map[string]float64 {
	dividends, err := divs.Dividends(codes, year)
	if err != nil {
		log.Printf("warning: dividend data unavailable: %v", err)
		return map[string]float64{}
	}
	return dividends
}

func sum(m map[string]float64) (total float64) {
	for _, v := range m {
		total += v
	}
	return
}

// Snapshot reduces the dashboard to the whole-currency market values
// recorded in the asset history: one column per member plus the family
// total.
func (d *Dashboard) Snapshot() Snapshot {
	s := make(Snapshot, len(d.Members)+1)
	for _, m := range d.Members {
		s[m.Member] = m.MarketValue.IntPart()
	}
	s[TotalKey] = d.Family.MarketValue.IntPart()
	return s
}
