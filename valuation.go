package famstock

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value for display, e.g. a P/L ratio.
type Percent float64

func (p Percent) String() string { return fmt.Sprintf("%.2f%%", float64(p)) }

// SignedString renders the percentage with an explicit sign.
func (p Percent) SignedString() string { return fmt.Sprintf("%+.2f%%", float64(p)) }

// PositionValuation is the derived view of one holding: the resolved
// price, market and cost value, unrealized P/L and dividends received.
// It is a pure function of the holding, the price map and the dividend
// map, and is never persisted.
type PositionValuation struct {
	Code   string
	Name   string
	Shares int64
	Cost   decimal.Decimal

	// Price is the price used for valuation. When the live quote is
	// unavailable it falls back to the cost basis, so Live is false and
	// the position values out flat instead of crashing the rollup.
	Price decimal.Decimal
	Live  bool

	MarketValue  decimal.Decimal
	CostValue    decimal.Decimal
	UnrealizedPL decimal.Decimal
	PLRatio      Percent
	Dividends    decimal.Decimal
}

// MemberAggregate sums position valuations. Market value and dividends
// always accumulate; cost value and unrealized P/L accumulate only for
// positions with a known (nonzero) cost basis, so untracked positions
// still count toward total assets without skewing the return figures.
type MemberAggregate struct {
	MarketValue  decimal.Decimal
	CostValue    decimal.Decimal
	UnrealizedPL decimal.Decimal
	Dividends    decimal.Decimal
}

func (a *MemberAggregate) accumulate(p PositionValuation) {
	a.MarketValue = a.MarketValue.Add(p.MarketValue)
	a.Dividends = a.Dividends.Add(p.Dividends)
	if p.Cost.IsPositive() {
		a.CostValue = a.CostValue.Add(p.CostValue)
		a.UnrealizedPL = a.UnrealizedPL.Add(p.UnrealizedPL)
	}
}

func (a *MemberAggregate) merge(b MemberAggregate) {
	a.MarketValue = a.MarketValue.Add(b.MarketValue)
	a.CostValue = a.CostValue.Add(b.CostValue)
	a.UnrealizedPL = a.UnrealizedPL.Add(b.UnrealizedPL)
	a.Dividends = a.Dividends.Add(b.Dividends)
}

// PLRatio returns the aggregate return over the tracked cost basis.
func (a MemberAggregate) PLRatio() Percent {
	return ratio(a.UnrealizedPL, a.CostValue)
}

// MemberValuation is one member's valued positions plus their rollup.
type MemberValuation struct {
	Member    string
	Positions []PositionValuation
	MemberAggregate
}

// FamilyAggregate is the elementwise sum of all member aggregates.
type FamilyAggregate struct {
	MemberAggregate
	Members int
}

// Valuate computes every position valuation and the per-member and
// family rollups. It performs no I/O: prices and dividends come in as
// plain maps, an absent price means the live quote failed and the cost
// basis is used instead. Members come out in stable (sorted) order.
func Valuate(ps PortfolioSet, prices map[string]float64, dividends map[string]float64) ([]MemberValuation, FamilyAggregate) {
	members := make([]MemberValuation, 0, len(ps))
	family := FamilyAggregate{Members: len(ps)}
	for _, name := range ps.Members() {
		mv := MemberValuation{Member: name}
		for _, h := range ps[name] {
			p := valuate(h, prices, dividends)
			mv.Positions = append(mv.Positions, p)
			mv.accumulate(p)
		}
		family.merge(mv.MemberAggregate)
		members = append(members, mv)
	}
	return members, family
}

func valuate(h Holding, prices map[string]float64, dividends map[string]float64) PositionValuation {
	p := PositionValuation{
		Code:   h.Code,
		Name:   h.Name,
		Shares: h.Shares,
		Cost:   h.Cost,
		Price:  h.Cost, // fallback: value the position flat at cost
	}
	if live, ok := prices[h.Code]; ok && !math.IsNaN(live) {
		p.Price = decimal.NewFromFloat(live)
		p.Live = true
	}

	shares := decimal.NewFromInt(h.Shares)
	p.MarketValue = p.Price.Mul(shares)
	p.CostValue = h.Cost.Mul(shares)
	p.UnrealizedPL = p.MarketValue.Sub(p.CostValue)
	p.PLRatio = ratio(p.UnrealizedPL, p.CostValue)
	p.Dividends = decimal.NewFromFloat(dividends[h.Code]).Mul(shares)
	return p
}

// ratio returns part/whole as a percentage, zero when the denominator
// is not positive. Division by zero is avoided by policy, not by
// exception.
func ratio(part, whole decimal.Decimal) Percent {
	if !whole.IsPositive() {
		return 0
	}
	return Percent(part.Div(whole).InexactFloat64() * 100)
}
