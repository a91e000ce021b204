// Package famstock tracks a household's stock holdings: it values each
// member's portfolio against live market data, aggregates profit/loss
// and dividends per member and family-wide, and keeps a daily history
// of total asset value.
package famstock

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Holding is a single ticker position owned by one member.
type Holding struct {
	// Code is the exchange-qualified ticker, e.g. "2330.TW".
	Code string
	// Name is the display name; it may be auto-completed on save.
	Name string
	// Shares is the number of shares held.
	Shares int64
	// Cost is the average cost basis per share. Zero means the cost is
	// not tracked for this position.
	Cost decimal.Decimal
}

// Normalized returns the canonical form of the holding used for
// comparison and persistence: trimmed strings, cost rounded to two
// fraction digits.
func (h Holding) Normalized() Holding {
	return Holding{
		Code:   strings.TrimSpace(h.Code),
		Name:   strings.TrimSpace(h.Name),
		Shares: h.Shares,
		Cost:   h.Cost.Round(2),
	}
}

// Equal reports whether two holdings are identical in normalized form.
func (h Holding) Equal(o Holding) bool {
	h, o = h.Normalized(), o.Normalized()
	return h.Code == o.Code && h.Name == o.Name && h.Shares == o.Shares && h.Cost.Equal(o.Cost)
}

// MarshalJSON writes the holding with cost as a plain JSON number.
func (h Holding) MarshalJSON() ([]byte, error) {
	type jholding struct {
		Code   string      `json:"code"`
		Name   string      `json:"name"`
		Shares int64       `json:"shares"`
		Cost   json.Number `json:"cost"`
	}
	return json.Marshal(jholding{h.Code, h.Name, h.Shares, json.Number(h.Cost.String())})
}

// UnmarshalJSON reads a holding leniently: shares and cost may come in
// as numbers or strings and default to zero when missing or unparseable.
func (h *Holding) UnmarshalJSON(b []byte) error {
	var raw struct {
		Code   string          `json:"code"`
		Name   string          `json:"name"`
		Shares json.RawMessage `json:"shares"`
		Cost   json.RawMessage `json:"cost"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	h.Code = raw.Code
	h.Name = raw.Name
	h.Shares = coerceShares(raw.Shares)
	h.Cost = coerceCost(raw.Cost)
	return nil
}

// coerceShares reads an integer share count out of a raw JSON value,
// tolerating quoted numbers. Anything unparseable counts as zero.
func coerceShares(raw json.RawMessage) int64 {
	s := unquote(raw)
	if s == "" || s == "null" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// coerceCost reads a decimal cost out of a raw JSON value, tolerating
// quoted numbers. Anything unparseable counts as zero.
func coerceCost(raw json.RawMessage) decimal.Decimal {
	s := unquote(raw)
	if s == "" || s == "null" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func unquote(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// Portfolio is the ordered list of holdings owned by one member.
type Portfolio []Holding

// Normalized returns the element-wise normalized portfolio.
func (p Portfolio) Normalized() Portfolio {
	out := make(Portfolio, len(p))
	for i, h := range p {
		out[i] = h.Normalized()
	}
	return out
}

// Equal reports whether two portfolios hold the same positions in the
// same order, comparing normalized holdings. This is a structural diff:
// order matters.
func (p Portfolio) Equal(q Portfolio) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy safe to edit without touching the original.
func (p Portfolio) Clone() Portfolio {
	return append(Portfolio(nil), p...)
}
