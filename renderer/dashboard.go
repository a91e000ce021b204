package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"famstock"
)

// DashboardMarkdown renders the full family dashboard: one positions
// table per member with their rollup, then the family totals.
func DashboardMarkdown(d *famstock.Dashboard, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Family Dashboard on %s", d.On))

	flatValued := false
	for _, m := range d.Members {
		doc.H2(m.Member)
		if len(m.Positions) == 0 {
			doc.PlainText("No holdings.")
			continue
		}

		table := md.TableSet{
			Header: []string{"Code", "Name", "Shares", "Price", "Market Value", "Cost Value", "P/L", "Return", "Dividends"},
			Rows:   [][]string{},
		}
		for _, p := range m.Positions {
			price := p.Price.String()
			if !p.Live {
				price += "*"
				flatValued = true
			}
			table.Rows = append(table.Rows, []string{
				famstock.DisplayCode(p.Code),
				p.Name,
				strconv.FormatInt(p.Shares, 10),
				price,
				cash(p.MarketValue, currency),
				cash(p.CostValue, currency),
				cash(p.UnrealizedPL, currency),
				p.PLRatio.SignedString(),
				cash(p.Dividends, currency),
			})
		}
		doc.Table(table)
		doc.PlainText(fmt.Sprintf("Market value %s, P/L %s (%s), dividends %d: %s",
			cash(m.MarketValue, currency),
			cash(m.UnrealizedPL, currency),
			m.PLRatio().SignedString(),
			d.Year,
			cash(m.Dividends, currency)))
	}

	doc.H2("Family Total")
	doc.Table(md.TableSet{
		Header: []string{"Market Value", "Cost Value", "P/L", "Return", fmt.Sprintf("Dividends %d", d.Year)},
		Rows: [][]string{{
			cash(d.Family.MarketValue, currency),
			cash(d.Family.CostValue, currency),
			cash(d.Family.UnrealizedPL, currency),
			d.Family.PLRatio().SignedString(),
			cash(d.Family.Dividends, currency),
		}},
	})
	doc.PlainText(fmt.Sprintf("%d members tracked.", d.Family.Members))
	if flatValued {
		doc.PlainText("(*) no live quote, valued at cost.")
	}

	return doc.String()
}
