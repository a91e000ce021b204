package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"famstock"
)

// HistoryMarkdown renders the asset history as a table with one column
// per member plus the family total, oldest row first.
func HistoryMarkdown(h *famstock.AssetHistory, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Asset History")
	if h.Len() == 0 {
		doc.PlainText("No history recorded yet.")
		return doc.String()
	}

	cols := h.Columns()
	header := append([]string{"Date"}, cols...)
	table := md.TableSet{Header: header, Rows: [][]string{}}
	for on, row := range h.Values() {
		cells := []string{on.String()}
		for _, col := range cols {
			if v, ok := row[col]; ok {
				cells = append(cells, cash(decimal.NewFromInt(v), currency))
			} else {
				cells = append(cells, "")
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	last, latest := h.Latest()
	doc.PlainText(fmt.Sprintf("Latest total on %s: %s", last, cash(decimal.NewFromInt(latest[famstock.TotalKey]), currency)))

	return doc.String()
}
