package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"famstock"
	"famstock/date"
)

// headings parses a markdown document and returns its heading texts by
// level.
func headings(t *testing.T, doc string) map[int][]string {
	t.Helper()
	content := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	out := map[int][]string{}
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(content))
			}
			out[h.Level] = append(out[h.Level], strings.TrimSpace(b.String()))
		}
		return ast.WalkContinue, nil
	})
	return out
}

func testDashboard() *famstock.Dashboard {
	ps := famstock.PortfolioSet{
		"alice": {{Code: "2330.TW", Name: "台積電", Shares: 100, Cost: decimal.RequireFromString("500")}},
		"bob":   {},
	}
	members, family := famstock.Valuate(ps, map[string]float64{"2330.TW": 620}, map[string]float64{"2330.TW": 13.5})
	return &famstock.Dashboard{On: date.MustParse("2024-06-14"), Year: 2024, Members: members, Family: family}
}

func TestDashboardMarkdown(t *testing.T) {
	doc := DashboardMarkdown(testDashboard(), "TWD")

	hs := headings(t, doc)
	if len(hs[1]) != 1 || !strings.Contains(hs[1][0], "2024-06-14") {
		t.Errorf("H1 = %v, want the dashboard date", hs[1])
	}
	want := []string{"alice", "bob", "Family Total"}
	if len(hs[2]) != len(want) {
		t.Fatalf("H2 = %v, want %v", hs[2], want)
	}
	for i := range want {
		if hs[2][i] != want[i] {
			t.Errorf("H2[%d] = %q, want %q", i, hs[2][i], want[i])
		}
	}

	if strings.Contains(doc, "2330.TW") {
		t.Errorf("positions table should show the code without the exchange suffix:\n%s", doc)
	}
	if !strings.Contains(doc, "2330") || !strings.Contains(doc, "台積電") {
		t.Errorf("positions table should list the holding:\n%s", doc)
	}
	if !strings.Contains(doc, "+24.00%") {
		t.Errorf("document should show the signed return:\n%s", doc)
	}
	if !strings.Contains(doc, "No holdings.") {
		t.Errorf("a member without holdings should be stated:\n%s", doc)
	}
	if !strings.Contains(doc, "2 members tracked.") {
		t.Errorf("family section should state the member count:\n%s", doc)
	}
}

func TestDashboardMarkdownMarksFlatValuation(t *testing.T) {
	ps := famstock.PortfolioSet{
		"alice": {{Code: "9999.TW", Name: "x", Shares: 1, Cost: decimal.RequireFromString("10")}},
	}
	members, family := famstock.Valuate(ps, nil, nil)
	d := &famstock.Dashboard{On: date.MustParse("2024-06-14"), Year: 2024, Members: members, Family: family}

	doc := DashboardMarkdown(d, "TWD")
	if !strings.Contains(doc, "10*") {
		t.Errorf("a position without a live quote should be starred:\n%s", doc)
	}
	if !strings.Contains(doc, "valued at cost") {
		t.Errorf("the star should be explained:\n%s", doc)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	h := famstock.NewAssetHistory()
	h.Append(date.MustParse("2024-01-01"), famstock.Snapshot{"alice": 50000, famstock.TotalKey: 50000})
	h.Append(date.MustParse("2024-01-02"), famstock.Snapshot{"alice": 51000, "bob": 1000, famstock.TotalKey: 52000})

	doc := HistoryMarkdown(h, "TWD")
	// the table writer uppercases header cells
	for _, col := range []string{"DATE", "ALICE", "BOB", "TOTAL"} {
		if !strings.Contains(doc, col) {
			t.Errorf("header should list %q:\n%s", col, doc)
		}
	}
	if !strings.Contains(doc, "2024-01-01") || !strings.Contains(doc, "2024-01-02") {
		t.Errorf("both days should be listed:\n%s", doc)
	}
	if !strings.Contains(doc, "Latest total on 2024-01-02") {
		t.Errorf("latest total line missing:\n%s", doc)
	}

	empty := HistoryMarkdown(famstock.NewAssetHistory(), "TWD")
	if !strings.Contains(empty, "No history recorded yet.") {
		t.Errorf("empty history should be stated:\n%s", empty)
	}
}

func TestNewsMarkdown(t *testing.T) {
	items := []famstock.NewsItem{
		{Title: "頭條", Link: "https://example.com/1", Published: "Fri, 14 Jun 2024 08:00:00 GMT", Source: "中央社"},
		{Title: "second", Link: "https://example.com/2"},
	}
	doc := NewsMarkdown("台股 財經", items)
	if !strings.Contains(doc, "[頭條](https://example.com/1) (中央社, Fri, 14 Jun 2024 08:00:00 GMT)") {
		t.Errorf("headline should render as a link with its source and date:\n%s", doc)
	}
	if !strings.Contains(doc, "- [second](https://example.com/2)") {
		t.Errorf("headline without metadata renders as a bare link:\n%s", doc)
	}

	empty := NewsMarkdown("台股 財經", nil)
	if !strings.Contains(empty, "No headlines available.") {
		t.Errorf("empty news should be stated:\n%s", empty)
	}
}
