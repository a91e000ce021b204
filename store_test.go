package famstock

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"famstock/date"
)

func TestPortfolioStoreRoundTrip(t *testing.T) {
	store := PortfolioStore{Path: filepath.Join(t.TempDir(), "portfolios.json")}
	ps := PortfolioSet{
		"alice": {{Code: "2330.TW", Name: "台積電", Shares: 100, Cost: decimal.RequireFromString("500.5")}},
	}
	if err := store.Save(ps); err != nil {
		t.Fatal(err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !out["alice"].Equal(ps["alice"]) {
		t.Errorf("Load = %v, want %v", out["alice"], ps["alice"])
	}
}

func TestPortfolioStoreDocumentShape(t *testing.T) {
	store := PortfolioStore{Path: filepath.Join(t.TempDir(), "portfolios.json")}
	ps := PortfolioSet{
		"alice": {{Code: "2330.TW", Name: "台積電", Shares: 100, Cost: decimal.RequireFromString("500.5")}},
	}
	if err := store.Save(ps); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(store.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "台積電") {
		t.Errorf("document should keep non-ASCII text literal:\n%s", b)
	}
	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		t.Fatal(err)
	}
	if v, err := jsonpath.Get("$.alice[0].cost", jobj); err != nil || v != 500.5 {
		t.Errorf("$.alice[0].cost = %v (%v), want 500.5 as a plain number", v, err)
	}
	if v, err := jsonpath.Get("$.alice[0].shares", jobj); err != nil || v != 100.0 {
		t.Errorf("$.alice[0].shares = %v (%v), want 100", v, err)
	}
}

func TestPortfolioStoreAbsentFile(t *testing.T) {
	store := PortfolioStore{Path: filepath.Join(t.TempDir(), "nope.json")}
	ps, err := store.Load()
	if err != nil {
		t.Fatalf("absent file should load as empty, got %v", err)
	}
	if len(ps) != 0 {
		t.Errorf("Load = %v, want empty set", ps)
	}
}

func TestPortfolioStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolios.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (PortfolioStore{Path: path}).Load(); err == nil {
		t.Errorf("malformed portfolio document should be an error")
	}
}

func TestHistoryStoreRoundTrip(t *testing.T) {
	store := HistoryStore{Path: filepath.Join(t.TempDir(), "history.json")}
	h := NewAssetHistory()
	h.Append(date.MustParse("2024-01-01"), Snapshot{"alice": 50000, TotalKey: 50000})
	if err := store.Save(h); err != nil {
		t.Fatal(err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	row, ok := out.Get(date.MustParse("2024-01-01"))
	if !ok || row[TotalKey] != 50000 {
		t.Errorf("Load row = %v, want Total 50000", row)
	}
}

func TestHistoryStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("[1,2,3]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (HistoryStore{Path: path}).Load(); err == nil {
		t.Errorf("malformed history document should be an error")
	}
}
