package famstock

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"sort"

	"famstock/date"
)

// TotalKey is the reserved column name for the family-wide asset value
// in a history row.
const TotalKey = "Total"

// Snapshot is one dated record of total asset value: one integer per
// member plus the TotalKey column.
type Snapshot map[string]int64

// AssetHistory is the chronological series of daily snapshots. There is
// at most one row per calendar day; recording a new row for an existing
// day replaces the old one entirely (last write wins).
type AssetHistory struct {
	days []date.Date
	rows map[string]Snapshot
}

func NewAssetHistory() *AssetHistory {
	return &AssetHistory{rows: make(map[string]Snapshot)}
}

// Len returns the number of recorded days.
func (h *AssetHistory) Len() int { return len(h.days) }

// Append upserts the row for a day.
func (h *AssetHistory) Append(on date.Date, row Snapshot) {
	if h.rows == nil {
		h.rows = make(map[string]Snapshot)
	}
	key := on.String()
	if _, exists := h.rows[key]; !exists {
		i, _ := slices.BinarySearchFunc(h.days, on, date.Date.Compare)
		h.days = slices.Insert(h.days, i, on)
	}
	h.rows[key] = row
}

// Get returns the row recorded on a given day.
func (h *AssetHistory) Get(on date.Date) (Snapshot, bool) {
	row, ok := h.rows[on.String()]
	return row, ok
}

// Latest returns the most recent day and its row, or zero values when
// the history is empty.
func (h *AssetHistory) Latest() (date.Date, Snapshot) {
	if len(h.days) == 0 {
		return date.Date{}, nil
	}
	last := h.days[len(h.days)-1]
	return last, h.rows[last.String()]
}

// Values iterates over all rows in chronological order.
func (h *AssetHistory) Values() iter.Seq2[date.Date, Snapshot] {
	return func(yield func(date.Date, Snapshot) bool) {
		for _, on := range h.days {
			if !yield(on, h.rows[on.String()]) {
				return
			}
		}
	}
}

// Columns returns every column name that appears in any row, members
// sorted alphabetically with TotalKey last.
func (h *AssetHistory) Columns() []string {
	seen := make(map[string]struct{})
	for _, row := range h.rows {
		for name := range row {
			seen[name] = struct{}{}
		}
	}
	hasTotal := false
	cols := make([]string, 0, len(seen))
	for name := range seen {
		if name == TotalKey {
			hasTotal = true
			continue
		}
		cols = append(cols, name)
	}
	sort.Strings(cols)
	if hasTotal {
		cols = append(cols, TotalKey)
	}
	return cols
}

// Column extracts one column as a time series, skipping days where the
// column is absent.
func (h *AssetHistory) Column(name string) *date.History[int64] {
	series := new(date.History[int64])
	for on, row := range h.Values() {
		if v, ok := row[name]; ok {
			series.Append(on, v)
		}
	}
	return series
}

// Clip returns a copy holding only the rows within the range.
func (h *AssetHistory) Clip(r date.Range) *AssetHistory {
	out := NewAssetHistory()
	for on, row := range h.Values() {
		if r.Contains(on) {
			out.Append(on, row)
		}
	}
	return out
}

// MarshalJSON writes the history as the persisted document shape:
// an object mapping "YYYY-MM-DD" to {member: value, "Total": value}.
// encoding/json sorts the keys, which for this date format is also
// chronological order.
func (h *AssetHistory) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.rows)
}

func (h *AssetHistory) UnmarshalJSON(b []byte) error {
	var rows map[string]Snapshot
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	*h = *NewAssetHistory()
	for key, row := range rows {
		on, err := date.Parse(key)
		if err != nil {
			return fmt.Errorf("history key %q is not a date: %w", key, err)
		}
		h.Append(on, row)
	}
	return nil
}
