package famstock

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// This file persists the two documents the dashboard owns: the
// portfolio document (member -> holdings) and the history document
// (date -> snapshot). Both are whole-document JSON files: every save
// serializes the full document, there are no partial writes and no
// cross-process locking. Two concurrent sessions race and the last
// writer wins.

// PortfolioStore reads and writes the portfolio document.
type PortfolioStore struct {
	Path string
}

// Load reads the portfolio document. An absent file is an empty set.
// A malformed file is an error: the portfolio is authoritative user
// data and must never be silently discarded.
func (s PortfolioStore) Load() (PortfolioSet, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return PortfolioSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio document %q: %w", s.Path, err)
	}
	var ps PortfolioSet
	if err := json.Unmarshal(b, &ps); err != nil {
		return nil, fmt.Errorf("malformed portfolio document %q: %w", s.Path, err)
	}
	return ps, nil
}

// Save overwrites the whole portfolio document.
func (s PortfolioStore) Save(ps PortfolioSet) error {
	return writeDocument(s.Path, ps)
}

// HistoryStore reads and writes the history document.
type HistoryStore struct {
	Path string
}

// Load reads the history document. An absent file is an empty history.
// A malformed file is returned as an error; callers that can rebuild
// the trend over time may log it and start fresh.
func (s HistoryStore) Load() (*AssetHistory, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewAssetHistory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read history document %q: %w", s.Path, err)
	}
	h := NewAssetHistory()
	if err := json.Unmarshal(b, h); err != nil {
		return nil, fmt.Errorf("malformed history document %q: %w", s.Path, err)
	}
	return h, nil
}

// Save overwrites the whole history document.
func (s HistoryStore) Save(h *AssetHistory) error {
	return writeDocument(s.Path, h)
}

// writeDocument serializes v as a pretty-printed UTF-8 JSON document,
// keeping non-ASCII characters literal.
func writeDocument(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot serialize document %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write document %q: %w", path, err)
	}
	return nil
}
