package famstock

import (
	"log"
	"strings"
)

// Ticker code conventions for the Taiwanese exchanges: a bare numeric
// code defaults to the main board, ".TWO" marks the OTC market.
const defaultSuffix = ".TW"

var knownSuffixes = []string{".TW", ".TWO"}

func hasKnownSuffix(code string) bool {
	for _, s := range knownSuffixes {
		if strings.HasSuffix(code, s) {
			return true
		}
	}
	return false
}

// DisplayCode strips the exchange suffix for rendering.
func DisplayCode(code string) string {
	for _, s := range knownSuffixes {
		if strings.HasSuffix(code, s) {
			return strings.TrimSuffix(code, s)
		}
	}
	return code
}

// NameResolver looks up the display name of a security.
type NameResolver interface {
	CompanyName(code string) (string, error)
}

// Reconcile compares an edited portfolio against the stored one and
// completes it. When the normalized candidate equals the stored
// portfolio nothing happened and changed is false. Otherwise rows with
// a code but no name get the default exchange suffix appended (unless
// already suffixed) and their name resolved; a failed lookup falls back
// to the bare code so the row stays usable offline. Rows with an empty
// code pass through untouched.
func Reconcile(prev, candidate Portfolio, names NameResolver) (result Portfolio, changed bool) {
	candidate = candidate.Normalized()
	if candidate.Equal(prev.Normalized()) {
		return prev, false
	}

	result = candidate.Clone()
	for i, h := range result {
		if h.Code == "" || h.Name != "" {
			continue
		}
		if !hasKnownSuffix(h.Code) {
			h.Code += defaultSuffix
		}
		name, err := names.CompanyName(h.Code)
		if err != nil || name == "" || name == h.Code {
			log.Printf("warning: no company name for %s", h.Code)
			name = DisplayCode(h.Code)
		}
		h.Name = name
		result[i] = h
	}
	return result, true
}
