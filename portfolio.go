package famstock

import "sort"

// PortfolioSet maps a member name to that member's portfolio. It is the
// entire persisted state of who owns what.
type PortfolioSet map[string]Portfolio

// Members returns the member names in stable (sorted) order.
func (ps PortfolioSet) Members() []string {
	members := make([]string, 0, len(ps))
	for m := range ps {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// Codes returns the unique non-empty ticker codes across all members,
// sorted for stable gateway requests and cache keys.
func (ps PortfolioSet) Codes() []string {
	seen := make(map[string]struct{})
	for _, p := range ps {
		for _, h := range p {
			if h.Code != "" {
				seen[h.Code] = struct{}{}
			}
		}
	}
	codes := make([]string, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
