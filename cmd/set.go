package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"famstock"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct {
	member string
	code   string
	name   string
	shares int64
	cost   string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "add or update a member's holding" }
func (*setCmd) Usage() string {
	return `fam set -m <member> -c <code> [-n <name>] [-s <shares>] [-p <cost>]

  Adds or updates one holding in a member's portfolio. A bare numeric
  code gets the .TW suffix, and a missing name is completed from the
  market data.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.member, "m", "", "Member owning the holding")
	f.StringVar(&c.code, "c", "", "Ticker code, e.g. 2330 or 2330.TW")
	f.StringVar(&c.name, "n", "", "Display name (resolved from market data when empty)")
	f.Int64Var(&c.shares, "s", 0, "Number of shares held")
	f.StringVar(&c.cost, "p", "0", "Average cost basis per share")
}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.code = strings.TrimSpace(c.code)
	if c.member == "" || c.code == "" {
		fmt.Fprintln(os.Stderr, "Error: -m and -c are required")
		return subcommands.ExitUsageError
	}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid cost %q: %v\n", c.cost, err)
		return subcommands.ExitUsageError
	}

	store := portfolioStore()
	ps, err := store.Load()
	if err != nil {
		return fail(err)
	}

	row := famstock.Holding{Code: c.code, Name: c.name, Shares: c.shares, Cost: cost}
	saved, changed := upsertHolding(ps, c.member, row, famstock.NewYahooGateway())
	if !changed {
		fmt.Printf("No change for %s\n", c.member)
		return subcommands.ExitSuccess
	}
	if err := store.Save(ps); err != nil {
		return fail(err)
	}

	fmt.Printf("Saved %s %s (%s) for %s\n", saved.Code, saved.Name, saved.Cost, c.member)
	return subcommands.ExitSuccess
}

// upsertHolding replaces or appends the member's row for a code and
// reconciles the portfolio in place. The stored row is looked up by
// the trimmed code, which still matches after reconciliation added the
// exchange suffix.
func upsertHolding(ps famstock.PortfolioSet, member string, row famstock.Holding, names famstock.NameResolver) (famstock.Holding, bool) {
	code := strings.TrimSpace(row.Code)

	prev := ps[member]
	candidate := prev.Clone()
	if i := indexOfCode(candidate, code); i >= 0 {
		// keep the stored exchange-qualified code on a bare-code edit
		row.Code = candidate[i].Code
		candidate[i] = row
	} else {
		candidate = append(candidate, row)
	}

	result, changed := famstock.Reconcile(prev, candidate, names)
	if !changed {
		return famstock.Holding{}, false
	}
	ps[member] = result
	return result[indexOfCode(result, code)], true
}

// indexOfCode finds the row holding a code, tolerating the missing
// exchange suffix.
func indexOfCode(p famstock.Portfolio, code string) int {
	for i, h := range p {
		if h.Code == code || famstock.DisplayCode(h.Code) == code {
			return i
		}
	}
	return -1
}
