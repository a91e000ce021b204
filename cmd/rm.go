package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	member string
	code   string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a holding or a whole member" }
func (*rmCmd) Usage() string {
	return `fam rm -m <member> [-c <code>]

  Removes one holding from a member's portfolio, or the whole member
  when no code is given.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.member, "m", "", "Member to edit")
	f.StringVar(&c.code, "c", "", "Ticker code to remove (empty removes the member)")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.member == "" {
		fmt.Fprintln(os.Stderr, "Error: -m is required")
		return subcommands.ExitUsageError
	}

	store := portfolioStore()
	ps, err := store.Load()
	if err != nil {
		return fail(err)
	}
	p, ok := ps[c.member]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no member %q\n", c.member)
		return subcommands.ExitFailure
	}

	if c.code == "" {
		delete(ps, c.member)
		if err := store.Save(ps); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed member %s\n", c.member)
		return subcommands.ExitSuccess
	}

	i := indexOfCode(p, c.code)
	if i < 0 {
		fmt.Fprintf(os.Stderr, "Error: %s holds no %s\n", c.member, c.code)
		return subcommands.ExitFailure
	}
	removed := p[i]
	ps[c.member] = append(p[:i:i], p[i+1:]...)
	if err := store.Save(ps); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed %s %s from %s\n", removed.Code, removed.Name, c.member)
	return subcommands.ExitSuccess
}
