package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"famstock/date"
	"famstock/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	span string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the recorded daily asset values" }
func (*historyCmd) Usage() string {
	return `fam history [-range 1m|3m|1y|2y|all]

  Displays the daily asset value per member and the family total, as
  recorded by the dashboard.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.span, "range", "all", "Time range: 1m, 3m, 1y, 2y or all")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	h := loadHistory()

	if c.span != "all" {
		last, _ := h.Latest()
		var from date.Date
		switch c.span {
		case "1m":
			from = last.AddDate(0, -1, 0)
		case "3m":
			from = last.AddDate(0, -3, 0)
		case "1y":
			from = last.AddDate(-1, 0, 0)
		case "2y":
			from = last.AddDate(-2, 0, 0)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown range %q\n", c.span)
			return subcommands.ExitUsageError
		}
		h = h.Clip(date.Range{From: from})
	}

	printMarkdown(renderer.HistoryMarkdown(h, *currency))
	return subcommands.ExitSuccess
}
