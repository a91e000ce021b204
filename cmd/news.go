package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"famstock"
	"famstock/renderer"
)

// newsCmd holds the flags for the 'news' subcommand.
type newsCmd struct {
	query string
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "display the latest financial headlines" }
func (*newsCmd) Usage() string {
	return `fam news [-q <query>] [terms...]

  Fetches the latest headlines for a search query.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", famstock.DefaultNewsQuery, "News search query")
}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	query := c.query
	if f.NArg() > 0 {
		query = strings.Join(f.Args(), " ")
	}

	items, err := famstock.NewGoogleNews().Headlines(query)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.NewsMarkdown(query, items))
	return subcommands.ExitSuccess
}
