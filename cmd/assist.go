package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"famstock"
	"famstock/agent"
	"famstock/date"
	"famstock/renderer"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `fam assist [question...]

  Starts an interactive session with the AI assistant. It answers
  questions about the family's holdings, their value and related news.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	yahoo := famstock.NewYahooGateway()
	news := famstock.NewGoogleNews()

	tools := agent.Tools{
		Dashboard: func() (string, error) {
			ps, err := portfolioStore().Load()
			if err != nil {
				return "", err
			}
			d := famstock.BuildDashboard(ps, yahoo, yahoo, date.Today())
			return renderer.DashboardMarkdown(d, *currency), nil
		},
		History: func() (string, error) {
			return renderer.HistoryMarkdown(loadHistory(), *currency), nil
		},
		News: func(query string) (string, error) {
			if query == "" {
				query = famstock.DefaultNewsQuery
			}
			items, err := news.Headlines(query)
			if err != nil {
				return "", err
			}
			return renderer.NewsMarkdown(query, items), nil
		},
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(tools))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
