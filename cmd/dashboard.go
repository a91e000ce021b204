package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"famstock"
	"famstock/date"
	"famstock/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	date   string
	query  string
	noNews bool
	watch  int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the family portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `fam dashboard [-d <date>] [-q <query>] [-no-news] [-w n]

  Values every member's holdings at the latest market price, shows the
  family totals and the latest headlines, and records today's asset
  value in the history.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
	f.StringVar(&c.query, "q", famstock.DefaultNewsQuery, "News search query")
	f.BoolVar(&c.noNews, "no-news", false, "Skip the news section")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if _, err := c.reportDay(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ps, err := portfolioStore().Load()
	if err != nil {
		return fail(err)
	}

	yahoo := famstock.NewYahooGateway()
	news := famstock.NewGoogleNews()

	for {
		on, _ := c.reportDay()
		d := famstock.BuildDashboard(ps, yahoo, yahoo, on)
		md := renderer.DashboardMarkdown(d, *currency)
		if !c.noNews {
			md += c.headlines(news)
		}

		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(md)

		// Only the live view for today updates the history; rendering a
		// past day never rewrites its recorded row.
		if on == date.Today() {
			record(d)
		}

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}

// reportDay returns the day to value: the -d flag when given, the
// current day otherwise. It is re-evaluated on every watch iteration
// so a session left running keeps recording after midnight.
func (c *dashboardCmd) reportDay() (date.Date, error) {
	if c.date == "" {
		return date.Today(), nil
	}
	return date.Parse(c.date)
}

func (c *dashboardCmd) headlines(news famstock.NewsGateway) string {
	items, err := news.Headlines(c.query)
	if err != nil {
		log.Printf("warning: news unavailable: %v", err)
		items = nil
	}
	return renderer.NewsMarkdown(c.query, items)
}

// record upserts today's snapshot in the asset history document.
func record(d *famstock.Dashboard) {
	h := loadHistory()
	h.Append(d.On, d.Snapshot())
	if err := historyStore().Save(h); err != nil {
		log.Printf("warning: cannot record asset history: %v", err)
	}
}
