// Package cmd implements the CLI application for the family stock
// dashboard.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"famstock"
)

// Commands returns every subcommand of the application. A main package
// registers them on a commander and executes the user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&dashboardCmd{},
		&historyCmd{},
		&newsCmd{},
		&setCmd{},
		&rmCmd{},
		&assistCmd{},
	}
}

// As a CLI application the lifecycle is very short lived, so global
// flags are fine.
var (
	portfolioFile = flag.String("portfolio-file", "portfolios.json", "Path to the portfolio document")
	historyFile   = flag.String("history-file", "history.json", "Path to the asset history document")
	currency      = flag.String("currency", "TWD", "Reporting currency code")
)

func portfolioStore() famstock.PortfolioStore {
	return famstock.PortfolioStore{Path: *portfolioFile}
}

func historyStore() famstock.HistoryStore {
	return famstock.HistoryStore{Path: *historyFile}
}

// loadHistory loads the asset history. An unreadable document is only
// worth a warning: the history is derived data and rebuilds itself one
// day at a time.
func loadHistory() *famstock.AssetHistory {
	h, err := historyStore().Load()
	if err != nil {
		log.Printf("warning: %v, starting a fresh history", err)
		return famstock.NewAssetHistory()
	}
	return h
}

// printMarkdown renders a markdown document styled for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
