package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/chart"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/renderer"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/yahoo"
	"github.com/google/subcommands"
)

type heatmapCmd struct {
	tickers  string
	from, to string
	input    string
	output   string
	width    int
	height   int
}

func (*heatmapCmd) Name() string     { return "heatmap" }
func (*heatmapCmd) Synopsis() string { return "render market caps and returns as a treemap" }
func (*heatmapCmd) Usage() string {
	return `pw heatmap -tickers <tickers> [-from <date>] [-to <date>]

  Fetches market capitalizations and returns over the range and renders
  them as a treemap: tile area by market cap, tile color by return. The
  fetched table is saved next to the image, and -input re-renders from a
  saved table without fetching.

Usage Examples:
$ pw heatmap -tickers AAPL,MSFT,GOOG,AMZN,NVDA
$ pw heatmap -input market_caps_and_returns.csv

`
}

func (c *heatmapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "tickers", "", "comma-separated tickers to chart")
	f.StringVar(&c.from, "from", "", "range start date, YYYY-MM-DD (default one year ago)")
	f.StringVar(&c.to, "to", "", "range end date, YYYY-MM-DD (default today)")
	f.StringVar(&c.input, "input", "", "re-render from a saved table instead of fetching")
	f.StringVar(&c.output, "output", "heatmap.png", "name of the rendered image")
	f.IntVar(&c.width, "width", 1200, "image width in pixels")
	f.IntVar(&c.height, "height", 800, "image height in pixels")
}

func (c *heatmapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := c.table(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HeatmapMarkdown(table))

	img, err := chart.Heatmap(table, c.width, c.height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering heatmap: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, img, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %s\n", c.output)
	return subcommands.ExitSuccess
}

// table loads the saved table or fetches a fresh one, persisting it for
// later re-rendering.
func (c *heatmapCmd) table(ctx context.Context) (wizard.HeatmapTable, error) {
	if c.input != "" {
		return wizard.LoadHeatmapTable(c.input)
	}

	tickers := parseTickers(c.tickers)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers: pass -tickers or -input")
	}
	rng, err := parseRange(c.from, c.to)
	if err != nil {
		return nil, err
	}
	table, err := yahoo.NewProvider().Snapshot(ctx, tickers, rng)
	if err != nil {
		return nil, err
	}
	if err := table.Save(wizard.DefaultHeatmapFile); err != nil {
		return nil, fmt.Errorf("saving %s: %w", wizard.DefaultHeatmapFile, err)
	}
	return table, nil
}
