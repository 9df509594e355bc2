package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/chart"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/renderer"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/yahoo"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	ticker   string
	rate     float64
	from, to string
	output   string
	base64   bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "compare a price history against fixed yearly growth" }
func (*simulateCmd) Usage() string {
	return `pw simulate -ticker <ticker> [-rate <percent>] [-from <date>] [-to <date>]

  Fetches the actual price history and overlays a hypothetical trajectory
  growing at a fixed yearly rate, anchored at the first actual price.
  Crypto spellings like "btc" are rewritten to their "-USD" pair. Saves
  the price table to <output>.csv and the chart to <output>.png.

Usage Examples:
$ pw simulate -ticker BTC -rate 25

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "ticker to simulate")
	f.Float64Var(&c.rate, "rate", 0, "yearly growth rate in percent, may be negative")
	f.StringVar(&c.from, "from", "", "range start date, YYYY-MM-DD (default five years ago)")
	f.StringVar(&c.to, "to", "", "range end date, YYYY-MM-DD (default today)")
	f.StringVar(&c.output, "output", "simulation", "base name for the .csv and .png outputs")
	f.BoolVar(&c.base64, "base64", false, "also print the chart as a base64 string")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required")
		return subcommands.ExitUsageError
	}
	// The simulator applies its own five-year default, only pass an
	// explicit range through.
	var rng date.Range
	if c.from != "" || c.to != "" {
		var err error
		if rng, err = parseRange(c.from, c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	sim := wizard.Simulation{Ticker: c.ticker, GrowthRate: c.rate, Range: rng}
	tr, err := sim.Run(ctx, yahoo.NewProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TrajectoryMarkdown(tr))

	if err := tr.Save(c.output + ".csv"); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s.csv: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	img, err := chart.Trajectory(tr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output+".png", img, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s.png: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if c.base64 {
		fmt.Println(chart.Base64PNG(img))
	}
	fmt.Printf("Saved %s.csv and %s.png\n", c.output, c.output)
	return subcommands.ExitSuccess
}
