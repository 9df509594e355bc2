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

type backtestCmd struct {
	long         string
	short        string
	longWeights  string
	shortWeights string
	benchmark    string
	from, to     string
	output       string
}

func (*backtestCmd) Name() string     { return "backtest" }
func (*backtestCmd) Synopsis() string { return "backtest a long/short portfolio against a benchmark" }
func (*backtestCmd) Usage() string {
	return `pw backtest -long <tickers> [-short <tickers>] [-from <date>] [-to <date>]

  Replays a long/short portfolio over the date range and compares its
  cumulative return against a benchmark index. Saves the return table to
  <output>.csv and the chart to <output>.png.

Usage Examples:
$ pw backtest -long AAPL,MSFT -short TSLA -from 2024-01-01 -to 2024-12-31

`
}

func (c *backtestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.long, "long", "", "comma-separated tickers of the long leg")
	f.StringVar(&c.short, "short", "", "comma-separated tickers of the short leg")
	f.StringVar(&c.longWeights, "long-weights", "", "comma-separated weights for the long leg (default equal)")
	f.StringVar(&c.shortWeights, "short-weights", "", "comma-separated weights for the short leg (default equal)")
	f.StringVar(&c.benchmark, "benchmark", "", "benchmark ticker (default "+wizard.DefaultBenchmark+")")
	f.StringVar(&c.from, "from", "", "range start date, YYYY-MM-DD (default one year ago)")
	f.StringVar(&c.to, "to", "", "range end date, YYYY-MM-DD (default today)")
	f.StringVar(&c.output, "output", "backtest", "base name for the .csv and .png outputs")
}

func (c *backtestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := c.backtest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	res, err := b.Run(ctx, yahoo.NewProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running backtest: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BacktestMarkdown(res))

	if err := res.Save(c.output + ".csv"); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s.csv: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	img, err := chart.CumulativeReturns(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output+".png", img, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s.png: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %s.csv and %s.png\n", c.output, c.output)
	return subcommands.ExitSuccess
}

// backtest builds the validated wizard.Backtest from the flags.
func (c *backtestCmd) backtest() (*wizard.Backtest, error) {
	longWeights, err := parseWeights(c.longWeights)
	if err != nil {
		return nil, err
	}
	shortWeights, err := parseWeights(c.shortWeights)
	if err != nil {
		return nil, err
	}
	long, err := wizard.NewLeg(parseTickers(c.long), longWeights)
	if err != nil {
		return nil, fmt.Errorf("long leg: %w", err)
	}
	short, err := wizard.NewLeg(parseTickers(c.short), shortWeights)
	if err != nil {
		return nil, fmt.Errorf("short leg: %w", err)
	}
	rng, err := parseRange(c.from, c.to)
	if err != nil {
		return nil, err
	}
	return wizard.NewBacktest(long, short, c.benchmark, rng)
}
