// Package cmd implements the CLI application to backtest, simulate and
// chart portfolios.
package cmd

import (
	"fmt"
	"strings"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&backtestCmd{}, "analysis")
	c.Register(&simulateCmd{}, "analysis")
	c.Register(&heatmapCmd{}, "analysis")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// parseTickers splits a comma-separated ticker list, uppercased, dropping
// empty items. An empty input yields nil.
func parseTickers(s string) []string {
	var tickers []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.ToUpper(strings.TrimSpace(item)); item != "" {
			tickers = append(tickers, item)
		}
	}
	return tickers
}

// parseWeights parses a comma-separated weight list. Weights are parsed as
// decimals so CLI-typical inputs like "0.3" survive exactly as written.
// An empty input yields nil, which means equal weights downstream.
func parseWeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var weights []float64
	for _, item := range strings.Split(s, ",") {
		d, err := decimal.NewFromString(strings.TrimSpace(item))
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", item, err)
		}
		weights = append(weights, d.InexactFloat64())
	}
	return weights, nil
}

// parseRange parses the -from and -to flags, defaulting to the year up to
// today when both are empty.
func parseRange(from, to string) (date.Range, error) {
	today := date.Today()
	rng := date.NewRange(today.Add(-365), today)
	if from != "" {
		d, err := date.Parse(from)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid -from date %q: %w", from, err)
		}
		rng.From = d
	}
	if to != "" {
		d, err := date.Parse(to)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid -to date %q: %w", to, err)
		}
		rng.To = d
	}
	return rng, nil
}
