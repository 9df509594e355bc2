package renderer

import (
	"bytes"
	"fmt"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	md "github.com/nao1215/markdown"
)

// BacktestMarkdown renders a backtest result to a markdown report.
func BacktestMarkdown(res *wizard.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Backtest Review")
	if rng := res.Range(); !rng.IsZero() {
		doc.PlainText(fmt.Sprintf("Period: %s (%d trading days)", rng, res.Len()))
	} else {
		doc.PlainText(fmt.Sprintf("Period: %d trading days", res.Len()))
	}

	strategy, benchmark := res.Final()
	doc.H2("Cumulative Returns")
	doc.Table(md.TableSet{
		Header: []string{"Series", "Return"},
		Rows: [][]string{
			{"Strategy", strategy.SignedString()},
			{"Benchmark", benchmark.SignedString()},
			{"Excess", (strategy - benchmark).SignedString()},
		},
	})

	return doc.String()
}
