package renderer

import (
	"bytes"
	"fmt"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	md "github.com/nao1215/markdown"
)

// TrajectoryMarkdown renders a growth simulation to a markdown report
// comparing the actual price path against the fixed-growth one.
func TrajectoryMarkdown(tr *wizard.Trajectory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Growth Simulation for %s", tr.Ticker()))
	doc.PlainText(fmt.Sprintf("Hypothesis: %g%% fixed yearly growth over %d trading days.", tr.GrowthRate(), tr.Len()))

	actual, simulated := tr.Final()
	doc.H2("Prices")
	doc.Table(md.TableSet{
		Header: []string{"Series", "Initial", "Final"},
		Rows: [][]string{
			{"Actual", usd(tr.Initial()), usd(actual)},
			{"Simulated", usd(tr.Initial()), usd(simulated)},
		},
	})

	verdict := "The actual price outperformed the growth hypothesis."
	if actual < simulated {
		verdict = "The actual price underperformed the growth hypothesis."
	}
	doc.PlainText(verdict)

	return doc.String()
}
