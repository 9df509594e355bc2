package renderer

import (
	"bytes"
	"fmt"
	"sort"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	md "github.com/nao1215/markdown"
)

// HeatmapMarkdown renders a heatmap table to markdown, largest market
// capitalization first.
func HeatmapMarkdown(table wizard.HeatmapTable) string {
	entries := make(wizard.HeatmapTable, len(table))
	copy(entries, table)
	sort.Slice(entries, func(i, j int) bool { return entries[i].MarketCap > entries[j].MarketCap })

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Returns Heatmap")
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Ticker,
			marketCap(e.MarketCap),
			wizard.Percent(100 * e.Returns).SignedString(),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Market Cap", "Return"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d tickers, colored by return in the PNG rendering.", len(entries)))

	return doc.String()
}
