// Package renderer turns backtest results, simulated trajectories and
// heatmap tables into markdown reports for terminal display.
package renderer

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
)

// usd formats a price in US dollars, the quote currency of every feed we
// consume.
func usd(v float64) string {
	return money.New(int64(math.Round(v*100)), money.USD).Display()
}

// marketCap formats a market capitalization with an SI prefix (3 T, 340 M).
func marketCap(v float64) string {
	return humanize.SIWithDigits(v, 1, "")
}
