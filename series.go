package wizard

import (
	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
)

// This file holds the pure series transformations shared by the return
// engine: daily returns, weighted aggregation, and compounding. All
// functions return fresh slices and never mutate their inputs.

// dailyReturns derives the return series of a price series:
// r[t] = p[t]/p[t-1] - 1, and r[0] is defined to be exactly 0 since there
// is no prior reference.
func dailyReturns(prices []float64) []float64 {
	rets := make([]float64, len(prices))
	for t := 1; t < len(prices); t++ {
		rets[t] = prices[t]/prices[t-1] - 1
	}
	return rets
}

// weightedSum reduces per-asset return series into a single portfolio
// return series, one weight-dot-product per date. All series must have the
// same length.
func weightedSum(perAsset [][]float64, weights []float64) []float64 {
	if len(perAsset) == 0 {
		return nil
	}
	sum := make([]float64, len(perAsset[0]))
	for i, rets := range perAsset {
		w := weights[i]
		for t, r := range rets {
			sum[t] += w * r
		}
	}
	return sum
}

// compound turns a return series into a cumulative return series:
// c[t] = (1+r[0])*(1+r[1])*...*(1+r[t]) - 1.
func compound(rets []float64) []float64 {
	cum := make([]float64, len(rets))
	acc := 1.0
	for t, r := range rets {
		acc *= 1 + r
		cum[t] = acc - 1
	}
	return cum
}

// negate returns the elementwise negation of a return series. A short
// position's P&L is the negative of the underlying asset's return.
func negate(rets []float64) []float64 {
	neg := make([]float64, len(rets))
	for t, r := range rets {
		neg[t] = -r
	}
	return neg
}

// subtract returns the elementwise difference a-b of two equally long
// return series.
func subtract(a, b []float64) []float64 {
	diff := make([]float64, len(a))
	for t := range a {
		diff[t] = a[t] - b[t]
	}
	return diff
}

// valuesAt extracts the values of a history at the given dates, in order.
// Every date must be present in the history: callers align on the inner
// join of all indexes first.
func valuesAt(h *date.History[float64], days []date.Date) []float64 {
	values := make([]float64, len(days))
	for i, on := range days {
		values[i], _ = h.Get(on)
	}
	return values
}
