package wizard

import (
	"context"
	"errors"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
)

// DefaultBenchmark is the index used when no benchmark ticker is given.
const DefaultBenchmark = "^GSPC"

// Backtest computes the cumulative performance of a long/short portfolio
// against a benchmark over a date range. Build one with NewBacktest, which
// validates all inputs before any data is fetched, then call Run.
type Backtest struct {
	long, short Leg
	benchmark   string
	rng         date.Range
}

// NewBacktest validates the configuration eagerly and returns a ready to
// run backtest. At least one leg must be populated, and the range start
// must be strictly before its end.
func NewBacktest(long, short Leg, benchmark string, rng date.Range) (*Backtest, error) {
	if long.Empty() && short.Empty() {
		return nil, ConfigError("no stocks to trade")
	}
	if !rng.From.Before(rng.To) {
		return nil, configf("start date %s must be before end date %s", rng.From, rng.To)
	}
	if benchmark == "" {
		benchmark = DefaultBenchmark
	}
	return &Backtest{long: long, short: short, benchmark: benchmark, rng: rng}, nil
}

// Benchmark returns the benchmark ticker of the backtest.
func (b *Backtest) Benchmark() string { return b.benchmark }

// Range returns the requested date range of the backtest.
func (b *Backtest) Range() date.Range { return b.rng }

// Run fetches prices from the provider and computes the cumulative return
// table for the strategy and the benchmark.
//
// The strategy return depends on which legs are populated: with both legs
// it is the long portfolio return minus the short portfolio return; with a
// single leg it is that leg's return, negated for a short-only portfolio.
//
// All fetched series are aligned on the inner join of their date indexes:
// dates missing from any single series (a halted ticker, a diverging
// trading calendar) are dropped from the result.
func (b *Backtest) Run(ctx context.Context, provider PriceProvider) (*Result, error) {
	longSeries, err := b.fetchLeg(ctx, provider, b.long)
	if err != nil {
		return nil, err
	}
	shortSeries, err := b.fetchLeg(ctx, provider, b.short)
	if err != nil {
		return nil, err
	}
	benchLeg, _ := NewLeg([]string{b.benchmark}, nil)
	benchSeries, err := b.fetchLeg(ctx, provider, benchLeg)
	if err != nil {
		return nil, err
	}

	var all []*date.History[float64]
	for _, series := range []map[string]*date.History[float64]{longSeries, shortSeries, benchSeries} {
		for _, h := range series {
			all = append(all, h)
		}
	}
	common := date.Common(all...)
	if len(common) == 0 {
		return nil, &DataError{Err: errors.New("no common trading dates across fetched series")}
	}

	var strategy []float64
	switch {
	case !b.long.Empty() && !b.short.Empty():
		strategy = subtract(legReturns(b.long, longSeries, common), legReturns(b.short, shortSeries, common))
	case !b.long.Empty():
		strategy = legReturns(b.long, longSeries, common)
	default:
		strategy = negate(legReturns(b.short, shortSeries, common))
	}
	benchmark := legReturns(benchLeg, benchSeries, common)

	return newResult(common, compound(strategy), compound(benchmark)), nil
}

// fetchLeg fetches one price series per leg ticker. An empty leg fetches
// nothing. A missing or empty series fails the run with a DataError.
func (b *Backtest) fetchLeg(ctx context.Context, provider PriceProvider, leg Leg) (map[string]*date.History[float64], error) {
	if leg.Empty() {
		return nil, nil
	}
	series, err := provider.Fetch(ctx, leg.Tickers(), b.rng)
	if err != nil {
		var dataErr *DataError
		if errors.As(err, &dataErr) {
			return nil, err
		}
		return nil, &DataError{Err: err}
	}
	for _, ticker := range leg.Tickers() {
		if h, ok := series[ticker]; !ok || h.Len() == 0 {
			return nil, &DataError{Ticker: ticker}
		}
	}
	return series, nil
}

// legReturns computes the leg's portfolio return series over the aligned
// dates: per-ticker daily returns (first forced to 0) combined by the
// leg's normalized weights.
func legReturns(leg Leg, series map[string]*date.History[float64], common []date.Date) []float64 {
	perAsset := make([][]float64, 0, len(leg.Tickers()))
	for _, ticker := range leg.Tickers() {
		perAsset = append(perAsset, dailyReturns(valuesAt(series[ticker], common)))
	}
	return weightedSum(perAsset, leg.Weights())
}
