// Package wizard computes the historical performance of a long/short
// portfolio against a benchmark index, and simulates fixed-growth price
// trajectories against actual market prices.
//
// The package is the numeric core: weight normalization, daily return
// computation, long/short combination, compounding, and date alignment.
// Fetching prices is delegated to a PriceProvider (see the yahoo package),
// and rendering to the chart and renderer packages.
package wizard
