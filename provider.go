package wizard

import (
	"context"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
)

// PriceProvider returns one date-indexed close-price series per ticker over
// an inclusive date range. Gaps and missing trading days are the provider's
// concern: the engine aligns whatever indexes come back.
//
// A provider must return an entry for every requested ticker or fail with
// an error; retry and caching policies, if any, live in the provider.
type PriceProvider interface {
	Fetch(ctx context.Context, tickers []string, rng date.Range) (map[string]*date.History[float64], error)
}
