// Package yahoo implements the price series provider on top of the Yahoo
// Finance chart API. It returns one daily close-price history per ticker,
// caching responses on disk with a daily expiry.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
)

// Provider fetches daily close prices from Yahoo Finance. The zero value is
// not usable, build one with NewProvider.
type Provider struct {
	client   *http.Client
	hosts    []string
	backoffs []time.Duration
}

// NewProvider returns a provider with the default hosts, retry backoffs and
// a daily-expiring disk cache.
func NewProvider() *Provider {
	return &Provider{
		client:   newDailyCachingClient(),
		hosts:    []string{"query1.finance.yahoo.com", "query2.finance.yahoo.com"},
		backoffs: []time.Duration{200 * time.Millisecond, 500 * time.Millisecond, time.Second},
	}
}

var _ wizard.PriceProvider = (*Provider)(nil)

// chartResponse is the payload of the v8 chart endpoint.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// Fetch returns one close-price history per ticker over the inclusive
// range. Any ticker that cannot be fetched fails the whole call with a
// wizard.DataError.
func (p *Provider) Fetch(ctx context.Context, tickers []string, rng date.Range) (map[string]*date.History[float64], error) {
	out := make(map[string]*date.History[float64], len(tickers))
	for _, ticker := range tickers {
		h, err := p.fetchOne(ctx, p.client, ticker, rng)
		if err != nil {
			return nil, err
		}
		out[ticker] = h
	}
	return out, nil
}

// fetchOne tries every host with bounded backoff, then falls back to the
// spark endpoint once before giving up.
func (p *Provider) fetchOne(ctx context.Context, client *http.Client, ticker string, rng date.Range) (*date.History[float64], error) {
	var lastErr error
	for attempt := 0; attempt < len(p.backoffs)+1; attempt++ {
		for _, host := range p.hosts {
			h, err := p.chart(ctx, client, host, ticker, rng)
			if err == nil {
				return h, nil
			}
			lastErr = err
		}
		if attempt < len(p.backoffs) {
			select {
			case <-ctx.Done():
				return nil, &wizard.DataError{Ticker: ticker, Err: ctx.Err()}
			case <-time.After(p.backoffs[attempt]):
			}
		}
	}
	if h, err := p.spark(ctx, client, ticker, rng); err == nil {
		return h, nil
	}
	return nil, &wizard.DataError{Ticker: ticker, Err: lastErr}
}

// chart queries the v8 chart endpoint for daily closes in [rng.From, rng.To].
func (p *Provider) chart(ctx context.Context, client *http.Client, host, ticker string, rng date.Range) (*date.History[float64], error) {
	// period2 is exclusive, push it one day past the inclusive range end.
	addr := fmt.Sprintf("https://%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div,splits",
		host, url.PathEscape(ticker), rng.From.Unix(), rng.To.Add(1).Unix())

	var payload chartResponse
	if err := jwget(ctx, client, addr, &payload); err != nil {
		return nil, err
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, errors.New("no data")
	}
	result := payload.Chart.Result[0]
	return toHistory(result.Timestamp, result.Indicators.Quote[0].Close, rng)
}

// toHistory converts parallel timestamp/close slices into a history,
// skipping the null closes Yahoo encodes as zeros and clipping to rng.
func toHistory(timestamps []int64, closes []float64, rng date.Range) (*date.History[float64], error) {
	h := new(date.History[float64])
	for i, ts := range timestamps {
		if i >= len(closes) || closes[i] == 0 {
			continue
		}
		on := date.New(time.Unix(ts, 0).UTC().Date())
		if !rng.Contains(on) {
			continue
		}
		h.Append(on, closes[i])
	}
	if h.Len() == 0 {
		return nil, errors.New("empty bars")
	}
	return h, nil
}
