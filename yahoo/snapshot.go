package yahoo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
)

// quoteResponse is the payload of the v7 quote endpoint.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol    string  `json:"symbol"`
			MarketCap float64 `json:"marketCap"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// Snapshot builds a heatmap table for the tickers: market capitalization
// from the quote endpoint and the return over rng from the chart endpoint.
//
// On failure it retries exactly once with a cache refresh, since a stale
// cached response is the most common cause of a bad first attempt.
func (p *Provider) Snapshot(ctx context.Context, tickers []string, rng date.Range) (wizard.HeatmapTable, error) {
	table, err := p.snapshot(ctx, p.client, tickers, rng)
	if err == nil {
		return table, nil
	}
	log.Printf("heatmap fetch failed (%v), retrying once with a cache refresh", err)
	return p.snapshot(ctx, newRefreshingClient(), tickers, rng)
}

func (p *Provider) snapshot(ctx context.Context, client *http.Client, tickers []string, rng date.Range) (wizard.HeatmapTable, error) {
	if len(tickers) == 0 {
		return nil, errors.New("no tickers to snapshot")
	}

	addr := fmt.Sprintf("https://%s/v7/finance/quote?symbols=%s",
		p.hosts[0], url.QueryEscape(strings.Join(tickers, ",")))
	var payload quoteResponse
	if err := jwget(ctx, client, addr, &payload); err != nil {
		return nil, err
	}
	caps := make(map[string]float64, len(payload.QuoteResponse.Result))
	for _, q := range payload.QuoteResponse.Result {
		caps[q.Symbol] = q.MarketCap
	}

	table := make(wizard.HeatmapTable, 0, len(tickers))
	for _, ticker := range tickers {
		cap, ok := caps[ticker]
		if !ok || cap == 0 {
			return nil, fmt.Errorf("no market cap for %s", ticker)
		}
		h, err := p.fetchOne(ctx, client, ticker, rng)
		if err != nil {
			return nil, err
		}
		_, first := h.First()
		_, last := h.Latest()
		table = append(table, wizard.HeatmapEntry{
			Ticker:    ticker,
			MarketCap: cap,
			Returns:   last/first - 1,
		})
	}
	return table, nil
}
