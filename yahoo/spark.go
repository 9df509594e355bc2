package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
	"github.com/PaesslerAG/jsonpath"
)

// spark queries the v7 spark endpoint, the lighter fallback when the chart
// endpoint is throttled. Spark only supports coarse range parameters, so
// the response is clipped to rng afterwards.
func (p *Provider) spark(ctx context.Context, client *http.Client, ticker string, rng date.Range) (*date.History[float64], error) {
	addr := fmt.Sprintf("https://%s/v7/finance/spark?symbols=%s&range=%s&interval=1d",
		p.hosts[0], url.QueryEscape(strings.ToUpper(ticker)), sparkRange(rng))

	// The spark payload nests result arrays three levels deep, jsonpath
	// keeps the extraction terse.
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return nil, err
	}
	timestamps, err := floatsAt(jobj, "$.spark.result[0].response[0].timestamp")
	if err != nil {
		return nil, err
	}
	closes, err := floatsAt(jobj, "$.spark.result[0].response[0].close")
	if err != nil {
		return nil, err
	}

	ts := make([]int64, len(timestamps))
	for i, t := range timestamps {
		ts[i] = int64(t)
	}
	return toHistory(ts, closes, rng)
}

// sparkRange picks the smallest coarse range parameter covering rng.
func sparkRange(rng date.Range) string {
	days := date.Today().Sub(rng.From)
	switch {
	case days <= 30:
		return "1mo"
	case days <= 3*30:
		return "3mo"
	case days <= 6*30:
		return "6mo"
	case days <= 365:
		return "1y"
	case days <= 2*365:
		return "2y"
	case days <= 5*365:
		return "5y"
	case days <= 10*365:
		return "10y"
	default:
		return "max"
	}
}

// floatsAt extracts a numeric array at a jsonpath, tolerating nulls.
func floatsAt(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("parsing %q: not an array", path)
	}
	if len(jlist) == 0 {
		return nil, errors.New("no data")
	}
	values := make([]float64, len(jlist))
	for i, jv := range jlist {
		// nulls stay zero and are skipped downstream
		if f, ok := jv.(float64); ok {
			values[i] = f
		}
	}
	return values, nil
}
