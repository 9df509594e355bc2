// Package chart renders backtest results, simulated trajectories and market
// heatmaps as PNG images.
package chart

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	"github.com/vicanso/go-charts/v2"
)

// CumulativeReturns renders the strategy and benchmark cumulative return
// curves of a backtest result as a PNG line chart, in percent.
func CumulativeReturns(res *wizard.Result) ([]byte, error) {
	if res.Len() < 2 {
		return nil, errors.New("not enough data points")
	}

	strategy, benchmark := res.Strategy(), res.Benchmark()
	for i := range strategy {
		strategy[i] *= 100
		benchmark[i] *= 100
	}

	// Results read back from CSV carry no date index, fall back to
	// positional labels.
	dates := res.Dates()
	x := make([]string, res.Len())
	for i := range x {
		if i < len(dates) {
			x[i] = dates[i].String()
		} else {
			x[i] = strconv.Itoa(i)
		}
	}

	names := []string{"Strategy Returns", "Benchmark Returns"}
	painter, err := charts.LineRender([][]float64{strategy, benchmark},
		charts.TitleTextOptionFunc("Strategy vs Benchmark • cumulative %"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: x, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// Trajectory renders the actual and simulated price curves of a growth
// simulation as a PNG line chart.
func Trajectory(tr *wizard.Trajectory) ([]byte, error) {
	if tr.Len() < 2 {
		return nil, errors.New("not enough data points")
	}

	dates := tr.Dates()
	x := make([]string, len(dates))
	for i, d := range dates {
		x[i] = d.String()
	}

	names := []string{
		fmt.Sprintf("Actual Price (%s)", tr.Ticker()),
		fmt.Sprintf("Simulated Price (%g%% YoY Growth)", tr.GrowthRate()),
	}
	painter, err := charts.LineRender([][]float64{tr.Actual(), tr.Simulated()},
		charts.TitleTextOptionFunc("Actual vs. Simulated Price for "+tr.Ticker()),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: x, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// Base64PNG encodes rendered PNG bytes as a base64 string, the historical
// handoff format to callers embedding the image elsewhere.
func Base64PNG(img []byte) string {
	return base64.StdEncoding.EncodeToString(img)
}
