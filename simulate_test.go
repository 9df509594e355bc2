package wizard

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
)

func TestSimulationZeroGrowth(t *testing.T) {
	provider := stubProvider{"AAPL-USD": hist(t, "2024-01-01", 100, 120, 90)}
	sim := Simulation{Ticker: "AAPL", GrowthRate: 0, Range: week(t)}

	tr, err := sim.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range tr.Simulated() {
		if v != 100 {
			t.Errorf("simulated[%d] = %v, want constant 100", i, v)
		}
	}
}

func TestSimulationOneYearFactor(t *testing.T) {
	// Exactly 365 days after the anchor the simulated price is the initial
	// price times (1+rate/100).
	h := new(date.History[float64])
	from := date.MustParse("2024-01-01")
	h.Append(from, 200)
	h.Append(from.Add(365), 987)
	provider := stubProvider{"AAPL-USD": h}

	sim := Simulation{Ticker: "AAPL", GrowthRate: 10, Range: date.NewRange(from, from.Add(366))}
	tr, err := sim.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}

	simulated := tr.Simulated()
	if simulated[0] != 200 {
		t.Errorf("simulated[0] = %v, want the 200 anchor", simulated[0])
	}
	if math.Abs(simulated[1]-220) > 1e-9 {
		t.Errorf("simulated after one year = %v, want 220", simulated[1])
	}
}

func TestSimulationNegativeGrowth(t *testing.T) {
	h := new(date.History[float64])
	from := date.MustParse("2024-01-01")
	h.Append(from, 100)
	h.Append(from.Add(365), 50)
	provider := stubProvider{"AAPL-USD": h}

	sim := Simulation{Ticker: "AAPL", GrowthRate: -20, Range: date.NewRange(from, from.Add(366))}
	tr, err := sim.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Simulated()[1]; math.Abs(got-80) > 1e-9 {
		t.Errorf("simulated after one year = %v, want 80", got)
	}
}

func TestSimulationCanonicalizesTicker(t *testing.T) {
	provider := stubProvider{"BTC-USD": hist(t, "2024-01-01", 40000, 41000)}
	sim := Simulation{Ticker: "bitcoin", Range: week(t)}

	tr, err := sim.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Ticker() != "BTC-USD" {
		t.Errorf("ticker = %q, want BTC-USD", tr.Ticker())
	}
}

func TestSimulationWrapsErrors(t *testing.T) {
	sim := Simulation{Ticker: "btc", Range: week(t)}

	_, err := sim.Run(context.Background(), stubProvider{})
	var simErr *SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("got %v, want SimulationError", err)
	}
	if simErr.Ticker != "BTC-USD" {
		t.Errorf("error ticker = %q, want the canonicalized BTC-USD", simErr.Ticker)
	}
	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Errorf("want a wrapped DataError, got %v", err)
	}
}
