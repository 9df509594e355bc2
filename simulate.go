package wizard

import (
	"context"
	"io"
	"math"
	"os"
	"slices"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
	"github.com/gocarina/gocsv"
)

// Simulation projects a hypothetical constant-growth price trajectory for
// one ticker, for direct overlay against its actual historical prices.
type Simulation struct {
	// Ticker is canonicalized with FormatCryptoSymbol before fetching.
	Ticker string
	// GrowthRate is the annual growth in percent, e.g. 10 for +10%/year.
	// It may be negative.
	GrowthRate float64
	// Range defaults to the five years up to today when left zero.
	Range date.Range
}

// Run fetches the actual price series and computes the simulated
// trajectory, anchored at the first actual price.
//
// For every date t in the actual series the simulated price is
// initial * (1+rate/100)^(days/365) where days is the integer day count
// since the first date: continuous fractional-year compounding, not
// calendar-year stepping. Any failure is wrapped in a SimulationError
// carrying the canonicalized ticker.
func (s Simulation) Run(ctx context.Context, provider PriceProvider) (*Trajectory, error) {
	ticker := FormatCryptoSymbol(s.Ticker)
	rng := s.Range
	if rng.IsZero() {
		today := date.Today()
		rng = date.NewRange(today.Add(-5*365), today)
	}

	series, err := provider.Fetch(ctx, []string{ticker}, rng)
	if err != nil {
		return nil, &SimulationError{Ticker: ticker, Err: err}
	}
	actual, ok := series[ticker]
	if !ok || actual.Len() == 0 {
		return nil, &SimulationError{Ticker: ticker, Err: &DataError{Ticker: ticker}}
	}

	t0, initial := actual.First()
	annualFactor := 1 + s.GrowthRate/100

	days := actual.Dates()
	actualPrices := make([]float64, len(days))
	simulated := make([]float64, len(days))
	for i, on := range days {
		actualPrices[i], _ = actual.Get(on)
		elapsed := float64(on.Sub(t0))
		simulated[i] = initial * math.Pow(annualFactor, elapsed/365.0)
	}

	return &Trajectory{
		ticker:    ticker,
		rate:      s.GrowthRate,
		dates:     days,
		actual:    actualPrices,
		simulated: simulated,
	}, nil
}

// Trajectory is the immutable outcome of one simulation: actual and
// simulated prices aligned one-to-one on the actual series' dates.
type Trajectory struct {
	ticker    string
	rate      float64
	dates     []date.Date
	actual    []float64
	simulated []float64
}

// Ticker returns the canonicalized ticker that was simulated.
func (t *Trajectory) Ticker() string { return t.ticker }

// GrowthRate returns the annual growth rate in percent.
func (t *Trajectory) GrowthRate() float64 { return t.rate }

// Len returns the number of dates in the trajectory.
func (t *Trajectory) Len() int { return len(t.dates) }

// Dates returns a copy of the trajectory's date index.
func (t *Trajectory) Dates() []date.Date { return slices.Clone(t.dates) }

// Actual returns a copy of the actual close prices.
func (t *Trajectory) Actual() []float64 { return slices.Clone(t.actual) }

// Simulated returns a copy of the simulated prices.
func (t *Trajectory) Simulated() []float64 { return slices.Clone(t.simulated) }

// Initial returns the first actual price, the simulation anchor.
func (t *Trajectory) Initial() float64 {
	if len(t.actual) == 0 {
		return 0
	}
	return t.actual[0]
}

// Final returns the last actual and simulated prices.
func (t *Trajectory) Final() (actual, simulated float64) {
	last := t.Len() - 1
	if last < 0 {
		return 0, 0
	}
	return t.actual[last], t.simulated[last]
}

// trajectoryRow is the persisted form of one trajectory date.
type trajectoryRow struct {
	Date      date.Date `csv:"Date"`
	Actual    float64   `csv:"Actual Price"`
	Simulated float64   `csv:"Simulated Price"`
}

// WriteCSV writes the actual and simulated price columns, indexed by date.
func (t *Trajectory) WriteCSV(w io.Writer) error {
	rows := make([]trajectoryRow, t.Len())
	for i := range rows {
		rows[i] = trajectoryRow{Date: t.dates[i], Actual: t.actual[i], Simulated: t.simulated[i]}
	}
	return gocsv.Marshal(&rows, w)
}

// Save writes the trajectory as CSV into the named file.
func (t *Trajectory) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.WriteCSV(f)
}
