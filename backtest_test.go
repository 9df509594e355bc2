package wizard

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
)

// stubProvider serves in-memory histories, keyed by ticker.
type stubProvider map[string]*date.History[float64]

func (p stubProvider) Fetch(ctx context.Context, tickers []string, rng date.Range) (map[string]*date.History[float64], error) {
	out := make(map[string]*date.History[float64])
	for _, ticker := range tickers {
		if h, ok := p[ticker]; ok {
			out[ticker] = h
		}
	}
	return out, nil
}

// failingProvider always fails, simulating an unreachable feed.
type failingProvider struct{}

func (failingProvider) Fetch(ctx context.Context, tickers []string, rng date.Range) (map[string]*date.History[float64], error) {
	return nil, errors.New("connection refused")
}

func hist(t *testing.T, from string, prices ...float64) *date.History[float64] {
	t.Helper()
	day := date.MustParse(from)
	h := new(date.History[float64])
	for i, p := range prices {
		h.Append(day.Add(i), p)
	}
	return h
}

func week(t *testing.T) date.Range {
	t.Helper()
	return date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-01-07"))
}

func mustLeg(t *testing.T, tickers []string, weights []float64) Leg {
	t.Helper()
	leg, err := NewLeg(tickers, weights)
	if err != nil {
		t.Fatal(err)
	}
	return leg
}

func equalSeries(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s length = %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestBacktestLongShort(t *testing.T) {
	// Both legs gain exactly 10% on day two, so the long-short strategy is
	// flat while each leg individually is not.
	provider := stubProvider{
		"AAPL":  hist(t, "2024-01-01", 100, 110),
		"MSFT":  hist(t, "2024-01-01", 50, 55),
		"^GSPC": hist(t, "2024-01-01", 10, 10),
	}

	b, err := NewBacktest(mustLeg(t, []string{"AAPL"}, nil), mustLeg(t, []string{"MSFT"}, nil), "", week(t))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}

	equalSeries(t, "strategy", res.Strategy(), []float64{0, 0})
	equalSeries(t, "benchmark", res.Benchmark(), []float64{0, 0})
}

func TestBacktestLongOnly(t *testing.T) {
	provider := stubProvider{
		"AAPL":  hist(t, "2024-01-01", 100, 110, 121),
		"^GSPC": hist(t, "2024-01-01", 10, 10, 10),
	}

	b, err := NewBacktest(mustLeg(t, []string{"AAPL"}, nil), Leg{}, "", week(t))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}

	equalSeries(t, "strategy", res.Strategy(), []float64{0, 0.1, 0.21})
}

func TestBacktestShortOnlyNegates(t *testing.T) {
	provider := stubProvider{
		"AAPL":  hist(t, "2024-01-01", 100, 110),
		"^GSPC": hist(t, "2024-01-01", 10, 10),
	}

	b, err := NewBacktest(Leg{}, mustLeg(t, []string{"AAPL"}, nil), "", week(t))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}

	equalSeries(t, "strategy", res.Strategy(), []float64{0, -0.1})
}

func TestBacktestLongOfBenchmarkMatchesIt(t *testing.T) {
	provider := stubProvider{
		"^GSPC": hist(t, "2024-01-01", 100, 105, 99),
	}

	b, err := NewBacktest(mustLeg(t, []string{"^GSPC"}, nil), Leg{}, "", week(t))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}

	equalSeries(t, "strategy vs benchmark", res.Strategy(), res.Benchmark())
}

func TestBacktestWeights(t *testing.T) {
	// 3:1 raw weights normalize to 0.75/0.25. AAPL gains 10%, MSFT loses
	// 10%, so the portfolio gains 0.75*0.1 - 0.25*0.1 = 5%.
	provider := stubProvider{
		"AAPL":  hist(t, "2024-01-01", 100, 110),
		"MSFT":  hist(t, "2024-01-01", 100, 90),
		"^GSPC": hist(t, "2024-01-01", 10, 10),
	}

	b, err := NewBacktest(mustLeg(t, []string{"AAPL", "MSFT"}, []float64{3, 1}), Leg{}, "", week(t))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}

	equalSeries(t, "strategy", res.Strategy(), []float64{0, 0.05})
}

func TestBacktestAlignsOnCommonDates(t *testing.T) {
	// MSFT is missing 2024-01-02, so that date must be dropped from every
	// series before returns are computed.
	aapl := hist(t, "2024-01-01", 100, 999, 110)
	msft := new(date.History[float64])
	msft.Append(date.MustParse("2024-01-01"), 50)
	msft.Append(date.MustParse("2024-01-03"), 55)
	provider := stubProvider{
		"AAPL":  aapl,
		"MSFT":  msft,
		"^GSPC": hist(t, "2024-01-01", 10, 10, 10),
	}

	b, err := NewBacktest(mustLeg(t, []string{"AAPL", "MSFT"}, nil), Leg{}, "", week(t))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Run(context.Background(), provider)
	if err != nil {
		t.Fatal(err)
	}

	if res.Len() != 2 {
		t.Fatalf("aligned length = %d, want 2", res.Len())
	}
	// Equal weights, AAPL +10% and MSFT +10% over the aligned dates.
	equalSeries(t, "strategy", res.Strategy(), []float64{0, 0.1})
}

func TestNewBacktestErrors(t *testing.T) {
	rng := week(t)

	_, err := NewBacktest(Leg{}, Leg{}, "", rng)
	var cfg ConfigError
	if !errors.As(err, &cfg) || cfg.Error() != "no stocks to trade" {
		t.Errorf("empty legs: got %v, want ConfigError(no stocks to trade)", err)
	}

	inverted := date.NewRange(rng.To, rng.From)
	if _, err := NewBacktest(mustLeg(t, []string{"AAPL"}, nil), Leg{}, "", inverted); !errors.As(err, &cfg) {
		t.Errorf("inverted range: got %v, want ConfigError", err)
	}
}

func TestBacktestDataErrors(t *testing.T) {
	b, err := NewBacktest(mustLeg(t, []string{"AAPL"}, nil), Leg{}, "", week(t))
	if err != nil {
		t.Fatal(err)
	}

	var dataErr *DataError
	if _, err := b.Run(context.Background(), stubProvider{}); !errors.As(err, &dataErr) {
		t.Errorf("missing ticker: got %v, want DataError", err)
	}
	if _, err := b.Run(context.Background(), failingProvider{}); !errors.As(err, &dataErr) {
		t.Errorf("provider failure: got %v, want DataError", err)
	}
}

func TestBacktestDefaultBenchmark(t *testing.T) {
	b, err := NewBacktest(mustLeg(t, []string{"AAPL"}, nil), Leg{}, "", week(t))
	if err != nil {
		t.Fatal(err)
	}
	if b.Benchmark() != DefaultBenchmark {
		t.Errorf("benchmark = %q, want %q", b.Benchmark(), DefaultBenchmark)
	}
}
