package wizard

import (
	"io"
	"os"
	"slices"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/date"
	"github.com/gocarina/gocsv"
)

// Result is the immutable outcome of one backtest run: the strategy and
// benchmark cumulative return series on a shared date index. It is returned
// by Backtest.Run and passed explicitly to plotting and persistence.
type Result struct {
	dates     []date.Date
	strategy  []float64
	benchmark []float64
}

func newResult(dates []date.Date, strategy, benchmark []float64) *Result {
	return &Result{dates: dates, strategy: strategy, benchmark: benchmark}
}

// Len returns the number of dates in the result.
func (r *Result) Len() int { return len(r.strategy) }

// Dates returns a copy of the shared date index.
func (r *Result) Dates() []date.Date { return slices.Clone(r.dates) }

// Strategy returns a copy of the strategy cumulative return series.
func (r *Result) Strategy() []float64 { return slices.Clone(r.strategy) }

// Benchmark returns a copy of the benchmark cumulative return series.
func (r *Result) Benchmark() []float64 { return slices.Clone(r.benchmark) }

// Range returns the date range actually covered by the result, which may be
// narrower than requested after alignment. It is zero when the result was
// read back from a CSV without a date index.
func (r *Result) Range() date.Range {
	if len(r.dates) == 0 {
		return date.Range{}
	}
	return date.NewRange(r.dates[0], r.dates[len(r.dates)-1])
}

// Final returns the cumulative returns at the last date.
func (r *Result) Final() (strategy, benchmark Percent) {
	last := r.Len() - 1
	if last < 0 {
		return 0, 0
	}
	return Percent(100 * r.strategy[last]), Percent(100 * r.benchmark[last])
}

// resultRow is the persisted form of one result date. The date itself is
// not persisted, matching the historical output format.
type resultRow struct {
	Strategy  float64 `csv:"Strategy Returns"`
	Benchmark float64 `csv:"Benchmark Returns"`
}

// WriteCSV writes the two named return columns as CSV, without a date column.
func (r *Result) WriteCSV(w io.Writer) error {
	rows := make([]resultRow, r.Len())
	for i := range rows {
		rows[i] = resultRow{Strategy: r.strategy[i], Benchmark: r.benchmark[i]}
	}
	return gocsv.Marshal(&rows, w)
}

// Save writes the result as CSV into the named file.
func (r *Result) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.WriteCSV(f)
}

// ReadResultCSV reads back a result persisted with WriteCSV. The date index
// is not part of the persisted form, so the returned result carries none.
func ReadResultCSV(in io.Reader) (*Result, error) {
	var rows []resultRow
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, err
	}
	strategy := make([]float64, len(rows))
	benchmark := make([]float64, len(rows))
	for i, row := range rows {
		strategy[i] = row.Strategy
		benchmark[i] = row.Benchmark
	}
	return newResult(nil, strategy, benchmark), nil
}
