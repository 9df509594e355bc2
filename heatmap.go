package wizard

import (
	"io"
	"math"
	"os"

	"github.com/gocarina/gocsv"
)

// HeatmapEntry is one tile of the market heatmap: a ticker, its market
// capitalization (the tile area) and its return over the observed period
// (the tile color), expressed as a fraction.
type HeatmapEntry struct {
	Ticker    string  `csv:"Ticker"`
	MarketCap float64 `csv:"MarketCap"`
	Returns   float64 `csv:"Returns"`
}

// HeatmapTable holds the entries backing one heatmap rendering.
type HeatmapTable []HeatmapEntry

// DefaultHeatmapFile is the conventional on-disk location of the table.
const DefaultHeatmapFile = "market_caps_and_returns.csv"

// ReadHeatmapTable reads a table persisted with WriteCSV.
func ReadHeatmapTable(in io.Reader) (HeatmapTable, error) {
	var table HeatmapTable
	if err := gocsv.Unmarshal(in, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadHeatmapTable reads the table from the named file.
func LoadHeatmapTable(path string) (HeatmapTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadHeatmapTable(f)
}

// WriteCSV writes the table as CSV.
func (t HeatmapTable) WriteCSV(w io.Writer) error {
	return gocsv.Marshal(&t, w)
}

// Save writes the table into the named file.
func (t HeatmapTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.WriteCSV(f)
}

// MaxAbsReturn returns the largest absolute return in the table. The color
// ramp is normalized symmetrically around zero with this bound, so equal
// gains and losses get colors of equal intensity.
func (t HeatmapTable) MaxAbsReturn() float64 {
	var bound float64
	for _, e := range t {
		if abs := math.Abs(e.Returns); abs > bound {
			bound = abs
		}
	}
	return bound
}
