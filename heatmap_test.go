package wizard

import (
	"strings"
	"testing"
)

func TestHeatmapTableMaxAbsReturn(t *testing.T) {
	table := HeatmapTable{
		{Ticker: "AAPL", MarketCap: 3e12, Returns: 0.02},
		{Ticker: "MSFT", MarketCap: 1e12, Returns: -0.05},
	}
	// A loss larger than any gain still sets the bound, the ramp is
	// symmetric around zero.
	if got := table.MaxAbsReturn(); got != 0.05 {
		t.Errorf("MaxAbsReturn = %v, want 0.05", got)
	}
	if got := (HeatmapTable{}).MaxAbsReturn(); got != 0 {
		t.Errorf("MaxAbsReturn of empty table = %v, want 0", got)
	}
}

func TestReadHeatmapTable(t *testing.T) {
	in := "Ticker,MarketCap,Returns\nAAPL,3000000000000,0.02\nMSFT,1000000000000,-0.05\n"
	table, err := ReadHeatmapTable(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 2 {
		t.Fatalf("got %d entries, want 2", len(table))
	}
	if table[1].Ticker != "MSFT" || table[1].Returns != -0.05 {
		t.Errorf("entry = %+v", table[1])
	}
}
