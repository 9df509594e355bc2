package chart

import (
	"errors"
	"fmt"
	"math"
	"sort"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	"github.com/vicanso/go-charts/v2"
)

// rect is a tile of the treemap layout, in pixel coordinates.
type rect struct{ x, y, w, h float64 }

// Heatmap renders the table as a squarified treemap: tile area proportional
// to market capitalization, tile color on a red-white-blue ramp symmetric
// around a zero return.
func Heatmap(table wizard.HeatmapTable, width, height int) ([]byte, error) {
	if len(table) == 0 {
		return nil, errors.New("empty heatmap table")
	}

	// Squarify wants values in descending order.
	entries := make(wizard.HeatmapTable, len(table))
	copy(entries, table)
	sort.Slice(entries, func(i, j int) bool { return entries[i].MarketCap > entries[j].MarketCap })

	const titleHeight = 30
	bounds := rect{x: 0, y: titleHeight, w: float64(width), h: float64(height - titleHeight)}

	var total float64
	for _, e := range entries {
		if e.MarketCap <= 0 {
			return nil, fmt.Errorf("market cap for %s must be positive", e.Ticker)
		}
		total += e.MarketCap
	}
	areas := make([]float64, len(entries))
	for i, e := range entries {
		areas[i] = e.MarketCap / total * bounds.w * bounds.h
	}
	tiles := squarify(areas, bounds)

	painter, err := charts.NewPainter(charts.PainterOptions{
		Type:   charts.ChartOutputPNG,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return nil, err
	}
	font, _ := charts.GetDefaultFont()

	white := charts.Color{R: 255, G: 255, B: 255, A: 255}
	dark := charts.Color{R: 50, G: 50, B: 50, A: 255}
	painter.SetBackground(width, height, white)

	painter.OverrideTextStyle(charts.Style{FontColor: dark, FontSize: 14, Font: font})
	painter.Text("Market Returns Heatmap", 10, 20)

	bound := entries.MaxAbsReturn()
	for i, tile := range tiles {
		e := entries[i]
		painter.OverrideDrawingStyle(charts.Style{
			FillColor:   rampColor(e.Returns, bound),
			StrokeColor: white,
			StrokeWidth: 1,
		})
		fillRect(painter, tile)

		// Skip labels on tiles too small to hold them.
		if tile.w < 40 || tile.h < 26 {
			continue
		}
		painter.OverrideTextStyle(charts.Style{FontColor: dark, FontSize: 8, Font: font})
		painter.Text(e.Ticker, int(tile.x)+4, int(tile.y)+12)
		painter.Text(fmt.Sprintf("%+.1f%%", e.Returns*100), int(tile.x)+4, int(tile.y)+24)
	}

	return painter.Bytes()
}

// fillRect draws one filled tile.
func fillRect(p *charts.Painter, r rect) {
	p.MoveTo(int(r.x), int(r.y))
	p.LineTo(int(r.x+r.w), int(r.y))
	p.LineTo(int(r.x+r.w), int(r.y+r.h))
	p.LineTo(int(r.x), int(r.y+r.h))
	p.Close()
	p.FillStroke()
}

// rampColor maps a return in [-bound, bound] onto a red-white-blue ramp:
// losses shade to red, gains to blue, zero is white. Alpha is slightly
// reduced so tile borders stay visible.
func rampColor(ret, bound float64) charts.Color {
	white := charts.Color{R: 255, G: 255, B: 255, A: 204}
	if bound == 0 {
		return white
	}
	t := ret / bound
	if t > 1 {
		t = 1
	} else if t < -1 {
		t = -1
	}
	blend := func(from, to charts.Color, t float64) charts.Color {
		return charts.Color{
			R: uint8(float64(from.R) + t*(float64(to.R)-float64(from.R))),
			G: uint8(float64(from.G) + t*(float64(to.G)-float64(from.G))),
			B: uint8(float64(from.B) + t*(float64(to.B)-float64(from.B))),
			A: 204,
		}
	}
	if t < 0 {
		red := charts.Color{R: 178, G: 24, B: 43, A: 204}
		return blend(white, red, -t)
	}
	blue := charts.Color{R: 33, G: 102, B: 172, A: 204}
	return blend(white, blue, t)
}

// squarify lays out areas (descending, summing to the bounds area) into
// tiles whose aspect ratios stay as close to 1 as possible. This is the
// classic squarified treemap algorithm: grow a row along the short side of
// the free rectangle while the worst aspect ratio keeps improving, then
// freeze the row and recurse into the remaining space.
func squarify(areas []float64, free rect) []rect {
	out := make([]rect, len(areas))
	idx := 0
	for idx < len(areas) {
		short := math.Min(free.w, free.h)
		next := idx + 1
		worst := worstRatio(areas[idx:next], short)
		for next < len(areas) {
			if r := worstRatio(areas[idx:next+1], short); r <= worst {
				worst = r
				next++
			} else {
				break
			}
		}
		free = layRow(out[idx:next], areas[idx:next], free)
		idx = next
	}
	return out
}

// worstRatio returns the worst tile aspect ratio of a row laid along a
// side of the given length.
func worstRatio(row []float64, side float64) float64 {
	var sum float64
	max, min := row[0], row[0]
	for _, a := range row {
		sum += a
		if a > max {
			max = a
		}
		if a < min {
			min = a
		}
	}
	s2, w2 := sum*sum, side*side
	return math.Max(w2*max/s2, s2/(w2*min))
}

// layRow slices the row off the free rectangle, filling dst with the tile
// coordinates, and returns the remaining free rectangle.
func layRow(dst []rect, row []float64, free rect) rect {
	var sum float64
	for _, a := range row {
		sum += a
	}
	if free.w >= free.h {
		// column on the left
		w := sum / free.h
		y := free.y
		for i, a := range row {
			h := a / w
			dst[i] = rect{x: free.x, y: y, w: w, h: h}
			y += h
		}
		return rect{x: free.x + w, y: free.y, w: free.w - w, h: free.h}
	}
	// row on the top
	h := sum / free.w
	x := free.x
	for i, a := range row {
		w := a / h
		dst[i] = rect{x: x, y: free.y, w: w, h: h}
		x += w
	}
	return rect{x: free.x, y: free.y + h, w: free.w, h: free.h - h}
}
