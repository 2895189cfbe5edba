package barchart

import (
	"image/color"
	"strconv"
	"testing"

	"github.com/vdobler/barchart/data"
	"github.com/vdobler/barchart/geom"
	"gonum.org/v1/plot/vg/draw"
)

// fixedMetrics measures every rune w wide and every line h high.
type fixedMetrics struct{ w, h float64 }

func (m fixedMetrics) TextWidth(text string, _ draw.TextStyle) float64 {
	return m.w * float64(len([]rune(text)))
}
func (m fixedMetrics) TextHeight(draw.TextStyle) float64 { return m.h }

func keys(names ...string) []data.Series {
	series := make([]data.Series, len(names))
	for i, n := range names {
		series[i] = data.Series{Key: n, Color: color.Gray{uint8(40 * i)}}
	}
	return series
}

var legendModeTests = []struct {
	align Align
	want  LegendMode
}{
	{AlignCenter, WrapRows},
	{AlignRight, WrapRows},
	{AlignLeft, SingleColumn},
}

func TestLegendModeFor(t *testing.T) {
	for i, tc := range legendModeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := LegendModeFor(tc.align); got != tc.want {
				t.Errorf("LegendModeFor(%s) = %s, want %s", tc.align, got, tc.want)
			}
		})
	}
}

func TestLegendWrapRows(t *testing.T) {
	m := fixedMetrics{w: 6, h: 10}
	area := PlotArea{Left: 50, Top: 100, Right: 350, Bottom: 400}
	ll := LegendLayout{Mode: WrapRows, Margin: 5}

	// "Google" is 36 wide: entry advances 20+36+10 = 66.
	entries := ll.Layout(keys("Google", "Baidu", "Bing"), area, 0, m)
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	first := entries[0]
	if want := (geom.Rect{X0: 50, Y0: 80, X1: 70, Y1: 90}); first.Swatch != want {
		t.Errorf("first swatch = %v, want %v", first.Swatch, want)
	}
	if want := (Point{X: 75, Y: 90}); first.LabelPos != want {
		t.Errorf("first label at %v, want %v", first.LabelPos, want)
	}
	if got := entries[1].Swatch.X0; got != 116 {
		t.Errorf("second swatch starts at %g, want 116", got)
	}
	if rows := LegendRows(entries); rows != 1 {
		t.Errorf("got %d rows, want 1", rows)
	}
}

func TestLegendWrapsOnNarrowPlot(t *testing.T) {
	m := fixedMetrics{w: 6, h: 10}
	area := PlotArea{Left: 0, Top: 100, Right: 150, Bottom: 400}
	ll := LegendLayout{Mode: WrapRows, Margin: 5}

	entries := ll.Layout(keys("Alpha", "Bravo", "Charlie", "Delta", "Echo"), area, 0, m)
	rows := LegendRows(entries)
	if rows < 2 {
		t.Fatalf("got %d rows, want at least 2", rows)
	}
	for i, e := range entries {
		if e.Swatch.X0 < area.Left {
			t.Errorf("entry %d starts left of plot: %v", i, e.Swatch)
		}
		if i > 0 && e.Row == entries[i-1].Row+1 {
			if e.Swatch.X0 != area.Left {
				t.Errorf("wrapped entry %d not at left edge: %v", i, e.Swatch)
			}
			if dy := e.Swatch.Y0 - entries[i-1].Swatch.Y0; dy != 20 {
				t.Errorf("row advance %g, want 20", dy)
			}
		}
	}
}

func TestLegendWideEntryKeepsRow(t *testing.T) {
	m := fixedMetrics{w: 6, h: 10}
	area := PlotArea{Left: 0, Top: 100, Right: 50, Bottom: 400}
	ll := LegendLayout{Mode: WrapRows, Margin: 5}

	// Every key is wider than the plot: each one starts its own row and
	// no row is left empty.
	entries := ll.Layout(keys("Alphabet", "Bravo", "Charlie"), area, 0, m)
	for i, e := range entries {
		if e.Row != i || e.Swatch.X0 != area.Left {
			t.Errorf("entry %d in row %d at x=%g, want row %d at x=0", i, e.Row, e.Swatch.X0, i)
		}
		if want := area.Top - 10 + float64(20*i); e.Swatch.Y1 != want {
			t.Errorf("entry %d swatch bottom %g, want %g", i, e.Swatch.Y1, want)
		}
	}
}

func TestLegendSingleColumn(t *testing.T) {
	m := fixedMetrics{w: 6, h: 12}
	area := PlotArea{Left: 50, Top: 100, Right: 350, Bottom: 400}
	ll := LegendLayout{Mode: SingleColumn, Margin: 4}

	entries := ll.Layout(keys("a", "b", "c", "d", "e", "f", "g"), area, 10, m)
	if rows := LegendRows(entries); rows != 7 {
		t.Errorf("got %d rows, want 7", rows)
	}
	for i, e := range entries {
		y := 10 + 12 + 12*float64(i)
		want := geom.Rect{X0: 326, Y0: y, X1: 350, Y1: y + 12}
		if e.Swatch != want {
			t.Errorf("entry %d swatch = %v, want %v", i, e.Swatch, want)
		}
		if e.LabelPos != (Point{X: 322, Y: y + 12}) {
			t.Errorf("entry %d label at %v", i, e.LabelPos)
		}
	}
}

func TestLegendEmpty(t *testing.T) {
	ll := LegendLayout{Mode: WrapRows}
	if entries := ll.Layout(nil, testArea, 0, fixedMetrics{6, 10}); entries != nil {
		t.Errorf("got %v", entries)
	}
	if LegendRows(nil) != 0 {
		t.Error("rows of empty legend")
	}
}

func TestParseAlign(t *testing.T) {
	for _, a := range []Align{AlignCenter, AlignLeft, AlignRight} {
		got, err := ParseAlign(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlign(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAlign("justify"); Field(err) != "titleAlign" {
		t.Errorf("bad alignment: got %v", err)
	}
}
