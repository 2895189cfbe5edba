package barchart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/vdobler/barchart/data"
	"github.com/vdobler/barchart/geom"
	"gonum.org/v1/plot/vg/draw"
)

// Align is the horizontal alignment of the chart title. It also selects
// the legend mode.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// ParseAlign is the inverse of Align.String, ignoring case.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "center", "":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return AlignCenter, configError("titleAlign", nil, "unknown alignment %q", s)
}

// LegendMode determines how the legend entries are arranged.
type LegendMode int

const (
	// WrapRows places entries left to right above the plot area and
	// starts a new row if the plot width is exhausted.
	WrapRows LegendMode = iota
	// SingleColumn stacks entries top down at the right edge of the
	// plot area. It never wraps.
	SingleColumn
)

func (m LegendMode) String() string {
	if m == SingleColumn {
		return "single-column"
	}
	return "wrap-rows"
}

// LegendModeFor returns the legend mode used together with a title
// aligned as a: a left aligned title leaves room for a right anchored
// column, all other alignments use wrapping rows.
func LegendModeFor(a Align) LegendMode {
	if a == AlignLeft {
		return SingleColumn
	}
	return WrapRows
}

// LegendEntry is the laid out legend entry of one series.
type LegendEntry struct {
	Key    string
	Color  color.Color
	Swatch geom.Rect
	// LabelPos is the anchor of the key text: the bottom left corner in
	// WrapRows mode, the bottom right corner in SingleColumn mode.
	LabelPos Point
	Row      int
}

// LegendLayout arranges the keys of the series.
type LegendLayout struct {
	Mode   LegendMode
	Label  draw.TextStyle // used to measure the keys
	Margin float64        // distance between swatch and key text
}

// Layout computes one entry per series. The swatch is twice as wide as the
// text is high. Series colors are taken as is, nil colors stay nil.
func (l LegendLayout) Layout(series []data.Series, area PlotArea, chartTop float64, m Measurer) []LegendEntry {
	if len(series) == 0 {
		return nil
	}
	h := m.TextHeight(l.Label)
	swatchW := 2 * h
	entries := make([]LegendEntry, 0, len(series))

	if l.Mode == SingleColumn {
		x, y := area.Right, chartTop+h
		for i, s := range series {
			entries = append(entries, LegendEntry{
				Key:      s.Key,
				Color:    s.Color,
				Swatch:   geom.Rect{X0: x - swatchW, Y0: y, X1: x, Y1: y + h},
				LabelPos: Point{X: x - swatchW - l.Margin, Y: y + h},
				Row:      i,
			})
			y += h
		}
		return entries
	}

	x, y := area.Left, area.Top-h
	row := 0
	for _, s := range series {
		w := m.TextWidth(s.Key, l.Label)
		if x+2*swatchW+w > area.Right && x > area.Left {
			x = area.Left
			y += 2 * h
			row++
		}
		entries = append(entries, LegendEntry{
			Key:      s.Key,
			Color:    s.Color,
			Swatch:   geom.Rect{X0: x, Y0: y - h, X1: x + swatchW, Y1: y},
			LabelPos: Point{X: x + swatchW + l.Margin, Y: y},
			Row:      row,
		})
		x += swatchW + w + 2*l.Margin
	}
	return entries
}

// LegendRows returns the number of rows used by entries.
func LegendRows(entries []LegendEntry) int {
	rows := 0
	for _, e := range entries {
		if e.Row+1 > rows {
			rows = e.Row + 1
		}
	}
	return rows
}

func drawLegend(d *drawer, entries []LegendEntry, mode LegendMode, sty *Style) {
	label := sty.Legend.Label
	label.YAlign = draw.YBottom
	label.XAlign = draw.XLeft
	if mode == SingleColumn {
		label.XAlign = draw.XRight
	}
	for _, e := range entries {
		r := e.Swatch
		d.rect(r.X0, r.Y0, r.X1, r.Y1, BoxStyle{Fill: e.Color})
		if sty.Legend.KeyColored && e.Color != nil {
			label.Color = e.Color
		} else {
			label.Color = sty.Legend.Label.Color
		}
		d.text(e.Key, e.LabelPos.X, e.LabelPos.Y, 0, label)
	}
}
