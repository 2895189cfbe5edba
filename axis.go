package barchart

import (
	"math"
)

// Orientation of a bar chart: Vertical bars grow upwards from the bottom
// label axis, Horizontal bars grow to the right from the left label axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Tick is one labeled graduation mark on an axis. Pos is the pixel
// coordinate along the axis: y for vertical, x for horizontal axes.
type Tick struct {
	Pos   float64
	Value float64 // numeric value, index of the label on a label axis
	Label string
}

// ----------------------------------------------------------------------------
// Value axis

// ValueTicks computes the ticks of the value axis a drawn along the left
// edge (Vertical) or the bottom edge (Horizontal) of area. The baseline
// tick at a.Min is not part of the result.
//
// On a vertical axis the pixel step is Height/n, unrounded, and the last
// tick is pinned to area.Top. On a horizontal axis the pixel step is
// ceil(Width/n) and positions are rounded, without pinning.
//
// Labels whose formatting failed carry the raw value; the formatter errors
// are returned as second result for logging.
func ValueTicks(a *Axis, area PlotArea, o Orientation) ([]Tick, []error, error) {
	n, err := a.TickCount()
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, nil
	}

	var step float64
	if o == Horizontal {
		step = math.Ceil(area.Width() / float64(n))
	} else {
		step = area.Height() / float64(n)
	}

	var ferrs []error
	ticks := make([]Tick, 0, n)
	for i := 1; i <= n; i++ {
		var pos float64
		switch {
		case o == Horizontal:
			pos = math.Round(area.Left + float64(i)*step)
		case i == n:
			pos = area.Top
		default:
			pos = area.Bottom - float64(i)*step
		}
		v := a.Min + float64(i)*a.Step
		label, ferr := a.Label(v)
		if ferr != nil {
			ferrs = append(ferrs, ferr)
		}
		ticks = append(ticks, Tick{Pos: pos, Value: v, Label: label})
	}
	return ticks, ferrs, nil
}

// ----------------------------------------------------------------------------
// Label axis

// LabelStep returns the distance between label ticks on an axis of the
// given length carrying n labels. One extra slot is reserved so that bars
// centered on the outermost ticks stay clear of the axis ends.
func LabelStep(length float64, n int) float64 {
	return math.Ceil(length / float64(n+1))
}

// LabelTicks computes the ticks of the categorical axis drawn along the
// bottom edge (Vertical) or the left edge (Horizontal) of area.
func LabelTicks(labels LabelSet, area PlotArea, o Orientation) []Tick {
	if len(labels) == 0 {
		return nil
	}
	length := area.Width()
	if o == Horizontal {
		length = area.Height()
	}
	step := LabelStep(length, len(labels))

	ticks := make([]Tick, len(labels))
	for i, l := range labels {
		var pos float64
		if o == Horizontal {
			pos = area.Bottom - float64(i+1)*step
		} else {
			pos = math.Round(area.Left + float64(i+1)*step)
		}
		ticks[i] = Tick{Pos: pos, Value: float64(i), Label: l}
	}
	return ticks
}

// ----------------------------------------------------------------------------
// Drawing

// drawValueAxis draws grid fills, grid lines, tick marks and labels of the
// value axis. The axis line itself is drawn after the bars.
func drawValueAxis(d *drawer, a *Axis, ticks []Tick, area PlotArea, o Orientation, sty *Style) {
	prev := area.Bottom
	if o == Horizontal {
		prev = area.Left
	}
	for i, t := range ticks {
		fill := sty.Grid.EvenFill
		if i%2 == 0 { // tick index i+1 is odd
			fill = sty.Grid.OddFill
		}
		if o == Horizontal {
			if fill != nil {
				d.rect(prev, area.Top, t.Pos, area.Bottom, BoxStyle{Fill: fill})
			}
			d.line(t.Pos, area.Bottom, t.Pos, area.Top, sty.Grid.Value)
		} else {
			if fill != nil {
				d.rect(area.Left, prev, area.Right, t.Pos, BoxStyle{Fill: fill})
			}
			d.line(area.Left, t.Pos, area.Right, t.Pos, sty.Grid.Value)
		}
		prev = t.Pos
	}
	if !a.Visible {
		return
	}
	drawTicks(d, ticks, area, o == Horizontal, a.TickMarksVisible, &sty.ValueAxis)
}

// drawLabelAxis draws the grid lines, tick marks and labels of
// the label axis.
func drawLabelAxis(d *drawer, ticks []Tick, area PlotArea, o Orientation, sty *Style) {
	for _, t := range ticks {
		if o == Horizontal {
			d.line(area.Left, t.Pos, area.Right, t.Pos, sty.Grid.Label)
		} else {
			d.line(t.Pos, area.Bottom, t.Pos, area.Top, sty.Grid.Label)
		}
	}
	drawTicks(d, ticks, area, o == Vertical, true, &sty.LabelAxis)
}

// drawTicks draws tick marks and labels either below the bottom edge or
// left of the left edge of area.
func drawTicks(d *drawer, ticks []Tick, area PlotArea, bottom, marks bool, sty *AxisStyle) {
	length := float64(sty.Tick.Length)
	if !marks {
		length = 0
	}
	for _, t := range ticks {
		if bottom {
			if marks {
				d.line(t.Pos, area.Bottom, t.Pos, area.Bottom+length, sty.Tick.LineStyle)
			}
			d.text(t.Label, t.Pos, area.Bottom+length+2, 0, sty.Tick.Label)
		} else {
			if marks {
				d.line(area.Left-length, t.Pos, area.Left, t.Pos, sty.Tick.LineStyle)
			}
			d.text(t.Label, area.Left-length-2, t.Pos, 0, sty.Tick.Label)
		}
	}
}

// drawAxisLines draws the lines of both axes along the left and bottom
// edge of area.
func drawAxisLines(d *drawer, a *Axis, area PlotArea, o Orientation, sty *Style) {
	valueLine, labelLine := sty.ValueAxis.Line, sty.LabelAxis.Line
	if !a.Visible || !a.LineVisible {
		valueLine.Width = 0
	}
	left, bottom := valueLine, labelLine
	if o == Horizontal {
		left, bottom = labelLine, valueLine
	}
	d.line(area.Left, area.Bottom, area.Left, area.Top, left)
	d.line(area.Left, area.Bottom, area.Right, area.Bottom, bottom)
}
