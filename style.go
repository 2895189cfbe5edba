package barchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Chart is drawn. It does not influence the
// geometry of axes and bars, only the legend depends on the font size of
// Legend.Label.
type Style struct {
	Background color.Color

	Title draw.TextStyle

	Plot struct {
		Background color.Color
	}

	Grid struct {
		Value    draw.LineStyle // lines at value ticks
		Label    draw.LineStyle // lines at label ticks
		OddFill  color.Color    // band below odd value ticks
		EvenFill color.Color
	}

	ValueAxis AxisStyle
	LabelAxis AxisStyle

	Bar struct {
		Border    draw.LineStyle
		ItemLabel draw.TextStyle
		// ItemLabelPad is the distance between the tip of a bar
		// and its item label.
		ItemLabelPad vg.Length
		// Shade darkens the top and side faces of 3D bars, 0 to 1.
		Shade float64
	}

	Legend struct {
		Label  draw.TextStyle
		Margin vg.Length // distance between swatch and label
		// KeyColored draws the key text in the series color.
		KeyColored bool
	}
}

// AxisStyle describes how one axis is drawn.
type AxisStyle struct {
	Line draw.LineStyle
	Tick struct {
		draw.LineStyle
		Length vg.Length
		Label  draw.TextStyle
	}
}

// DefaultStyle returns a Style with a light plot background and black
// text. The baseFontSize is the font size of tick labels, the title is a
// bit bigger.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.4))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	labelFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Plot.Background = color.Gray16{0xf4f4}

	s.Grid.Value.Color = color.Gray16{0xcccc}
	s.Grid.Value.Width = vg.Length(1)
	s.Grid.Label.Color = nil
	s.Grid.Label.Width = 0
	s.Grid.OddFill = nil
	s.Grid.EvenFill = nil

	for _, a := range []*AxisStyle{&s.ValueAxis, &s.LabelAxis} {
		a.Line.Color = color.Black
		a.Line.Width = vg.Length(1)
		a.Tick.Color = color.Gray16{0x1111}
		a.Tick.Width = vg.Length(1)
		a.Tick.Length = vg.Length(5)
		a.Tick.Label.Color = color.Black
		a.Tick.Label.Font = baseFont
	}
	s.applyOrientation(Vertical)

	s.Bar.Border.Width = 0
	s.Bar.ItemLabel.Color = color.RGBA{72, 61, 139, 0xff}
	s.Bar.ItemLabel.Font = labelFont
	s.Bar.ItemLabelPad = vg.Length(3)
	s.Bar.Shade = 0.3

	s.Legend.Label.Color = color.Black
	s.Legend.Label.Font = baseFont
	s.Legend.Label.XAlign = draw.XLeft
	s.Legend.Label.YAlign = draw.YBottom
	s.Legend.Margin = vg.Length(5)
	s.Legend.KeyColored = true

	return s
}

// applyOrientation sets the text alignments which depend on the chart
// orientation: Tick labels of the left axis are right aligned, those of
// the bottom axis centered below the tick.
func (s *Style) applyOrientation(o Orientation) {
	left, bottom := &s.ValueAxis, &s.LabelAxis
	itemX, itemY := draw.XCenter, draw.YBottom
	if o == Horizontal {
		left, bottom = &s.LabelAxis, &s.ValueAxis
		itemX, itemY = draw.XLeft, draw.YCenter
	}
	left.Tick.Label.XAlign = draw.XRight
	left.Tick.Label.YAlign = draw.YCenter
	bottom.Tick.Label.XAlign = draw.XCenter
	bottom.Tick.Label.YAlign = draw.YTop
	s.Bar.ItemLabel.XAlign = itemX
	s.Bar.ItemLabel.YAlign = itemY
}

// shade darkens c by f (0 = unchanged, 1 = black).
func shade(c color.Color, f float64) color.Color {
	if c == nil {
		return nil
	}
	f = 1 - math.Max(0, math.Min(1, f))
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(a),
	}
}
