package barchart

import (
	"math"

	"github.com/vdobler/barchart/geom"
)

// ----------------------------------------------------------------------------
// PlotArea

// PlotArea is the pixel rectangle inside the chart padding where data is
// drawn. Top < Bottom and Left < Right for a valid area.
type PlotArea struct {
	Left, Top, Right, Bottom float64
}

func (p PlotArea) Width() float64  { return p.Right - p.Left }
func (p PlotArea) Height() float64 { return p.Bottom - p.Top }

// Rect returns p as a rectangle.
func (p PlotArea) Rect() geom.Rect {
	return geom.Rect{X0: p.Left, Y0: p.Top, X1: p.Right, Y1: p.Bottom}
}

// Validate reports an inverted, empty or non-finite plot area.
func (p PlotArea) Validate() error {
	if !p.Rect().Finite() {
		return configError("plotSize", nil, "plot area %v is not finite", p)
	}
	if !(p.Left < p.Right) || !(p.Top < p.Bottom) {
		return configError("padding", nil,
			"padding leaves no plot area: left=%g right=%g top=%g bottom=%g",
			p.Left, p.Right, p.Top, p.Bottom)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Frame

// Padding is the space between the chart border and its plot area.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// A Frame positions a chart on the drawing surface and resolves its plot
// area from the padding.
type Frame struct {
	X, Y          float64 // top-left corner of the chart
	Width, Height float64
	Padding       Padding
}

// Chart returns the full chart rectangle.
func (f Frame) Chart() PlotArea {
	return PlotArea{Left: f.X, Top: f.Y, Right: f.X + f.Width, Bottom: f.Y + f.Height}
}

// PlotArea returns the chart rectangle shrunk by the padding.
func (f Frame) PlotArea() PlotArea {
	c := f.Chart()
	return PlotArea{
		Left:   c.Left + f.Padding.Left,
		Top:    c.Top + f.Padding.Top,
		Right:  c.Right - f.Padding.Right,
		Bottom: c.Bottom - f.Padding.Bottom,
	}
}

// Validate checks chart size and the resulting plot area.
func (f Frame) Validate() error {
	if !(f.Width > 0) || !(f.Height > 0) || math.IsInf(f.Width, 0) || math.IsInf(f.Height, 0) {
		return configError("plotSize", nil, "chart size %gx%g must be positive", f.Width, f.Height)
	}
	return f.PlotArea().Validate()
}

// titlePos returns the anchor of the title inside the top padding.
func (f Frame) titlePos(align Align) Point {
	c, p := f.Chart(), f.PlotArea()
	pt := Point{Y: c.Top + 2}
	switch align {
	case AlignLeft:
		pt.X = p.Left
	case AlignRight:
		pt.X = p.Right
	default:
		pt.X = (c.Left + c.Right) / 2
	}
	return pt
}
