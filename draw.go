package barchart

import (
	"image/color"

	"gonum.org/v1/plot/vg/draw"
)

// Measurer measures rendered text.
type Measurer interface {
	// TextWidth returns the width of text drawn in sty.
	TextWidth(text string, sty draw.TextStyle) float64

	// TextHeight returns the height of one line of text in sty.
	TextHeight(sty draw.TextStyle) float64
}

// DrawContext is the drawing capability a chart renders onto. All
// coordinates are pixels with the origin in the top-left corner and y
// growing downwards. A chart borrows a DrawContext for one Render call and
// never keeps it.
type DrawContext interface {
	Measurer

	DrawLine(x1, y1, x2, y2 float64, sty draw.LineStyle) error
	DrawRect(x1, y1, x2, y2 float64, sty BoxStyle) error

	// DrawText draws text anchored at (x,y) rotated by rotation degrees.
	// Alignment relative to the anchor is taken from sty.
	DrawText(text string, x, y, rotation float64, sty draw.TextStyle) error
}

// BoxStyle combines a fill color with a line style for the border.
// A nil Fill or a zero border width suppresses the respective part.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// drawer wraps a DrawContext and records the first failure so that a
// sequence of drawing calls can be checked once.
type drawer struct {
	dc  DrawContext
	err error
}

func (d *drawer) line(x1, y1, x2, y2 float64, sty draw.LineStyle) {
	if d.err != nil || sty.Color == nil || sty.Width <= 0 {
		return
	}
	if err := d.dc.DrawLine(x1, y1, x2, y2, sty); err != nil {
		d.err = drawError(err, "line (%g,%g)-(%g,%g)", x1, y1, x2, y2)
	}
}

func (d *drawer) rect(x1, y1, x2, y2 float64, sty BoxStyle) {
	if d.err != nil || (sty.Fill == nil && (sty.Border.Color == nil || sty.Border.Width <= 0)) {
		return
	}
	if err := d.dc.DrawRect(x1, y1, x2, y2, sty); err != nil {
		d.err = drawError(err, "rect (%g,%g)-(%g,%g)", x1, y1, x2, y2)
	}
}

func (d *drawer) text(s string, x, y, rot float64, sty draw.TextStyle) {
	if d.err != nil || s == "" {
		return
	}
	if err := d.dc.DrawText(s, x, y, rot, sty); err != nil {
		d.err = drawError(err, "text %q at (%g,%g)", s, x, y)
	}
}
