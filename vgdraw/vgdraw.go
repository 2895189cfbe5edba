// Package vgdraw renders bar charts onto gonum.org/v1/plot canvases.
package vgdraw

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vdobler/barchart"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DPI of PNG output: one pixel of the chart is one point on the canvas.
const DPI = 72

// ErrNoOutput is returned by WriteTo for canvases not created by NewPNG
// or NewSVG.
var ErrNoOutput = errors.New("vgdraw: canvas has no output format")

// Canvas implements barchart.DrawContext on a draw.Canvas. Chart pixels
// with y growing downwards are mapped to canvas points with y growing
// upwards.
type Canvas struct {
	draw.Canvas
	out io.WriterTo
}

var _ barchart.DrawContext = (*Canvas)(nil)

// New wraps c.
func New(c vg.CanvasSizer) *Canvas {
	return &Canvas{Canvas: draw.New(c)}
}

// NewPNG returns a canvas of width x height pixels writing PNG images.
func NewPNG(width, height float64) *Canvas {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(DPI),
	)
	c := New(img)
	c.out = vgimg.PngCanvas{Canvas: img}
	return c
}

// NewSVG returns a canvas of width x height pixels writing SVG.
func NewSVG(width, height float64) *Canvas {
	svg := vgsvg.New(vg.Length(width), vg.Length(height))
	c := New(svg)
	c.out = svg
	return c
}

// WriteTo writes the image to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if c.out == nil {
		return 0, ErrNoOutput
	}
	return c.out.WriteTo(w)
}

func (c *Canvas) point(x, y float64) vg.Point {
	return vg.Point{
		X: c.Min.X + vg.Length(x),
		Y: c.Max.Y - vg.Length(y),
	}
}

func finite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("vgdraw: coordinate %g not finite", x)
		}
	}
	return nil
}

// TextWidth implements barchart.Measurer.
func (c *Canvas) TextWidth(text string, sty draw.TextStyle) float64 {
	return float64(sty.Font.Width(text))
}

// TextHeight implements barchart.Measurer.
func (c *Canvas) TextHeight(sty draw.TextStyle) float64 {
	return float64(sty.Font.Extents().Height)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, sty draw.LineStyle) error {
	if err := finite(x1, y1, x2, y2); err != nil {
		return err
	}
	p, q := c.point(x1, y1), c.point(x2, y2)
	c.StrokeLine2(sty, p.X, p.Y, q.X, q.Y)
	return nil
}

func (c *Canvas) DrawRect(x1, y1, x2, y2 float64, sty barchart.BoxStyle) error {
	if err := finite(x1, y1, x2, y2); err != nil {
		return err
	}
	p, q := c.point(x1, y1), c.point(x2, y2)
	r := vg.Rectangle{
		Min: vg.Point{X: vg.Length(math.Min(float64(p.X), float64(q.X))), Y: vg.Length(math.Min(float64(p.Y), float64(q.Y)))},
		Max: vg.Point{X: vg.Length(math.Max(float64(p.X), float64(q.X))), Y: vg.Length(math.Max(float64(p.Y), float64(q.Y)))},
	}
	if sty.Fill != nil {
		c.SetColor(sty.Fill)
		c.Fill(r.Path())
	}
	if sty.Border.Color != nil && sty.Border.Width > 0 {
		c.SetLineStyle(sty.Border)
		c.Stroke(r.Path())
	}
	return nil
}

// DrawText draws text. A positive rotation turns the text clockwise as
// seen on the chart.
func (c *Canvas) DrawText(text string, x, y, rotation float64, sty draw.TextStyle) error {
	if err := finite(x, y, rotation); err != nil {
		return err
	}
	sty.Rotation = -rotation * math.Pi / 180
	c.FillText(sty, c.point(x, y), text)
	return nil
}
