// Package gcdraw renders bar charts with the renderers of
// github.com/wcharczuk/go-chart. Those work in pixels with y growing
// downwards, just like a chart, so no coordinate flip is needed.
package gcdraw

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/barchart"
)

// DPI used for all renderers so that font sizes in points equal pixels.
const DPI = 72

// Canvas implements barchart.DrawContext on a chart.Renderer. All text is
// drawn in one TrueType font, the font face of the text styles is only
// used for its size.
type Canvas struct {
	r    chart.Renderer
	font *truetype.Font
}

var _ barchart.DrawContext = (*Canvas)(nil)

// New wraps r. A nil font selects the go-chart default font.
func New(r chart.Renderer, font *truetype.Font) (*Canvas, error) {
	if font == nil {
		var err error
		if font, err = chart.GetDefaultFont(); err != nil {
			return nil, fmt.Errorf("gcdraw: default font: %w", err)
		}
	}
	r.SetDPI(DPI)
	return &Canvas{r: r, font: font}, nil
}

// NewPNG returns a canvas of width x height pixels writing PNG images.
func NewPNG(width, height int) (*Canvas, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	return New(r, nil)
}

// NewSVG returns a canvas of width x height pixels writing SVG.
func NewSVG(width, height int) (*Canvas, error) {
	r, err := chart.SVG(width, height)
	if err != nil {
		return nil, err
	}
	return New(r, nil)
}

// WriteTo writes the image to w.
func (c *Canvas) WriteTo(w io.Writer) error {
	return c.r.Save(w)
}

func px(x float64) int { return int(math.Round(x)) }

func toColor(c color.Color) drawing.Color {
	if c == nil {
		return drawing.ColorTransparent
	}
	r, g, b, a := c.RGBA()
	return drawing.ColorFromAlphaMixedRGBA(r, g, b, a)
}

var errNotFinite = errors.New("gcdraw: coordinate not finite")

func finite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errNotFinite
		}
	}
	return nil
}

func (c *Canvas) setText(sty draw.TextStyle) {
	c.r.SetFont(c.font)
	c.r.SetFontSize(float64(sty.Font.Size))
	c.r.SetFontColor(toColor(sty.Color))
}

// TextWidth implements barchart.Measurer.
func (c *Canvas) TextWidth(text string, sty draw.TextStyle) float64 {
	c.setText(sty)
	return float64(c.r.MeasureText(text).Width())
}

// TextHeight implements barchart.Measurer.
func (c *Canvas) TextHeight(sty draw.TextStyle) float64 {
	c.setText(sty)
	return float64(c.r.MeasureText("Xg").Height())
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, sty draw.LineStyle) error {
	if err := finite(x1, y1, x2, y2); err != nil {
		return err
	}
	c.r.ResetStyle()
	c.r.SetStrokeColor(toColor(sty.Color))
	c.r.SetStrokeWidth(float64(sty.Width))
	if len(sty.Dashes) > 0 {
		dashes := make([]float64, len(sty.Dashes))
		for i, d := range sty.Dashes {
			dashes[i] = float64(d)
		}
		c.r.SetStrokeDashArray(dashes)
	}
	c.r.MoveTo(px(x1), px(y1))
	c.r.LineTo(px(x2), px(y2))
	c.r.Stroke()
	return nil
}

func (c *Canvas) DrawRect(x1, y1, x2, y2 float64, sty barchart.BoxStyle) error {
	if err := finite(x1, y1, x2, y2); err != nil {
		return err
	}
	c.r.ResetStyle()
	fill := sty.Fill != nil
	stroke := sty.Border.Color != nil && sty.Border.Width > 0
	if fill {
		c.r.SetFillColor(toColor(sty.Fill))
	}
	if stroke {
		c.r.SetStrokeColor(toColor(sty.Border.Color))
		c.r.SetStrokeWidth(float64(sty.Border.Width))
	}
	c.r.MoveTo(px(x1), px(y1))
	c.r.LineTo(px(x2), px(y1))
	c.r.LineTo(px(x2), px(y2))
	c.r.LineTo(px(x1), px(y2))
	c.r.Close()
	switch {
	case fill && stroke:
		c.r.FillStroke()
	case fill:
		c.r.Fill()
	case stroke:
		c.r.Stroke()
	}
	return nil
}

// DrawText draws text aligned to (x,y) as given by sty.XAlign and
// sty.YAlign. The baseline counts as the bottom of the text.
func (c *Canvas) DrawText(text string, x, y, rotation float64, sty draw.TextStyle) error {
	if err := finite(x, y, rotation); err != nil {
		return err
	}
	c.r.ResetStyle()
	c.setText(sty)
	box := c.r.MeasureText(text)
	x += float64(sty.XAlign) * float64(box.Width())
	y -= float64(sty.YAlign) * float64(box.Height())
	if rotation != 0 {
		c.r.SetTextRotation(rotation * math.Pi / 180)
		defer c.r.ClearTextRotation()
	}
	c.r.Text(text, px(x), px(y))
	return nil
}
