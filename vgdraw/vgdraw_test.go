package vgdraw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/vdobler/barchart"
	"github.com/vdobler/barchart/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func testChart(kind barchart.Kind, o barchart.Orientation) *barchart.Chart {
	c := barchart.New(kind, o)
	c.SetSize(320, 240)
	c.SetPadding(50, 20, 30, 40)
	c.SetTitle("Test")
	c.SetAxisRange(0, 100)
	c.SetAxisStep(25)
	c.SetLabels([]string{"A", "B"})
	c.SetDataSource([]data.Series{
		{Key: "one", Values: []float64{40, 60}},
		{Key: "two", Values: []float64{30, 20}},
	})
	return c
}

func TestRenderPNG(t *testing.T) {
	for _, kind := range []barchart.Kind{barchart.Flat, barchart.ThreeD, barchart.Stacked} {
		for _, o := range []barchart.Orientation{barchart.Vertical, barchart.Horizontal} {
			canvas := NewPNG(320, 240)
			if _, err := testChart(kind, o).Render(canvas); err != nil {
				t.Fatalf("%s %s: unexpected error %v", kind, o, err)
			}
			var buf bytes.Buffer
			if _, err := canvas.WriteTo(&buf); err != nil {
				t.Fatalf("%s %s: write failed: %v", kind, o, err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
				t.Errorf("%s %s: output is not a PNG", kind, o)
			}
		}
	}
}

func TestRenderSVG(t *testing.T) {
	canvas := NewSVG(320, 240)
	if _, err := testChart(barchart.Flat, barchart.Vertical).Render(canvas); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG:\n%.200s", buf.String())
	}
}

func TestNoOutput(t *testing.T) {
	c := New(vgimg.New(100, 100))
	if _, err := c.WriteTo(&bytes.Buffer{}); err != ErrNoOutput {
		t.Errorf("got %v", err)
	}
}

func TestNonFinite(t *testing.T) {
	c := NewPNG(100, 100)
	sty := draw.LineStyle{Color: nil, Width: 1}
	if err := c.DrawLine(0, math.NaN(), 10, 10, sty); err == nil {
		t.Error("NaN line accepted")
	}
	if err := c.DrawRect(0, 0, math.Inf(1), 10, barchart.BoxStyle{}); err == nil {
		t.Error("infinite rect accepted")
	}
	if err := c.DrawText("x", math.NaN(), 0, 0, draw.TextStyle{}); err == nil {
		t.Error("NaN text accepted")
	}
}

func TestMeasure(t *testing.T) {
	font, err := vg.MakeFont("Helvetica", 12)
	if err != nil {
		t.Fatalf("no font: %v", err)
	}
	c := NewPNG(100, 100)
	sty := draw.TextStyle{Font: font}
	short, long := c.TextWidth("ab", sty), c.TextWidth("abcd", sty)
	if !(short > 0 && long > short) {
		t.Errorf("widths %g, %g", short, long)
	}
	if h := c.TextHeight(sty); !(h > 0) {
		t.Errorf("height %g", h)
	}
}

func TestPointFlipsY(t *testing.T) {
	c := NewPNG(200, 100)
	if p := c.point(10, 0); p.X != 10 || p.Y != 100 {
		t.Errorf("top left maps to %v", p)
	}
	if p := c.point(0, 100); p.Y != 0 {
		t.Errorf("bottom maps to %v", p)
	}
}
