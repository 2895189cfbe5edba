package gcdraw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/barchart"
	"github.com/vdobler/barchart/data"
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
	c.SetItemLabelsVisible(true)
	return c
}

func TestRenderPNG(t *testing.T) {
	for _, kind := range []barchart.Kind{barchart.Flat, barchart.ThreeD, barchart.Stacked} {
		for _, o := range []barchart.Orientation{barchart.Vertical, barchart.Horizontal} {
			canvas, err := NewPNG(320, 240)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := testChart(kind, o).Render(canvas); err != nil {
				t.Fatalf("%s %s: unexpected error %v", kind, o, err)
			}
			var buf bytes.Buffer
			if err := canvas.WriteTo(&buf); err != nil {
				t.Fatalf("%s %s: write failed: %v", kind, o, err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
				t.Errorf("%s %s: output is not a PNG", kind, o)
			}
		}
	}
}

func TestRenderSVG(t *testing.T) {
	canvas, err := NewSVG(320, 240)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := testChart(barchart.Stacked, barchart.Horizontal).Render(canvas); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var buf bytes.Buffer
	if err := canvas.WriteTo(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG:\n%.200s", buf.String())
	}
}

func TestNonFinite(t *testing.T) {
	c, err := NewPNG(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.DrawLine(0, math.NaN(), 10, 10, draw.LineStyle{Width: 1}); err == nil {
		t.Error("NaN line accepted")
	}
	if err := c.DrawRect(0, 0, math.Inf(-1), 10, barchart.BoxStyle{}); err == nil {
		t.Error("infinite rect accepted")
	}
	if err := c.DrawText("x", 0, 0, math.NaN(), draw.TextStyle{}); err == nil {
		t.Error("NaN rotation accepted")
	}
}

func TestMeasure(t *testing.T) {
	c, err := NewPNG(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	sty := draw.TextStyle{Font: vg.Font{Size: 12}}
	short, long := c.TextWidth("ab", sty), c.TextWidth("abcd", sty)
	if !(short > 0 && long > short) {
		t.Errorf("widths %g, %g", short, long)
	}
	if h := c.TextHeight(sty); !(h > 0) {
		t.Errorf("height %g", h)
	}
}
