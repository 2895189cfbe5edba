package barchart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vdobler/barchart/geom"
	"gonum.org/v1/plot/vg/draw"
)

// Kind selects how bars look and how the bars of several series sharing
// one label are arranged.
type Kind int

const (
	Flat    Kind = iota // plain rectangles side by side
	ThreeD              // side by side with a receding top and side face
	Stacked             // all series stacked in one bar per label
)

func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case ThreeD:
		return "3d"
	case Stacked:
		return "stacked"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{Flat, ThreeD, Stacked} {
		if k.String() == s {
			return k, nil
		}
	}
	return Flat, configError("kind", nil, "unknown chart kind %q", s)
}

// Bar is one laid out bar of one series at one label slot.
type Bar struct {
	geom.Slot

	Key   string
	Color color.Color
	Rect  geom.Rect // pixel rectangle, corner 0 at the baseline side

	Label    string // item label, empty if item labels are hidden
	LabelPos Point
}

// A BarRenderer determines the thickness of bars and draws them. The bar
// layout itself does not depend on the renderer.
type BarRenderer interface {
	// ThicknessAndMargin returns bar thickness and inter-bar margin for
	// seriesCount bars sharing one tick step. They must satisfy
	//     n*thickness + (n-1)*margin <= tickStep
	// where n is 1 for geom.Stack and seriesCount otherwise.
	ThicknessAndMargin(tickStep float64, seriesCount int) (thickness, margin float64)

	// Position tells how the bars of different series are arranged.
	Position() geom.Position

	// DrawBar draws one bar.
	DrawBar(dc DrawContext, bar Bar, sty *Style) error
}

// NewBarRenderer returns the default renderer for k.
func NewBarRenderer(k Kind) BarRenderer {
	switch k {
	case ThreeD:
		return ThreeDBar{}
	case Stacked:
		return StackedBar{}
	}
	return FlatBar{}
}

func spacingOrDefault(sp geom.Spacing) geom.Spacing {
	if sp == (geom.Spacing{}) {
		return geom.DefaultSpacing
	}
	return sp
}

func drawFlat(dc DrawContext, bar Bar, sty *Style) error {
	r := bar.Rect
	return dc.DrawRect(r.X0, r.Y0, r.X1, r.Y1, BoxStyle{Fill: bar.Color, Border: sty.Bar.Border})
}

// ----------------------------------------------------------------------------
// FlatBar

// FlatBar draws plain rectangles.
type FlatBar struct {
	Spacing geom.Spacing // zero value means geom.DefaultSpacing
}

func (b FlatBar) ThicknessAndMargin(tickStep float64, seriesCount int) (float64, float64) {
	return spacingOrDefault(b.Spacing).ThicknessAndMargin(tickStep, seriesCount)
}

func (FlatBar) Position() geom.Position { return geom.Dodge }

func (FlatBar) DrawBar(dc DrawContext, bar Bar, sty *Style) error {
	return drawFlat(dc, bar, sty)
}

// ----------------------------------------------------------------------------
// ThreeDBar

// ThreeDBar draws a front rectangle plus a top and a right face receding
// at 45 degrees. The faces are drawn into the margin to the next bar.
type ThreeDBar struct {
	Spacing geom.Spacing // zero value means geom.DefaultSpacing

	// DepthRatio is the depth of the faces relative to the bar
	// thickness. Zero means 0.25.
	DepthRatio float64
}

func (b ThreeDBar) ratio() float64 {
	if b.DepthRatio <= 0 || math.IsNaN(b.DepthRatio) {
		return 0.25
	}
	return b.DepthRatio
}

// ThicknessAndMargin shrinks the flat thickness so that the receding faces
// fit into the enlarged margin.
func (b ThreeDBar) ThicknessAndMargin(tickStep float64, seriesCount int) (float64, float64) {
	t, m := spacingOrDefault(b.Spacing).ThicknessAndMargin(tickStep, seriesCount)
	front := math.Floor(t / (1 + b.ratio()))
	return front, m + t - front
}

func (ThreeDBar) Position() geom.Position { return geom.Dodge }

// Depth returns the depth of the faces of a bar of the given thickness.
func (b ThreeDBar) Depth(thickness float64) float64 {
	return math.Floor(thickness * b.ratio())
}

func (b ThreeDBar) DrawBar(dc DrawContext, bar Bar, sty *Style) error {
	if err := drawFlat(dc, bar, sty); err != nil {
		return err
	}
	d := b.Depth(bar.Thickness())
	if d < 1 {
		return nil
	}
	r := bar.Rect.Canonic()
	face := draw.LineStyle{Color: shade(bar.Color, sty.Bar.Shade), Width: 1}
	if face.Color == nil {
		return nil
	}
	for k := 0.0; k <= d; k++ {
		// top face
		if err := dc.DrawLine(r.X0+k, r.Y0-k, r.X1+k, r.Y0-k, face); err != nil {
			return err
		}
		// right face
		if err := dc.DrawLine(r.X1+k, r.Y0-k, r.X1+k, r.Y1-k, face); err != nil {
			return err
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// StackedBar

// StackedBar draws all series of one label into a single stacked bar.
type StackedBar struct {
	Spacing geom.Spacing // zero value means geom.DefaultSpacing

	// TotalLabelVisible adds a label with the sum of the stack on top.
	TotalLabelVisible bool
}

func (b StackedBar) ThicknessAndMargin(tickStep float64, seriesCount int) (float64, float64) {
	if seriesCount <= 0 {
		return 0, 0
	}
	return spacingOrDefault(b.Spacing).ThicknessAndMargin(tickStep, 1)
}

func (StackedBar) Position() geom.Position { return geom.Stack }

func (StackedBar) DrawBar(dc DrawContext, bar Bar, sty *Style) error {
	return drawFlat(dc, bar, sty)
}
