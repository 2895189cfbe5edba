// Package geom computes the geometry of bars in a categorical bar chart.
//
// All computations happen in axis coordinates: a position along the label
// axis is the distance from the start of that axis, an extent along the
// value axis is the distance from the value axis baseline. Mapping these
// to pixels depends on the chart orientation and is left to the caller.
//
// The layout is independent of how a bar looks (flat, 3D-styled, ...): the
// bar thickness and the margin between the bars sharing one label slot are
// inputs to a Layout, typically produced by a Spacing.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Position

// Position determines how bars of different series sharing one label slot
// are placed relative to each other.
type Position int

const (
	// Dodge places the bars of the different series side by side.
	Dodge Position = iota
	// Stack places all series in one bar, stacked on top of each other.
	Stack
)

func (p Position) String() string {
	switch p {
	case Dodge:
		return "dodge"
	case Stack:
		return "stack"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ----------------------------------------------------------------------------
// Spacing

// Spacing controls how much of a label slot is covered by bars.
type Spacing struct {
	// TickSpace is the fraction of the tick step used by all bars at one
	// label including the margins between them.
	TickSpace float64
	// InnerMargin is the fraction of the used space which goes into the
	// margins between bars.
	InnerMargin float64
}

// DefaultSpacing leaves 30% of each tick step empty and spends 20% of the
// remainder on the margins between bars.
var DefaultSpacing = Spacing{TickSpace: 0.7, InnerMargin: 0.2}

// ThicknessAndMargin returns the thickness of each of n bars and the margin
// between two neighbouring bars if they have to share tickStep.
// All results are whole pixels and
//
//	n*thickness + (n-1)*margin <= tickStep
//
// holds for all n >= 1. For n <= 0 both results are 0.
func (sp Spacing) ThicknessAndMargin(tickStep float64, n int) (thickness, margin float64) {
	if n <= 0 || tickStep <= 0 {
		return 0, 0
	}
	use := math.Floor(tickStep * clamp01(sp.TickSpace))
	totalMargin := math.Floor(use * clamp01(sp.InnerMargin))
	margin = math.Floor(totalMargin / float64(n))
	thickness = math.Floor((use - totalMargin) / float64(n))
	return thickness, margin
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ----------------------------------------------------------------------------
// Slot

// Slot is the position of one bar in axis coordinates.
type Slot struct {
	Series int     // index of the series
	Index  int     // index of the value inside the series, i.e. the label slot
	Value  float64 // the data value

	// Lead and Trail are the edges of the bar along the label axis,
	// Lead < Trail.
	Lead, Trail float64

	// Base and Tip are the ends of the bar along the value axis. Base is
	// where the bar starts (0 unless stacked), Tip where it ends. Tip is
	// smaller than Base for values below the axis minimum and for
	// negative stack segments.
	Base, Tip float64
}

// Thickness returns the extent of s along the label axis.
func (s Slot) Thickness() float64 { return s.Trail - s.Lead }

// Center returns the middle of s along the label axis.
func (s Slot) Center() float64 { return (s.Lead + s.Trail) / 2 }

// ----------------------------------------------------------------------------
// Layout

// Layout places the bars of several series onto evenly spaced label slots.
// Label slot j (0-based) is centered at (j+1)*TickStep.
type Layout struct {
	Position    Position
	SeriesCount int

	TickStep   float64 // pixel distance between two label slots
	AxisLength float64 // screen length of the value axis
	AxisMin    float64 // value at the value axis baseline
	AxisRange  float64 // value range covered by AxisLength

	Thickness float64 // thickness of one bar
	Margin    float64 // margin between neighbouring bars of one slot
}

// ErrRange is returned by Check if the value range is not usable to map
// values onto the axis.
var ErrRange = errors.New("geom: axis range must be positive and finite")

// Check reports whether the numeric parameters of l allow a layout.
func (l Layout) Check() error {
	if !(l.AxisRange > 0) || math.IsInf(l.AxisRange, 0) {
		return ErrRange
	}
	if math.IsNaN(l.TickStep) || l.TickStep < 0 {
		return fmt.Errorf("geom: bad tick step %g", l.TickStep)
	}
	if math.IsNaN(l.AxisLength) || l.AxisLength < 0 {
		return fmt.Errorf("geom: bad axis length %g", l.AxisLength)
	}
	return nil
}

// Used returns the space along the label axis covered by all bars of one
// label slot.
func (l Layout) Used() float64 {
	n := l.SeriesCount
	if l.Position == Stack && n > 0 {
		n = 1
	}
	if n <= 0 {
		return 0
	}
	return float64(n)*l.Thickness + float64(n-1)*l.Margin
}

// Extent maps value v onto the value axis. The result is rounded to whole
// pixels and not clamped to [0, AxisLength].
func (l Layout) Extent(v float64) float64 {
	return math.Round(l.AxisLength * (v - l.AxisMin) / l.AxisRange)
}

// Length is the pixel length of a stack segment of value v. Negative
// values have negative length.
func (l Layout) Length(v float64) float64 {
	return math.Round(l.AxisLength * v / l.AxisRange)
}

// Place computes the slot of value j of series s. The bar starts at base
// on the value axis and ends at the pixel of value.
func (l Layout) Place(s, j int, value, base float64) Slot {
	center := float64(j+1) * l.TickStep
	lead := center - l.Used()/2
	if l.Position != Stack {
		lead += float64(s) * (l.Thickness + l.Margin)
	}
	return Slot{
		Series: s,
		Index:  j,
		Value:  value,
		Lead:   lead,
		Trail:  lead + l.Thickness,
		Base:   base,
		Tip:    base + l.Extent(value),
	}
}

// Bars lays out all values. The slots are returned series by series, each
// series in value order. A series is only iterated over its own values so
// shorter series produce fewer bars. NaN values produce no bar but still
// occupy their slot.
//
// Stacked segments start at the pixel of value 0. Positive values stack
// upwards, negative ones downwards, each sign on its own running base.
func (l Layout) Bars(values [][]float64) []Slot {
	if len(values) == 0 {
		return nil
	}
	var pos, neg []float64 // running stack ends per label slot
	zero := l.Extent(0)
	slots := make([]Slot, 0, len(values)*len(values[0]))
	for s, vs := range values {
		for j, v := range vs {
			if math.IsNaN(v) {
				continue
			}
			slot := l.Place(s, j, v, 0)
			if l.Position == Stack {
				for len(pos) <= j {
					pos, neg = append(pos, zero), append(neg, zero)
				}
				end := &pos[j]
				if v < 0 {
					end = &neg[j]
				}
				slot.Base = *end
				slot.Tip = *end + l.Length(v)
				*end = slot.Tip
			}
			slots = append(slots, slot)
		}
	}
	return slots
}
