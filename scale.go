package barchart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// MaxTicks limits the number of ticks on a value axis.
const MaxTicks = 1 << 16

// ----------------------------------------------------------------------------
// Axis

// Axis is the numeric (value) axis of a bar chart. Min, Max and Step are
// stored as set, validation happens when they are used. An unset value
// is NaN.
type Axis struct {
	Min, Max float64
	Step     float64

	Visible          bool // draw ticks and labels at all
	LineVisible      bool // draw the axis line
	TickMarksVisible bool // draw the small tick marks

	// Formatter formats tick labels. Nil prints the raw value.
	Formatter TextFormatter
}

// NewAxis returns a visible axis without range and step.
func NewAxis() *Axis {
	return &Axis{
		Min:              math.NaN(),
		Max:              math.NaN(),
		Step:             math.NaN(),
		Visible:          true,
		LineVisible:      true,
		TickMarksVisible: true,
	}
}

// SetRange sets the minimum and maximum of a.
func (a *Axis) SetRange(min, max float64) { a.Min, a.Max = min, max }

// SetStep sets the value distance between two ticks.
func (a *Axis) SetStep(step float64) { a.Step = step }

// HasRange reports whether min and max have been set.
func (a *Axis) HasRange() bool { return have(a.Min) && have(a.Max) }

// HasStep reports whether the step has been set.
func (a *Axis) HasStep() bool { return have(a.Step) }

// Range returns |Max-Min|.
func (a *Axis) Range() float64 { return math.Abs(a.Max - a.Min) }

// TickCount returns ceil(Range/Step). It fails for a non-positive step.
func (a *Axis) TickCount() (int, error) {
	if !have(a.Step) {
		return 0, configError("axisStep", nil, "step not set")
	}
	if a.Step <= 0 || math.IsInf(a.Step, 0) {
		return 0, configError("axisStep", ErrDivideByZero, "step must be positive and finite, got %g", a.Step)
	}
	if !have(a.Min) || math.IsInf(a.Min, 0) {
		return 0, configError("axisMin", nil, "bad axis minimum %g", a.Min)
	}
	if !have(a.Max) || math.IsInf(a.Max, 0) {
		return 0, configError("axisMax", nil, "bad axis maximum %g", a.Max)
	}
	n := math.Ceil(a.Range() / a.Step)
	if n > MaxTicks {
		return 0, configError("axisStep", nil, "step %g yields %g ticks, limit is %d", a.Step, n, MaxTicks)
	}
	return int(n), nil
}

// Label returns the formatted label of tick value v. A failing formatter
// yields the raw value and the formatter's error.
func (a *Axis) Label(v float64) (string, error) {
	return a.Formatter.Format(v)
}

// Ticks implements plot.Ticker: It returns a major tick every Step from
// min up to max. An axis with unusable step returns no ticks.
func (a *Axis) Ticks(min, max float64) []plot.Tick {
	if !(a.Step > 0) || math.IsInf(a.Step, 0) || !(max >= min) {
		return nil
	}
	n := int(math.Ceil((max - min) / a.Step))
	if n > MaxTicks {
		return nil
	}
	ticks := make([]plot.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := min + float64(i)*a.Step
		label, _ := a.Label(v)
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

func (a *Axis) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%g:%g] Step=%g visible=%t line=%t",
		a.Min, a.Max, a.Step, a.Visible, a.LineVisible)
}

func have(x float64) bool {
	return !math.IsNaN(x)
}

// Autoscale sets the unset parts of a's range and step from the data
// interval so that roughly ticks many ticks are drawn. The range always
// includes 0 as bars grow from the baseline.
func (a *Axis) Autoscale(data Interval, ticks int) {
	if ticks < 1 {
		ticks = 5
	}
	lo, hi := 0.0, 1.0
	if have(data.Min) && have(data.Max) {
		lo, hi = math.Min(0, data.Min), math.Max(0, data.Max)
	}
	if have(a.Min) {
		lo = a.Min
	}
	if have(a.Max) {
		hi = a.Max
	}
	if hi <= lo {
		hi = lo + 1
	}

	step := a.Step
	if !have(step) || step <= 0 {
		step = niceStep((hi - lo) / float64(ticks))
	}
	if !have(a.Min) {
		a.Min = math.Floor(lo/step) * step
	}
	if !have(a.Max) {
		a.Max = math.Ceil(hi/step) * step
	}
	a.Step = step
}

// niceStep rounds x up to 1, 2 or 5 times a power of ten.
func niceStep(x float64) float64 {
	if !(x > 0) || math.IsInf(x, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(x)))
	switch f := x / mag; {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	}
	return 10 * mag
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges. Unset edges are
// equal to each other.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// ----------------------------------------------------------------------------
// LabelSet

// LabelSet holds the categorical labels of a chart in display order.
type LabelSet []string

// Len returns the number of labels.
func (l LabelSet) Len() int { return len(l) }
