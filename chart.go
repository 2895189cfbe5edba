package barchart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/vdobler/barchart/data"
	"github.com/vdobler/barchart/geom"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
)

// State is the configuration state of a Chart.
type State int

const (
	// Unconfigured charts lack at least one of axis range, axis step,
	// labels or data.
	Unconfigured State = iota
	Configured
	// Rendered charts have been drawn and not been changed since.
	Rendered
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Configured:
		return "configured"
	case Rendered:
		return "rendered"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ----------------------------------------------------------------------------
// Chart

// Chart is a categorical bar chart. A chart keeps only its configuration:
// every call to Layout or Render derives all geometry from scratch.
//
// A Chart must not be rendered concurrently. Use one Chart per goroutine.
type Chart struct {
	kind        Kind
	orientation Orientation
	renderer    BarRenderer

	axis   *Axis
	labels LabelSet
	series []data.Series

	itemLabelFormatter DoubleFormatter
	legendVisible      bool
	itemLabelsVisible  bool

	title      string
	titleAlign Align
	frame      Frame
	style      Style

	logger *log.Logger

	labelsSet, dataSet bool
	rendered           bool
}

// New returns a chart of the given kind and orientation with the default
// style, a 640x480 pixel frame and visible legend and item labels.
func New(kind Kind, o Orientation) *Chart {
	return &Chart{
		kind:              kind,
		orientation:       o,
		renderer:          NewBarRenderer(kind),
		axis:              NewAxis(),
		legendVisible:     true,
		itemLabelsVisible: true,
		frame: Frame{
			Width:   640,
			Height:  480,
			Padding: Padding{Top: 80, Right: 40, Bottom: 60, Left: 60},
		},
		style:  DefaultStyle(10),
		logger: log.Default(),
	}
}

// Kind returns the kind c was created with.
func (c *Chart) Kind() Kind { return c.kind }

// Axis returns the value axis of c. Changes to it take effect on the next
// Layout or Render.
func (c *Chart) Axis() *Axis { return c.axis }

// State reports whether c is completely configured and whether it has been
// rendered since the last change.
func (c *Chart) State() State {
	if !c.axis.HasRange() || !c.axis.HasStep() || !c.labelsSet || !c.dataSet {
		return Unconfigured
	}
	if c.rendered {
		return Rendered
	}
	return Configured
}

func (c *Chart) changed() { c.rendered = false }

func (c *Chart) SetOrientation(o Orientation) { c.orientation = o; c.changed() }

// SetAxisRange sets the value range of the value axis. It is not validated
// before the chart is laid out.
func (c *Chart) SetAxisRange(min, max float64) { c.axis.SetRange(min, max); c.changed() }

// SetAxisStep sets the value distance between value ticks.
func (c *Chart) SetAxisStep(step float64) { c.axis.SetStep(step); c.changed() }

// SetLabels sets the categorical labels in display order.
func (c *Chart) SetLabels(labels []string) {
	c.labels = append(LabelSet(nil), labels...)
	c.labelsSet = true
	c.changed()
}

// SetDataSource sets the series to draw. The series are not copied and
// must not be modified during Layout or Render.
func (c *Chart) SetDataSource(series []data.Series) {
	c.series = series
	c.dataSet = true
	c.changed()
}

// SetTextFormatter sets the formatter of the value tick labels.
func (c *Chart) SetTextFormatter(f TextFormatter) { c.axis.Formatter = f; c.changed() }

// SetItemLabelFormatter sets the formatter of the item labels on bars.
func (c *Chart) SetItemLabelFormatter(f DoubleFormatter) { c.itemLabelFormatter = f; c.changed() }

func (c *Chart) SetLegendVisible(v bool)     { c.legendVisible = v; c.changed() }
func (c *Chart) SetItemLabelsVisible(v bool) { c.itemLabelsVisible = v; c.changed() }
func (c *Chart) SetTitle(title string)       { c.title = title; c.changed() }

// SetTitleAlign aligns the title. It also selects the legend mode, see
// LegendModeFor.
func (c *Chart) SetTitleAlign(a Align) { c.titleAlign = a; c.changed() }

func (c *Chart) SetPadding(top, right, bottom, left float64) {
	c.frame.Padding = Padding{Top: top, Right: right, Bottom: bottom, Left: left}
	c.changed()
}

// SetSize sets the chart size in pixels.
func (c *Chart) SetSize(width, height float64) {
	c.frame.Width, c.frame.Height = width, height
	c.changed()
}

// Size returns the chart size in pixels.
func (c *Chart) Size() (width, height float64) { return c.frame.Width, c.frame.Height }

// SetOrigin moves the top left corner of the chart on the drawing surface.
func (c *Chart) SetOrigin(x, y float64) { c.frame.X, c.frame.Y = x, y; c.changed() }

// SetStyle replaces the style. Text alignments depending on the
// orientation are overwritten during Render.
func (c *Chart) SetStyle(s Style) { c.style = s; c.changed() }

// Style returns a copy of the current style.
func (c *Chart) Style() Style { return c.style }

// SetBarRenderer replaces the renderer selected by the chart kind.
func (c *Chart) SetBarRenderer(r BarRenderer) {
	if r == nil {
		r = NewBarRenderer(c.kind)
	}
	c.renderer = r
	c.changed()
}

// SetLogger sets the logger for debug output. Nil restores log.Default().
func (c *Chart) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	c.logger = l
}

// AutoRange fills the unset parts of the value axis from the data so that
// about ticks value ticks are drawn. Stacked charts use the range of the
// stacked sums.
func (c *Chart) AutoRange(ticks int) {
	var min, max float64
	if c.renderer.Position() == geom.Stack {
		min, max = data.StackedRange(c.series)
	} else {
		min, max = data.Range(c.series)
	}
	iv := unsetInterval()
	iv.Update(min, max)
	if iv.Equal(unsetInterval()) {
		c.logger.Debug("no data values, autoscaling from the baseline only")
	}
	c.axis.Autoscale(iv, ticks)
	c.logger.Debug("autoscaled value axis", "min", c.axis.Min, "max", c.axis.Max, "step", c.axis.Step)
	c.changed()
}

// ----------------------------------------------------------------------------
// Scene

// ItemLabel is a text placed at a bar tip.
type ItemLabel struct {
	Text string
	Pos  Point
}

// Scene is the complete geometry of one layout pass.
type Scene struct {
	Orientation Orientation
	Chart       PlotArea // full chart rectangle
	Plot        PlotArea

	Title    string
	TitlePos Point

	ValueTicks []Tick
	LabelTicks []Tick
	// LabelStep is the pixel distance between two label slots.
	LabelStep float64

	Thickness, Margin float64
	Bars              []Bar
	Totals            []ItemLabel // stack sums, only for stacked bars

	LegendMode LegendMode
	Legend     []LegendEntry
}

// Layout validates the configuration and computes the geometry of c
// without drawing. Text is measured with m which is only needed if the
// legend is visible.
func (c *Chart) Layout(m Measurer) (*Scene, error) {
	if err := c.frame.Validate(); err != nil {
		return nil, err
	}
	a := c.axis
	if _, err := a.TickCount(); err != nil {
		return nil, err
	}
	if !(a.Max > a.Min) {
		return nil, configError("axisMax", ErrDivideByZero,
			"axis maximum %g must exceed minimum %g", a.Max, a.Min)
	}

	o := c.orientation
	area := c.frame.PlotArea()
	scene := &Scene{
		Orientation: o,
		Chart:       c.frame.Chart(),
		Plot:        area,
		Title:       c.title,
		TitlePos:    c.frame.titlePos(c.titleAlign),
	}

	var ferrs []error
	var err error
	scene.ValueTicks, ferrs, err = ValueTicks(a, area, o)
	if err != nil {
		return nil, err
	}
	for _, ferr := range ferrs {
		c.logger.Debug("tick label formatter failed, using raw value", "err", ferr)
	}
	scene.LabelTicks = LabelTicks(c.labels, area, o)

	series := c.coloredSeries()
	slots := len(c.labels)
	if slots == 0 {
		slots = data.MaxLen(series)
	}
	labelLength, valueLength := area.Width(), area.Height()
	if o == Horizontal {
		labelLength, valueLength = valueLength, labelLength
	}
	scene.LabelStep = LabelStep(labelLength, slots)
	scene.Thickness, scene.Margin = c.renderer.ThicknessAndMargin(scene.LabelStep, len(series))

	layout := geom.Layout{
		Position:    c.renderer.Position(),
		SeriesCount: len(series),
		TickStep:    scene.LabelStep,
		AxisLength:  valueLength,
		AxisMin:     a.Min,
		AxisRange:   a.Range(),
		Thickness:   scene.Thickness,
		Margin:      scene.Margin,
	}
	if err := layout.Check(); err != nil {
		return nil, configError("axisMax", err, "cannot map values onto the axis")
	}
	c.logger.Debug("bar layout",
		"orientation", o, "ticks", len(scene.ValueTicks), "labelStep", scene.LabelStep,
		"thickness", scene.Thickness, "margin", scene.Margin, "series", len(series))

	for _, s := range layout.Bars(data.Values(series)) {
		bar := Bar{
			Slot:  s,
			Key:   series[s.Series].Key,
			Color: series[s.Series].Color,
			Rect:  c.pixelRect(area, s),
		}
		if c.itemLabelsVisible {
			bar.Label = c.itemLabel(s.Value)
			bar.LabelPos = c.tipPoint(area, s)
		}
		scene.Bars = append(scene.Bars, bar)
	}
	if sb, ok := c.renderer.(StackedBar); ok && sb.TotalLabelVisible {
		scene.Totals = c.totals(area, scene.Bars)
	}

	if c.legendVisible {
		scene.LegendMode = LegendModeFor(c.titleAlign)
		ll := LegendLayout{
			Mode:   scene.LegendMode,
			Label:  c.style.Legend.Label,
			Margin: float64(c.style.Legend.Margin),
		}
		scene.Legend = ll.Layout(series, area, scene.Chart.Top, m)
		c.logger.Debug("legend layout", "mode", scene.LegendMode, "rows", LegendRows(scene.Legend))
	}
	return scene, nil
}

// Render lays out c and draws it onto dc: background and title, both
// axes, the bars with their item labels and finally the legend. The first
// failing drawing call aborts rendering and its error is returned.
// Rendering an unchanged chart again draws the same picture.
func (c *Chart) Render(dc DrawContext) (*Scene, error) {
	if st := c.State(); st == Unconfigured {
		c.logger.Debug("rendering incompletely configured chart", "axis", c.axis,
			"labels", c.labelsSet, "data", c.dataSet)
	}
	scene, err := c.Layout(dc)
	if err != nil {
		return nil, err
	}

	sty := c.style
	sty.applyOrientation(scene.Orientation)
	d := &drawer{dc: dc}

	ch, area := scene.Chart, scene.Plot
	d.rect(ch.Left, ch.Top, ch.Right, ch.Bottom, BoxStyle{Fill: sty.Background})
	d.rect(area.Left, area.Top, area.Right, area.Bottom, BoxStyle{Fill: sty.Plot.Background})
	title := sty.Title
	title.XAlign = titleXAlign(c.titleAlign)
	d.text(scene.Title, scene.TitlePos.X, scene.TitlePos.Y, 0, title)

	drawValueAxis(d, c.axis, scene.ValueTicks, area, scene.Orientation, &sty)
	drawLabelAxis(d, scene.LabelTicks, area, scene.Orientation, &sty)
	if d.err != nil {
		return nil, d.err
	}

	for _, bar := range scene.Bars {
		if err := c.renderer.DrawBar(dc, bar, &sty); err != nil {
			return nil, drawError(err, "bar %d of series %q", bar.Index, bar.Key)
		}
	}
	pad := float64(sty.Bar.ItemLabelPad)
	for _, bar := range scene.Bars {
		c.drawItemLabel(d, ItemLabel{Text: bar.Label, Pos: bar.LabelPos}, pad, &sty)
	}
	for _, t := range scene.Totals {
		c.drawItemLabel(d, t, pad, &sty)
	}
	drawAxisLines(d, c.axis, area, scene.Orientation, &sty)
	drawLegend(d, scene.Legend, scene.LegendMode, &sty)
	if d.err != nil {
		return nil, d.err
	}

	c.rendered = true
	c.logger.Debug("rendered chart", "kind", c.kind, "bars", len(scene.Bars), "legend", len(scene.Legend))
	return scene, nil
}

// coloredSeries returns the series with missing colors replaced by the
// default palette.
func (c *Chart) coloredSeries() []data.Series {
	series := make([]data.Series, len(c.series))
	for i, s := range c.series {
		s.Color = SeriesColor(s, i)
		series[i] = s
	}
	return series
}

// pixelRect maps a slot to pixels. Corner 0 lies on the baseline side.
func (c *Chart) pixelRect(area PlotArea, s geom.Slot) geom.Rect {
	if c.orientation == Horizontal {
		return geom.Rect{
			X0: area.Left + s.Base, Y0: area.Bottom - s.Lead,
			X1: area.Left + s.Tip, Y1: area.Bottom - s.Trail,
		}
	}
	return geom.Rect{
		X0: area.Left + s.Lead, Y0: area.Bottom - s.Base,
		X1: area.Left + s.Trail, Y1: area.Bottom - s.Tip,
	}
}

// tipPoint is the anchor of the item label of s: the middle of the bar
// tip.
func (c *Chart) tipPoint(area PlotArea, s geom.Slot) Point {
	half := s.Thickness() / 2
	if c.orientation == Horizontal {
		return Point{X: area.Left + s.Tip, Y: math.Round(area.Bottom - s.Lead - half)}
	}
	return Point{X: math.Round(area.Left + s.Lead + half), Y: math.Round(area.Bottom - s.Tip)}
}

func (c *Chart) itemLabel(v float64) string {
	label, err := c.itemLabelFormatter.Format(v)
	if err != nil {
		c.logger.Debug("item label formatter failed, using raw value", "value", v, "err", err)
	}
	return label
}

// totals computes the sum labels of stacked bars, placed at the tip of the
// segment reaching highest up the value axis.
func (c *Chart) totals(area PlotArea, bars []Bar) []ItemLabel {
	type stack struct {
		sum float64
		top geom.Slot
	}
	var stacks []*stack
	for _, b := range bars {
		for len(stacks) <= b.Index {
			stacks = append(stacks, nil)
		}
		st := stacks[b.Index]
		if st == nil {
			st = &stack{top: b.Slot}
			stacks[b.Index] = st
		}
		st.sum += b.Value
		if b.Tip > st.top.Tip {
			st.top = b.Slot
		}
	}
	var labels []ItemLabel
	for _, st := range stacks {
		if st == nil {
			continue
		}
		labels = append(labels, ItemLabel{
			Text: c.itemLabel(st.sum),
			Pos:  c.tipPoint(area, st.top),
		})
	}
	return labels
}

func (c *Chart) drawItemLabel(d *drawer, l ItemLabel, pad float64, sty *Style) {
	x, y := l.Pos.X, l.Pos.Y
	if c.orientation == Horizontal {
		x += pad
	} else {
		y -= pad
	}
	d.text(l.Text, x, y, 0, sty.Bar.ItemLabel)
}

func titleXAlign(a Align) draw.XAlignment {
	switch a {
	case AlignLeft:
		return draw.XLeft
	case AlignRight:
		return draw.XRight
	}
	return draw.XCenter
}

// SeriesColor returns the color used for the i'th series: its own color or
// the default palette entry.
func SeriesColor(s data.Series, i int) color.Color {
	if s.Color != nil {
		return s.Color
	}
	return plotutil.Color(i)
}
