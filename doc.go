// Package barchart lays out and draws categorical bar charts.
//
// It draws onto anything implementing DrawContext. Package vgdraw adapts
// gonum.org/v1/plot canvases, package gcdraw the renderers of
// github.com/wcharczuk/go-chart and package record captures the drawing
// calls.
//
// # Axes
//
// A bar chart has two axes: the numeric value axis and the categorical
// label axis. Which one is drawn where depends on the Orientation:
//   - Vertical     labels along the bottom edge, bars grow upwards
//   - Horizontal   labels along the left edge, bars grow to the right
//
// The value axis is described by an Axis with Min, Max and Step. It has
// ceil(|Max-Min|/Step) ticks above the baseline. On a vertical axis the
// topmost tick is always drawn exactly at the top of the plot area.
//
// Label ticks are spaced ceil(length/(n+1)) pixels apart for n labels so
// that bars centered on the first and last tick keep clear of the plot
// border.
//
// # Bars
//
// The bars of all series sharing one label are placed around the label
// tick. How thick they are, how far apart and how they look is up to the
// BarRenderer selected by the chart Kind:
//   - Flat      side by side rectangles
//   - ThreeD    side by side with a top and side face
//   - Stacked   one bar per label, series stacked
//
// The placement itself is done in package geom.
//
// # Legend
//
// The legend mode follows the title alignment: a left aligned title puts
// the legend in a single column at the right, any other alignment puts it
// in wrapping rows above the plot area.
//
// # Errors
//
// Configuration which would produce garbage geometry, like a zero step or
// an inverted plot area, is reported as *Error with ErrCodeInvalidConfig
// naming the offending field. Failing formatters fall back to the raw
// number. Errors of the DrawContext abort rendering with ErrCodeDraw.
package barchart
