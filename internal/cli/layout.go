package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vdobler/barchart"
	"github.com/vdobler/barchart/record"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Print the computed geometry of a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runLayout(ctx context.Context, w io.Writer, path string) error {
	chart, err := loadChart(path, loggerFromContext(ctx))
	if err != nil {
		return err
	}
	// Zero metrics measure with the fonts of the chart style.
	scene, err := chart.Layout(&record.Recorder{})
	if err != nil {
		return err
	}
	printScene(w, path, scene)
	return nil
}

func printScene(w io.Writer, name string, s *barchart.Scene) {
	fmt.Fprintln(w, StyleTitle.Render(name))
	fmt.Fprintln(w, kv("orientation", s.Orientation))
	fmt.Fprintln(w, kv("plot", fmt.Sprintf("left=%g top=%g right=%g bottom=%g",
		s.Plot.Left, s.Plot.Top, s.Plot.Right, s.Plot.Bottom)))
	fmt.Fprintln(w, kv("label step", s.LabelStep))
	fmt.Fprintln(w, kv("bar thickness", s.Thickness))
	fmt.Fprintln(w, kv("bar margin", s.Margin))

	fmt.Fprintln(w, section("Value ticks"))
	for _, t := range s.ValueTicks {
		fmt.Fprintf(w, "  %-10s at %s\n", t.Label, num(t.Pos))
	}
	fmt.Fprintln(w, section("Label ticks"))
	for _, t := range s.LabelTicks {
		fmt.Fprintf(w, "  %-10s at %s\n", t.Label, num(t.Pos))
	}

	fmt.Fprintln(w, section("Bars"))
	for _, b := range s.Bars {
		r := b.Rect
		fmt.Fprintf(w, "  %-10s #%d %8g  (%s,%s)-(%s,%s)  %s\n",
			b.Key, b.Index, b.Value, num(r.X0), num(r.Y0), num(r.X1), num(r.Y1), StyleDim.Render(b.Label))
	}
	for _, t := range s.Totals {
		fmt.Fprintf(w, "  %-10s at (%s,%s)\n", "total "+t.Text, num(t.Pos.X), num(t.Pos.Y))
	}

	if len(s.Legend) == 0 {
		return
	}
	fmt.Fprintln(w, section(fmt.Sprintf("Legend (%s, %d rows)", s.LegendMode, barchart.LegendRows(s.Legend))))
	for _, e := range s.Legend {
		r := e.Swatch
		fmt.Fprintf(w, "  %-10s row %d  swatch (%s,%s)-(%s,%s)\n",
			e.Key, e.Row, num(r.X0), num(r.Y0), num(r.X1), num(r.Y1))
	}
}
