package cli

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vdobler/barchart"
	"github.com/vdobler/barchart/data"
)

type demoOpts struct {
	dir     string
	format  string
	backend string
}

func newDemoCmd() *cobra.Command {
	opts := demoOpts{dir: ".", format: formatPNG, backend: backendGonum}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the sample charts of all kinds and orientations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.dir, "output", "o", opts.dir, "output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "image format: png or svg")
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", opts.backend, "drawing backend: gonum or gochart")
	return cmd
}

func runDemo(ctx context.Context, opts demoOpts) error {
	logger := loggerFromContext(ctx)
	if opts.format != formatPNG && opts.format != formatSVG {
		return fmt.Errorf("unsupported format %q (want png or svg)", opts.format)
	}
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return err
	}

	prog := newProgress(logger)
	n := 0
	for _, kind := range []barchart.Kind{barchart.Flat, barchart.ThreeD, barchart.Stacked} {
		for _, o := range []barchart.Orientation{barchart.Vertical, barchart.Horizontal} {
			if err := ctx.Err(); err != nil {
				return err
			}
			chart := demoChart(kind, o)
			chart.SetLogger(logger)
			out := filepath.Join(opts.dir, fmt.Sprintf("bar-%s-%s.%s", kind, o, opts.format))
			if err := writeChart(chart, out, opts.backend); err != nil {
				return fmt.Errorf("%s: %w", out, err)
			}
			logger.Debug("wrote demo chart", "file", out)
			n++
		}
	}
	prog.done(fmt.Sprintf("Rendered %d charts to %s", n, opts.dir))
	return nil
}

// demoSeries is the market share sample data.
func demoSeries() []data.Series {
	return []data.Series{
		{Key: "Google", Values: []float64{50, 25, 20}, Color: color.RGBA{73, 135, 218, 0xff}},
		{Key: "Baidu", Values: []float64{35, 65, 75}, Color: color.RGBA{224, 4, 0, 0xff}},
		{Key: "Bing", Values: []float64{15, 10, 5}, Color: color.RGBA{255, 185, 0, 0xff}},
	}
}

func demoChart(kind barchart.Kind, o barchart.Orientation) *barchart.Chart {
	c := barchart.New(kind, o)
	c.SetTitle(fmt.Sprintf("Search engine share (%s, %s)", kind, o))
	c.SetSize(640, 480)
	if o == barchart.Vertical {
		c.SetPadding(80, 40, 50, 60)
	} else {
		c.SetPadding(80, 50, 40, 70)
	}
	c.SetDataSource(demoSeries())
	c.SetLabels([]string{"Alpha", "Beta", "Gamma"})
	c.SetAxisRange(0, 100)
	c.SetAxisStep(20)
	c.SetTextFormatter(barchart.PercentFormatter(0))
	c.SetItemLabelFormatter(barchart.FixedFormatter(0, "%"))
	c.SetItemLabelsVisible(true)
	return c
}
