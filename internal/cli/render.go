package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vdobler/barchart"
	"github.com/vdobler/barchart/gcdraw"
	"github.com/vdobler/barchart/vgdraw"
)

const (
	formatPNG = "png"
	formatSVG = "svg"

	backendGonum   = "gonum"   // gonum.org/v1/plot canvases
	backendGoChart = "gochart" // github.com/wcharczuk/go-chart renderers
)

type renderOpts struct {
	output  string // output file, format taken from the extension
	backend string
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{backend: backendGonum}

	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.png or .svg, default: input name with .png)")
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", opts.backend, "drawing backend: gonum or gochart")
	return cmd
}

func runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	chart, err := loadChart(path, logger)
	if err != nil {
		return err
	}
	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + formatPNG
	}
	prog := newProgress(logger)
	if err := writeChart(chart, out, opts.backend); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", out))
	return nil
}

// loadChart reads a chart description and reports unknown keys.
func loadChart(path string, logger *log.Logger) (*barchart.Chart, error) {
	cfg, err := barchart.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	for _, w := range cfg.Warnings {
		logger.Warn(w, "file", path)
	}
	chart, err := cfg.Chart()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	chart.SetLogger(logger)
	return chart, nil
}

// outputFormat derives the image format from the file extension.
func outputFormat(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case formatPNG, formatSVG:
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want png or svg)", ext)
	}
}

// canvas is a drawing backend which can save its image.
type canvas interface {
	barchart.DrawContext
	save(w io.Writer) error
}

type vgCanvas struct{ *vgdraw.Canvas }

func (c vgCanvas) save(w io.Writer) error {
	_, err := c.WriteTo(w)
	return err
}

type gcCanvas struct{ *gcdraw.Canvas }

func (c gcCanvas) save(w io.Writer) error { return c.WriteTo(w) }

func newCanvas(backend, format string, width, height float64) (canvas, error) {
	switch backend {
	case backendGonum, "":
		if format == formatSVG {
			return vgCanvas{vgdraw.NewSVG(width, height)}, nil
		}
		return vgCanvas{vgdraw.NewPNG(width, height)}, nil
	case backendGoChart:
		w, h := int(math.Round(width)), int(math.Round(height))
		var c *gcdraw.Canvas
		var err error
		if format == formatSVG {
			c, err = gcdraw.NewSVG(w, h)
		} else {
			c, err = gcdraw.NewPNG(w, h)
		}
		if err != nil {
			return nil, err
		}
		return gcCanvas{c}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (want %s or %s)", backend, backendGonum, backendGoChart)
}

func writeChart(chart *barchart.Chart, out, backend string) error {
	format, err := outputFormat(out)
	if err != nil {
		return err
	}
	w, h := chart.Size()
	c, err := newCanvas(backend, format, w, h)
	if err != nil {
		return err
	}
	if _, err := chart.Render(c); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := c.save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
