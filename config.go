package barchart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vdobler/barchart/data"
	"gonum.org/v1/plot/vg"
)

// Config is the file representation of a chart:
//
//	kind = "stacked"
//	orientation = "horizontal"
//	title = "Market share"
//	labels = ["2021", "2022", "2023"]
//
//	[axis]
//	min = 0
//	max = 100
//	step = 20
//	format = "%.0f%%"
//
//	[[series]]
//	key = "Google"
//	values = [50, 25, 20]
//	color = "#4987da"
//
// Optional fields left out keep the defaults of New. An axis without
// range or step is autoscaled.
type Config struct {
	Kind        string   `toml:"kind"`
	Orientation string   `toml:"orientation"`
	Title       string   `toml:"title"`
	TitleAlign  string   `toml:"title_align"`
	Width       float64  `toml:"width"`
	Height      float64  `toml:"height"`
	FontSize    float64  `toml:"font_size"`
	Padding     *Padding `toml:"padding"`

	Legend     *bool `toml:"legend"`
	ItemLabels *bool `toml:"item_labels"`
	ShowTotals bool  `toml:"show_totals"`
	// ItemLabelFormat is a fmt format for the bar values, e.g. "%.1f".
	ItemLabelFormat string `toml:"item_label_format"`

	Axis AxisConfig `toml:"axis"`

	Labels []string       `toml:"labels"`
	Series []SeriesConfig `toml:"series"`

	// Warnings lists keys present in the file but not understood.
	Warnings []string `toml:"-"`
}

// AxisConfig configures the value axis.
type AxisConfig struct {
	Min      *float64 `toml:"min"`
	Max      *float64 `toml:"max"`
	Step     *float64 `toml:"step"`
	Ticks    int      `toml:"ticks"` // wanted number of ticks when autoscaling
	Hidden   bool     `toml:"hidden"`
	HideLine bool     `toml:"hide_line"`
	Format   string   `toml:"format"` // fmt format of the tick labels
}

// SeriesConfig is one data series. Color is "#rrggbb" or empty for the
// default palette.
type SeriesConfig struct {
	Key    string    `toml:"key"`
	Values []float64 `toml:"values"`
	Color  string    `toml:"color"`
}

// LoadConfig reads the chart configuration in TOML format from path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig reads a chart configuration in TOML format from r.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, configError("config", err, "cannot decode chart configuration")
	}
	for _, key := range md.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key %q", key.String()))
	}
	return &cfg, nil
}

// Chart builds the chart described by cfg.
func (cfg *Config) Chart() (*Chart, error) {
	kind := Flat
	if cfg.Kind != "" {
		var err error
		if kind, err = ParseKind(strings.ToLower(cfg.Kind)); err != nil {
			return nil, err
		}
	}
	o := Vertical
	switch strings.ToLower(cfg.Orientation) {
	case "", "vertical":
	case "horizontal":
		o = Horizontal
	default:
		return nil, configError("orientation", nil, "unknown orientation %q", cfg.Orientation)
	}
	align, err := ParseAlign(cfg.TitleAlign)
	if err != nil {
		return nil, err
	}

	c := New(kind, o)
	if cfg.Width != 0 || cfg.Height != 0 {
		c.SetSize(cfg.Width, cfg.Height)
	}
	if p := cfg.Padding; p != nil {
		c.SetPadding(p.Top, p.Right, p.Bottom, p.Left)
	}
	if cfg.FontSize > 0 {
		c.SetStyle(DefaultStyle(vg.Length(cfg.FontSize)))
	}
	c.SetTitle(cfg.Title)
	c.SetTitleAlign(align)
	if cfg.Legend != nil {
		c.SetLegendVisible(*cfg.Legend)
	}
	if cfg.ItemLabels != nil {
		c.SetItemLabelsVisible(*cfg.ItemLabels)
	}
	if cfg.ShowTotals && kind == Stacked {
		c.SetBarRenderer(StackedBar{TotalLabelVisible: true})
	}
	if cfg.ItemLabelFormat != "" {
		c.SetItemLabelFormatter(PrintfFormatter(cfg.ItemLabelFormat))
	}

	series := make([]data.Series, len(cfg.Series))
	for i, sc := range cfg.Series {
		col, err := ParseColor(sc.Color)
		if err != nil {
			return nil, configError(fmt.Sprintf("series[%d].color", i), err, "bad color of series %q", sc.Key)
		}
		series[i] = data.Series{Key: sc.Key, Values: sc.Values, Color: col}
	}
	c.SetDataSource(series)
	c.SetLabels(cfg.Labels)

	ax := cfg.Axis
	c.axis.Visible = !ax.Hidden
	c.axis.LineVisible = !ax.HideLine
	if ax.Format != "" {
		c.SetTextFormatter(TextFormat(PrintfFormatter(ax.Format)))
	}
	if ax.Min != nil {
		c.axis.Min = *ax.Min
	}
	if ax.Max != nil {
		c.axis.Max = *ax.Max
	}
	if ax.Step != nil {
		c.axis.Step = *ax.Step
	}
	if ax.Min == nil || ax.Max == nil || ax.Step == nil {
		c.AutoRange(ax.Ticks)
	}
	return c, nil
}

// ParseColor parses "#rrggbb" and "#rrggbbaa". The empty string yields a
// nil color.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("color %q is not of the form #rrggbb", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
