package barchart

import (
	"image/color"
	"strconv"
	"strings"
	"testing"
)

const sampleConfig = `
kind = "stacked"
orientation = "horizontal"
title = "Share"
title_align = "left"
width = 400
height = 300
show_totals = true
item_label_format = "%.0f%%"
labels = ["A", "B", "C"]
colour = "red"

[padding]
top = 40
right = 20
bottom = 30
left = 50

[axis]
min = 0
max = 100
step = 20
format = "%.0f%%"

[[series]]
key = "Google"
values = [50, 25, 20]
color = "#4987da"

[[series]]
key = "Baidu"
values = [35, 65, 75]
`

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(cfg.Warnings) != 1 || !strings.Contains(cfg.Warnings[0], "colour") {
		t.Errorf("warnings = %v", cfg.Warnings)
	}
	if cfg.Padding == nil || cfg.Padding.Left != 50 {
		t.Errorf("padding = %+v", cfg.Padding)
	}

	c, err := cfg.Chart()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if c.State() != Configured {
		t.Errorf("state = %s", c.State())
	}
	if c.Kind() != Stacked || c.orientation != Horizontal || c.titleAlign != AlignLeft {
		t.Errorf("kind=%s orientation=%s align=%s", c.Kind(), c.orientation, c.titleAlign)
	}
	if sb, ok := c.renderer.(StackedBar); !ok || !sb.TotalLabelVisible {
		t.Errorf("renderer = %#v", c.renderer)
	}
	if w, h := c.Size(); w != 400 || h != 300 {
		t.Errorf("size = %gx%g", w, h)
	}
	if got, _ := c.Axis().Label(40); got != "40%" {
		t.Errorf("tick label = %q", got)
	}
	if c.series[0].Color != (color.NRGBA{0x49, 0x87, 0xda, 0xff}) || c.series[1].Color != nil {
		t.Errorf("colors = %v, %v", c.series[0].Color, c.series[1].Color)
	}
}

func TestConfigAutoRange(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
labels = ["x", "y"]
[[series]]
key = "s"
values = [3, 17]
`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	c, err := cfg.Chart()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	a := c.Axis()
	if a.Min != 0 || a.Max != 20 || a.Step != 5 {
		t.Errorf("autoscaled axis %s", a)
	}
}

var badConfigTests = []struct {
	config string
	field  string
}{
	{`kind = "pie"`, "kind"},
	{`orientation = "diagonal"`, "orientation"},
	{`title_align = "justify"`, "titleAlign"},
	{"[[series]]\ncolor = \"blue\"", "series[0].color"},
}

func TestBadConfig(t *testing.T) {
	for i, tc := range badConfigTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			cfg, err := DecodeConfig(strings.NewReader(tc.config))
			if err != nil {
				t.Fatalf("unexpected decode error %v", err)
			}
			_, err = cfg.Chart()
			if got := Field(err); got != tc.field {
				t.Errorf("got error %v with field %q, want field %q", err, got, tc.field)
			}
		})
	}
}

func TestDecodeConfigSyntaxError(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("kind = "))
	if !IsCode(err, ErrCodeInvalidConfig) || Field(err) != "config" {
		t.Errorf("got %v", err)
	}
}

var parseColorTests = []struct {
	s    string
	want color.Color
	err  bool
}{
	{"", nil, false},
	{"#ff0000", color.NRGBA{0xff, 0, 0, 0xff}, false},
	{"00ff0080", color.NRGBA{0, 0xff, 0, 0x80}, false},
	{"#fff", nil, true},
	{"#gggggg", nil, true},
}

func TestParseColor(t *testing.T) {
	for i, tc := range parseColorTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := ParseColor(tc.s)
			if (err != nil) != tc.err {
				t.Fatalf("unexpected error state %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.s, got, tc.want)
			}
		})
	}
}
