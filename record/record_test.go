package record

import (
	"errors"
	"strings"
	"testing"

	"github.com/vdobler/barchart"
	"gonum.org/v1/plot/vg/draw"
)

func TestRecorderMetrics(t *testing.T) {
	r := New(6, 10)
	if w := r.TextWidth("héllo", draw.TextStyle{}); w != 30 {
		t.Errorf("width = %g, want 30", w)
	}
	if h := r.TextHeight(draw.TextStyle{}); h != 10 {
		t.Errorf("height = %g, want 10", h)
	}
}

func TestRecorderOps(t *testing.T) {
	r := New(6, 10)
	r.DrawLine(0, 0, 10, 10, draw.LineStyle{})
	r.DrawRect(1, 2, 3, 4, barchart.BoxStyle{})
	r.DrawText("x", 5, 6, 90, draw.TextStyle{})
	r.DrawText("y", 7, 8, 0, draw.TextStyle{})

	if r.Count(Line) != 1 || r.Count(Rect) != 1 || r.Count(Text) != 2 {
		t.Errorf("recorded\n%s", r)
	}
	texts := r.Texts()
	if texts[0] != (Op{Kind: Text, X1: 5, Y1: 6, Text: "x", Rotation: 90}) {
		t.Errorf("first text op %v", texts[0])
	}
	if got := r.String(); !strings.Contains(got, `text "y" at (7,8)`) || !strings.Contains(got, "rect (1,2)-(3,4)") {
		t.Errorf("String() =\n%s", got)
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("%d ops after reset", len(r.Ops))
	}
}

func TestRecorderFail(t *testing.T) {
	boom := errors.New("boom")
	r := New(6, 10)
	r.Fail = func(op Op) error {
		if op.Kind == Rect {
			return boom
		}
		return nil
	}
	if err := r.DrawLine(0, 0, 1, 1, draw.LineStyle{}); err != nil {
		t.Errorf("line failed: %v", err)
	}
	if err := r.DrawRect(0, 0, 1, 1, barchart.BoxStyle{}); err != boom {
		t.Errorf("rect returned %v", err)
	}
	if len(r.Ops) != 1 {
		t.Errorf("failed op was recorded: %s", r)
	}
}
