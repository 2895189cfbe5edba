// Package record provides a DrawContext which records all drawing calls
// instead of drawing. It is used to inspect charts and in tests.
package record

import (
	"fmt"
	"strings"

	"github.com/vdobler/barchart"
	"gonum.org/v1/plot/vg/draw"
)

// Kind of a recorded operation.
type Kind int

const (
	Line Kind = iota
	Rect
	Text
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Rect:
		return "rect"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is one recorded drawing call. Text and Rotation are only set for
// Text ops.
type Op struct {
	Kind           Kind
	X1, Y1, X2, Y2 float64
	Text           string
	Rotation       float64
}

func (op Op) String() string {
	switch op.Kind {
	case Text:
		return fmt.Sprintf("text %q at (%g,%g) rot=%g", op.Text, op.X1, op.Y1, op.Rotation)
	default:
		return fmt.Sprintf("%s (%g,%g)-(%g,%g)", op.Kind, op.X1, op.Y1, op.X2, op.Y2)
	}
}

// Recorder implements barchart.DrawContext.
type Recorder struct {
	// CharWidth and LineHeight give fixed text metrics: a text is
	// CharWidth times its number of runes wide. Zero values measure with
	// the font of the text style.
	CharWidth  float64
	LineHeight float64

	// Fail, if set, is consulted before each op is recorded. A non-nil
	// result is returned from the drawing call and nothing is recorded.
	Fail func(op Op) error

	Ops []Op
}

var _ barchart.DrawContext = (*Recorder)(nil)

// New returns a Recorder with fixed metrics.
func New(charWidth, lineHeight float64) *Recorder {
	return &Recorder{CharWidth: charWidth, LineHeight: lineHeight}
}

func (r *Recorder) TextWidth(text string, sty draw.TextStyle) float64 {
	if r.CharWidth > 0 {
		return r.CharWidth * float64(len([]rune(text)))
	}
	return float64(sty.Font.Width(text))
}

func (r *Recorder) TextHeight(sty draw.TextStyle) float64 {
	if r.LineHeight > 0 {
		return r.LineHeight
	}
	return float64(sty.Font.Extents().Height)
}

func (r *Recorder) record(op Op) error {
	if r.Fail != nil {
		if err := r.Fail(op); err != nil {
			return err
		}
	}
	r.Ops = append(r.Ops, op)
	return nil
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, sty draw.LineStyle) error {
	return r.record(Op{Kind: Line, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawRect(x1, y1, x2, y2 float64, sty barchart.BoxStyle) error {
	return r.record(Op{Kind: Rect, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawText(text string, x, y, rotation float64, sty draw.TextStyle) error {
	return r.record(Op{Kind: Text, X1: x, Y1: y, Text: text, Rotation: rotation})
}

// Texts returns the recorded text ops.
func (r *Recorder) Texts() []Op {
	return r.filter(Text)
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k Kind) int {
	return len(r.filter(k))
}

func (r *Recorder) filter(k Kind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			ops = append(ops, op)
		}
	}
	return ops
}

// Reset forgets all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// String lists all ops, one per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, op := range r.Ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
