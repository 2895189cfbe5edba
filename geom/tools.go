package geom

import "math"

// Rect is an axis parallel rectangle in pixel space given by two opposite
// corners (X0,Y0) and (X1,Y1). The corners need not be ordered.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Canonic returns the canonical form of r, i.e. (X0,Y0) being the corner
// with the smaller coordinates.
func (r Rect) Canonic() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Width of r, always >= 0.
func (r Rect) Width() float64 { return math.Abs(r.X1 - r.X0) }

// Height of r, always >= 0.
func (r Rect) Height() float64 { return math.Abs(r.Y1 - r.Y0) }

// Overlaps reports whether the interiors of r and s intersect.
func (r Rect) Overlaps(s Rect) bool {
	r, s = r.Canonic(), s.Canonic()
	return r.X0 < s.X1 && s.X0 < r.X1 && r.Y0 < s.Y1 && s.Y0 < r.Y1
}

// Finite reports whether all coordinates of r are finite numbers.
func (r Rect) Finite() bool {
	for _, v := range [4]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
