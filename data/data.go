// Package data contains the series type fed into a bar chart and a few
// helpers working on sets of series.
package data

import (
	"image/color"
	"math"
)

// Series is one named, colored sequence of values sharing the categorical
// labels of a chart. The i'th value belongs to the i'th label.
type Series struct {
	Key    string
	Values []float64
	Color  color.Color
}

// Len returns the number of values in s.
func (s Series) Len() int { return len(s.Values) }

// Value returns the i'th value of s.
func (s Series) Value(i int) float64 { return s.Values[i] }

// MaxLen returns the length of the longest series.
func MaxLen(series []Series) int {
	n := 0
	for _, s := range series {
		if len(s.Values) > n {
			n = len(s.Values)
		}
	}
	return n
}

// Range returns the minimum and maximum value over all series. NaN values
// are skipped. If there is no value at all min and max are NaN.
func Range(series []Series) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			if math.IsNaN(v) {
				continue
			}
			min, max = math.Min(min, v), math.Max(max, v)
		}
	}
	if math.IsInf(min, 1) {
		return math.NaN(), math.NaN()
	}
	return min, max
}

// StackedRange returns the range covered when the values at the same index
// are stacked on top of each other: positive values grow upwards from 0,
// negative ones downwards.
func StackedRange(series []Series) (min, max float64) {
	n := MaxLen(series)
	if n == 0 {
		return math.NaN(), math.NaN()
	}
	min, max = 0, 0
	for i := 0; i < n; i++ {
		pos, neg := 0.0, 0.0
		for _, s := range series {
			if i >= len(s.Values) || math.IsNaN(s.Values[i]) {
				continue
			}
			if v := s.Values[i]; v < 0 {
				neg += v
			} else {
				pos += v
			}
		}
		min, max = math.Min(min, neg), math.Max(max, pos)
	}
	return min, max
}

// Values returns the value slices of all series in order.
func Values(series []Series) [][]float64 {
	vs := make([][]float64, len(series))
	for i, s := range series {
		vs[i] = s.Values
	}
	return vs
}
