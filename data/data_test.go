package data

import (
	"math"
	"strconv"
	"testing"
)

var rangeTests = []struct {
	series   []Series
	min, max float64
}{
	{nil, math.NaN(), math.NaN()},
	{[]Series{{Key: "a"}}, math.NaN(), math.NaN()},
	{[]Series{{Values: []float64{3, 1, 2}}}, 1, 3},
	{[]Series{{Values: []float64{3}}, {Values: []float64{-4, 7}}}, -4, 7},
	{[]Series{{Values: []float64{math.NaN(), 5}}}, 5, 5},
}

func same(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}
	return a == b
}

func TestRange(t *testing.T) {
	for i, tc := range rangeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			min, max := Range(tc.series)
			if !same(min, tc.min) || !same(max, tc.max) {
				t.Errorf("Range = [%g,%g], want [%g,%g]", min, max, tc.min, tc.max)
			}
		})
	}
}

func TestStackedRange(t *testing.T) {
	series := []Series{
		{Values: []float64{50, 25, 20}},
		{Values: []float64{35, -65}},
		{Values: []float64{15}},
	}
	min, max := StackedRange(series)
	if min != -65 || max != 100 {
		t.Errorf("StackedRange = [%g,%g], want [-65,100]", min, max)
	}
}

func TestMaxLen(t *testing.T) {
	series := []Series{
		{Values: []float64{1, 2, 3}},
		{Values: []float64{1}},
	}
	if got := MaxLen(series); got != 3 {
		t.Errorf("MaxLen = %d, want 3", got)
	}
	if got := MaxLen(nil); got != 0 {
		t.Errorf("MaxLen(nil) = %d, want 0", got)
	}
}
