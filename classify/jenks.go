// Package classify computes class breaks and assigns values to classes.
package classify

import (
	"math"
	"sort"
)

// Breaks computes natural breaks (Jenks) for values and returns k+1
// non-decreasing boundaries. The first boundary is the minimum and the
// last the maximum of values. Non-finite entries are ignored.
//
// When values holds fewer than k distinct entries the breaks for that
// many classes are computed and the tail is padded with the maximum.
// Breaks returns nil for an empty input or k < 1.
func Breaks(values []float64, k int) []float64 {
	data := finite(values)
	if len(data) == 0 || k < 1 {
		return nil
	}
	sort.Float64s(data)

	classes := k
	if d := distinct(data); classes > d {
		classes = d
	}
	lower := lowerClassLimits(data, classes)

	// Interior breaks are the maximum of the class below them.
	breaks := make([]float64, k+1)
	for i := range breaks[:classes] {
		breaks[i] = data[0]
	}
	breaks[classes] = data[len(data)-1]
	n := len(data)
	for c := classes; c > 1 && n > 1; c-- {
		limit := lower[n][c]
		if limit < 2 {
			break
		}
		breaks[c-1] = data[limit-2]
		n = limit - 1
	}
	for i := classes + 1; i <= k; i++ {
		breaks[i] = data[len(data)-1]
	}
	return breaks
}

// lowerClassLimits fills the Jenks dynamic programming tables. Entry
// [l][j] is the 1-based index of the first value of class j when the
// first l sorted values are split into j classes.
func lowerClassLimits(data []float64, classes int) [][]int {
	n := len(data)
	limits := make([][]int, n+1)
	variances := make([][]float64, n+1)
	for i := range limits {
		limits[i] = make([]int, classes+1)
		variances[i] = make([]float64, classes+1)
	}
	for j := 1; j <= classes; j++ {
		limits[1][j] = 1
		for l := 2; l <= n; l++ {
			variances[l][j] = math.Inf(1)
		}
		// a single value cannot fill more than one class
		if j > 1 {
			variances[1][j] = math.Inf(1)
		}
	}

	for l := 2; l <= n; l++ {
		var sum, sumSquares, w float64
		for m := 1; m <= l; m++ {
			lowerLimit := l - m + 1
			v := data[lowerLimit-1]
			w++
			sum += v
			sumSquares += v * v
			variance := sumSquares - sum*sum/w
			prev := lowerLimit - 1
			if prev == 0 {
				continue
			}
			for j := 2; j <= classes; j++ {
				if variances[l][j] >= variance+variances[prev][j-1] {
					limits[l][j] = lowerLimit
					variances[l][j] = variance + variances[prev][j-1]
				}
			}
		}
		limits[l][1] = 1
		variances[l][1] = sumSquares - sum*sum/w
	}
	return limits
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// distinct counts the different values of sorted data.
func distinct(data []float64) int {
	if len(data) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(data); i++ {
		if data[i] != data[i-1] {
			n++
		}
	}
	return n
}
