package classify

import "math"

// Index returns the class of v within breaks: the first i, scanning from
// the lowest class, with breaks[i] <= v <= breaks[i+1]. A value on an
// interior boundary therefore falls into the lower class.
//
// Index returns 0 when breaks has fewer than two entries, when v is NaN,
// and when v lies outside every interval.
func Index(v float64, breaks []float64) int {
	if len(breaks) < 2 || math.IsNaN(v) {
		return 0
	}
	for i := 0; i < len(breaks)-1; i++ {
		if v >= breaks[i] && v <= breaks[i+1] {
			return i
		}
	}
	return 0
}

// IndexOf is Index for an optional value; a missing value is class 0.
func IndexOf(v float64, ok bool, breaks []float64) int {
	if !ok {
		return 0
	}
	return Index(v, breaks)
}
