package legend

import (
	"fmt"
	"strconv"
)

// Abbrev shortens n with a K, M or B suffix and one decimal. Values below
// a thousand are printed as is.
func Abbrev(n float64) string {
	switch {
	case n >= 1e9:
		return fmt.Sprintf("%.1fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.1fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.1fK", n/1e3)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// RangeLabels returns one "low-high" label per class of breaks.
func RangeLabels(breaks []float64) []string {
	if len(breaks) < 2 {
		return nil
	}
	labels := make([]string, len(breaks)-1)
	for i := range labels {
		labels[i] = Abbrev(breaks[i]) + "-" + Abbrev(breaks[i+1])
	}
	return labels
}
