package classify

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaks_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 5, 40, 200} {
		values := make([]float64, n)
		for i := range values {
			values[i] = r.Float64() * 1000
		}
		min, max := values[0], values[0]
		for _, v := range values {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		for _, k := range []int{2, 5, 6, 8, 10} {
			b := Breaks(values, k)
			require.Len(t, b, k+1, "n=%d k=%d", n, k)
			for i := 1; i < len(b); i++ {
				assert.LessOrEqual(t, b[i-1], b[i], "n=%d k=%d", n, k)
			}
			assert.LessOrEqual(t, b[0], min)
			assert.GreaterOrEqual(t, b[len(b)-1], max)
		}
	}
}

func TestBreaks_TiedValues(t *testing.T) {
	for _, values := range [][]float64{
		{5, 5, 5},
		{50, 50, 50, 50, 50, 50, 50},
		{0, 0, 0, 7},
		{1, 1, 2, 2, 3, 3},
		{3, 1, 3, 1, 3},
	} {
		min, max := values[0], values[0]
		for _, v := range values {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		for _, k := range []int{1, 2, 3, 5, 6, 8, 10} {
			var b []float64
			require.NotPanics(t, func() { b = Breaks(values, k) }, "%v k=%d", values, k)
			require.Len(t, b, k+1, "%v k=%d", values, k)
			for i := 1; i < len(b); i++ {
				assert.LessOrEqual(t, b[i-1], b[i], "%v k=%d", values, k)
			}
			assert.Equal(t, min, b[0], "%v k=%d", values, k)
			assert.Equal(t, max, b[k], "%v k=%d", values, k)
		}
	}
}

func TestBreaks_TiedGroups(t *testing.T) {
	assert.Equal(t, []float64{5, 5, 5, 5}, Breaks([]float64{5, 5, 5}, 3))

	b := Breaks([]float64{1, 1, 2, 2, 3, 3}, 5)
	assert.Equal(t, []float64{1, 1, 2, 3, 3, 3}, b)
	assert.Equal(t, 0, Index(1, b))
	assert.Equal(t, 1, Index(2, b))
	assert.Equal(t, 2, Index(3, b))

	b = Breaks([]float64{0, 0, 0, 7}, 5)
	assert.Equal(t, []float64{0, 0, 7, 7, 7, 7}, b)
	assert.Equal(t, 0, Index(0, b))
	assert.Equal(t, 1, Index(7, b))
}

func TestBreaks_NaturalGroups(t *testing.T) {
	values := []float64{1, 2, 3, 50, 51, 52, 100, 101, 102}
	b := Breaks(values, 3)
	assert.Equal(t, []float64{1, 3, 52, 102}, b)
	assert.Equal(t, 0, Index(3, b))
	assert.Equal(t, 1, Index(50, b))
	assert.Equal(t, 2, Index(100, b))
}

func TestBreaks_FewerValuesThanClasses(t *testing.T) {
	b := Breaks([]float64{90, 10, 50}, 6)
	assert.Equal(t, []float64{10, 10, 50, 90, 90, 90, 90}, b)
	assert.Equal(t, 0, Index(10, b))
	assert.Equal(t, 1, Index(50, b))
	assert.Equal(t, 2, Index(90, b))
}

func TestBreaks_IgnoresNonFinite(t *testing.T) {
	b := Breaks([]float64{math.NaN(), 4, math.Inf(1), 8}, 2)
	assert.Equal(t, []float64{4, 4, 8}, b)
}

func TestBreaks_Empty(t *testing.T) {
	assert.Nil(t, Breaks(nil, 5))
	assert.Nil(t, Breaks([]float64{math.NaN()}, 5))
	assert.Nil(t, Breaks([]float64{1, 2}, 0))
}

func TestIndex_Degenerate(t *testing.T) {
	assert.Equal(t, 0, Index(5, nil))
	assert.Equal(t, 0, Index(5, []float64{}))
	assert.Equal(t, 0, Index(5, []float64{3}))
	assert.Equal(t, 0, Index(math.NaN(), []float64{0, 10, 20}))
	assert.Equal(t, 0, IndexOf(25, false, []float64{0, 10, 20, 30}))
}

func TestIndex_Boundaries(t *testing.T) {
	b := []float64{0, 10, 20, 30}
	assert.Equal(t, 0, Index(0, b))
	assert.Equal(t, 0, Index(5, b))
	assert.Equal(t, 0, Index(10, b))
	assert.Equal(t, 1, Index(15, b))
	assert.Equal(t, 1, Index(20, b))
	assert.Equal(t, 2, Index(25, b))
	assert.Equal(t, 2, Index(30, b))
	assert.Equal(t, 2, IndexOf(25, true, b))
}

func TestIndex_OutOfRange(t *testing.T) {
	b := []float64{0, 10, 20, 30}
	assert.Equal(t, 0, Index(-1, b))
	assert.Equal(t, 0, Index(31, b))
}
