package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("#31a354")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x31, G: 0xa3, B: 0x54}, c)

	c, err = Parse("#ccc")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xcc, G: 0xcc, B: 0xcc}, c)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "31a354", "#31a35", "#zzzzzz", "#1234567"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestHex_ZeroPadded(t *testing.T) {
	assert.Equal(t, "#000a0f", Color{R: 0, G: 10, B: 15}.Hex())
	assert.Equal(t, "#654321", MustParse("#654321").Hex())
}

func TestBlend(t *testing.T) {
	got, err := BlendHex("#000000", "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#808080", got)

	a, b := MustParse("#fdae6b"), MustParse("#31a354")
	assert.Equal(t, Blend(a, b), Blend(b, a))
	assert.Equal(t, "#97a960", Blend(a, b).Hex())
}

func TestRGBA(t *testing.T) {
	r, g, b, a := White.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestContrast(t *testing.T) {
	assert.Equal(t, Black, MustParse("#edf8e9").Contrast())
	assert.Equal(t, White, MustParse("#00441b").Contrast())
}

func TestRamp(t *testing.T) {
	assert.Len(t, YieldGreens, 6)
	assert.Len(t, ProductionBlues, 10)
	assert.Len(t, BivariateProduction, 5)
	assert.Len(t, BivariateArea, 5)

	assert.Equal(t, "#edf8e9", YieldGreens.At(-1).Hex())
	assert.Equal(t, "#00441b", YieldGreens.At(99).Hex())
	assert.Equal(t, Color{}, Ramp(nil).At(0))
	assert.Equal(t, []string{"#fff5eb", "#fee6ce", "#fdae6b", "#e6550d", "#a63603"}, BivariateArea.Hex())
}
