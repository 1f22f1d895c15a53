package color

// Ramp is an ordered list of class colors, lowest class first.
type Ramp []Color

// NewRamp parses every hex string. It panics on malformed input.
func NewRamp(hexes ...string) Ramp {
	r := make(Ramp, len(hexes))
	for i, h := range hexes {
		r[i] = MustParse(h)
	}
	return r
}

// At returns the color for class i, clamped into the ramp.
func (r Ramp) At(i int) Color {
	if len(r) == 0 {
		return Color{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}

// Hex returns the hex strings of the ramp.
func (r Ramp) Hex() []string {
	s := make([]string, len(r))
	for i, c := range r {
		s[i] = c.Hex()
	}
	return s
}

var (
	// YieldGreens colors the yield choropleth.
	YieldGreens = NewRamp("#edf8e9", "#bae4b3", "#74c476", "#31a354", "#006d2c", "#00441b")

	// ProductionBlues colors the dot density background.
	ProductionBlues = NewRamp("#f7fbff", "#e3eef7", "#d0e2ef", "#bcd5e7", "#a9c9df",
		"#95bcd6", "#82b0ce", "#6ea3c6", "#5b97be", "#478ab6")

	// BivariateProduction and BivariateArea are the two axes of the
	// bivariate map.
	BivariateProduction = NewRamp("#edf8e9", "#bae4b3", "#74c476", "#31a354", "#006d2c")
	BivariateArea       = NewRamp("#fff5eb", "#fee6ce", "#fdae6b", "#e6550d", "#a63603")

	Neutral = MustParse("#ccc")
)
