package builder

import (
	dualmap "github.com/flywave/go-dualmap"
	"github.com/flywave/go-dualmap/classify"
	"github.com/flywave/go-dualmap/color"
)

// Symbology is the classification of one attribute: its breaks and the
// ramp colouring each class. It is computed once per render and never
// modified afterwards.
type Symbology struct {
	Field  string
	Breaks []float64
	Ramp   color.Ramp
}

// NewSymbology classifies field over fc into classes natural breaks.
func NewSymbology(fc *dualmap.FeatureCollection, field string, classes int, ramp color.Ramp) Symbology {
	return Symbology{
		Field:  field,
		Breaks: classify.Breaks(fc.Values(field), classes),
		Ramp:   ramp,
	}
}

// Class returns the class of a feature; missing values are class 0.
func (s Symbology) Class(p dualmap.Properties) int {
	v, ok := p.Number(s.Field)
	return classify.IndexOf(v, ok, s.Breaks)
}

// Color returns the ramp color of a feature's class.
func (s Symbology) Color(p dualmap.Properties) color.Color {
	return s.Ramp.At(s.Class(p))
}

func paint(fc *dualmap.FeatureCollection, style func(*dualmap.Feature) dualmap.Style) []dualmap.StyledFeature {
	out := make([]dualmap.StyledFeature, len(fc.Features))
	for i, f := range fc.Features {
		out[i] = dualmap.StyledFeature{Feature: f, Style: style(f)}
	}
	return out
}
