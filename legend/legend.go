// Package legend builds the swatch matrix shown next to a bivariate map.
package legend

import (
	"github.com/flywave/go-dualmap/color"
)

// Inputs is everything a legend depends on. A is the production axis, B
// the area axis.
type Inputs struct {
	BreaksA, BreaksB []float64
	RampA, RampB     color.Ramp
	ShowA, ShowB     bool
}

// Swatch is a single legend cell.
type Swatch struct {
	Fill  color.Color
	Label color.Color
}

// Matrix is a grid of swatches. Rows follow the B axis and columns the A
// axis; a single-axis legend has one row or one column.
type Matrix struct {
	Rows         [][]Swatch
	LabelsA      []string
	LabelsB      []string
	ShowA, ShowB bool
}

// Empty reports whether the matrix has no swatches.
func (m *Matrix) Empty() bool {
	return m == nil || len(m.Rows) == 0
}

// Build lays out the legend for the current toggle state: a blended grid
// when both axes are shown, one axis of plain swatches when only one is,
// and nothing otherwise.
func Build(in Inputs) *Matrix {
	m := &Matrix{ShowA: in.ShowA, ShowB: in.ShowB}
	if in.ShowA {
		m.LabelsA = RangeLabels(in.BreaksA)
	}
	if in.ShowB {
		m.LabelsB = RangeLabels(in.BreaksB)
	}

	switch {
	case in.ShowA && in.ShowB:
		for _, b := range in.RampB {
			row := make([]Swatch, len(in.RampA))
			for j, a := range in.RampA {
				row[j] = swatch(color.Blend(b, a))
			}
			m.Rows = append(m.Rows, row)
		}
	case in.ShowA:
		row := make([]Swatch, len(in.RampA))
		for j, a := range in.RampA {
			row[j] = swatch(a)
		}
		m.Rows = append(m.Rows, row)
	case in.ShowB:
		for _, b := range in.RampB {
			m.Rows = append(m.Rows, []Swatch{swatch(b)})
		}
	}
	return m
}

func swatch(c color.Color) Swatch {
	return Swatch{Fill: c, Label: c.Contrast()}
}

// Renderer presents a legend.
type Renderer interface {
	RenderLegend(*Matrix) error
}
