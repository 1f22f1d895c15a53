package builder

import (
	"fmt"
	"strconv"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	dualmap "github.com/flywave/go-dualmap"
	"github.com/flywave/go-dualmap/color"
	"github.com/flywave/go-dualmap/legend"
	"github.com/flywave/go-dualmap/sample"
)

// Renderer turns a feature collection into a drawable layer for one year.
type Renderer interface {
	// Fields lists the attributes that need at least one numeric value
	// for the layer to be drawn.
	Fields(year string) []string
	// Render returns nil when there is nothing to draw.
	Render(fc *dualmap.FeatureCollection, year string) *dualmap.Layer
}

const (
	YieldClasses      = 6
	DotAreaClasses    = 8
	DotProdClasses    = 10
	BivariateClasses  = 5
	dotRadiusBase     = 2
	dotRadiusPerClass = 0.6
)

var (
	yieldStroke      = dualmap.Stroke{Color: color.MustParse("#555"), Width: 0.5}
	backgroundStroke = dualmap.Stroke{Color: color.MustParse("#666"), Width: 0.3}
	bivariateStroke  = dualmap.Stroke{Color: color.MustParse("#444"), Width: 0.5}
	dotFill          = color.MustParse("#654321")
	dotStroke        = dualmap.Stroke{Color: color.MustParse("#222"), Width: 0.3}
)

// YieldRenderer draws a choropleth of Yield_<year>.
type YieldRenderer struct{}

func (YieldRenderer) Fields(year string) []string {
	return []string{dualmap.FieldName(dualmap.YieldAttr, year)}
}

func (r YieldRenderer) Render(fc *dualmap.FeatureCollection, year string) *dualmap.Layer {
	field := dualmap.FieldName(dualmap.YieldAttr, year)
	if len(fc.Values(field)) == 0 {
		return nil
	}
	sym := NewSymbology(fc, field, YieldClasses, color.YieldGreens)
	return dualmap.NewPolygonLayer("yield", paint(fc, func(f *dualmap.Feature) dualmap.Style {
		return dualmap.Style{Fill: sym.Color(f.Properties), Stroke: yieldStroke}
	}))
}

// DotDensityRenderer draws production as a background choropleth and area
// as dots, one more dot than the area class of each feature.
type DotDensityRenderer struct {
	Sampler *sample.Sampler
}

func (DotDensityRenderer) Fields(year string) []string {
	return []string{
		dualmap.FieldName(dualmap.Area, year),
		dualmap.FieldName(dualmap.Production, year),
	}
}

func (r DotDensityRenderer) Render(fc *dualmap.FeatureCollection, year string) *dualmap.Layer {
	areaField := dualmap.FieldName(dualmap.Area, year)
	prodField := dualmap.FieldName(dualmap.Production, year)
	if len(fc.Values(areaField)) == 0 || len(fc.Values(prodField)) == 0 {
		return nil
	}

	area := NewSymbology(fc, areaField, DotAreaClasses, nil)
	prod := NewSymbology(fc, prodField, DotProdClasses, color.ProductionBlues)

	background := dualmap.NewPolygonLayer("background", paint(fc, func(f *dualmap.Feature) dualmap.Style {
		return dualmap.Style{Fill: prod.Color(f.Properties), Stroke: backgroundStroke}
	}))

	sampler := r.Sampler
	if sampler == nil {
		sampler = sample.New(0, sample.DefaultMaxTries)
	}

	var dots []dualmap.StyledFeature
	for _, f := range fc.Features {
		cls := area.Class(f.Properties)
		want := cls + 1
		points := sampler.Points(f.Geometry, want)
		if dropped := want - len(points); dropped > 0 {
			zap.L().Debug("builder: dropped dots",
				zap.String("feature", f.ID), zap.Int("dropped", dropped), zap.Int("wanted", want))
		}
		for i, p := range points {
			dots = append(dots, dualmap.StyledFeature{
				Feature: &dualmap.Feature{
					ID:         dotID(f, i),
					Geometry:   geom.NewPointFlat(geom.XY, []float64{p.X(), p.Y()}),
					Properties: dualmap.Properties{"class": cls},
				},
				Style: DotStyle(cls),
			})
		}
	}

	return dualmap.NewGroup("dotdensity", background, dualmap.NewPointLayer("dots", dots))
}

// DotStyle returns the style of a dot of the given area class.
func DotStyle(class int) dualmap.Style {
	return dualmap.Style{
		Fill:   dotFill,
		Stroke: dotStroke,
		Radius: dotRadiusBase + float64(class)*dotRadiusPerClass,
	}
}

func dotID(f *dualmap.Feature, i int) string {
	if f.ID == "" {
		return "dot-" + strconv.Itoa(i)
	}
	return fmt.Sprintf("%s/dot-%d", f.ID, i)
}

// Toggles reports which variables the bivariate map shows.
type Toggles interface {
	ShowArea() bool
	ShowProduction() bool
}

// StaticToggles is a fixed toggle state.
type StaticToggles struct {
	Area, Production bool
}

func (t StaticToggles) ShowArea() bool       { return t.Area }
func (t StaticToggles) ShowProduction() bool { return t.Production }

// BivariateRenderer colours every feature by production, by area, or by
// the blend of both, depending on the toggles read when Render runs.
type BivariateRenderer struct {
	Toggles Toggles
	Legend  legend.Renderer
}

func (BivariateRenderer) Fields(year string) []string {
	return []string{
		dualmap.FieldName(dualmap.Production, year),
		dualmap.FieldName(dualmap.Area, year),
	}
}

func (r BivariateRenderer) Render(fc *dualmap.FeatureCollection, year string) *dualmap.Layer {
	prod := NewSymbology(fc, dualmap.FieldName(dualmap.Production, year), BivariateClasses, color.BivariateProduction)
	area := NewSymbology(fc, dualmap.FieldName(dualmap.Area, year), BivariateClasses, color.BivariateArea)
	if prod.Breaks == nil || area.Breaks == nil {
		return nil
	}

	toggles := r.Toggles
	if toggles == nil {
		toggles = StaticToggles{Area: true, Production: true}
	}
	showArea, showProd := toggles.ShowArea(), toggles.ShowProduction()

	if r.Legend != nil {
		m := legend.Build(legend.Inputs{
			BreaksA: prod.Breaks,
			BreaksB: area.Breaks,
			RampA:   prod.Ramp,
			RampB:   area.Ramp,
			ShowA:   showProd,
			ShowB:   showArea,
		})
		if err := r.Legend.RenderLegend(m); err != nil {
			zap.L().Warn("builder: render legend", zap.Error(err))
		}
	}

	return dualmap.NewPolygonLayer("bivariate", paint(fc, func(f *dualmap.Feature) dualmap.Style {
		return dualmap.Style{
			Fill:   BivariateColor(area.Color(f.Properties), prod.Color(f.Properties), showArea, showProd),
			Stroke: bivariateStroke,
		}
	}))
}

// BivariateColor combines the area and production colors of a feature.
func BivariateColor(area, prod color.Color, showArea, showProd bool) color.Color {
	switch {
	case showArea && showProd:
		return color.Blend(area, prod)
	case showArea:
		return area
	case showProd:
		return prod
	}
	return color.Neutral
}
