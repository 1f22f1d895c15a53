package dualmap

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestProperties_Number(t *testing.T) {
	p := Properties{
		"f":   12.5,
		"i":   3,
		"i64": int64(7),
		"num": json.Number("4.25"),
		"bad": json.Number("x"),
		"s":   "12",
		"nil": nil,
		"nan": math.NaN(),
		"inf": math.Inf(-1),
	}
	for name, want := range map[string]float64{"f": 12.5, "i": 3, "i64": 7, "num": 4.25} {
		v, ok := p.Number(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, v, name)
	}
	for _, name := range []string{"bad", "s", "nil", "nan", "inf", "missing"} {
		_, ok := p.Number(name)
		assert.False(t, ok, name)
	}
}

func TestProperties_String(t *testing.T) {
	p := Properties{"b": 2.0, "a": "x"}
	assert.Equal(t, `Properties{a: "x", b: 2}`, p.String())
	s, ok := p.GetString("a")
	assert.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestDecodeGeoJSON(t *testing.T) {
	f, err := os.Open("testdata/fields.geojson")
	require.NoError(t, err)
	defer f.Close()

	fc, err := DecodeGeoJSON(f)
	require.NoError(t, err)
	require.Equal(t, 3, fc.Len())

	assert.Equal(t, "north", fc.Features[0].ID)
	assert.IsType(t, &geom.Polygon{}, fc.Features[0].Geometry)
	assert.IsType(t, &geom.MultiPolygon{}, fc.Features[2].Geometry)

	assert.Equal(t, []float64{10, 50, 90}, fc.Values(FieldName(YieldAttr, "2020")))
	assert.Equal(t, []float64{12, 40}, fc.Values("Yield_2021"))
	assert.Equal(t, []float64{1000, 25000}, fc.Values("Prod_2020"))
	assert.Empty(t, fc.Values("Area_2050"))
}

func TestDecodeGeoJSON_Invalid(t *testing.T) {
	_, err := DecodeGeoJSON(strings.NewReader(`{"type": "FeatureCollection", "features": [`))
	assert.Error(t, err)

	var fc *FeatureCollection
	assert.Equal(t, 0, fc.Len())
	assert.Nil(t, fc.Values("x"))
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"yield": Yield, "DotDensity": DotDensity, " bivariate ": Bivariate} {
		m, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, m)
	}
	_, err := ParseMode("heatmap")
	assert.True(t, eris.Is(err, ErrUnknownMode))
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "Area_2020", FieldName(Area, "2020"))
	assert.Equal(t, "Prod_1999", FieldName(Production, "1999"))
	assert.Equal(t, "Yield_abc", FieldName(YieldAttr, "abc"))
}

func TestLayer_Walk(t *testing.T) {
	f := &Feature{ID: "a", Properties: Properties{"x": 1.0}}
	bg := NewPolygonLayer("background", []StyledFeature{{Feature: f}})
	dots := NewPointLayer("dots", []StyledFeature{{Feature: f}, {Feature: f}})
	g := NewGroup("dotdensity", bg, dots)

	assert.Equal(t, 3, g.NumFeatures())
	assert.Same(t, dots, g.Find("dots"))
	assert.Nil(t, g.Find("nope"))

	var ids []string
	g.Walk(func(l *Layer) { ids = append(ids, l.ID) })
	assert.Equal(t, []string{"dotdensity", "background", "dots"}, ids)

	var nilLayer *Layer
	assert.Equal(t, 0, nilLayer.NumFeatures())
}

func TestWithProperties(t *testing.T) {
	f := &Feature{ID: "a", Properties: Properties{"x": 1.0}}
	g := WithProperties(f, Properties{"class": 2})
	assert.Equal(t, Properties{"x": 1.0, "class": 2}, g.Properties)
	assert.Equal(t, Properties{"x": 1.0}, f.Properties)
}

func TestNewDatasource(t *testing.T) {
	assert.Equal(t, Shapefile{Id: "a", Filename: "fields.SHP"}, NewDatasource("a", "fields.SHP"))
	assert.Equal(t, GeoJson{Id: "b", URL: "https://example.org/data.geojson"}, NewDatasource("b", "https://example.org/data.geojson"))
}
