package simplestyle

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	dualmap "github.com/flywave/go-dualmap"
	"github.com/flywave/go-dualmap/builder"
	"github.com/flywave/go-dualmap/color"
)

var _ builder.Map = (*Map)(nil)

type rawCollection struct {
	Type     string `json:"type"`
	Features []struct {
		ID         string                 `json:"id"`
		Geometry   json.RawMessage        `json:"geometry"`
		Properties map[string]interface{} `json:"properties"`
	} `json:"features"`
}

func testLayer() *dualmap.Layer {
	poly := &dualmap.Feature{
		ID: "north",
		Geometry: geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{
			{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
		}}),
		Properties: dualmap.Properties{"name": "North"},
	}
	dot := &dualmap.Feature{
		ID:         "north/dot-0",
		Geometry:   geom.NewPointFlat(geom.XY, []float64{0.5, 0.5}),
		Properties: dualmap.Properties{"class": 2},
	}
	return dualmap.NewGroup("dotdensity",
		dualmap.NewPolygonLayer("background", []dualmap.StyledFeature{{
			Feature: poly,
			Style:   dualmap.Style{Fill: color.MustParse("#a9c9df"), Stroke: dualmap.Stroke{Color: color.MustParse("#666"), Width: 0.3}},
		}}),
		dualmap.NewPointLayer("dots", []dualmap.StyledFeature{{Feature: dot, Style: builder.DotStyle(2)}}),
	)
}

func TestWrite(t *testing.T) {
	m := New()
	m.AddLayer(testLayer())

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))

	var fc rawCollection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)

	bg := fc.Features[0]
	assert.Equal(t, "north", bg.ID)
	assert.Equal(t, "North", bg.Properties["name"])
	assert.Equal(t, "background", bg.Properties["layer"])
	assert.Equal(t, "#a9c9df", bg.Properties["fill"])
	assert.Equal(t, "#666666", bg.Properties["stroke"])
	assert.Equal(t, 0.3, bg.Properties["stroke-width"])
	assert.NotContains(t, bg.Properties, "marker-radius")

	dot := fc.Features[1]
	assert.Equal(t, "dots", dot.Properties["layer"])
	assert.Equal(t, 2.0, dot.Properties["class"])
	assert.Equal(t, "#654321", dot.Properties["marker-color"])
	assert.InDelta(t, 3.2, dot.Properties["marker-radius"], 1e-9)
}

func TestRemoveLayer(t *testing.T) {
	m := New()
	a, b := testLayer(), testLayer()
	m.AddLayer(a)
	m.AddLayer(b)
	m.RemoveLayer(a)
	m.RemoveLayer(&dualmap.Layer{ID: "unknown"})
	require.Len(t, m.Layers(), 1)
	assert.Same(t, b, m.Layers()[0])

	m.RemoveLayer(b)
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, buf.String())
}

func TestWriteFiles(t *testing.T) {
	m := New()
	m.AddLayer(testLayer())
	base := filepath.Join(t.TempDir(), "map_a")
	require.NoError(t, m.WriteFiles(base))

	data, err := os.ReadFile(base + FileSuffix)
	require.NoError(t, err)
	var fc rawCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Len(t, fc.Features, 2)

	assert.Error(t, m.WriteFiles(filepath.Join(t.TempDir(), "missing", "map")))
}
