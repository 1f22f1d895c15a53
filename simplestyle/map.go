// Package simplestyle writes drawable layers as GeoJSON whose feature
// properties carry Mapbox simplestyle keys (fill, stroke, marker-color).
package simplestyle

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	dualmap "github.com/flywave/go-dualmap"
)

const FileSuffix = ".geojson"

// Map collects layers and writes them as one FeatureCollection. Layers
// are written in the order they were added; group children follow their
// parent's order.
type Map struct {
	mu     sync.Mutex
	layers []*dualmap.Layer
}

func New() *Map {
	return &Map{}
}

func (m *Map) AddLayer(l *dualmap.Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layers = append(m.layers, l)
}

func (m *Map) RemoveLayer(l *dualmap.Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.layers {
		if c == l {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			return
		}
	}
}

// Layers returns the layers currently on the map.
func (m *Map) Layers() []*dualmap.Layer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dualmap.Layer(nil), m.layers...)
}

// FeatureCollection flattens the layers of m into styled GeoJSON features.
func (m *Map) FeatureCollection() *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: []*geojson.Feature{}}
	for _, root := range m.Layers() {
		root.Walk(func(l *dualmap.Layer) {
			for _, sf := range l.Features {
				fc.Features = append(fc.Features, feature(l, sf))
			}
		})
	}
	return fc
}

func feature(l *dualmap.Layer, sf dualmap.StyledFeature) *geojson.Feature {
	props := dualmap.WithProperties(sf.Feature, dualmap.Properties{
		"layer":        l.ID,
		"fill":         sf.Style.Fill.Hex(),
		"fill-opacity": 1,
		"stroke":       sf.Style.Stroke.Color.Hex(),
		"stroke-width": sf.Style.Stroke.Width,
	}).Properties
	if l.Type == dualmap.Point {
		props["marker-color"] = sf.Style.Fill.Hex()
		props["marker-radius"] = sf.Style.Radius
	}
	return &geojson.Feature{
		ID:         sf.ID,
		Geometry:   sf.Geometry,
		Properties: props,
	}
}

// Write encodes the map as GeoJSON.
func (m *Map) Write(w io.Writer) error {
	data, err := json.Marshal(m.FeatureCollection())
	if err != nil {
		return eris.Wrap(err, "simplestyle: encode")
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrap(err, "simplestyle: write")
	}
	return nil
}

// WriteFiles writes the map to basename with FileSuffix appended.
func (m *Map) WriteFiles(basename string) error {
	f, err := os.Create(basename + FileSuffix)
	if err != nil {
		return eris.Wrap(err, "simplestyle: create file")
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
