package dualmap

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Feature is a read-only geographic record.
type Feature struct {
	ID         string
	Geometry   geom.T
	Properties Properties
}

type FeatureCollection struct {
	Features []*Feature
}

// Len returns the number of features; a nil collection is empty.
func (fc *FeatureCollection) Len() int {
	if fc == nil {
		return 0
	}
	return len(fc.Features)
}

// Values returns the finite numeric values of field across all features,
// in feature order. Features without a usable value are skipped.
func (fc *FeatureCollection) Values(field string) []float64 {
	if fc == nil {
		return nil
	}
	values := make([]float64, 0, len(fc.Features))
	for _, f := range fc.Features {
		if v, ok := f.Properties.Number(field); ok {
			values = append(values, v)
		}
	}
	return values
}

// DecodeGeoJSON reads a GeoJSON FeatureCollection.
func DecodeGeoJSON(r io.Reader) (*FeatureCollection, error) {
	var gfc geojson.FeatureCollection
	if err := json.NewDecoder(r).Decode(&gfc); err != nil {
		return nil, eris.Wrap(err, "dualmap: decode geojson")
	}
	fc := &FeatureCollection{Features: make([]*Feature, 0, len(gfc.Features))}
	for _, gf := range gfc.Features {
		if gf == nil {
			continue
		}
		props := Properties(gf.Properties)
		if props == nil {
			props = Properties{}
		}
		fc.Features = append(fc.Features, &Feature{
			ID:         gf.ID,
			Geometry:   gf.Geometry,
			Properties: props,
		})
	}
	return fc, nil
}
