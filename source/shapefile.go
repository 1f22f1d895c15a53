package source

import (
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	dualmap "github.com/flywave/go-dualmap"
)

// ReadShapefile reads the polygons of a shapefile together with the
// attributes of its .dbf. Numeric columns become float64, empty cells are
// left out, everything else stays a string.
func ReadShapefile(path string) (*dualmap.FeatureCollection, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open shapefile")
	}
	defer r.Close()

	fields := r.Fields()
	fc := &dualmap.FeatureCollection{}
	for r.Next() {
		n, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			zap.L().Debug("source: skipping non-polygon shape", zap.Int("row", n))
			continue
		}
		g := polygonToMultiPolygon(poly)
		if g == nil {
			continue
		}

		props := dualmap.Properties{}
		for i, f := range fields {
			raw := strings.Trim(r.ReadAttribute(n, i), " \x00")
			if raw == "" {
				continue
			}
			name := f.String()
			if f.Fieldtype == 'N' || f.Fieldtype == 'F' {
				if v, err := strconv.ParseFloat(raw, 64); err == nil {
					props[name] = v
					continue
				}
			}
			props[name] = raw
		}
		fc.Features = append(fc.Features, &dualmap.Feature{
			ID:         strconv.Itoa(n),
			Geometry:   g,
			Properties: props,
		})
	}
	if err := r.Err(); err != nil {
		return nil, eris.Wrap(err, "source: read shapefile")
	}
	return fc, nil
}

// polygonToMultiPolygon groups shapefile rings into polygons. Clockwise
// rings start a new polygon, counter-clockwise rings are holes of the
// polygon before them.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY)
	var current *geom.Polygon
	flush := func() {
		if current == nil {
			return
		}
		if err := mp.Push(current); err != nil {
			zap.L().Debug("source: skipping malformed polygon", zap.Error(err))
		}
		current = nil
	}

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		end := int32(len(p.Points))
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		}

		flat := make([]float64, 0, 2*(end-start))
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}
		ring := geom.NewLinearRingFlat(geom.XY, flat)

		if signedArea(flat) <= 0 || current == nil {
			flush()
			current = geom.NewPolygon(geom.XY)
		}
		if err := current.Push(ring); err != nil {
			zap.L().Debug("source: skipping malformed ring", zap.Int32("part", i), zap.Error(err))
		}
	}
	flush()

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}

// signedArea is positive for counter-clockwise rings.
func signedArea(flat []float64) float64 {
	var a float64
	for i := 0; i+3 < len(flat); i += 2 {
		a += flat[i]*flat[i+3] - flat[i+2]*flat[i+1]
	}
	return a / 2
}
