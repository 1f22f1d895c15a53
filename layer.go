package dualmap

import (
	"github.com/flywave/go-dualmap/color"
)

type GeometryType string

const (
	Unknown GeometryType = "Unknown"
	Polygon GeometryType = "Polygon"
	Point   GeometryType = "Point"
	Group   GeometryType = "Group"
)

// Stroke is a feature outline.
type Stroke struct {
	Color color.Color
	Width float64
}

// Style is the resolved symbology of a single feature. Radius only applies
// to points.
type Style struct {
	Fill   color.Color
	Stroke Stroke
	Radius float64
}

type StyledFeature struct {
	*Feature
	Style Style
}

// Layer is a drawable handed to a map canvas. Polygon and Point layers
// carry features; Group layers carry child layers drawn in order.
type Layer struct {
	ID       string
	Type     GeometryType
	Features []StyledFeature
	Layers   []*Layer
}

func NewPolygonLayer(id string, features []StyledFeature) *Layer {
	return &Layer{ID: id, Type: Polygon, Features: features}
}

func NewPointLayer(id string, features []StyledFeature) *Layer {
	return &Layer{ID: id, Type: Point, Features: features}
}

func NewGroup(id string, layers ...*Layer) *Layer {
	return &Layer{ID: id, Type: Group, Layers: layers}
}

// Walk calls fn for l and every descendant, parents first.
func (l *Layer) Walk(fn func(*Layer)) {
	if l == nil {
		return
	}
	fn(l)
	for _, c := range l.Layers {
		c.Walk(fn)
	}
}

// Find returns the first layer in l with the given id.
func (l *Layer) Find(id string) *Layer {
	var found *Layer
	l.Walk(func(c *Layer) {
		if found == nil && c.ID == id {
			found = c
		}
	})
	return found
}

// NumFeatures counts the features of l and its descendants.
func (l *Layer) NumFeatures() int {
	n := 0
	l.Walk(func(c *Layer) { n += len(c.Features) })
	return n
}

// WithProperties returns a copy of f whose properties are extended by kv.
func WithProperties(f *Feature, kv Properties) *Feature {
	props := f.Properties.clone()
	for k, v := range kv {
		props[k] = v
	}
	return &Feature{ID: f.ID, Geometry: f.Geometry, Properties: props}
}
