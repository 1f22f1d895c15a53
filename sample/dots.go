// Package sample places random points inside polygon geometries.
package sample

import (
	"math/rand"
	"sync"
	"time"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// DefaultMaxTries is the number of bounding box draws spent on a single
// point before it is dropped.
const DefaultMaxTries = 10

// Sampler draws points uniformly from the bounding box of a geometry and
// keeps those inside it. It is safe for concurrent use.
type Sampler struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	maxTries int
}

// New returns a Sampler seeded with seed. A zero seed uses the clock.
// maxTries <= 0 selects DefaultMaxTries.
func New(seed int64, maxTries int) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	return &Sampler{rnd: rand.New(rand.NewSource(seed)), maxTries: maxTries}
}

// MaxTries returns the per point attempt cap.
func (s *Sampler) MaxTries() int {
	return s.maxTries
}

// Points attempts n points inside g and returns the accepted ones. A point
// whose draws all fall outside g is dropped, so fewer than n points may be
// returned for slivers. Geometries other than polygons yield no points.
func (s *Sampler) Points(g geom.T, n int) []geom.Coord {
	if g == nil || n <= 0 {
		return nil
	}
	b := g.Bounds()
	if b == nil || b.IsEmpty() {
		return nil
	}
	minX, minY, maxX, maxY := b.Min(0), b.Min(1), b.Max(0), b.Max(1)

	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]geom.Coord, 0, n)
	for i := 0; i < n; i++ {
		for try := 0; try < s.maxTries; try++ {
			c := geom.Coord{
				minX + s.rnd.Float64()*(maxX-minX),
				minY + s.rnd.Float64()*(maxY-minY),
			}
			if Contains(g, c) {
				points = append(points, c)
				break
			}
		}
	}
	return points
}

// Contains reports whether c lies inside a polygon or multipolygon. Points
// inside a hole are outside.
func Contains(g geom.T, c geom.Coord) bool {
	switch g := g.(type) {
	case *geom.Polygon:
		return polygonContains(g, c)
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if polygonContains(g.Polygon(i), c) {
				return true
			}
		}
	}
	return false
}

func polygonContains(p *geom.Polygon, c geom.Coord) bool {
	if p.NumLinearRings() == 0 {
		return false
	}
	layout := p.Layout()
	if !xy.IsPointInRing(layout, c, p.LinearRing(0).FlatCoords()) {
		return false
	}
	for i := 1; i < p.NumLinearRings(); i++ {
		if xy.IsPointInRing(layout, c, p.LinearRing(i).FlatCoords()) {
			return false
		}
	}
	return true
}
