package builder

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	dualmap "github.com/flywave/go-dualmap"
	"github.com/flywave/go-dualmap/legend"
	"github.com/flywave/go-dualmap/sample"
	"github.com/flywave/go-dualmap/source"
)

// DefaultCacheTTL is how long a remote feature collection is reused.
const DefaultCacheTTL = 5 * time.Minute

// Builder builds map layers from a feature source.
type Builder struct {
	cache   *Cache
	uri     string
	sampler *sample.Sampler
	toggles Toggles
	legend  legend.Renderer
}

// New returns a Builder reading features from uri through f.
func New(f source.Fetcher, uri string) *Builder {
	return &Builder{
		cache:   NewCache(f, DefaultCacheTTL),
		uri:     uri,
		sampler: sample.New(0, sample.DefaultMaxTries),
		toggles: StaticToggles{Area: true, Production: true},
	}
}

// SetCache replaces the feature cache, e.g. to share it between builders.
func (b *Builder) SetCache(c *Cache) {
	b.cache = c
}

// SetSampler sets the dot placement sampler.
func (b *Builder) SetSampler(s *sample.Sampler) {
	b.sampler = s
}

// SetToggles sets where the bivariate map reads its toggles from.
func (b *Builder) SetToggles(t Toggles) {
	b.toggles = t
}

// SetLegendRenderer sets the renderer receiving bivariate legends.
func (b *Builder) SetLegendRenderer(r legend.Renderer) {
	b.legend = r
}

// Renderer returns the renderer for mode.
func (b *Builder) Renderer(mode dualmap.Mode) (Renderer, error) {
	switch mode {
	case dualmap.Yield:
		return YieldRenderer{}, nil
	case dualmap.DotDensity:
		return DotDensityRenderer{Sampler: b.sampler}, nil
	case dualmap.Bivariate:
		return BivariateRenderer{Toggles: b.toggles, Legend: b.legend}, nil
	}
	return nil, eris.Wrapf(dualmap.ErrUnknownMode, "%q", mode)
}

// Build fetches the features and renders them for mode and year. Every
// failure is logged and yields a nil layer: an unknown mode, a failed
// fetch, an empty collection or a required attribute without numeric
// values.
func (b *Builder) Build(ctx context.Context, mode dualmap.Mode, year string) *dualmap.Layer {
	log := zap.L().With(zap.String("mode", string(mode)), zap.String("year", year))

	r, err := b.Renderer(mode)
	if err != nil {
		log.Error("builder: select renderer", zap.Error(err))
		return nil
	}

	fc, err := b.cache.Get(ctx, b.uri)
	if err != nil {
		log.Error("builder: load features", zap.String("uri", b.uri), zap.Error(err))
		return nil
	}
	if fc.Len() == 0 {
		log.Warn("builder: no features", zap.String("uri", b.uri))
		return nil
	}

	for _, field := range r.Fields(year) {
		if len(fc.Values(field)) == 0 {
			log.Warn("builder: no numeric values", zap.String("field", field))
			return nil
		}
	}

	layer := r.Render(fc, year)
	if layer != nil {
		log.Debug("builder: built layer", zap.String("layer", layer.ID), zap.Int("features", layer.NumFeatures()))
	}
	return layer
}

// Compare updates both canvases concurrently, one per year.
func (b *Builder) Compare(ctx context.Context, canvasA, canvasB *Canvas, mode dualmap.Mode, yearA, yearB string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		canvasA.Update(ctx, b, mode, yearA)
		return nil
	})
	g.Go(func() error {
		canvasB.Update(ctx, b, mode, yearB)
		return nil
	})
	return g.Wait()
}
