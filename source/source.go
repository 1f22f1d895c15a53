// Package source loads feature collections over HTTP or from local files.
package source

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	dualmap "github.com/flywave/go-dualmap"
)

// Fetcher loads a feature collection from a URI.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (*dualmap.FeatureCollection, error)
}

// Client fetches GeoJSON over http(s), shapefiles from *.shp paths and
// GeoJSON from any other local path.
type Client struct {
	http *http.Client
}

// New returns a Client whose HTTP requests time out after timeout.
func New(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// IsRemote reports whether uri is fetched over HTTP.
func IsRemote(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

func (c *Client) Fetch(ctx context.Context, uri string) (*dualmap.FeatureCollection, error) {
	switch {
	case IsRemote(uri):
		return c.fetchHTTP(ctx, uri)
	case strings.EqualFold(filepath.Ext(uri), ".shp"):
		return ReadShapefile(uri)
	default:
		return readFile(uri)
	}
}

func (c *Client) fetchHTTP(ctx context.Context, uri string) (*dualmap.FeatureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, eris.Wrap(err, "source: build request")
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "source: fetch %s", uri)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, eris.Errorf("source: fetch %s: status %d", uri, resp.StatusCode)
	}

	fc, err := dualmap.DecodeGeoJSON(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "source: fetch %s", uri)
	}
	zap.L().Debug("source: fetched features", zap.String("uri", uri), zap.Int("features", fc.Len()))
	return fc, nil
}

func readFile(path string) (*dualmap.FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open geojson")
	}
	defer f.Close()

	fc, err := dualmap.DecodeGeoJSON(f)
	if err != nil {
		return nil, eris.Wrapf(err, "source: read %s", path)
	}
	return fc, nil
}
