package dualmap

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	GEOJSON   = "geojson"
	SHAPEFILE = "shape"
)

type GeoJson struct {
	Id  string
	URL string
}

func (d GeoJson) GetId() string   { return d.Id }
func (d GeoJson) GetType() string { return GEOJSON }
func (d GeoJson) GetURI() string  { return d.URL }

type Shapefile struct {
	Id       string
	Filename string
}

func (d Shapefile) GetId() string   { return d.Id }
func (d Shapefile) GetType() string { return SHAPEFILE }
func (d Shapefile) GetURI() string  { return d.Filename }

// Datasource locates the feature collection of a project.
type Datasource interface {
	GetId() string
	GetType() string
	GetURI() string
}

// NewDatasource returns the datasource for a URI, picking the shapefile
// reader for .shp files.
func NewDatasource(id, uri string) Datasource {
	if strings.EqualFold(filepath.Ext(uri), ".shp") {
		return Shapefile{Id: id, Filename: uri}
	}
	return GeoJson{Id: id, URL: uri}
}

func newDatasource(params map[string]interface{}) Datasource {
	d := make(map[string]string, len(params))
	for k, v := range params {
		if s, ok := v.(string); ok {
			d[k] = s
		} else {
			d[k] = fmt.Sprintf("%v", v)
		}
	}

	switch d["type"] {
	case SHAPEFILE:
		return Shapefile{Id: d["id"], Filename: d["file"]}
	case GEOJSON:
		uri := d["url"]
		if uri == "" {
			uri = d["file"]
		}
		return GeoJson{Id: d["id"], URL: uri}
	case "":
		if d["file"] != "" {
			return NewDatasource(d["id"], d["file"])
		}
		if d["url"] != "" {
			return GeoJson{Id: d["id"], URL: d["url"]}
		}
	}
	return nil
}
