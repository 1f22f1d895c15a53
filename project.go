package dualmap

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v2"
)

// Project describes a side by side comparison of two years.
type Project struct {
	Name           string
	Datasource     Datasource
	Mode           Mode
	Years          [2]string
	ShowArea       bool
	ShowProduction bool
	Map            Map
}

type auxProject struct {
	Name       string                 `yaml:"name" toml:"name"`
	Datasource map[string]interface{} `yaml:"datasource" toml:"datasource"`
	Mode       string                 `yaml:"mode" toml:"mode"`
	Years      []interface{}          `yaml:"years" toml:"years"`
	Toggles    auxToggles             `yaml:"toggles" toml:"toggles"`
	Map        Map                    `yaml:"map" toml:"map"`
}

type auxToggles struct {
	Area       *bool `yaml:"area" toml:"area"`
	Production *bool `yaml:"production" toml:"production"`
}

func newProject(aux auxProject) (*Project, error) {
	mode := Yield
	if aux.Mode != "" {
		var err error
		if mode, err = ParseMode(aux.Mode); err != nil {
			return nil, err
		}
	}
	if len(aux.Years) != 2 {
		return nil, eris.Errorf("dualmap: project needs two years, got %d", len(aux.Years))
	}

	p := &Project{
		Name:           aux.Name,
		Datasource:     newDatasource(aux.Datasource),
		Mode:           mode,
		ShowArea:       aux.Toggles.Area == nil || *aux.Toggles.Area,
		ShowProduction: aux.Toggles.Production == nil || *aux.Toggles.Production,
		Map:            aux.Map,
	}
	for i, y := range aux.Years {
		p.Years[i] = fmt.Sprintf("%v", y)
	}
	if p.Datasource == nil {
		return nil, eris.New("dualmap: project has no datasource")
	}
	return p, nil
}

// Parse reads a YAML project.
func Parse(r io.Reader) (*Project, error) {
	aux := auxProject{}
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(input, &aux); err != nil {
		return nil, eris.Wrap(err, "dualmap: parse yaml project")
	}
	return newProject(aux)
}

// ParseTOML reads a TOML project.
func ParseTOML(r io.Reader) (*Project, error) {
	aux := auxProject{}
	if _, err := toml.NewDecoder(r).Decode(&aux); err != nil {
		return nil, eris.Wrap(err, "dualmap: parse toml project")
	}
	return newProject(aux)
}

// ParseFile reads a project, choosing the format by extension.
func ParseFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "dualmap: open project")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(f)
	}
	return Parse(f)
}
