package dualmap

// Map holds the view shared by both canvases.
type Map struct {
	SRS    string     `yaml:"srs" toml:"srs"`
	Bounds [4]float64 `yaml:"bounds" toml:"bounds"`
	Center [2]float64 `yaml:"center" toml:"center"`
	Zoom   int        `yaml:"zoom" toml:"zoom"`
}
