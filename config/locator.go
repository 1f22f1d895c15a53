package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Locator resolves data paths named in a project file.
type Locator struct {
	baseDir string
	missing []string
}

// SetBaseDir sets the directory relative paths are resolved against.
func (l *Locator) SetBaseDir(dir string) {
	l.baseDir = dir
}

// Resolve returns uri unchanged for URLs and absolute paths and joined to
// the base directory otherwise. Local files that do not exist are
// recorded and reported by MissingFiles.
func (l *Locator) Resolve(uri string) string {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return uri
	}
	path := uri
	if !filepath.IsAbs(path) && l.baseDir != "" {
		path = filepath.Join(l.baseDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		l.missing = append(l.missing, path)
	}
	return path
}

// MissingFiles returns the resolved paths that did not exist.
func (l *Locator) MissingFiles() []string {
	return l.missing
}
