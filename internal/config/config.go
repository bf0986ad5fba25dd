// Package config loads optional .topscore.yml defaults that sit next to the
// report being filtered.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileNames lists the config file names searched, in priority order.
var FileNames = []string{".topscore.yml", ".topscore.yaml"}

const maxConfigSize = 1 << 20

// Config represents the .topscore.yml configuration file.
type Config struct {
	TopScoreMetric string `yaml:"top_score_metric,omitempty"`
	FileType       string `yaml:"file_type,omitempty"`
	Format         string `yaml:"format,omitempty"`

	// Path is the file the values were read from; empty when none was found.
	Path string `yaml:"-"`
}

// Load reads the config file from the given directory. If path is a file,
// its parent directory is used. If no config file is found, it returns a
// zero Config (not an error).
func Load(dir string) (Config, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.Size() > maxConfigSize {
			return Config{}, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		cfg.Path = path
		return cfg, nil
	}
	return Config{}, nil
}
