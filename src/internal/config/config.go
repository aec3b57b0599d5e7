package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when --config is
// not given.
const DefaultFile = ".bibtools.yaml"

// Config selects format rules and overrides the citation pattern. The
// zero value means built-in behavior everywhere.
type Config struct {
	Format     Format     `yaml:"format"`
	References References `yaml:"references"`
}

// Format names the normalization rules to run, in order.
type Format struct {
	Rules []string `yaml:"rules"`
}

// References overrides the citation key pattern scanned for in
// documents. The pattern's first capture group is the key.
type References struct {
	Pattern string `yaml:"pattern"`
}

// Load reads a config file. A file named explicitly must exist; with
// path empty the default file is optional and its absence means the
// zero config.
func Load(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return cfg, nil
}
