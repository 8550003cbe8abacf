package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads and parses an .orang.toml file at path. A missing file is not
// an error: it returns an empty Config so callers fall back to
// DefaultProfile() transparently.
func Load(path string) (*Config, error) {
	cfg := &Config{Profile: map[string]*Profile{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// DiscoverPath returns the conventional profile-file location: ./.orang.toml
// in the current working directory.
func DiscoverPath() string {
	return ".orang.toml"
}
