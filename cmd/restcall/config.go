package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk profile file, ~/.restcall.yaml by default. each
// profile carries a base URI and static headers attached to every call.
type Config struct {
	Default  string             `yaml:"default"`
	Profiles map[string]Profile `yaml:"profiles"`
}

type Profile struct {
	BaseURI string            `yaml:"baseUri"`
	Headers map[string]string `yaml:"headers"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".restcall.yaml"
	}
	return filepath.Join(home, ".restcall.yaml")
}

// loadConfig reads path; a missing file is not an error, it yields an empty
// config so the tool works with flags alone.
func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// profile resolves name against the config, falling back to the config's
// default. an empty name with no default yields a zero profile.
func (c *Config) profile(name string) (Profile, error) {
	if name == "" {
		name = c.Default
	}
	if name == "" {
		return Profile{}, nil
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}
