package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/cavegen/pkg/director"
)

// CLIConfig is the on-disk shape of a cavegen request, one YAML document
// per invocation.
type CLIConfig struct {
	Seed         uint64   `yaml:"seed"`
	Depth        int      `yaml:"depth"`
	IsDay        bool     `yaml:"isDay"`
	ForceProfile string   `yaml:"forceProfile"`
	QuestRaces   []string `yaml:"questRaces"`
	Retries      int      `yaml:"retries"`
}

// LoadCLIConfig reads and parses a CLIConfig from path.
func LoadCLIConfig(path string) (CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CLIConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c CLIConfig) toDirectorConfig() director.Config {
	return director.Config{
		Seed:         c.Seed,
		Depth:        c.Depth,
		IsDay:        c.IsDay,
		ForceProfile: c.ForceProfile,
		QuestRaces:   c.QuestRaces,
		Retries:      c.Retries,
	}
}
