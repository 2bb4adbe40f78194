package config

import (
	"github.com/pqrs-org/verstamp/internal/descriptor"
	"github.com/pqrs-org/verstamp/internal/render"
)

// File names searched at the root when no --config is given.
var DefaultConfigFiles = []string{".verstamp.yaml", ".verstamp.yml", ".verstamp.json"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	names := descriptor.DefaultNames()
	return &Config{
		Suffixes: render.DefaultSuffixes(),
		Exclude:  DefaultExclude(),
		Descriptor: DescriptorConfig{
			JSON:          names.JSON,
			Version:       names.Version,
			DriverVersion: names.DriverVersion,
		},
	}
}

// DefaultExclude returns the directories skipped by default.
func DefaultExclude() []string {
	return []string{".git"}
}

// DescriptorNames converts the descriptor section for descriptor.Detect.
func (c *Config) DescriptorNames() descriptor.Names {
	return descriptor.Names{
		JSON:          c.Descriptor.JSON,
		Version:       c.Descriptor.Version,
		DriverVersion: c.Descriptor.DriverVersion,
	}
}
