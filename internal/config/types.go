// Package config loads the optional verstamp configuration file that
// overrides template suffixes, excluded directories and descriptor names.
package config

// Config represents the verstamp configuration.
type Config struct {
	// Suffixes are the recognized template suffixes, in processing order.
	// Each must end with ".in".
	Suffixes []string `json:"suffixes" yaml:"suffixes"`
	// Exclude holds directory base-name glob patterns skipped during discovery.
	Exclude []string `json:"exclude" yaml:"exclude"`
	// Descriptor configures the version descriptor file names.
	Descriptor DescriptorConfig `json:"descriptor" yaml:"descriptor"`
}

// DescriptorConfig represents descriptor file names relative to the root.
type DescriptorConfig struct {
	// JSON is the JSON descriptor file name.
	JSON string `json:"json" yaml:"json"`
	// Version is the flat package version file name.
	Version string `json:"version" yaml:"version"`
	// DriverVersion is the flat driver version file name.
	DriverVersion string `json:"driver_version" yaml:"driver_version"`
}
